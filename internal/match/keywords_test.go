package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tablematch/domain/table"
)

func TestExtractKeywords_DistinctFirstSeenOrder(t *testing.T) {
	ds := &table.Dataset{
		Headers: []string{"A", "B"},
		Rows: []table.Row{
			{"A": "x", "B": "y"},
			{"A": "x", "B": "z"},
		},
	}
	assert.Equal(t, []string{"x", "y", "z"}, ExtractKeywords(ds))
}

func TestExtractKeywords_SkipsBlankCellsAndKeepsCasing(t *testing.T) {
	ds := &table.Dataset{
		Headers: []string{"A", "B"},
		Rows: []table.Row{
			{"A": "  ", "B": "Alpha"},
			{"A": "alpha", "B": ""},
		},
	}
	// "Alpha" and "alpha" are distinct by exact equality.
	assert.Equal(t, []string{"Alpha", "alpha"}, ExtractKeywords(ds))
}

func TestExtractKeywords_NilDataset(t *testing.T) {
	assert.Equal(t, []string{}, ExtractKeywords(nil))
}

func TestParseKeywordText(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParseKeywordText("a, b"))
	assert.Equal(t, []string{"a", "b"}, ParseKeywordText(" a ,, b ,"))
	assert.Equal(t, []string{}, ParseKeywordText(""))
	assert.Equal(t, []string{}, ParseKeywordText(" , ,, "))
}

func TestResolveKeywords_SnapsBackToReferenceInComparisonMode(t *testing.T) {
	reference := []string{"Alpha", "Beta"}

	keywords, text := ResolveKeywords("   ", reference, true)
	assert.Equal(t, reference, keywords)
	assert.Equal(t, "Alpha, Beta", text)
}

func TestResolveKeywords_UsesParsedListOtherwise(t *testing.T) {
	reference := []string{"Alpha", "Beta"}

	// Non-empty text wins over the reference list.
	keywords, text := ResolveKeywords("gamma, delta", reference, true)
	assert.Equal(t, []string{"gamma", "delta"}, keywords)
	assert.Equal(t, "gamma, delta", text)

	// Outside comparison mode an empty parse stays empty.
	keywords, text = ResolveKeywords("", reference, false)
	assert.Empty(t, keywords)
	assert.Equal(t, "", text)

	// Comparison mode with no reference list also stays empty.
	keywords, _ = ResolveKeywords("", nil, true)
	assert.Empty(t, keywords)
}
