package match

import (
	"strings"

	"tablematch/domain/table"
)

// ExtractKeywords collects the distinct non-blank cell values of a reference
// dataset, walking rows in order and columns in header order, so the result
// is in first-seen order. Values keep their source casing; distinctness is
// exact string equality.
func ExtractKeywords(ds *table.Dataset) []string {
	keywords := []string{}
	if ds == nil {
		return keywords
	}

	seen := make(map[string]bool)
	for _, row := range ds.Rows {
		for _, header := range ds.Headers {
			value := strings.TrimSpace(row[header])
			if value == "" || seen[value] {
				continue
			}
			seen[value] = true
			keywords = append(keywords, value)
		}
	}
	return keywords
}

// ParseKeywordText splits free keyword text on commas, trimming each piece
// and dropping empty ones. Text made of only commas or whitespace parses to
// an empty list.
func ParseKeywordText(text string) []string {
	keywords := []string{}
	for _, piece := range strings.Split(text, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			keywords = append(keywords, piece)
		}
	}
	return keywords
}

// JoinKeywords renders a keyword list back to the comma-separated text shown
// in the keyword box.
func JoinKeywords(keywords []string) string {
	return strings.Join(keywords, ", ")
}

// ResolveKeywords reconciles edited keyword text against the reference-derived
// list. Clearing the box in comparison mode snaps back to the reference
// keywords instead of filtering on nothing, and the caller gets the text to
// rewrite the box with. In every other case the parsed list is used as-is,
// including the empty list.
func ResolveKeywords(text string, referenceKeywords []string, comparisonMode bool) ([]string, string) {
	parsed := ParseKeywordText(text)
	if len(parsed) == 0 && comparisonMode && len(referenceKeywords) > 0 {
		return referenceKeywords, JoinKeywords(referenceKeywords)
	}
	return parsed, text
}
