package table

// Row maps a header name to the cell value stored under it. Every row of a
// Dataset carries exactly the keys listed in Dataset.Headers; a cell missing
// from the source is stored as "" rather than left absent.
type Row map[string]string

// Dataset is the parsed tabular result of one imported file. Headers keep
// the source column order; Rows keep the source row order. A Dataset is
// built once per import and never mutated afterwards.
type Dataset struct {
	Headers []string `json:"headers"`
	Rows    []Row    `json:"rows"`
}

// FilterMode selects the row inclusion policy of the filter engine.
type FilterMode string

const (
	// ModeShowAllOnEmpty includes every row when the keyword list is empty
	// (the analysis view: no keywords means no filtering).
	ModeShowAllOnEmpty FilterMode = "show-all-on-empty"
	// ModeMatchRequired includes a row only when it matched at least one
	// keyword (the comparison view: no keywords means no rows).
	ModeMatchRequired FilterMode = "match-required"
)

// FilterConfig holds the caller-owned filter settings. The engine only
// reads it; the surrounding application mutates it on user actions and
// re-runs the filter.
type FilterConfig struct {
	Keywords        []string        `json:"keywords"`
	SelectedColumns map[string]bool `json:"selected_columns"`
	CaseSensitive   bool            `json:"case_sensitive"`
}

// MatchRecord is one keyword-to-column hit within a row. Keyword keeps the
// casing stored in the FilterConfig, not the cell's casing.
type MatchRecord struct {
	Keyword string `json:"keyword"`
	Header  string `json:"header"`
}

// FilteredRow pairs a Dataset row with the matches that admitted it.
type FilteredRow struct {
	Row     Row           `json:"row"`
	Matches []MatchRecord `json:"matches"`
}

// NewFilterConfig returns a config with every given header selected, which
// is the state a freshly imported dataset starts in.
func NewFilterConfig(headers []string) FilterConfig {
	selected := make(map[string]bool, len(headers))
	for _, h := range headers {
		selected[h] = true
	}
	return FilterConfig{
		Keywords:        nil,
		SelectedColumns: selected,
		CaseSensitive:   false,
	}
}
