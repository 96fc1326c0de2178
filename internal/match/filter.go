package match

import (
	"strings"

	"tablematch/domain/table"
)

// FilterRows runs the keyword filter over a dataset and returns the rows
// that survive, each annotated with which keyword hit in which column.
// Columns are restricted to the selected ones in header order; matching is
// substring containment, lowercased on both sides unless the config asks
// for case sensitivity. Input row order is preserved and rows are never
// deduplicated.
//
// Inclusion depends on the mode: ModeShowAllOnEmpty passes every row through
// unfiltered when the keyword list is empty, while ModeMatchRequired always
// demands at least one match, so an empty keyword list yields no rows.
func FilterRows(ds *table.Dataset, cfg table.FilterConfig, mode table.FilterMode) []table.FilteredRow {
	result := []table.FilteredRow{}
	if ds == nil {
		return result
	}

	showAll := mode == table.ModeShowAllOnEmpty && len(cfg.Keywords) == 0

	for _, row := range ds.Rows {
		matches := matchRow(row, ds.Headers, cfg)
		if len(matches) > 0 || showAll {
			result = append(result, table.FilteredRow{Row: row, Matches: matches})
		}
	}
	return result
}

// matchRow collects every (keyword, column) hit within one row.
func matchRow(row table.Row, headers []string, cfg table.FilterConfig) []table.MatchRecord {
	matches := []table.MatchRecord{}
	for _, header := range headers {
		if !cfg.SelectedColumns[header] {
			continue
		}
		value, ok := row[header]
		if !ok {
			continue
		}
		haystack := value
		if !cfg.CaseSensitive {
			haystack = strings.ToLower(value)
		}
		for _, keyword := range cfg.Keywords {
			if keyword == "" {
				continue
			}
			needle := keyword
			if !cfg.CaseSensitive {
				needle = strings.ToLower(keyword)
			}
			if strings.Contains(haystack, needle) {
				matches = append(matches, table.MatchRecord{Keyword: keyword, Header: header})
			}
		}
	}
	return matches
}

// FormatMatches renders a row's matches as the "keywords found" cell: one
// line per keyword in first-match order, listing the distinct headers that
// keyword hit, as "<keyword> (<header1>, <header2>)".
func FormatMatches(matches []table.MatchRecord) string {
	var order []string
	byKeyword := make(map[string][]string)
	seen := make(map[string]map[string]bool)

	for _, m := range matches {
		if _, ok := byKeyword[m.Keyword]; !ok {
			order = append(order, m.Keyword)
			seen[m.Keyword] = make(map[string]bool)
		}
		if !seen[m.Keyword][m.Header] {
			seen[m.Keyword][m.Header] = true
			byKeyword[m.Keyword] = append(byKeyword[m.Keyword], m.Header)
		}
	}

	lines := make([]string, 0, len(order))
	for _, keyword := range order {
		lines = append(lines, keyword+" ("+strings.Join(byKeyword[keyword], ", ")+")")
	}
	return strings.Join(lines, "\n")
}
