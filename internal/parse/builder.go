package parse

import (
	"fmt"
	"strings"

	"tablematch/domain/table"
)

// FromText parses raw delimited text into a Dataset. The separator is
// detected once on the whole text, the first non-blank line becomes the
// header row, and every later non-blank line becomes one row mapping.
// Malformed input degrades instead of failing: empty text yields an empty
// Dataset, short rows are padded with "" and fields beyond the header count
// are dropped.
func FromText(text string) *table.Dataset {
	var lines []string
	for _, line := range splitLines(text) {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return &table.Dataset{Headers: []string{}, Rows: []table.Row{}}
	}

	sep := DetectSeparator(text)
	headers := resolveHeaders(SplitLine(lines[0], sep))

	rows := make([]table.Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, zipRow(headers, SplitLine(line, sep)))
	}
	return &table.Dataset{Headers: headers, Rows: rows}
}

// FromMatrix builds a Dataset from an already-decoded cell matrix, as
// produced by the workbook reader. Row 0 is the header row; nil body rows
// are skipped, missing trailing cells become "".
func FromMatrix(cells [][]string) *table.Dataset {
	if len(cells) == 0 {
		return &table.Dataset{Headers: []string{}, Rows: []table.Row{}}
	}

	headers := resolveHeaders(cells[0])
	rows := make([]table.Row, 0, len(cells)-1)
	for _, cellRow := range cells[1:] {
		if cellRow == nil {
			continue
		}
		rows = append(rows, zipRow(headers, cellRow))
	}
	return &table.Dataset{Headers: headers, Rows: rows}
}

// resolveHeaders trims raw header tokens and replaces blank ones with a
// positional fallback name. Duplicate resolved names are kept as-is; the
// row mapping then collides last-write-wins.
func resolveHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	for i, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column %d", i+1)
		}
		headers[i] = h
	}
	return headers
}

// zipRow pairs field values against headers positionally. Extra trailing
// fields beyond the header count are ignored.
func zipRow(headers []string, fields []string) table.Row {
	row := make(table.Row, len(headers))
	for i, header := range headers {
		if i < len(fields) {
			row[header] = strings.TrimSpace(fields[i])
		} else {
			row[header] = ""
		}
	}
	return row
}
