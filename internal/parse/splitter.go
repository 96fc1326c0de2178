package parse

import "strings"

// SplitLine tokenizes one line of delimited text into trimmed field values.
// It runs a single left-to-right scan with a quote flag: a double quote
// toggles quoting, a doubled quote inside a quoted field emits one literal
// quote, and the separator only ends a field outside quotes. An unterminated
// quote is tolerated; the scan just flushes whatever accumulated at end of
// line. Embedded newlines are out of scope here, the caller splits lines
// first.
func SplitLine(line string, sep rune) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				current.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == sep && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}

// WriteRow is the inverse of SplitLine: it joins field values with the
// separator, quoting any value containing the separator, a quote, or a line
// break, with doubled-quote escaping. Used when exporting a filtered view.
func WriteRow(fields []string, sep rune) string {
	parts := make([]string, len(fields))
	for i, field := range fields {
		if strings.ContainsAny(field, string(sep)+"\"\r\n") {
			parts[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
		} else {
			parts[i] = field
		}
	}
	return strings.Join(parts, string(sep))
}
