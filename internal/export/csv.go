// Package export renders campaign data as spreadsheet files.
package export

import (
	"fmt"
	"strings"
)

// BOM is prepended so spreadsheet tools read the file as UTF-8.
const BOM = "\uFEFF"

// EscapeValue renders one cell. nil becomes "". A value containing a
// comma, a double quote or a line feed is wrapped in quotes with inner
// quotes doubled; anything else is written as is. Carriage returns and
// leading spaces are deliberately not quoted: downstream sheets were
// built against this exact rule.
func EscapeValue(v any) string {
	var s string
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		s = t
	case *string:
		if t == nil {
			return ""
		}
		s = *t
	case *int:
		if t == nil {
			return ""
		}
		s = fmt.Sprint(*t)
	default:
		s = fmt.Sprint(t)
	}
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// FormatCSV joins cells with commas and rows with "\n", with no trailing
// newline, and prefixes the BOM.
func FormatCSV(rows [][]any) []byte {
	var b strings.Builder
	b.WriteString(BOM)
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(EscapeValue(cell))
		}
	}
	return []byte(b.String())
}
