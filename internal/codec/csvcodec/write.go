package csvcodec

import "strings"

// Escape quotes a field, doubling embedded quotes. Empty fields become "".
func Escape(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// EncodeRow joins escaped fields with commas.
func EncodeRow(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = Escape(f)
	}
	return strings.Join(escaped, ",")
}

// Encode renders a document: the bare header line followed by rows with
// every field quoted, separated by '\n'.
func Encode(rows [][]string) []byte {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(Header, ","))
	for _, r := range rows {
		lines = append(lines, EncodeRow(r))
	}
	return []byte(strings.Join(lines, "\n"))
}
