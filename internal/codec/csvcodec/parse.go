// Package csvcodec reads and writes the catalogue CSV exchange format.
//
// The format is looser than RFC 4180 on input (a lone '\r' ends a record,
// blank lines are dropped, quotes may open mid-field) and stricter on
// output (every field is quoted), so encoding/csv is not used.
package csvcodec

import "strings"

// Header is the column order shared by contribution exports, bulk imports
// and the template.
var Header = []string{"Title", "Description", "URL", "Contributor", "Category", "SubCategory"}

const (
	colTitle = iota
	colDescription
	colURL
	colContributor
	colCategory
	colSubCategory
)

// Parse splits text into records.
//
// Inside quotes, "" is a literal quote and commas and line breaks are kept.
// Outside quotes, '\n', '\r\n' and a lone '\r' end a record. A record made
// of a single empty field (a blank line) is dropped.
func Parse(text string) [][]string {
	var (
		rows     [][]string
		row      []string
		cell     strings.Builder
		inQuotes bool
	)

	flush := func() {
		if cell.Len() > 0 || len(row) > 0 {
			rows = append(rows, append(row, cell.String()))
		}
		row = nil
		cell.Reset()
	}

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inQuotes {
			switch {
			case c == '"' && i+1 < len(text) && text[i+1] == '"':
				cell.WriteByte('"')
				i++
			case c == '"':
				inQuotes = false
			default:
				cell.WriteByte(c)
			}
			continue
		}

		switch c {
		case '"':
			inQuotes = true
		case ',':
			row = append(row, cell.String())
			cell.Reset()
		case '\r', '\n':
			flush()
			if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
		default:
			cell.WriteByte(c)
		}
	}
	flush()

	return rows
}

func field(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}
