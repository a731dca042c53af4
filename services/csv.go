package services

import (
	"strings"
)

// ParseCSVLine splits one line of CSV text into trimmed fields. A double
// quote toggles quoted mode; commas split only outside quotes. The final
// field is always emitted, so a line with no commas yields one field.
//
// Known limitations, kept deliberately: no `""` unescaping inside quoted
// fields, and literal newlines inside fields are not supported.
func ParseCSVLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}

// CleanCSVField strips at most one leading and one trailing literal quote
// and trims surrounding whitespace. Not a general unescape.
func CleanCSVField(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.TrimSpace(s)
}

// BuildCSVTemplate joins a header row and one example row into the
// two-line template blob offered for download.
func BuildCSVTemplate(header, example []string) string {
	return strings.Join(header, ",") + "\n" + strings.Join(example, ",")
}

// ItineraryTemplate is the downloadable activity-import template.
func ItineraryTemplate() (filename, content string) {
	header := []string{"Date", "Time", "Title", "Description", "Type", "Cost", "Address"}
	example := []string{"2023-10-25", "10:00", "Kyoto Imperial Palace", "Historical site visit", "Sightseeing", "0", `"3 Kyotogyoen, Kamigyo Ward, Kyoto"`}
	return ItineraryTemplateFilename, BuildCSVTemplate(header, example)
}

// WalletTemplate is the downloadable ticket-import template.
func WalletTemplate() (filename, content string) {
	header := []string{"Type", "Title", "Date", "Details", "Notes"}
	example := []string{"Hotel", "Ace Hotel Kyoto", "Oct 24 - Oct 28", "Standard King", "Check-in 3PM"}
	return WalletTemplateFilename, BuildCSVTemplate(header, example)
}
