package writer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ReportSuffix follows the sanitized customer name in every report file name.
const ReportSuffix = " Monthly Dividend Report.xlsx"

// SanitizeName keeps letters, numbers, spaces, periods and underscores, then trims
// trailing whitespace. Input is NFC-normalized first so accented letters survive
// as single runes.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range norm.NFC.String(name) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == ' ' || r == '.' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}

// FileName returns the report file name for a customer.
func FileName(customer string) string {
	return SanitizeName(customer) + ReportSuffix
}
