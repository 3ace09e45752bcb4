package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Format renders an amount stored in minor units (cents) as a grouped
// US-dollar string, e.g. 150000 -> "$1,500.00".
func Format(cents int64) string {
	return printer.Sprintf("$%.2f", float64(cents)/100)
}

// FormatPtr treats a missing amount as zero. Aggregate sums over empty
// sets come back as NULL from the database.
func FormatPtr(cents *int64) string {
	if cents == nil {
		return Format(0)
	}
	return Format(*cents)
}
