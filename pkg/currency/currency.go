// Package currency memformat Rupiah untuk laporan dan prompt asisten AI.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatIDR memformat nominal Rupiah utuh dengan pemisah ribuan lokal
// Indonesia, mis. 83250 -> "Rp 83.250".
func FormatIDR(amount int64) string {
	return printer.Sprintf("Rp %d", amount)
}
