// Package money berisi aritmetika uang murni. Seluruh nominal adalah Rupiah
// utuh (int64); decimal hanya dipakai untuk perkalian tarif agar bebas dari
// drift pecahan biner.
package money

import "github.com/shopspring/decimal"

// TaxRate tarif PPN Indonesia (11%).
var TaxRate = decimal.NewFromInt(11).Div(decimal.NewFromInt(100))

// Tax menghitung PPN atas subtotal, dibulatkan ke Rupiah terdekat.
func Tax(subtotal int64) int64 {
	return decimal.NewFromInt(subtotal).Mul(TaxRate).Round(0).IntPart()
}

// SaleTotals menghitung subtotal, pajak, dan total dari nilai baris keranjang.
// total = subtotal + pajak.
func SaleTotals(lineTotals []int64) (subtotal, tax, total int64) {
	for _, t := range lineTotals {
		subtotal += t
	}
	tax = Tax(subtotal)
	return subtotal, tax, subtotal + tax
}
