package entity

import "time"

// Akun buku besar.
const (
	AccountKas              = "KAS"               // kas
	AccountPenjualan        = "PENJUALAN"         // pendapatan penjualan (termasuk suku cadang service)
	AccountHutangPajak      = "HUTANG_PAJAK"      // hutang PPN
	AccountPendapatanJasa   = "PENDAPATAN_JASA"   // pendapatan jasa service
	AccountBebanOperasional = "BEBAN_OPERASIONAL" // beban operasional
)

// LedgerEntry adalah satu baris jurnal: debit ATAU kredit terhadap satu akun
// (tidak pernah keduanya sekaligus). Buku besar append-only; koreksi dicatat
// sebagai jurnal balik, tidak pernah mengedit atau menghapus baris lama.
type LedgerEntry struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	Debit       int64     `json:"debit"`
	Credit      int64     `json:"credit"`
	Account     string    `json:"account"`
}
