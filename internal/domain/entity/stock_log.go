package entity

import "time"

// Jenis mutasi stok.
const (
	StockIn         = "IN"         // barang masuk
	StockOut        = "OUT"        // barang keluar (penjualan, suku cadang service)
	StockAdjustment = "ADJUSTMENT" // koreksi ke nilai absolut
)

// StockLog adalah catatan audit satu mutasi stok. Immutable setelah dibuat;
// koleksinya append-only. Quantity selalu magnitudo non-negatif: untuk
// ADJUSTMENT dicatat |target - stok lama|.
type StockLog struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"` // IN, OUT, ADJUSTMENT
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
}
