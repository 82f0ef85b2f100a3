package entity

import "time"

// Metode pembayaran kasir.
const (
	PaymentCash   = "CASH"
	PaymentDebit  = "DEBIT"
	PaymentCredit = "CREDIT"
)

// SaleItem adalah satu baris keranjang: snapshot nama dan harga produk pada
// saat transaksi. Total = Quantity * Price.
type SaleItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
	Total     int64  `json:"total"`
}

// Sale adalah transaksi kasir yang sudah selesai. Immutable setelah dibuat.
// Total = Subtotal + Tax; Tax = PPN atas Subtotal.
type Sale struct {
	ID            string     `json:"id"`
	Timestamp     time.Time  `json:"timestamp"`
	Items         []SaleItem `json:"items"`
	Subtotal      int64      `json:"subtotal"`
	Tax           int64      `json:"tax"`
	Total         int64      `json:"total"`
	PaymentMethod string     `json:"paymentMethod"`
}
