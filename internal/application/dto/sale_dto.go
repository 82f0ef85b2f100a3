package dto

// CheckoutItem satu baris keranjang kasir.
type CheckoutItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest keranjang yang akan diselesaikan menjadi transaksi.
// Harga dan nama diambil dari katalog saat checkout, bukan dari klien.
type CheckoutRequest struct {
	Items         []CheckoutItem `json:"items"`
	PaymentMethod string         `json:"payment_method"`
}
