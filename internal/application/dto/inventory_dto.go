package dto

// AdjustStockRequest satu operasi mutasi stok manual.
// Untuk IN/OUT, Quantity adalah banyaknya barang; untuk ADJUSTMENT,
// Quantity adalah nilai stok absolut yang dituju.
type AdjustStockRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"` // IN, OUT, ADJUSTMENT
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
}
