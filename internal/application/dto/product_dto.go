package dto

// CreateProductRequest data produk baru. Stock adalah stok awal.
type CreateProductRequest struct {
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Price    int64  `json:"price"`
	Cost     int64  `json:"cost"`
	Stock    int    `json:"stock"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// UpdateProductRequest edit atribut produk. Stok TIDAK ikut di sini;
// perubahan stok hanya lewat operasi mutasi stok agar jejak auditnya utuh.
type UpdateProductRequest struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Cost     int64  `json:"cost"`
	Category string `json:"category"`
	Image    string `json:"image"`
}
