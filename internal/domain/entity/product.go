package entity

import "time"

// Product merepresentasikan produk/SKU pada inventaris toko.
// Harga dan biaya dalam Rupiah utuh (tanpa sen). Stock hanya boleh berubah
// lewat operasi stok (IN/OUT/ADJUSTMENT); edit atribut tidak menyentuh stok.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Price     int64     `json:"price"`
	Cost      int64     `json:"cost"`
	Stock     int       `json:"stock"`
	Category  string    `json:"category"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
