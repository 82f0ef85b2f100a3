package repository

import "github.com/bcrcell/bcr-erp/internal/domain/entity"

// ProductRepository adalah port persistensi untuk Product (DIP).
// GetByID mengembalikan (nil, nil) bila produk tidak ada.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List() ([]*entity.Product, error)
}
