package repository

import "github.com/bcrcell/bcr-erp/internal/domain/entity"

// SaleRepository adalah port persistensi untuk transaksi kasir.
// Koleksi append-only: tidak ada update ataupun delete.
type SaleRepository interface {
	Append(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List() ([]*entity.Sale, error)
}
