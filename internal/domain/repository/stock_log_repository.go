package repository

import "github.com/bcrcell/bcr-erp/internal/domain/entity"

// StockLogRepository adalah port persistensi untuk log mutasi stok
// (append-only, jejak audit).
type StockLogRepository interface {
	Append(log *entity.StockLog) error
	ListByProduct(productID string) ([]*entity.StockLog, error)
	List() ([]*entity.StockLog, error)
}
