// Package inventory berisi motor mutasi stok: satu operasi mengubah stok
// tepat satu produk dan menulis tepat satu StockLog, sebagai satu unit atomik.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bcrcell/bcr-erp/internal/application/dto"
	"github.com/bcrcell/bcr-erp/internal/domain"
	"github.com/bcrcell/bcr-erp/internal/domain/entity"
	"github.com/bcrcell/bcr-erp/internal/domain/repository"
)

// UseCase motor mutasi stok (IN/OUT/ADJUSTMENT).
type UseCase struct {
	txRunner repository.TxRunner
	logRepo  repository.StockLogRepository
}

// NewUseCase membangun motor mutasi stok. logRepo dipakai untuk baca jejak
// audit di luar transaksi.
func NewUseCase(txRunner repository.TxRunner, logRepo repository.StockLogRepository) *UseCase {
	return &UseCase{txRunner: txRunner, logRepo: logRepo}
}

// RegisterAdjustment memvalidasi lalu menjalankan satu mutasi stok manual
// sebagai unit atomik sendiri. Mengembalikan produk setelah mutasi.
func (uc *UseCase) RegisterAdjustment(ctx context.Context, in dto.AdjustStockRequest) (*entity.Product, error) {
	switch in.Type {
	case entity.StockIn, entity.StockOut:
		if in.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity harus > 0 untuk %s", domain.ErrInvalidInput, in.Type)
		}
	case entity.StockAdjustment:
		if in.Quantity < 0 {
			return nil, fmt.Errorf("%w: target stok tidak boleh negatif", domain.ErrInvalidInput)
		}
	default:
		return nil, fmt.Errorf("%w: jenis mutasi %q tak dikenal", domain.ErrInvalidInput, in.Type)
	}
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		var err error
		updated, _, err = uc.AdjustInTx(tx, in.ProductID, in.Type, in.Quantity, in.Reason, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AdjustInTx menjalankan satu mutasi stok memakai repositori milik transaksi
// pemanggil (dipakai kasir dan service di dalam unit atomik mereka sendiri).
//
// Semantik per jenis:
//   - IN:  stok += qty, log = qty.
//   - OUT: stok -= qty, log = qty (magnitudo yang DIMINTA, bukan hasil clamp).
//   - ADJUSTMENT: qty adalah nilai stok absolut yang dituju;
//     log = |qty - stok lama|, stok = qty.
//
// Stok hasil selalu di-clamp ke >= 0; OUT melebihi stok tidak ditolak
// (kebijakan permisif yang dipertahankan dari perilaku asli).
func (uc *UseCase) AdjustInTx(
	tx repository.Tx,
	productID, adjustType string,
	qty int,
	reason string,
	now time.Time,
) (*entity.Product, *entity.StockLog, error) {
	product, err := tx.Products().GetByID(productID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, fmt.Errorf("%w: produk %s", domain.ErrNotFound, productID)
	}

	newStock := product.Stock
	logQty := qty
	switch adjustType {
	case entity.StockIn:
		newStock += qty
	case entity.StockOut:
		newStock -= qty
	case entity.StockAdjustment:
		logQty = qty - product.Stock
		newStock = qty
	default:
		return nil, nil, fmt.Errorf("%w: jenis mutasi %q tak dikenal", domain.ErrInvalidInput, adjustType)
	}
	if newStock < 0 {
		newStock = 0
	}
	if logQty < 0 {
		logQty = -logQty
	}

	product.Stock = newStock
	product.UpdatedAt = now
	if err := tx.Products().Update(product); err != nil {
		return nil, nil, err
	}

	log := &entity.StockLog{
		ID:        uuid.New().String(),
		ProductID: productID,
		Timestamp: now,
		Type:      adjustType,
		Quantity:  logQty,
		Reason:    reason,
	}
	if err := tx.StockLogs().Append(log); err != nil {
		return nil, nil, err
	}
	return product, log, nil
}

// Logs mengembalikan jejak audit stok, seluruhnya atau per produk.
func (uc *UseCase) Logs(_ context.Context, productID string) ([]*entity.StockLog, error) {
	if productID != "" {
		return uc.logRepo.ListByProduct(productID)
	}
	return uc.logRepo.List()
}
