// Package customers berisi buku pelanggan service.
package customers

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

// UseCase pengelola pelanggan.
type UseCase struct {
	txRunner     repository.TxRunner
	customerRepo repository.CustomerRepository
}

// NewUseCase membangun pengelola pelanggan.
func NewUseCase(txRunner repository.TxRunner, customerRepo repository.CustomerRepository) *UseCase {
	return &UseCase{txRunner: txRunner, customerRepo: customerRepo}
}

// Create mendaftarkan pelanggan baru.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*entity.Customer, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, fmt.Errorf("%w: nama dan nomor telepon wajib diisi", domain.ErrInvalidInput)
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: time.Now(),
	}
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		return tx.Customers().Create(customer)
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete menghapus pelanggan dari buku. Riwayat service pelanggan tidak ikut
// terhapus; tiket menyimpan nama dan telepon sebagai salinan.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		customer, err := tx.Customers().GetByID(id)
		if err != nil {
			return err
		}
		if customer == nil {
			return fmt.Errorf("%w: pelanggan %s", domain.ErrNotFound, id)
		}
		return tx.Customers().Delete(id)
	})
}

// List mengembalikan seluruh pelanggan.
func (uc *UseCase) List(_ context.Context) ([]*entity.Customer, error) {
	return uc.customerRepo.List()
}
