// Package catalog berisi pengelolaan master produk. Atribut produk bisa
// diedit bebas; STOK tidak — stok hanya bergerak lewat usecase inventory.
package catalog

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

// UseCase pengelola master produk.
type UseCase struct {
	txRunner    repository.TxRunner
	productRepo repository.ProductRepository
}

// NewUseCase membangun pengelola produk.
func NewUseCase(txRunner repository.TxRunner, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{txRunner: txRunner, productRepo: productRepo}
}

// Create mendaftarkan produk baru. SKU harus unik di seluruh katalog.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, fmt.Errorf("%w: nama dan SKU wajib diisi", domain.ErrInvalidInput)
	}
	if in.Price < 0 || in.Cost < 0 || in.Stock < 0 {
		return nil, fmt.Errorf("%w: harga, biaya, dan stok tidak boleh negatif", domain.ErrInvalidInput)
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		SKU:       in.SKU,
		Price:     in.Price,
		Cost:      in.Cost,
		Stock:     in.Stock,
		Category:  in.Category,
		Image:     in.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		existing, err := tx.Products().GetBySKU(in.SKU)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: SKU %s sudah terdaftar", domain.ErrDuplicate, in.SKU)
		}
		return tx.Products().Create(product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Update mengubah atribut produk. Stok sengaja dipertahankan dari record
// lama: perubahan stok punya jalurnya sendiri supaya selalu berjejak.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: nama wajib diisi", domain.ErrInvalidInput)
	}
	if in.Price < 0 || in.Cost < 0 {
		return nil, fmt.Errorf("%w: harga dan biaya tidak boleh negatif", domain.ErrInvalidInput)
	}

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		product, err := tx.Products().GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: produk %s", domain.ErrNotFound, id)
		}
		product.Name = in.Name
		product.Price = in.Price
		product.Cost = in.Cost
		product.Category = in.Category
		product.Image = in.Image
		product.UpdatedAt = time.Now()
		if err := tx.Products().Update(product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetByID mengambil satu produk.
func (uc *UseCase) GetByID(_ context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: produk %s", domain.ErrNotFound, id)
	}
	return product, nil
}

// List mengembalikan seluruh katalog.
func (uc *UseCase) List(_ context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List()
}

// LowStock mengembalikan produk dengan stok di bawah ambang.
func (uc *UseCase) LowStock(_ context.Context, threshold int) ([]*entity.Product, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	low := make([]*entity.Product, 0)
	for _, p := range products {
		if p.Stock < threshold {
			low = append(low, p)
		}
	}
	return low, nil
}
