package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcrcell/bcr-erp/internal/application/catalog"
	"github.com/bcrcell/bcr-erp/internal/application/dto"
	"github.com/bcrcell/bcr-erp/internal/domain"
	"github.com/bcrcell/bcr-erp/internal/infrastructure/localstore"
	"github.com/bcrcell/bcr-erp/pkg/logger"
)

func newFixture(t *testing.T) *catalog.UseCase {
	t.Helper()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	store, err := localstore.Open(":memory:", log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return catalog.NewUseCase(localstore.NewTxRunner(store), store.Products())
}

func TestCreate_ProdukBaru(t *testing.T) {
	uc := newFixture(t)

	p, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Tempered Glass", SKU: "AC-001", Price: 35000, Cost: 10000, Stock: 25, Category: "Accessory",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 25, p.Stock)

	got, err := uc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tempered Glass", got.Name)
}

func TestCreate_SKUDuplikatDitolak(t *testing.T) {
	uc := newFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Tempered Glass", SKU: "AC-001", Price: 35000,
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Tempered Glass Lain", SKU: "AC-001", Price: 40000,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_Validasi(t *testing.T) {
	uc := newFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{SKU: "AC-002"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nama kosong ditolak")

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Name: "X", SKU: "AC-003", Price: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "harga negatif ditolak")
}

func TestUpdate_StokTidakTersentuh(t *testing.T) {
	uc := newFixture(t)

	p, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Tempered Glass", SKU: "AC-001", Price: 35000, Stock: 25,
	})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), p.ID, dto.UpdateProductRequest{
		Name: "Tempered Glass Premium", Price: 45000, Cost: 15000, Category: "Accessory",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tempered Glass Premium", updated.Name)
	assert.Equal(t, int64(45000), updated.Price)
	assert.Equal(t, 25, updated.Stock, "edit atribut tidak boleh mengubah stok")
}

func TestUpdate_TidakAda(t *testing.T) {
	uc := newFixture(t)
	_, err := uc.Update(context.Background(), "hantu", dto.UpdateProductRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLowStock(t *testing.T) {
	uc := newFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Stok Tipis", SKU: "AC-009", Price: 1000, Stock: 3,
	})
	require.NoError(t, err)

	// Katalog semaian stoknya 50/30/20/40: hanya produk baru yang di bawah 10.
	low, err := uc.LowStock(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Stok Tipis", low[0].Name)
}
