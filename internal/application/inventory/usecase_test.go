package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcrcell/bcr-erp/internal/application/dto"
	"github.com/bcrcell/bcr-erp/internal/application/inventory"
	"github.com/bcrcell/bcr-erp/internal/domain"
	"github.com/bcrcell/bcr-erp/internal/domain/entity"
	"github.com/bcrcell/bcr-erp/internal/domain/repository"
	"github.com/bcrcell/bcr-erp/internal/infrastructure/localstore"
	"github.com/bcrcell/bcr-erp/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newFixture(t *testing.T) (*localstore.Store, *inventory.UseCase) {
	t.Helper()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	store, err := localstore.Open(":memory:", log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	txRunner := localstore.NewTxRunner(store)
	return store, inventory.NewUseCase(txRunner, store.StockLogs())
}

func seedProduct(t *testing.T, store *localstore.Store, stock int) *entity.Product {
	t.Helper()
	now := time.Now()
	p := &entity.Product{
		ID:        uuid.New().String(),
		Name:      "LCD iPhone 11",
		SKU:       "SP-" + uuid.New().String()[:8],
		Price:     350000,
		Cost:      250000,
		Stock:     stock,
		Category:  "Sparepart",
		CreatedAt: now,
		UpdatedAt: now,
	}
	txRunner := localstore.NewTxRunner(store)
	require.NoError(t, txRunner.Run(context.Background(), func(tx repository.Tx) error {
		return tx.Products().Create(p)
	}))
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Semantik IN / OUT / ADJUSTMENT
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterAdjustment_INMenambahStok(t *testing.T) {
	store, uc := newFixture(t)
	p := seedProduct(t, store, 10)

	updated, err := uc.RegisterAdjustment(context.Background(), dto.AdjustStockRequest{
		ProductID: p.ID, Type: entity.StockIn, Quantity: 5, Reason: "Pembelian",
	})
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Stock)

	logs, err := uc.Logs(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.StockIn, logs[0].Type)
	assert.Equal(t, 5, logs[0].Quantity)
	assert.Equal(t, "Pembelian", logs[0].Reason)
}

func TestRegisterAdjustment_OUTMelebihiStokDiClampNol(t *testing.T) {
	store, uc := newFixture(t)
	p := seedProduct(t, store, 3)

	// OUT 5 dari stok 3: tidak ditolak, hasil di-clamp ke 0,
	// log tetap mencatat magnitudo yang diminta (5).
	updated, err := uc.RegisterAdjustment(context.Background(), dto.AdjustStockRequest{
		ProductID: p.ID, Type: entity.StockOut, Quantity: 5, Reason: "Barang rusak",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Stock)

	logs, err := uc.Logs(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 5, logs[0].Quantity, "log mencatat quantity yang diminta, bukan hasil clamp")
}

func TestRegisterAdjustment_ADJUSTMENTTargetAbsolut(t *testing.T) {
	store, uc := newFixture(t)
	p := seedProduct(t, store, 50)

	updated, err := uc.RegisterAdjustment(context.Background(), dto.AdjustStockRequest{
		ProductID: p.ID, Type: entity.StockAdjustment, Quantity: 40, Reason: "Stock opname",
	})
	require.NoError(t, err)
	assert.Equal(t, 40, updated.Stock)

	logs, err := uc.Logs(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.StockAdjustment, logs[0].Type)
	assert.Equal(t, 10, logs[0].Quantity, "log ADJUSTMENT = |target - stok lama|")
}

func TestRegisterAdjustment_ADJUSTMENTNaik(t *testing.T) {
	store, uc := newFixture(t)
	p := seedProduct(t, store, 8)

	updated, err := uc.RegisterAdjustment(context.Background(), dto.AdjustStockRequest{
		ProductID: p.ID, Type: entity.StockAdjustment, Quantity: 20, Reason: "Stock opname",
	})
	require.NoError(t, err)
	assert.Equal(t, 20, updated.Stock)

	logs, _ := uc.Logs(context.Background(), p.ID)
	require.Len(t, logs, 1)
	assert.Equal(t, 12, logs[0].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validasi
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterAdjustment_Validasi(t *testing.T) {
	store, uc := newFixture(t)
	p := seedProduct(t, store, 10)

	cases := []struct {
		name string
		in   dto.AdjustStockRequest
	}{
		{"IN quantity nol", dto.AdjustStockRequest{ProductID: p.ID, Type: entity.StockIn, Quantity: 0}},
		{"OUT quantity negatif", dto.AdjustStockRequest{ProductID: p.ID, Type: entity.StockOut, Quantity: -2}},
		{"ADJUSTMENT target negatif", dto.AdjustStockRequest{ProductID: p.ID, Type: entity.StockAdjustment, Quantity: -1}},
		{"jenis tak dikenal", dto.AdjustStockRequest{ProductID: p.ID, Type: "TRANSFER", Quantity: 1}},
		{"tanpa produk", dto.AdjustStockRequest{Type: entity.StockIn, Quantity: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegisterAdjustment(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	// Mutasi yang ditolak tidak boleh meninggalkan log.
	logs, err := uc.Logs(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestRegisterAdjustment_ProdukTidakAda(t *testing.T) {
	_, uc := newFixture(t)
	_, err := uc.RegisterAdjustment(context.Background(), dto.AdjustStockRequest{
		ProductID: "tidak-ada", Type: entity.StockIn, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
