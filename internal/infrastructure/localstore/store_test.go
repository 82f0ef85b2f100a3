package localstore_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcrcell/bcr-erp/internal/domain/entity"
	"github.com/bcrcell/bcr-erp/internal/domain/repository"
	"github.com/bcrcell/bcr-erp/internal/infrastructure/localstore"
	"github.com/bcrcell/bcr-erp/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Semai dan persistensi
// ──────────────────────────────────────────────────────────────────────────────

func TestOpen_MenyemaiKatalogAwal(t *testing.T) {
	store, err := localstore.Open(":memory:", testLogger())
	require.NoError(t, err)
	defer store.Close()

	products, err := store.Products().List()
	require.NoError(t, err)
	require.Len(t, products, 4)

	bySKU := map[string]*entity.Product{}
	for _, p := range products {
		bySKU[p.SKU] = p
	}
	require.Contains(t, bySKU, "CF-001")
	assert.Equal(t, "Kopi Susu Gula Aren", bySKU["CF-001"].Name)
	assert.Equal(t, int64(25000), bySKU["CF-001"].Price)
	assert.Equal(t, 50, bySKU["CF-001"].Stock)
	require.Contains(t, bySKU, "FD-002")
	assert.Equal(t, "Kentang Goreng", bySKU["FD-002"].Name)
	assert.Equal(t, 40, bySKU["FD-002"].Stock)
}

func TestOpen_SnapshotBertahanAntarSesi(t *testing.T) {
	path := filepath.Join(t.TempDir(), "erp.db")

	store, err := localstore.Open(path, testLogger())
	require.NoError(t, err)

	txr := localstore.NewTxRunner(store)
	saleID := uuid.New().String()
	require.NoError(t, txr.Run(context.Background(), func(tx repository.Tx) error {
		return tx.Sales().Append(&entity.Sale{
			ID: saleID, Timestamp: time.Now(), Total: 83250, Subtotal: 75000, Tax: 8250,
			PaymentMethod: entity.PaymentCash,
		})
	}))
	require.NoError(t, store.Close())

	// Sesi kedua membaca snapshot committed sesi pertama.
	reopened, err := localstore.Open(path, testLogger())
	require.NoError(t, err)
	defer reopened.Close()

	salesList, err := reopened.Sales().List()
	require.NoError(t, err)
	require.Len(t, salesList, 1)
	assert.Equal(t, saleID, salesList[0].ID)
	assert.Equal(t, int64(83250), salesList[0].Total)

	products, _ := reopened.Products().List()
	assert.Len(t, products, 4, "katalog tidak disemai ulang bila sudah terisi")
}

// Snapshot korup tidak melumpuhkan startup: koleksi itu di-reset kosong
// (katalog produk disemai ulang), koleksi lain tetap dimuat.
func TestOpen_SnapshotKorupDiResetKosong(t *testing.T) {
	path := filepath.Join(t.TempDir(), "erp.db")

	store, err := localstore.Open(path, testLogger())
	require.NoError(t, err)
	txr := localstore.NewTxRunner(store)
	require.NoError(t, txr.Run(context.Background(), func(tx repository.Tx) error {
		return tx.Expenses().Append(&entity.Expense{
			ID: "exp-1", Timestamp: time.Now(), Description: "Sewa", Amount: 1000,
			Category: entity.ExpenseRent,
		})
	}))
	require.NoError(t, store.Close())

	// Rusak dua kunci langsung di berkas SQLite.
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE kv SET value = '{bukan json' WHERE key IN ('erp_products', 'erp_sales')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened, err := localstore.Open(path, testLogger())
	require.NoError(t, err)
	defer reopened.Close()

	products, _ := reopened.Products().List()
	assert.Len(t, products, 4, "katalog korup disemai ulang")
	salesList, _ := reopened.Sales().List()
	assert.Empty(t, salesList)
	expenses, _ := reopened.Expenses().List()
	assert.Len(t, expenses, 1, "koleksi sehat tetap dimuat")
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomisitas TxRunner
// ──────────────────────────────────────────────────────────────────────────────

func TestTxRunner_ErrorMembatalkanSeluruhMutasi(t *testing.T) {
	store, err := localstore.Open(":memory:", testLogger())
	require.NoError(t, err)
	defer store.Close()

	txr := localstore.NewTxRunner(store)
	boom := errors.New("meledak di tengah")

	err = txr.Run(context.Background(), func(tx repository.Tx) error {
		products, _ := tx.Products().List()
		p := products[0]
		p.Stock = 0
		if uerr := tx.Products().Update(p); uerr != nil {
			return uerr
		}
		if aerr := tx.Ledger().Append(&entity.LedgerEntry{
			ID: uuid.New().String(), Timestamp: time.Now(), Account: entity.AccountKas, Debit: 1,
		}); aerr != nil {
			return aerr
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Seluruh mutasi di dalam callback dibuang, termasuk yang sudah "berhasil".
	products, _ := store.Products().List()
	assert.Equal(t, 50, products[0].Stock)
	entries, _ := store.Ledger().List()
	assert.Empty(t, entries)
}

func TestTxRunner_MutasiTerlihatSetelahCommit(t *testing.T) {
	store, err := localstore.Open(":memory:", testLogger())
	require.NoError(t, err)
	defer store.Close()

	txr := localstore.NewTxRunner(store)
	require.NoError(t, txr.Run(context.Background(), func(tx repository.Tx) error {
		return tx.Customers().Create(&entity.Customer{
			ID: "cust-1", Name: "Siti", Phone: "0812", CreatedAt: time.Now(),
		})
	}))

	customersList, err := store.Customers().List()
	require.NoError(t, err)
	require.Len(t, customersList, 1)
	assert.Equal(t, "Siti", customersList[0].Name)
}

func TestTxRunner_KonteksBatal(t *testing.T) {
	store, err := localstore.Open(":memory:", testLogger())
	require.NoError(t, err)
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	txr := localstore.NewTxRunner(store)
	err = txr.Run(ctx, func(tx repository.Tx) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
