// Package localstore adalah lapisan persistensi snapshot: seluruh koleksi
// dipegang di memori dan dipetakan ke tabel key-value SQLite, satu kunci per
// koleksi dengan nilai JSON. Setiap commit menulis ulang snapshot koleksi
// yang berubah; pembaca selalu melihat snapshot committed terakhir.
package localstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/bcrcell/bcr-erp/internal/domain/entity"
	"github.com/bcrcell/bcr-erp/pkg/logger"
)

// Kunci snapshot per koleksi.
const (
	keyProducts  = "erp_products"
	keySales     = "erp_sales"
	keyServices  = "erp_services"
	keyExpenses  = "erp_expenses"
	keyStockLogs = "erp_stock_logs"
	keyLedger    = "erp_ledger"
	keyCustomers = "erp_customers"
)

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// dataset adalah satu snapshot lengkap seluruh koleksi.
type dataset struct {
	Products  []*entity.Product
	Sales     []*entity.Sale
	Services  []*entity.ServiceRecord
	Expenses  []*entity.Expense
	StockLogs []*entity.StockLog
	Ledger    []*entity.LedgerEntry
	Customers []*entity.Customer
}

// Store memegang snapshot committed terakhir dan koneksi SQLite di baliknya.
// Satu penulis pada satu waktu; pembaca paralel membaca snapshot committed.
type Store struct {
	db   *sql.DB
	log  *logger.Logger
	mu   sync.RWMutex
	data *dataset
}

// Open membuka (atau membuat) berkas store, memuat seluruh snapshot, dan
// menyemai katalog awal bila katalog produk masih kosong. Snapshot yang
// korup tidak menggagalkan startup: koleksi itu di-reset kosong dengan
// peringatan di log.
func Open(path string, log *logger.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("buka store %s: %w", path, err)
	}
	// Snapshot store: satu penulis, rewrite penuh per commit.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("siapkan skema kv: %w", err)
	}

	s := &Store{db: db, log: log, data: &dataset{}}
	s.loadAll()

	if len(s.data.Products) == 0 {
		s.data.Products = seedProducts()
		if err := s.persist(s.data); err != nil {
			db.Close()
			return nil, fmt.Errorf("tulis katalog awal: %w", err)
		}
		log.Info().Int("jumlah", len(s.data.Products)).Msg("katalog produk disemai")
	}
	return s, nil
}

// Close menutup koneksi SQLite.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) loadAll() {
	loadKey(s, keyProducts, &s.data.Products)
	loadKey(s, keySales, &s.data.Sales)
	loadKey(s, keyServices, &s.data.Services)
	loadKey(s, keyExpenses, &s.data.Expenses)
	loadKey(s, keyStockLogs, &s.data.StockLogs)
	loadKey(s, keyLedger, &s.data.Ledger)
	loadKey(s, keyCustomers, &s.data.Customers)
}

// loadKey memuat satu koleksi dari tabel kv. Kunci tidak ada berarti koleksi
// kosong; JSON korup berarti koleksi kosong plus peringatan, agar satu entri
// rusak tidak melumpuhkan aplikasi.
func loadKey[T any](s *Store, key string, dst *[]T) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("baca snapshot gagal, koleksi di-reset kosong")
		return
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("snapshot korup, koleksi di-reset kosong")
		*dst = nil
	}
}

// persist menulis ulang seluruh snapshot dalam satu transaksi SQLite.
func (s *Store) persist(d *dataset) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("mulai transaksi kv: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	pairs := []struct {
		key string
		val any
	}{
		{keyProducts, d.Products},
		{keySales, d.Sales},
		{keyServices, d.Services},
		{keyExpenses, d.Expenses},
		{keyStockLogs, d.StockLogs},
		{keyLedger, d.Ledger},
		{keyCustomers, d.Customers},
	}
	for _, p := range pairs {
		raw, err := json.Marshal(p.val)
		if err != nil {
			return fmt.Errorf("serialisasi %s: %w", p.key, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO kv(key, value) VALUES(?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			p.key, string(raw),
		); err != nil {
			return fmt.Errorf("tulis %s: %w", p.key, err)
		}
	}
	return tx.Commit()
}

// view menjalankan fn atas snapshot committed di bawah read-lock.
func (s *Store) view(fn func(d *dataset) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.data)
}

// update menjalankan fn atas salinan kerja snapshot. Bila fn dan persist
// sukses, salinan dipromosikan jadi snapshot committed; bila ada yang gagal,
// salinan dibuang dan snapshot committed tidak tersentuh sama sekali.
func (s *Store) update(fn func(d *dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work, err := s.data.clone()
	if err != nil {
		return err
	}
	if err := fn(work); err != nil {
		return err
	}
	if err := s.persist(work); err != nil {
		return err
	}
	s.data = work
	return nil
}

// clone menggandakan snapshot lewat JSON round-trip. Entitasnya pohon data
// murni, jadi round-trip sudah deep copy yang tepat.
func (d *dataset) clone() (*dataset, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("gandakan snapshot: %w", err)
	}
	out := &dataset{}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("gandakan snapshot: %w", err)
	}
	return out, nil
}

// seedProducts katalog awal saat store masih kosong.
func seedProducts() []*entity.Product {
	now := time.Now()
	mk := func(name, sku string, price, cost int64, stock int, category string) *entity.Product {
		return &entity.Product{
			ID:        uuid.New().String(),
			Name:      name,
			SKU:       sku,
			Price:     price,
			Cost:      cost,
			Stock:     stock,
			Category:  category,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	return []*entity.Product{
		mk("Kopi Susu Gula Aren", "CF-001", 25000, 12000, 50, "Beverage"),
		mk("Roti Bakar Coklat", "FD-001", 18000, 8000, 30, "Food"),
		mk("Matcha Latte", "CF-002", 28000, 15000, 20, "Beverage"),
		mk("Kentang Goreng", "FD-002", 15000, 6000, 40, "Food"),
	}
}
