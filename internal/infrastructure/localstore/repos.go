package localstore

import (
	"fmt"

	"github.com/bcrcell/bcr-erp/internal/domain"
	"github.com/bcrcell/bcr-erp/internal/domain/entity"
	"github.com/bcrcell/bcr-erp/internal/domain/repository"
)

// Repositori terikat dataset: beroperasi langsung pada satu snapshot tanpa
// locking. Sinkronisasi diurus Store (view/update); tipe di berkas ini tidak
// boleh dipakai di luar kedua jalur itu.

var (
	_ repository.ProductRepository  = dsProducts{}
	_ repository.SaleRepository     = dsSales{}
	_ repository.ServiceRepository  = dsServices{}
	_ repository.ExpenseRepository  = dsExpenses{}
	_ repository.StockLogRepository = dsStockLogs{}
	_ repository.LedgerRepository   = dsLedger{}
	_ repository.CustomerRepository = dsCustomers{}
)

// ── Produk ──────────────────────────────────────────────────────────────────

type dsProducts struct{ d *dataset }

func (r dsProducts) Create(product *entity.Product) error {
	r.d.Products = append(r.d.Products, product)
	return nil
}

func (r dsProducts) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.d.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r dsProducts) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.d.Products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r dsProducts) Update(product *entity.Product) error {
	for i, p := range r.d.Products {
		if p.ID == product.ID {
			r.d.Products[i] = product
			return nil
		}
	}
	return fmt.Errorf("%w: produk %s", domain.ErrNotFound, product.ID)
}

func (r dsProducts) List() ([]*entity.Product, error) {
	return r.d.Products, nil
}

// ── Transaksi kasir ─────────────────────────────────────────────────────────

type dsSales struct{ d *dataset }

func (r dsSales) Append(sale *entity.Sale) error {
	r.d.Sales = append(r.d.Sales, sale)
	return nil
}

func (r dsSales) GetByID(id string) (*entity.Sale, error) {
	for _, s := range r.d.Sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r dsSales) List() ([]*entity.Sale, error) {
	return r.d.Sales, nil
}

// ── Tiket service ───────────────────────────────────────────────────────────

type dsServices struct{ d *dataset }

func (r dsServices) Create(rec *entity.ServiceRecord) error {
	r.d.Services = append(r.d.Services, rec)
	return nil
}

func (r dsServices) GetByID(id string) (*entity.ServiceRecord, error) {
	for _, rec := range r.d.Services {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

func (r dsServices) Update(rec *entity.ServiceRecord) error {
	for i, cur := range r.d.Services {
		if cur.ID == rec.ID {
			r.d.Services[i] = rec
			return nil
		}
	}
	return fmt.Errorf("%w: tiket service %s", domain.ErrNotFound, rec.ID)
}

func (r dsServices) List() ([]*entity.ServiceRecord, error) {
	return r.d.Services, nil
}

// ── Beban ───────────────────────────────────────────────────────────────────

type dsExpenses struct{ d *dataset }

func (r dsExpenses) Append(expense *entity.Expense) error {
	r.d.Expenses = append(r.d.Expenses, expense)
	return nil
}

func (r dsExpenses) GetByID(id string) (*entity.Expense, error) {
	for _, e := range r.d.Expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r dsExpenses) Remove(id string) error {
	for i, e := range r.d.Expenses {
		if e.ID == id {
			r.d.Expenses = append(r.d.Expenses[:i], r.d.Expenses[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: beban %s", domain.ErrNotFound, id)
}

func (r dsExpenses) List() ([]*entity.Expense, error) {
	return r.d.Expenses, nil
}

// ── Log stok ────────────────────────────────────────────────────────────────

type dsStockLogs struct{ d *dataset }

func (r dsStockLogs) Append(log *entity.StockLog) error {
	r.d.StockLogs = append(r.d.StockLogs, log)
	return nil
}

func (r dsStockLogs) ListByProduct(productID string) ([]*entity.StockLog, error) {
	logs := make([]*entity.StockLog, 0)
	for _, l := range r.d.StockLogs {
		if l.ProductID == productID {
			logs = append(logs, l)
		}
	}
	return logs, nil
}

func (r dsStockLogs) List() ([]*entity.StockLog, error) {
	return r.d.StockLogs, nil
}

// ── Buku besar ──────────────────────────────────────────────────────────────

type dsLedger struct{ d *dataset }

func (r dsLedger) Append(entries ...*entity.LedgerEntry) error {
	r.d.Ledger = append(r.d.Ledger, entries...)
	return nil
}

func (r dsLedger) List() ([]*entity.LedgerEntry, error) {
	return r.d.Ledger, nil
}

// ── Pelanggan ───────────────────────────────────────────────────────────────

type dsCustomers struct{ d *dataset }

func (r dsCustomers) Create(customer *entity.Customer) error {
	r.d.Customers = append(r.d.Customers, customer)
	return nil
}

func (r dsCustomers) GetByID(id string) (*entity.Customer, error) {
	for _, c := range r.d.Customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r dsCustomers) Delete(id string) error {
	for i, c := range r.d.Customers {
		if c.ID == id {
			r.d.Customers = append(r.d.Customers[:i], r.d.Customers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: pelanggan %s", domain.ErrNotFound, id)
}

func (r dsCustomers) List() ([]*entity.Customer, error) {
	return r.d.Customers, nil
}
