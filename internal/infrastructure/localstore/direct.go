package localstore

import (
	"github.com/bcrcell/bcr-erp/internal/domain/entity"
	"github.com/bcrcell/bcr-erp/internal/domain/repository"
)

// Repositori langsung: pembacaan di bawah read-lock atas snapshot committed,
// penulisan lewat jalur update (salinan kerja + persist). Usecase memakai
// repositori ini untuk baca; mutasi multi-koleksi selalu lewat TxRunner.

var (
	_ repository.ProductRepository  = productRepo{}
	_ repository.SaleRepository     = saleRepo{}
	_ repository.ServiceRepository  = serviceRepo{}
	_ repository.ExpenseRepository  = expenseRepo{}
	_ repository.StockLogRepository = stockLogRepo{}
	_ repository.LedgerRepository   = ledgerRepo{}
	_ repository.CustomerRepository = customerRepo{}
)

// Products mengembalikan repositori produk terikat store.
func (s *Store) Products() repository.ProductRepository { return productRepo{s: s} }

// Sales mengembalikan repositori transaksi kasir terikat store.
func (s *Store) Sales() repository.SaleRepository { return saleRepo{s: s} }

// Services mengembalikan repositori tiket service terikat store.
func (s *Store) Services() repository.ServiceRepository { return serviceRepo{s: s} }

// Expenses mengembalikan repositori beban terikat store.
func (s *Store) Expenses() repository.ExpenseRepository { return expenseRepo{s: s} }

// StockLogs mengembalikan repositori log stok terikat store.
func (s *Store) StockLogs() repository.StockLogRepository { return stockLogRepo{s: s} }

// Ledger mengembalikan repositori buku besar terikat store.
func (s *Store) Ledger() repository.LedgerRepository { return ledgerRepo{s: s} }

// Customers mengembalikan repositori pelanggan terikat store.
func (s *Store) Customers() repository.CustomerRepository { return customerRepo{s: s} }

type productRepo struct{ s *Store }

func (r productRepo) Create(product *entity.Product) error {
	return r.s.update(func(d *dataset) error { return dsProducts{d: d}.Create(product) })
}

func (r productRepo) GetByID(id string) (out *entity.Product, err error) {
	err = r.s.view(func(d *dataset) error {
		out, _ = dsProducts{d: d}.GetByID(id)
		return nil
	})
	return out, err
}

func (r productRepo) GetBySKU(sku string) (out *entity.Product, err error) {
	err = r.s.view(func(d *dataset) error {
		out, _ = dsProducts{d: d}.GetBySKU(sku)
		return nil
	})
	return out, err
}

func (r productRepo) Update(product *entity.Product) error {
	return r.s.update(func(d *dataset) error { return dsProducts{d: d}.Update(product) })
}

func (r productRepo) List() (out []*entity.Product, err error) {
	err = r.s.view(func(d *dataset) error {
		out, _ = dsProducts{d: d}.List()
		return nil
	})
	return out, err
}

type saleRepo struct{ s *Store }

func (r saleRepo) Append(sale *entity.Sale) error {
	return r.s.update(func(d *dataset) error { return dsSales{d: d}.Append(sale) })
}

func (r saleRepo) GetByID(id string) (out *entity.Sale, err error) {
	err = r.s.view(func(d *dataset) error {
		out, _ = dsSales{d: d}.GetByID(id)
		return nil
	})
	return out, err
}

func (r saleRepo) List() (out []*entity.Sale, err error) {
	err = r.s.view(func(d *dataset) error {
		out, _ = dsSales{d: d}.List()
		return nil
	})
	return out, err
}

type serviceRepo struct{ s *Store }

func (r serviceRepo) Create(rec *entity.ServiceRecord) error {
	return r.s.update(func(d *dataset) error { return dsServices{d: d}.Create(rec) })
}

func (r serviceRepo) GetByID(id string) (out *entity.ServiceRecord, err error) {
	err = r.s.view(func(d *dataset) error {
		out, _ = dsServices{d: d}.GetByID(id)
		return nil
	})
	return out, err
}

func (r serviceRepo) Update(rec *entity.ServiceRecord) error {
	return r.s.update(func(d *dataset) error { return dsServices{d: d}.Update(rec) })
}

func (r serviceRepo) List() (out []*entity.ServiceRecord, err error) {
	err = r.s.view(func(d *dataset) error {
		out, _ = dsServices{d: d}.List()
		return nil
	})
	return out, err
}

type expenseRepo struct{ s *Store }

func (r expenseRepo) Append(expense *entity.Expense) error {
	return r.s.update(func(d *dataset) error { return dsExpenses{d: d}.Append(expense) })
}

func (r expenseRepo) GetByID(id string) (out *entity.Expense, err error) {
	err = r.s.view(func(d *dataset) error {
		out, _ = dsExpenses{d: d}.GetByID(id)
		return nil
	})
	return out, err
}

func (r expenseRepo) Remove(id string) error {
	return r.s.update(func(d *dataset) error { return dsExpenses{d: d}.Remove(id) })
}

func (r expenseRepo) List() (out []*entity.Expense, err error) {
	err = r.s.view(func(d *dataset) error {
		out, _ = dsExpenses{d: d}.List()
		return nil
	})
	return out, err
}

type stockLogRepo struct{ s *Store }

func (r stockLogRepo) Append(log *entity.StockLog) error {
	return r.s.update(func(d *dataset) error { return dsStockLogs{d: d}.Append(log) })
}

func (r stockLogRepo) ListByProduct(productID string) (out []*entity.StockLog, err error) {
	err = r.s.view(func(d *dataset) error {
		out, _ = dsStockLogs{d: d}.ListByProduct(productID)
		return nil
	})
	return out, err
}

func (r stockLogRepo) List() (out []*entity.StockLog, err error) {
	err = r.s.view(func(d *dataset) error {
		out, _ = dsStockLogs{d: d}.List()
		return nil
	})
	return out, err
}

type ledgerRepo struct{ s *Store }

func (r ledgerRepo) Append(entries ...*entity.LedgerEntry) error {
	return r.s.update(func(d *dataset) error { return dsLedger{d: d}.Append(entries...) })
}

func (r ledgerRepo) List() (out []*entity.LedgerEntry, err error) {
	err = r.s.view(func(d *dataset) error {
		out, _ = dsLedger{d: d}.List()
		return nil
	})
	return out, err
}

type customerRepo struct{ s *Store }

func (r customerRepo) Create(customer *entity.Customer) error {
	return r.s.update(func(d *dataset) error { return dsCustomers{d: d}.Create(customer) })
}

func (r customerRepo) GetByID(id string) (out *entity.Customer, err error) {
	err = r.s.view(func(d *dataset) error {
		out, _ = dsCustomers{d: d}.GetByID(id)
		return nil
	})
	return out, err
}

func (r customerRepo) Delete(id string) error {
	return r.s.update(func(d *dataset) error { return dsCustomers{d: d}.Delete(id) })
}

func (r customerRepo) List() (out []*entity.Customer, err error) {
	err = r.s.view(func(d *dataset) error {
		out, _ = dsCustomers{d: d}.List()
		return nil
	})
	return out, err
}
