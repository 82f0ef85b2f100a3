package localstore

import (
	"context"

	"github.com/bcrcell/bcr-erp/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner menjalankan callback atas salinan kerja snapshot. Commit berarti
// salinan dipromosikan dan ditulis ke SQLite; error berarti salinan dibuang
// utuh, sehingga mutasi setengah jadi tidak pernah teramati.
type TxRunner struct {
	store *Store
}

// NewTxRunner membangun runner di atas store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run menjalankan fn sebagai satu unit atomik.
func (r *TxRunner) Run(ctx context.Context, fn func(tx repository.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.store.update(func(d *dataset) error {
		return fn(storeTx{d: d})
	})
}

// storeTx membundel repositori yang terikat pada satu salinan kerja.
type storeTx struct{ d *dataset }

var _ repository.Tx = storeTx{}

func (t storeTx) Products() repository.ProductRepository   { return dsProducts{d: t.d} }
func (t storeTx) Sales() repository.SaleRepository         { return dsSales{d: t.d} }
func (t storeTx) Services() repository.ServiceRepository   { return dsServices{d: t.d} }
func (t storeTx) Expenses() repository.ExpenseRepository   { return dsExpenses{d: t.d} }
func (t storeTx) StockLogs() repository.StockLogRepository { return dsStockLogs{d: t.d} }
func (t storeTx) Ledger() repository.LedgerRepository      { return dsLedger{d: t.d} }
func (t storeTx) Customers() repository.CustomerRepository { return dsCustomers{d: t.d} }
