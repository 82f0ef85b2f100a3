package repository

import "context"

// Tx membundel seluruh repositori yang terikat pada satu unit kerja atomik.
type Tx interface {
	Products() ProductRepository
	Sales() SaleRepository
	Services() ServiceRepository
	Expenses() ExpenseRepository
	StockLogs() StockLogRepository
	Ledger() LedgerRepository
	Customers() CustomerRepository
}

// TxRunner menjalankan fn sebagai satu unit atomik: seluruh mutasi di dalam
// fn terlihat sekaligus oleh pembaca, atau tidak sama sekali bila fn gagal.
// Menjamin batch jurnal seimbang dan mutasi stok + log-nya tidak pernah
// teramati setengah jadi.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx Tx) error) error
}
