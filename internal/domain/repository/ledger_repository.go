package repository

import "github.com/bcrcell/bcr-erp/internal/domain/entity"

// LedgerRepository adalah port persistensi buku besar (append-only).
// Append menerima satu batch jurnal; pemanggil bertanggung jawab menyusun
// batch yang seimbang (total debit == total kredit) karena laporan
// mengandalkan properti itu.
type LedgerRepository interface {
	Append(entries ...*entity.LedgerEntry) error
	List() ([]*entity.LedgerEntry, error)
}
