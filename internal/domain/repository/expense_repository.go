package repository

import "github.com/bcrcell/bcr-erp/internal/domain/entity"

// ExpenseRepository adalah port persistensi untuk beban operasional.
// Remove menghapus dari daftar beban; jurnal baliknya diurus poster beban,
// bukan repositori.
type ExpenseRepository interface {
	Append(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	Remove(id string) error
	List() ([]*entity.Expense, error)
}
