package entity

import "time"

// Kategori beban operasional.
const (
	ExpenseRent      = "RENT"
	ExpenseUtilities = "UTILITIES"
	ExpenseSalary    = "SALARY"
	ExpenseSupplies  = "SUPPLIES"
	ExpenseMarketing = "MARKETING"
	ExpenseOther     = "OTHER"
)

// ExpenseCategories daftar kategori yang diterima saat pencatatan beban.
var ExpenseCategories = []string{
	ExpenseRent, ExpenseUtilities, ExpenseSalary,
	ExpenseSupplies, ExpenseMarketing, ExpenseOther,
}

// Expense adalah satu beban operasional. Boleh dihapus dari daftar, tetapi
// penghapusan selalu disertai jurnal balik di buku besar, bukan edit jurnal.
type Expense struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	Category    string    `json:"category"`
}
