package dto

// CreateExpenseRequest pencatatan beban operasional baru.
type CreateExpenseRequest struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Category    string `json:"category"`
}
