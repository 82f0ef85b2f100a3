package dto

import "github.com/bcrcell/bcr-erp/internal/domain/entity"

// BusinessSnapshot potret data bisnis yang diserialisasi ke prompt asisten
// AI. Isinya koleksi apa adanya; asisten diperlakukan sebagai fungsi buram
// summarize(snapshot) -> teks.
type BusinessSnapshot struct {
	Sales     []*entity.Sale          `json:"sales"`
	Expenses  []*entity.Expense       `json:"expenses"`
	Products  []*entity.Product       `json:"products"`
	StockLogs []*entity.StockLog      `json:"stockLogs"`
	Services  []*entity.ServiceRecord `json:"services"`
}

// InsightResponse jawaban endpoint wawasan bisnis.
type InsightResponse struct {
	Insights string `json:"insights"`
}
