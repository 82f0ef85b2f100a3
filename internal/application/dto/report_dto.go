package dto

import "github.com/bcrcell/bcr-erp/internal/domain/entity"

// PeriodSummaryDTO ringkasan keuangan satu rentang tanggal (inklusif,
// granularitas hari). CashBalance selalu saldo KAS sepanjang masa,
// tidak ikut terpotong filter.
type PeriodSummaryDTO struct {
	Start          string `json:"start"`
	End            string `json:"end"`
	PeriodRevenue  int64  `json:"period_revenue"`
	PeriodExpenses int64  `json:"period_expenses"`
	NetProfit      int64  `json:"net_profit"`
	CashBalance    int64  `json:"cash_balance"`

	// Versi terformat lokal Indonesia ("Rp 83.250") untuk ditampilkan apa
	// adanya oleh klien.
	NetProfitDisplay   string `json:"net_profit_display"`
	CashBalanceDisplay string `json:"cash_balance_display"`
}

// LedgerViewDTO buku besar terfilter periode plus total debit/kredit periode.
type LedgerViewDTO struct {
	Entries     []*entity.LedgerEntry `json:"entries"`
	TotalDebit  int64                 `json:"total_debit"`
	TotalCredit int64                 `json:"total_credit"`
}

// DailyPointDTO satu titik grafik harian dashboard.
type DailyPointDTO struct {
	Date     string `json:"date"` // "2006-01-02"
	Revenue  int64  `json:"revenue"`
	Expenses int64  `json:"expenses"`
	Profit   int64  `json:"profit"`
}

// DashboardSummaryDTO ringkasan dashboard: pendapatan total (kasir +
// service yang sudah diambil), beban, laba, indikator stok dan tiket aktif,
// serta deret 7 hari terakhir.
type DashboardSummaryDTO struct {
	TotalRevenue   int64           `json:"total_revenue"`
	TotalExpenses  int64           `json:"total_expenses"`
	NetProfit      int64           `json:"net_profit"`
	CashBalance    int64           `json:"cash_balance"`
	LowStockCount  int             `json:"low_stock_count"`
	ActiveServices int             `json:"active_services"`
	Daily          []DailyPointDTO `json:"daily"`

	NetProfitDisplay   string `json:"net_profit_display"`
	CashBalanceDisplay string `json:"cash_balance_display"`
}
