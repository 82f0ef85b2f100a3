// Package reporting berisi agregator sisi-baca murni: ringkasan periode,
// saldo kas, dan dashboard. Tidak ada mutasi di paket ini.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/bcrcell/bcr-erp/internal/application/dto"
	"github.com/bcrcell/bcr-erp/internal/domain"
	"github.com/bcrcell/bcr-erp/internal/domain/entity"
	"github.com/bcrcell/bcr-erp/internal/domain/repository"
	"github.com/bcrcell/bcr-erp/pkg/currency"
)

const (
	lowStockThreshold = 10
	dashboardDays     = 7
	dateLayout        = "2006-01-02"
)

// UseCase agregator laporan.
type UseCase struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	serviceRepo repository.ServiceRepository
	expenseRepo repository.ExpenseRepository
	ledgerRepo  repository.LedgerRepository
}

// NewUseCase membangun agregator laporan di atas repositori read-only.
func NewUseCase(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	serviceRepo repository.ServiceRepository,
	expenseRepo repository.ExpenseRepository,
	ledgerRepo repository.LedgerRepository,
) *UseCase {
	return &UseCase{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		serviceRepo: serviceRepo,
		expenseRepo: expenseRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// PeriodRange menormalkan rentang tanggal inklusif ke batas hari:
// start 00:00:00.000 s/d end 23:59:59.999….
func PeriodRange(start, end string) (time.Time, time.Time, error) {
	s, err := time.ParseInLocation(dateLayout, start, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: tanggal awal %q", domain.ErrInvalidInput, start)
	}
	e, err := time.ParseInLocation(dateLayout, end, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: tanggal akhir %q", domain.ErrInvalidInput, end)
	}
	return s, e.Add(24*time.Hour - time.Nanosecond), nil
}

// PeriodSummary menghitung pendapatan kasir, beban, dan laba bersih dalam
// rentang tanggal. CashBalance sengaja dihitung atas SELURUH sejarah buku
// besar, bukan hanya periode: saldo kas berjalan tidak tergantung filter.
func (uc *UseCase) PeriodSummary(_ context.Context, start, end string) (*dto.PeriodSummaryDTO, error) {
	from, to, err := PeriodRange(start, end)
	if err != nil {
		return nil, err
	}

	sales, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.List()
	if err != nil {
		return nil, err
	}
	ledger, err := uc.ledgerRepo.List()
	if err != nil {
		return nil, err
	}

	var revenue, spent int64
	for _, s := range sales {
		if inRange(s.Timestamp, from, to) {
			revenue += s.Total
		}
	}
	for _, e := range expenses {
		if inRange(e.Timestamp, from, to) {
			spent += e.Amount
		}
	}

	cash := accountBalance(ledger, entity.AccountKas)
	return &dto.PeriodSummaryDTO{
		Start:              start,
		End:                end,
		PeriodRevenue:      revenue,
		PeriodExpenses:     spent,
		NetProfit:          revenue - spent,
		CashBalance:        cash,
		NetProfitDisplay:   currency.FormatIDR(revenue - spent),
		CashBalanceDisplay: currency.FormatIDR(cash),
	}, nil
}

// LedgerView mengembalikan jurnal dalam periode beserta total debit dan
// kredit periode tersebut.
func (uc *UseCase) LedgerView(_ context.Context, start, end string) (*dto.LedgerViewDTO, error) {
	from, to, err := PeriodRange(start, end)
	if err != nil {
		return nil, err
	}
	ledger, err := uc.ledgerRepo.List()
	if err != nil {
		return nil, err
	}

	view := &dto.LedgerViewDTO{Entries: []*entity.LedgerEntry{}}
	for _, e := range ledger {
		if !inRange(e.Timestamp, from, to) {
			continue
		}
		view.Entries = append(view.Entries, e)
		view.TotalDebit += e.Debit
		view.TotalCredit += e.Credit
	}
	return view, nil
}

// CashBalance saldo KAS sepanjang masa: Σ(debit) − Σ(kredit).
func (uc *UseCase) CashBalance(_ context.Context) (int64, error) {
	ledger, err := uc.ledgerRepo.List()
	if err != nil {
		return 0, err
	}
	return accountBalance(ledger, entity.AccountKas), nil
}

// DashboardSummary ringkasan dashboard. Pendapatan total = transaksi kasir +
// TotalCost service berstatus PICKED_UP (pendapatan jasa diakui saat unit
// diambil). Deret harian mencakup 7 hari terakhir termasuk hari ini.
func (uc *UseCase) DashboardSummary(_ context.Context) (*dto.DashboardSummaryDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	services, err := uc.serviceRepo.List()
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.List()
	if err != nil {
		return nil, err
	}
	ledger, err := uc.ledgerRepo.List()
	if err != nil {
		return nil, err
	}

	var totalRevenue, totalExpenses int64
	for _, s := range sales {
		totalRevenue += s.Total
	}
	for _, svc := range services {
		if svc.Status == entity.ServicePickedUp {
			totalRevenue += svc.TotalCost
		}
	}
	for _, e := range expenses {
		totalExpenses += e.Amount
	}

	lowStock := 0
	for _, p := range products {
		if p.Stock < lowStockThreshold {
			lowStock++
		}
	}
	active := 0
	for _, svc := range services {
		if svc.Status != entity.ServicePickedUp && svc.Status != entity.ServiceCancelled {
			active++
		}
	}

	cash := accountBalance(ledger, entity.AccountKas)
	return &dto.DashboardSummaryDTO{
		TotalRevenue:       totalRevenue,
		TotalExpenses:      totalExpenses,
		NetProfit:          totalRevenue - totalExpenses,
		CashBalance:        cash,
		LowStockCount:      lowStock,
		ActiveServices:     active,
		Daily:              dailySeries(sales, services, expenses, time.Now()),
		NetProfitDisplay:   currency.FormatIDR(totalRevenue - totalExpenses),
		CashBalanceDisplay: currency.FormatIDR(cash),
	}, nil
}

// dailySeries membentuk deret revenue/expense/profit per hari untuk
// dashboardDays hari terakhir. Pendapatan service dihitung pada tanggal
// PickedUpTimestamp, bukan tanggal pendaftaran tiket.
func dailySeries(
	sales []*entity.Sale,
	services []*entity.ServiceRecord,
	expenses []*entity.Expense,
	now time.Time,
) []dto.DailyPointDTO {
	points := make([]dto.DailyPointDTO, 0, dashboardDays)
	for i := dashboardDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(dateLayout)

		var revenue, spent int64
		for _, s := range sales {
			if s.Timestamp.Format(dateLayout) == day {
				revenue += s.Total
			}
		}
		for _, svc := range services {
			if svc.Status == entity.ServicePickedUp && svc.PickedUpTimestamp != nil &&
				svc.PickedUpTimestamp.Format(dateLayout) == day {
				revenue += svc.TotalCost
			}
		}
		for _, e := range expenses {
			if e.Timestamp.Format(dateLayout) == day {
				spent += e.Amount
			}
		}

		points = append(points, dto.DailyPointDTO{
			Date:     day,
			Revenue:  revenue,
			Expenses: spent,
			Profit:   revenue - spent,
		})
	}
	return points
}

func accountBalance(entries []*entity.LedgerEntry, account string) int64 {
	var balance int64
	for _, e := range entries {
		if e.Account == account {
			balance += e.Debit - e.Credit
		}
	}
	return balance
}

func inRange(ts, from, to time.Time) bool {
	return !ts.Before(from) && !ts.After(to)
}
