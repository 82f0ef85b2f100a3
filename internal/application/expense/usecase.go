// Package expense berisi poster beban operasional: pencatatan beban menulis
// sepasang jurnal, penghapusan beban menulis jurnal balik — buku besar tidak
// pernah diedit.
package expense

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/bcrcell/bcr-erp/internal/application/dto"
	"github.com/bcrcell/bcr-erp/internal/domain"
	"github.com/bcrcell/bcr-erp/internal/domain/entity"
	"github.com/bcrcell/bcr-erp/internal/domain/repository"
)

// UseCase poster beban operasional.
type UseCase struct {
	txRunner    repository.TxRunner
	expenseRepo repository.ExpenseRepository
}

// NewUseCase membangun poster beban.
func NewUseCase(txRunner repository.TxRunner, expenseRepo repository.ExpenseRepository) *UseCase {
	return &UseCase{txRunner: txRunner, expenseRepo: expenseRepo}
}

// Record mencatat beban baru dan sepasang jurnalnya dalam satu unit atomik:
// debit BEBAN_OPERASIONAL dan kredit KAS, masing-masing sebesar Amount.
func (uc *UseCase) Record(ctx context.Context, in dto.CreateExpenseRequest) (*entity.Expense, error) {
	if in.Description == "" {
		return nil, fmt.Errorf("%w: deskripsi wajib diisi", domain.ErrInvalidInput)
	}
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: nominal harus > 0", domain.ErrInvalidInput)
	}
	if !slices.Contains(entity.ExpenseCategories, in.Category) {
		return nil, fmt.Errorf("%w: kategori %q tak dikenal", domain.ErrInvalidInput, in.Category)
	}

	now := time.Now()
	exp := &entity.Expense{
		ID:          uuid.New().String(),
		Timestamp:   now,
		Description: in.Description,
		Amount:      in.Amount,
		Category:    in.Category,
	}
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		if err := tx.Expenses().Append(exp); err != nil {
			return err
		}
		return tx.Ledger().Append(
			debit(entity.AccountBebanOperasional, exp.Amount, "Beban: "+exp.Description, now),
			credit(entity.AccountKas, exp.Amount, "Pembayaran Beban: "+exp.Description, now),
		)
	})
	if err != nil {
		return nil, err
	}
	return exp, nil
}

// Delete menghapus beban dari daftar dan menulis jurnal balik: kredit
// BEBAN_OPERASIONAL, debit KAS. Jurnal asli tidak pernah disentuh, sehingga
// saldo KAS kembali ke nilai sebelum beban dicatat.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		exp, err := tx.Expenses().GetByID(id)
		if err != nil {
			return err
		}
		if exp == nil {
			return fmt.Errorf("%w: beban %s", domain.ErrNotFound, id)
		}
		if err := tx.Expenses().Remove(id); err != nil {
			return err
		}
		now := time.Now()
		return tx.Ledger().Append(
			credit(entity.AccountBebanOperasional, exp.Amount, "PEMBATALAN: "+exp.Description, now),
			debit(entity.AccountKas, exp.Amount, "PEMBATALAN KAS: "+exp.Description, now),
		)
	})
}

// List mengembalikan seluruh beban yang masih tercatat.
func (uc *UseCase) List(_ context.Context) ([]*entity.Expense, error) {
	return uc.expenseRepo.List()
}

func debit(account string, amount int64, description string, ts time.Time) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:          uuid.New().String(),
		Timestamp:   ts,
		Description: description,
		Debit:       amount,
		Account:     account,
	}
}

func credit(account string, amount int64, description string, ts time.Time) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:          uuid.New().String(),
		Timestamp:   ts,
		Description: description,
		Credit:      amount,
		Account:     account,
	}
}
