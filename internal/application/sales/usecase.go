// Package sales berisi poster penjualan: checkout keranjang menjadi Sale,
// memotong stok per baris, dan menulis tiga jurnal seimbang ke buku besar.
package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bcrcell/bcr-erp/internal/application/dto"
	"github.com/bcrcell/bcr-erp/internal/application/inventory"
	"github.com/bcrcell/bcr-erp/internal/domain"
	"github.com/bcrcell/bcr-erp/internal/domain/entity"
	"github.com/bcrcell/bcr-erp/internal/domain/money"
	"github.com/bcrcell/bcr-erp/internal/domain/repository"
)

// UseCase poster penjualan kasir.
type UseCase struct {
	txRunner  repository.TxRunner
	inventory *inventory.UseCase
	saleRepo  repository.SaleRepository
}

// NewUseCase membangun poster penjualan. Pemotongan stok didelegasikan ke
// motor mutasi stok di dalam transaksi checkout.
func NewUseCase(txRunner repository.TxRunner, inv *inventory.UseCase, saleRepo repository.SaleRepository) *UseCase {
	return &UseCase{txRunner: txRunner, inventory: inv, saleRepo: saleRepo}
}

// Checkout memvalidasi keranjang, membangun Sale dengan snapshot harga dari
// katalog, lalu dalam satu unit atomik: menyimpan Sale, memotong stok per
// baris (OUT, log per baris), dan menulis tiga jurnal:
//
//	debit  KAS          sebesar total
//	kredit PENJUALAN    sebesar subtotal
//	kredit HUTANG_PAJAK sebesar PPN
//
// Ketiganya seimbang karena total = subtotal + PPN.
func (uc *UseCase) Checkout(ctx context.Context, in dto.CheckoutRequest) (*entity.Sale, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	switch in.PaymentMethod {
	case entity.PaymentCash, entity.PaymentDebit, entity.PaymentCredit:
	case "":
		in.PaymentMethod = entity.PaymentCash
	default:
		return nil, fmt.Errorf("%w: metode pembayaran %q", domain.ErrInvalidInput, in.PaymentMethod)
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity harus > 0", domain.ErrInvalidInput)
		}
	}

	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		now := time.Now()

		items := make([]entity.SaleItem, 0, len(in.Items))
		lineTotals := make([]int64, 0, len(in.Items))
		for _, line := range in.Items {
			product, err := tx.Products().GetByID(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("%w: produk %s", domain.ErrNotFound, line.ProductID)
			}
			total := int64(line.Quantity) * product.Price
			items = append(items, entity.SaleItem{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  line.Quantity,
				Price:     product.Price,
				Total:     total,
			})
			lineTotals = append(lineTotals, total)
		}

		subtotal, tax, total := money.SaleTotals(lineTotals)
		sale = &entity.Sale{
			ID:            uuid.New().String(),
			Timestamp:     now,
			Items:         items,
			Subtotal:      subtotal,
			Tax:           tax,
			Total:         total,
			PaymentMethod: in.PaymentMethod,
		}
		if err := tx.Sales().Append(sale); err != nil {
			return err
		}

		// Stok OUT per baris; magnitudo log = quantity yang diminta.
		reason := "Penjualan " + sale.ID
		for _, item := range items {
			if _, _, err := uc.inventory.AdjustInTx(tx, item.ProductID, entity.StockOut, item.Quantity, reason, now); err != nil {
				return err
			}
		}

		entries := []*entity.LedgerEntry{
			debit(entity.AccountKas, sale.Total, "Penjualan "+sale.ID, now),
			credit(entity.AccountPenjualan, sale.Subtotal, "Pendapatan Penjualan "+sale.ID, now),
			credit(entity.AccountHutangPajak, sale.Tax, "Pajak Penjualan "+sale.ID, now),
		}
		return tx.Ledger().Append(entries...)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// List mengembalikan seluruh transaksi kasir.
func (uc *UseCase) List(_ context.Context) ([]*entity.Sale, error) {
	return uc.saleRepo.List()
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
