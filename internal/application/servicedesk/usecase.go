// Package servicedesk mengelola tiket service HP: pendaftaran, suku cadang,
// catatan, dan transisi status. Transisi ke PICKED_UP dan PICKED_UP→REFUNDED
// adalah satu-satunya titik yang menyentuh buku besar dan stok.
package servicedesk

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bcrcell/bcr-erp/internal/application/dto"
	"github.com/bcrcell/bcr-erp/internal/application/inventory"
	"github.com/bcrcell/bcr-erp/internal/domain"
	"github.com/bcrcell/bcr-erp/internal/domain/entity"
	"github.com/bcrcell/bcr-erp/internal/domain/repository"
	"github.com/bcrcell/bcr-erp/internal/domain/servicestatus"
)

const defaultWarrantyDays = 7

// UseCase poster service HP + mesin status.
type UseCase struct {
	txRunner    repository.TxRunner
	inventory   *inventory.UseCase
	serviceRepo repository.ServiceRepository
}

// NewUseCase membangun poster service.
func NewUseCase(txRunner repository.TxRunner, inv *inventory.UseCase, serviceRepo repository.ServiceRepository) *UseCase {
	return &UseCase{txRunner: txRunner, inventory: inv, serviceRepo: serviceRepo}
}

// Create mendaftarkan tiket baru berstatus PENDING. TotalCost awal =
// ServiceFee (belum ada suku cadang). Garansi default 7 hari.
func (uc *UseCase) Create(ctx context.Context, technician string, in dto.CreateServiceRequest) (*entity.ServiceRecord, error) {
	if in.CustomerName == "" || in.DeviceModel == "" || in.ProblemDescription == "" {
		return nil, fmt.Errorf("%w: nama pelanggan, model perangkat, dan keluhan wajib diisi", domain.ErrInvalidInput)
	}
	if in.ServiceFee < 0 || in.EstimatedCost < 0 {
		return nil, fmt.Errorf("%w: biaya tidak boleh negatif", domain.ErrInvalidInput)
	}

	now := time.Now()
	warranty := now.AddDate(0, 0, defaultWarrantyDays)
	if in.WarrantyDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", in.WarrantyDate, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: tanggal garansi %q", domain.ErrInvalidInput, in.WarrantyDate)
		}
		warranty = parsed
	}

	rec := &entity.ServiceRecord{
		ID:                 "SRV-" + uuid.New().String(),
		CustomerID:         in.CustomerID,
		CustomerName:       in.CustomerName,
		CustomerPhone:      in.CustomerPhone,
		DeviceModel:        in.DeviceModel,
		IMEI:               in.IMEI,
		DevicePattern:      in.DevicePattern,
		DevicePassword:     in.DevicePassword,
		ProblemDescription: in.ProblemDescription,
		TechnicianName:     technician,
		Status:             entity.ServicePending,
		EstimatedCost:      in.EstimatedCost,
		ServiceFee:         in.ServiceFee,
		PartsUsed:          []entity.SaleItem{},
		TotalCost:          in.ServiceFee,
		Timestamp:          now,
		WarrantyDate:       &warranty,
	}
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		return tx.Services().Create(rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ChangeStatus menjalankan satu transisi status. Pasangan (lama, baru) di
// luar tabel transisi ditolak dengan ErrInvalidTransition. Efek pembukuan
// transisi (jurnal + mutasi stok suku cadang) diterapkan dalam unit atomik
// yang sama dengan perubahan status.
func (uc *UseCase) ChangeStatus(ctx context.Context, id, newStatus string) (*entity.ServiceRecord, error) {
	var updated *entity.ServiceRecord
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		rec, err := tx.Services().GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return fmt.Errorf("%w: service %s", domain.ErrNotFound, id)
		}

		effect, ok := servicestatus.Resolve(rec.Status, newStatus)
		if !ok {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, rec.Status, newStatus)
		}

		now := time.Now()
		servicestatus.ApplyTimestamps(rec, newStatus, now)

		switch effect {
		case servicestatus.EffectPostPickup:
			if err := uc.postPickup(tx, rec, now); err != nil {
				return err
			}
		case servicestatus.EffectPostRefund:
			if err := uc.postRefund(tx, rec, now); err != nil {
				return err
			}
		}

		if err := tx.Services().Update(rec); err != nil {
			return err
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// postPickup membukukan pembayaran saat unit diambil: debit KAS sebesar
// TotalCost, kredit PENDAPATAN_JASA sebesar ServiceFee, dan bila ada suku
// cadang, kredit PENJUALAN sebesar totalnya. Baru di titik inilah stok suku
// cadang benar-benar dipotong.
func (uc *UseCase) postPickup(tx repository.Tx, rec *entity.ServiceRecord, now time.Time) error {
	partsTotal := rec.PartsTotal()

	entries := []*entity.LedgerEntry{
		debit(entity.AccountKas, rec.TotalCost,
			fmt.Sprintf("Pembayaran Service: %s - %s", rec.CustomerName, rec.DeviceModel), now),
		credit(entity.AccountPendapatanJasa, rec.ServiceFee,
			"Pendapatan Jasa Service: "+rec.ID, now),
	}
	if partsTotal > 0 {
		entries = append(entries, credit(entity.AccountPenjualan, partsTotal,
			"Pendapatan Suku Cadang Service: "+rec.ID, now))
	}
	if err := tx.Ledger().Append(entries...); err != nil {
		return err
	}

	reason := "Service HP " + rec.ID
	for _, part := range rec.PartsUsed {
		if _, _, err := uc.inventory.AdjustInTx(tx, part.ProductID, entity.StockOut, part.Quantity, reason, now); err != nil {
			return err
		}
	}
	return nil
}

// postRefund membukukan pengembalian dana: cermin persis dari jurnal pickup
// (nominal sama, debit/kredit ditukar) dan stok IN per suku cadang.
func (uc *UseCase) postRefund(tx repository.Tx, rec *entity.ServiceRecord, now time.Time) error {
	partsTotal := rec.PartsTotal()

	entries := []*entity.LedgerEntry{
		credit(entity.AccountKas, rec.TotalCost,
			fmt.Sprintf("PENGEMBALIAN BIAYA (REFUND): %s - %s", rec.ID, rec.CustomerName), now),
		debit(entity.AccountPendapatanJasa, rec.ServiceFee,
			"PEMBATALAN PENDAPATAN JASA: "+rec.ID, now),
	}
	if partsTotal > 0 {
		entries = append(entries, debit(entity.AccountPenjualan, partsTotal,
			"PEMBATALAN PENDAPATAN SUKU CADANG: "+rec.ID, now))
	}
	if err := tx.Ledger().Append(entries...); err != nil {
		return err
	}

	reason := "Refund Suku Cadang Service " + rec.ID
	for _, part := range rec.PartsUsed {
		if _, _, err := uc.inventory.AdjustInTx(tx, part.ProductID, entity.StockIn, part.Quantity, reason, now); err != nil {
			return err
		}
	}
	return nil
}

// AddPart memasang suku cadang ke tiket dengan snapshot harga katalog dan
// menghitung ulang TotalCost. TIDAK ada efek stok ataupun jurnal di sini:
// suku cadang yang dipasang lalu dilepas sebelum pickup tidak pernah
// menyentuh stok fisik.
func (uc *UseCase) AddPart(ctx context.Context, serviceID string, in dto.AddPartRequest) (*entity.ServiceRecord, error) {
	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}

	var updated *entity.ServiceRecord
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		rec, err := uc.editableRecord(tx, serviceID)
		if err != nil {
			return err
		}
		product, err := tx.Products().GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: produk %s", domain.ErrNotFound, in.ProductID)
		}

		found := false
		for i := range rec.PartsUsed {
			if rec.PartsUsed[i].ProductID == product.ID {
				rec.PartsUsed[i].Quantity += qty
				rec.PartsUsed[i].Total = int64(rec.PartsUsed[i].Quantity) * rec.PartsUsed[i].Price
				found = true
				break
			}
		}
		if !found {
			rec.PartsUsed = append(rec.PartsUsed, entity.SaleItem{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  qty,
				Price:     product.Price,
				Total:     int64(qty) * product.Price,
			})
		}
		rec.RecalcTotalCost()

		if err := tx.Services().Update(rec); err != nil {
			return err
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RemovePart melepas suku cadang dari tiket dan menghitung ulang TotalCost.
func (uc *UseCase) RemovePart(ctx context.Context, serviceID, productID string) (*entity.ServiceRecord, error) {
	var updated *entity.ServiceRecord
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		rec, err := uc.editableRecord(tx, serviceID)
		if err != nil {
			return err
		}

		parts := rec.PartsUsed[:0]
		for _, p := range rec.PartsUsed {
			if p.ProductID != productID {
				parts = append(parts, p)
			}
		}
		rec.PartsUsed = parts
		rec.RecalcTotalCost()

		if err := tx.Services().Update(rec); err != nil {
			return err
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateNotes menyimpan catatan teknisi.
func (uc *UseCase) UpdateNotes(ctx context.Context, serviceID, notes string) (*entity.ServiceRecord, error) {
	var updated *entity.ServiceRecord
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		rec, err := tx.Services().GetByID(serviceID)
		if err != nil {
			return err
		}
		if rec == nil {
			return fmt.Errorf("%w: service %s", domain.ErrNotFound, serviceID)
		}
		rec.Notes = notes
		if err := tx.Services().Update(rec); err != nil {
			return err
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetByID mengambil satu tiket.
func (uc *UseCase) GetByID(_ context.Context, id string) (*entity.ServiceRecord, error) {
	rec, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: service %s", domain.ErrNotFound, id)
	}
	return rec, nil
}

// List mengembalikan seluruh tiket service.
func (uc *UseCase) List(_ context.Context) ([]*entity.ServiceRecord, error) {
	return uc.serviceRepo.List()
}

// editableRecord mengambil tiket yang suku cadangnya masih boleh diubah:
// sebelum pickup, belum batal, dan belum refund.
func (uc *UseCase) editableRecord(tx repository.Tx, id string) (*entity.ServiceRecord, error) {
	rec, err := tx.Services().GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: service %s", domain.ErrNotFound, id)
	}
	switch rec.Status {
	case entity.ServicePickedUp, entity.ServiceCancelled, entity.ServiceRefunded:
		return nil, fmt.Errorf("%w: suku cadang terkunci pada status %s", domain.ErrInvalidInput, rec.Status)
	}
	return rec, nil
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
