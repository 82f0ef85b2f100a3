// Package insights mengorkestrasi wawasan bisnis berbantuan AI.
// Kegagalan kolaborator eksternal TIDAK pernah merambat keluar: jawabannya
// selalu teks, paling buruk string fallback tetap.
package insights

import (
	"context"
	"time"

	"github.com/bcrcell/bcr-erp/internal/application/dto"
	"github.com/bcrcell/bcr-erp/internal/application/ports"
	"github.com/bcrcell/bcr-erp/internal/domain/repository"
	"github.com/bcrcell/bcr-erp/pkg/logger"
)

// FallbackMessage jawaban saat asisten AI tidak bisa dihubungi.
const FallbackMessage = "Terjadi kesalahan saat menghubungi asisten AI."

const llmTimeout = 20 * time.Second

// UseCase pembuat wawasan bisnis.
type UseCase struct {
	llm         ports.InsightService
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	serviceRepo repository.ServiceRepository
	expenseRepo repository.ExpenseRepository
	logRepo     repository.StockLogRepository
	log         *logger.Logger
}

// NewUseCase membangun pembuat wawasan dengan port LLM dan repositori
// read-only sumber snapshot.
func NewUseCase(
	llm ports.InsightService,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	serviceRepo repository.ServiceRepository,
	expenseRepo repository.ExpenseRepository,
	logRepo repository.StockLogRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		llm:         llm,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		serviceRepo: serviceRepo,
		expenseRepo: expenseRepo,
		logRepo:     logRepo,
		log:         log,
	}
}

// Generate menyusun snapshot bisnis penuh dan memintakan ringkasan ke
// asisten AI. Error jaringan/kunci API diturunkan menjadi FallbackMessage.
func (uc *UseCase) Generate(ctx context.Context) string {
	snapshot, err := uc.collect()
	if err != nil {
		uc.log.Error().Err(err).Msg("menyusun snapshot bisnis")
		return FallbackMessage
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	text, err := uc.llm.BusinessInsights(ctx, *snapshot)
	if err != nil {
		uc.log.Warn().Err(err).Msg("asisten AI tidak tersedia")
		return FallbackMessage
	}
	return text
}

func (uc *UseCase) collect() (*dto.BusinessSnapshot, error) {
	sales, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.List()
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	stockLogs, err := uc.logRepo.List()
	if err != nil {
		return nil, err
	}
	services, err := uc.serviceRepo.List()
	if err != nil {
		return nil, err
	}
	return &dto.BusinessSnapshot{
		Sales:     sales,
		Expenses:  expenses,
		Products:  products,
		StockLogs: stockLogs,
		Services:  services,
	}, nil
}
