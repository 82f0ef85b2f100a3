package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bcrcell/bcr-erp/internal/application/reporting"
)

// ReportHandler menangani laporan keuangan dan dashboard (terproteksi).
type ReportHandler struct {
	uc *reporting.UseCase
}

// NewReportHandler membangun handler.
func NewReportHandler(uc *reporting.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary ringkasan keuangan satu rentang tanggal (query start & end,
// format 2006-01-02, inklusif).
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.PeriodSummary(c.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Ledger buku besar terfilter rentang tanggal.
func (h *ReportHandler) Ledger(c *fiber.Ctx) error {
	out, err := h.uc.LedgerView(c.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Dashboard ringkasan dashboard plus deret 7 hari terakhir.
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.DashboardSummary(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
