package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bcrcell/bcr-erp/internal/application/dto"
	"github.com/bcrcell/bcr-erp/internal/application/sales"
)

// SaleHandler menangani transaksi kasir (terproteksi).
type SaleHandler struct {
	uc *sales.UseCase
}

// NewSaleHandler membangun handler.
func NewSaleHandler(uc *sales.UseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Checkout menyelesaikan keranjang menjadi transaksi: potong stok, tulis log
// stok, dan bukukan jurnal penjualan dalam satu unit atomik.
func (h *SaleHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "badan request tidak valid"})
	}
	sale, err := h.uc.Checkout(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// List mengembalikan seluruh riwayat transaksi.
func (h *SaleHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(list)
}
