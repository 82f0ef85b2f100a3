package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bcrcell/bcr-erp/internal/application/dto"
	"github.com/bcrcell/bcr-erp/internal/application/inventory"
)

// InventoryHandler menangani mutasi stok manual dan log stok (terproteksi).
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler membangun handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Adjust mencatat satu mutasi stok manual (IN, OUT, atau ADJUSTMENT).
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "badan request tidak valid"})
	}
	product, err := h.uc.RegisterAdjustment(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// Logs mengembalikan jejak mutasi stok satu produk.
func (h *InventoryHandler) Logs(c *fiber.Ctx) error {
	logs, err := h.uc.Logs(c.Context(), c.Params("productId"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(logs)
}
