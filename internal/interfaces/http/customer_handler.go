package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bcrcell/bcr-erp/internal/application/customers"
	"github.com/bcrcell/bcr-erp/internal/application/dto"
)

// CustomerHandler menangani buku pelanggan service (terproteksi).
type CustomerHandler struct {
	uc *customers.UseCase
}

// NewCustomerHandler membangun handler.
func NewCustomerHandler(uc *customers.UseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create mendaftarkan pelanggan baru.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "badan request tidak valid"})
	}
	customer, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// List mengembalikan seluruh pelanggan.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(list)
}

// Delete menghapus pelanggan dari buku.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "pelanggan dihapus"})
}
