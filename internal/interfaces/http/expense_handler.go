package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bcrcell/bcr-erp/internal/application/dto"
	"github.com/bcrcell/bcr-erp/internal/application/expense"
)

// ExpenseHandler menangani beban operasional (terproteksi).
type ExpenseHandler struct {
	uc *expense.UseCase
}

// NewExpenseHandler membangun handler.
func NewExpenseHandler(uc *expense.UseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create mencatat beban baru beserta sepasang jurnalnya.
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "badan request tidak valid"})
	}
	exp, err := h.uc.Record(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(exp)
}

// List mengembalikan seluruh beban yang masih tercatat.
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(list)
}

// Delete menghapus beban dan membukukan jurnal baliknya.
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "beban dihapus"})
}
