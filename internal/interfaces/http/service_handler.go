package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bcrcell/bcr-erp/internal/application/dto"
	"github.com/bcrcell/bcr-erp/internal/application/servicedesk"
)

// ServiceHandler menangani tiket service HP (terproteksi).
type ServiceHandler struct {
	uc *servicedesk.UseCase
}

// NewServiceHandler membangun handler.
func NewServiceHandler(uc *servicedesk.UseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// Create mendaftarkan tiket service baru. Nama teknisi diambil dari operator
// yang sedang login.
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "badan request tidak valid"})
	}
	rec, err := h.uc.Create(c.Context(), GetUsername(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// List mengembalikan seluruh tiket service.
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(list)
}

// GetByID mengambil satu tiket.
func (h *ServiceHandler) GetByID(c *fiber.Ctx) error {
	rec, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(rec)
}

// ChangeStatus menjalankan satu transisi status tiket beserta efek
// pembukuannya.
func (h *ServiceHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeServiceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "badan request tidak valid"})
	}
	rec, err := h.uc.ChangeStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(rec)
}

// AddPart memasang suku cadang ke tiket.
func (h *ServiceHandler) AddPart(c *fiber.Ctx) error {
	var in dto.AddPartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "badan request tidak valid"})
	}
	rec, err := h.uc.AddPart(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(rec)
}

// RemovePart melepas suku cadang dari tiket.
func (h *ServiceHandler) RemovePart(c *fiber.Ctx) error {
	rec, err := h.uc.RemovePart(c.Context(), c.Params("id"), c.Params("productId"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(rec)
}

// UpdateNotes menyimpan catatan teknisi.
func (h *ServiceHandler) UpdateNotes(c *fiber.Ctx) error {
	var in dto.UpdateNotesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "badan request tidak valid"})
	}
	rec, err := h.uc.UpdateNotes(c.Context(), c.Params("id"), in.Notes)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(rec)
}
