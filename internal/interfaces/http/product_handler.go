package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bcrcell/bcr-erp/internal/application/catalog"
	"github.com/bcrcell/bcr-erp/internal/application/dto"
)

// ProductHandler menangani master produk (terproteksi).
type ProductHandler struct {
	uc *catalog.UseCase
}

// NewProductHandler membangun handler.
func NewProductHandler(uc *catalog.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create mendaftarkan produk baru.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "badan request tidak valid"})
	}
	product, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// List mengembalikan seluruh katalog.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.List(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(products)
}

// LowStock mengembalikan produk di bawah ambang stok (default 10).
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	threshold := 10
	if raw := c.Query("threshold"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "threshold tidak valid"})
		}
		threshold = v
	}
	products, err := h.uc.LowStock(c.Context(), threshold)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(products)
}

// GetByID mengambil satu produk.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(product)
}

// Update mengubah atribut produk (stok tidak ikut).
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "badan request tidak valid"})
	}
	product, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(product)
}
