package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bcrcell/bcr-erp/internal/application/auth"
	"github.com/bcrcell/bcr-erp/internal/application/dto"
)

// AuthHandler menangani login operator admin.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler membangun handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login menukar kredensial admin dengan token sesi.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "badan request tidak valid"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
