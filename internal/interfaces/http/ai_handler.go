package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bcrcell/bcr-erp/internal/application/dto"
	"github.com/bcrcell/bcr-erp/internal/application/insights"
)

// AIHandler menangani wawasan bisnis berbantuan AI (terproteksi).
type AIHandler struct {
	uc *insights.UseCase
}

// NewAIHandler membangun handler.
func NewAIHandler(uc *insights.UseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Insights meminta ringkasan wawasan bisnis. Selalu 200 dengan teks;
// kegagalan asisten AI sudah diturunkan jadi pesan fallback di usecase.
func (h *AIHandler) Insights(c *fiber.Ctx) error {
	return c.JSON(dto.InsightResponse{Insights: h.uc.Generate(c.Context())})
}
