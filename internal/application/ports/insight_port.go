package ports

import (
	"context"

	"github.com/bcrcell/bcr-erp/internal/application/dto"
)

// InsightService adalah port keluar ke asisten AI wawasan bisnis.
// Adapter mana pun (Gemini, mock) mengimplementasikan kontrak ini; lapisan
// aplikasi hanya mengenal summarize(snapshot) -> teks. Konteks harus membawa
// timeout agar panggilan eksternal tidak menggantung goroutine server.
type InsightService interface {
	BusinessInsights(ctx context.Context, snapshot dto.BusinessSnapshot) (string, error)
}
