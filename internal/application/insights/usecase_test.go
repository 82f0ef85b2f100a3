package insights_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcrcell/bcr-erp/internal/application/dto"
	"github.com/bcrcell/bcr-erp/internal/application/insights"
	"github.com/bcrcell/bcr-erp/internal/infrastructure/localstore"
	"github.com/bcrcell/bcr-erp/pkg/logger"
)

// fakeLLM mengontrol jawaban port InsightService dan merekam snapshot
// yang dikirim ke model.
type fakeLLM struct {
	text     string
	err      error
	snapshot *dto.BusinessSnapshot
}

func (f *fakeLLM) BusinessInsights(_ context.Context, snapshot dto.BusinessSnapshot) (string, error) {
	f.snapshot = &snapshot
	return f.text, f.err
}

func newFixture(t *testing.T, llm *fakeLLM) *insights.UseCase {
	t.Helper()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	store, err := localstore.Open(":memory:", log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return insights.NewUseCase(
		llm,
		store.Products(), store.Sales(), store.Services(), store.Expenses(), store.StockLogs(),
		log,
	)
}

func TestGenerate_MeneruskanJawabanModel(t *testing.T) {
	llm := &fakeLLM{text: "## Wawasan\n- Penjualan stabil."}
	uc := newFixture(t, llm)

	got := uc.Generate(context.Background())
	assert.Equal(t, "## Wawasan\n- Penjualan stabil.", got)

	// Snapshot yang dikirim memuat katalog semaian.
	require.NotNil(t, llm.snapshot)
	assert.Len(t, llm.snapshot.Products, 4)
}

func TestGenerate_ErrorModelJadiFallback(t *testing.T) {
	llm := &fakeLLM{err: errors.New("HTTP 503")}
	uc := newFixture(t, llm)

	got := uc.Generate(context.Background())
	assert.Equal(t, insights.FallbackMessage, got, "kegagalan asisten AI tidak boleh merambat sebagai error")
}
