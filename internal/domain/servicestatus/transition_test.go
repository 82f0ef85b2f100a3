package servicestatus_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcrcell/bcr-erp/internal/domain/entity"
	"github.com/bcrcell/bcr-erp/internal/domain/servicestatus"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabel transisi diuji exhaustive: setiap pasangan (from, to) dicek terhadap
// himpunan transisi sah. Perubahan tak sengaja pada tabel langsung ketahuan.
// ──────────────────────────────────────────────────────────────────────────────

var allStatuses = []string{
	entity.ServicePending,
	entity.ServiceInProgress,
	entity.ServiceCompleted,
	entity.ServiceCancelled,
	entity.ServicePickedUp,
	entity.ServiceWarrantyClaim,
	entity.ServiceRefunded,
}

var legal = map[[2]string]servicestatus.Effect{
	{entity.ServicePending, entity.ServiceInProgress}:        servicestatus.EffectNone,
	{entity.ServicePending, entity.ServicePickedUp}:          servicestatus.EffectPostPickup,
	{entity.ServicePending, entity.ServiceCancelled}:         servicestatus.EffectNone,
	{entity.ServiceInProgress, entity.ServiceCompleted}:      servicestatus.EffectNone,
	{entity.ServiceInProgress, entity.ServicePickedUp}:       servicestatus.EffectPostPickup,
	{entity.ServiceInProgress, entity.ServiceCancelled}:      servicestatus.EffectNone,
	{entity.ServiceCompleted, entity.ServicePickedUp}:        servicestatus.EffectPostPickup,
	{entity.ServiceCompleted, entity.ServiceCancelled}:       servicestatus.EffectNone,
	{entity.ServicePickedUp, entity.ServiceWarrantyClaim}:    servicestatus.EffectNone,
	{entity.ServicePickedUp, entity.ServiceRefunded}:         servicestatus.EffectPostRefund,
	{entity.ServiceWarrantyClaim, entity.ServiceCompleted}:   servicestatus.EffectNone,
	{entity.ServiceWarrantyClaim, entity.ServicePickedUp}:    servicestatus.EffectPostPickup,
	{entity.ServiceWarrantyClaim, entity.ServiceCancelled}:   servicestatus.EffectNone,
}

func TestResolve_SemuaPasangan(t *testing.T) {
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			eff, ok := servicestatus.Resolve(from, to)
			wantEff, wantOK := legal[[2]string{from, to}]
			assert.Equal(t, wantOK, ok, "transisi %s -> %s", from, to)
			if wantOK {
				assert.Equal(t, wantEff, eff, "efek %s -> %s", from, to)
			}
		}
	}
}

func TestResolve_StatusTakDikenal(t *testing.T) {
	_, ok := servicestatus.Resolve("LOST", entity.ServicePickedUp)
	assert.False(t, ok)
}

func TestTerminal(t *testing.T) {
	assert.True(t, servicestatus.Terminal(entity.ServiceRefunded))
	assert.True(t, servicestatus.Terminal(entity.ServiceCancelled))
	assert.False(t, servicestatus.Terminal(entity.ServicePending))
	assert.False(t, servicestatus.Terminal(entity.ServicePickedUp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Pembukuan tanggal
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyTimestamps_CompletedSekaliSaja(t *testing.T) {
	first := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)

	rec := &entity.ServiceRecord{Status: entity.ServiceInProgress}
	servicestatus.ApplyTimestamps(rec, entity.ServiceCompleted, first)
	require.NotNil(t, rec.CompletedDate)
	assert.Equal(t, first, *rec.CompletedDate)

	// Masuk PICKED_UP kemudian: tanggal selesai tidak boleh ditimpa.
	servicestatus.ApplyTimestamps(rec, entity.ServicePickedUp, second)
	assert.Equal(t, first, *rec.CompletedDate, "CompletedDate hanya terisi sekali")
	assert.Equal(t, first, *rec.CompletedTimestamp)
	require.NotNil(t, rec.PickedUpTimestamp)
	assert.Equal(t, second, *rec.PickedUpTimestamp)
	assert.Equal(t, entity.ServicePickedUp, rec.Status)
}

func TestApplyTimestamps_KeluarPickedUp(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	rec := &entity.ServiceRecord{Status: entity.ServiceCompleted}
	servicestatus.ApplyTimestamps(rec, entity.ServicePickedUp, now)
	require.NotNil(t, rec.PickedUpTimestamp)

	// PICKED_UP -> WARRANTY_CLAIM: timestamp pengambilan dikosongkan,
	// tanggal selesai juga (status bukan selesai).
	servicestatus.ApplyTimestamps(rec, entity.ServiceWarrantyClaim, now.Add(time.Hour))
	assert.Nil(t, rec.PickedUpTimestamp)
	assert.Nil(t, rec.CompletedDate)
	assert.Nil(t, rec.CompletedTimestamp)

	// WARRANTY_CLAIM -> COMPLETED lalu -> PICKED_UP lagi: siklus klaim garansi.
	servicestatus.ApplyTimestamps(rec, entity.ServiceCompleted, now.Add(2*time.Hour))
	require.NotNil(t, rec.CompletedDate)
	servicestatus.ApplyTimestamps(rec, entity.ServicePickedUp, now.Add(3*time.Hour))
	require.NotNil(t, rec.PickedUpTimestamp)
	assert.Equal(t, now.Add(3*time.Hour), *rec.PickedUpTimestamp)
}

func TestApplyTimestamps_PickedUpKeCompletedPertahankanPickup(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := &entity.ServiceRecord{Status: entity.ServiceInProgress}
	servicestatus.ApplyTimestamps(rec, entity.ServicePickedUp, now)
	pickedUp := *rec.PickedUpTimestamp

	// Menuju COMPLETED: PickedUpTimestamp dipertahankan apa adanya.
	servicestatus.ApplyTimestamps(rec, entity.ServiceCompleted, now.Add(time.Hour))
	require.NotNil(t, rec.PickedUpTimestamp)
	assert.Equal(t, pickedUp, *rec.PickedUpTimestamp)
}
