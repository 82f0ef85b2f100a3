// Package servicestatus memodelkan siklus hidup tiket service HP sebagai
// tabel transisi eksplisit: setiap pasangan (status lama, status baru) punya
// keputusan diizinkan/tidak dan efek pembukuan yang harus diterapkan.
package servicestatus

import (
	"time"

	"github.com/bcrcell/bcr-erp/internal/domain/entity"
)

// Effect adalah efek samping pembukuan dari satu transisi status.
type Effect int

const (
	// EffectNone transisi administratif: hanya status dan tanggal yang berubah.
	EffectNone Effect = iota
	// EffectPostPickup unit diambil & lunas: debit KAS sebesar TotalCost,
	// kredit PENDAPATAN_JASA + PENJUALAN (suku cadang), stok OUT per suku cadang.
	EffectPostPickup
	// EffectPostRefund pengembalian dana: jurnal cermin dari pickup,
	// stok IN per suku cadang.
	EffectPostRefund
)

// allowed memetakan status asal ke himpunan status tujuan yang sah.
// PICKED_UP dapat dicapai dari semua status non-terminal (pembayaran bisa
// terjadi kapan pun unit diambil); REFUNDED hanya dari PICKED_UP;
// CANCELLED dari semua status non-terminal. REFUNDED dan CANCELLED terminal.
var allowed = map[string]map[string]Effect{
	entity.ServicePending: {
		entity.ServiceInProgress: EffectNone,
		entity.ServicePickedUp:   EffectPostPickup,
		entity.ServiceCancelled:  EffectNone,
	},
	entity.ServiceInProgress: {
		entity.ServiceCompleted: EffectNone,
		entity.ServicePickedUp:  EffectPostPickup,
		entity.ServiceCancelled: EffectNone,
	},
	entity.ServiceCompleted: {
		entity.ServicePickedUp:  EffectPostPickup,
		entity.ServiceCancelled: EffectNone,
	},
	entity.ServicePickedUp: {
		entity.ServiceWarrantyClaim: EffectNone,
		entity.ServiceRefunded:      EffectPostRefund,
	},
	entity.ServiceWarrantyClaim: {
		entity.ServiceCompleted: EffectNone,
		entity.ServicePickedUp:  EffectPostPickup,
		entity.ServiceCancelled: EffectNone,
	},
	// REFUNDED dan CANCELLED tidak punya transisi keluar.
	entity.ServiceRefunded:  {},
	entity.ServiceCancelled: {},
}

// Resolve mengembalikan efek transisi from→to dan apakah transisi itu sah.
func Resolve(from, to string) (Effect, bool) {
	targets, ok := allowed[from]
	if !ok {
		return EffectNone, false
	}
	eff, ok := targets[to]
	return eff, ok
}

// Terminal melaporkan apakah status tidak punya transisi keluar lagi.
func Terminal(status string) bool {
	targets, ok := allowed[status]
	return ok && len(targets) == 0
}

// ApplyTimestamps menyalin pembukuan tanggal dari transisi ke rekor:
//   - masuk COMPLETED/PICKED_UP mengisi CompletedDate/CompletedTimestamp sekali
//     saja (tidak pernah ditimpa); status lain mengosongkannya kembali.
//   - masuk PICKED_UP mengisi PickedUpTimestamp sekali saja; keluar dari
//     PICKED_UP mengosongkannya, kecuali menuju COMPLETED (dipertahankan).
func ApplyTimestamps(rec *entity.ServiceRecord, to string, now time.Time) {
	nowT := now
	finished := to == entity.ServiceCompleted || to == entity.ServicePickedUp
	if finished {
		if rec.CompletedDate == nil {
			rec.CompletedDate = &nowT
		}
		if rec.CompletedTimestamp == nil {
			rec.CompletedTimestamp = &nowT
		}
	} else {
		rec.CompletedDate = nil
		rec.CompletedTimestamp = nil
	}

	switch {
	case to == entity.ServicePickedUp:
		if rec.PickedUpTimestamp == nil {
			rec.PickedUpTimestamp = &nowT
		}
	case to == entity.ServiceCompleted:
		// dipertahankan apa adanya
	default:
		rec.PickedUpTimestamp = nil
	}
	rec.Status = to
}
