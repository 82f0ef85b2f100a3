package entity

import "time"

// Status tiket service HP.
const (
	ServicePending       = "PENDING"
	ServiceInProgress    = "IN_PROGRESS"
	ServiceCompleted     = "COMPLETED"
	ServiceCancelled     = "CANCELLED"
	ServicePickedUp      = "PICKED_UP"
	ServiceWarrantyClaim = "WARRANTY_CLAIM"
	ServiceRefunded      = "REFUNDED"
)

// ServiceRecord adalah tiket perbaikan HP yang melewati siklus status.
// TotalCost = ServiceFee + total PartsUsed, dihitung ulang setiap daftar
// suku cadang berubah. Stok suku cadang baru dipotong saat transisi ke
// PICKED_UP, bukan saat suku cadang ditambahkan ke tiket.
type ServiceRecord struct {
	ID                 string     `json:"id"`
	CustomerID         string     `json:"customerId,omitempty"`
	CustomerName       string     `json:"customerName"`
	CustomerPhone      string     `json:"customerPhone"`
	DeviceModel        string     `json:"deviceModel"`
	IMEI               string     `json:"imei,omitempty"`
	DevicePattern      string     `json:"devicePattern,omitempty"`
	DevicePassword     string     `json:"devicePassword,omitempty"`
	ProblemDescription string     `json:"problemDescription"`
	TechnicianName     string     `json:"technicianName"`
	Status             string     `json:"status"`
	EstimatedCost      int64      `json:"estimatedCost"`
	ServiceFee         int64      `json:"serviceFee"`
	PartsUsed          []SaleItem `json:"partsUsed"`
	TotalCost          int64      `json:"totalCost"`
	Timestamp          time.Time  `json:"timestamp"`
	CompletedTimestamp *time.Time `json:"completedTimestamp,omitempty"`
	PickedUpTimestamp  *time.Time `json:"pickedUpTimestamp,omitempty"`
	CompletedDate      *time.Time `json:"completedDate,omitempty"`
	WarrantyDate       *time.Time `json:"warrantyDate,omitempty"`
	Notes              string     `json:"notes,omitempty"`
}

// PartsTotal menjumlahkan nilai seluruh suku cadang yang terpasang.
func (s *ServiceRecord) PartsTotal() int64 {
	var sum int64
	for _, p := range s.PartsUsed {
		sum += p.Total
	}
	return sum
}

// RecalcTotalCost menghitung ulang TotalCost dari ServiceFee + suku cadang.
func (s *ServiceRecord) RecalcTotalCost() {
	s.TotalCost = s.ServiceFee + s.PartsTotal()
}
