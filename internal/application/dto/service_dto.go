package dto

// CreateServiceRequest pendaftaran tiket service HP baru.
// WarrantyDate format "2006-01-02"; kosong = 7 hari sejak pendaftaran.
type CreateServiceRequest struct {
	CustomerID         string `json:"customer_id"`
	CustomerName       string `json:"customer_name"`
	CustomerPhone      string `json:"customer_phone"`
	DeviceModel        string `json:"device_model"`
	IMEI               string `json:"imei"`
	DevicePattern      string `json:"device_pattern"`
	DevicePassword     string `json:"device_password"`
	ProblemDescription string `json:"problem_description"`
	EstimatedCost      int64  `json:"estimated_cost"`
	ServiceFee         int64  `json:"service_fee"`
	WarrantyDate       string `json:"warranty_date"`
}

// ChangeServiceStatusRequest permintaan transisi status tiket.
type ChangeServiceStatusRequest struct {
	Status string `json:"status"`
}

// AddPartRequest memasang suku cadang ke tiket (tanpa efek stok sampai
// PICKED_UP). Quantity 0 dianggap 1.
type AddPartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// UpdateNotesRequest catatan teknisi.
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}
