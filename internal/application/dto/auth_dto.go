package dto

// LoginRequest kredensial operator admin tetap.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token sesi untuk seluruh rute bisnis.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
