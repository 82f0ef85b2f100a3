package domain

import "errors"

// Error domain (tanpa dependensi eksternal).
var (
	ErrNotFound          = errors.New("data tidak ditemukan")
	ErrInvalidInput      = errors.New("input tidak valid")
	ErrDuplicate         = errors.New("data sudah ada")
	ErrUnauthorized      = errors.New("tidak terautentikasi")
	ErrEmptyCart         = errors.New("keranjang kosong")
	ErrInvalidTransition = errors.New("transisi status tidak diizinkan")
)
