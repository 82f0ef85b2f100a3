// Package auth autentikasi operator admin tetap. Sistem satu pengguna:
// tidak ada registrasi, manajemen user, ataupun role.
package auth

import (
	"github.com/bcrcell/bcr-erp/internal/application/dto"
	"github.com/bcrcell/bcr-erp/internal/domain"
	"github.com/bcrcell/bcr-erp/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Config identitas admin + parameter token.
type Config struct {
	AdminUsername string
	AdminPassword string
	JWTSecret     string
	ExpMinutes    int
	Issuer        string
}

// UseCase login operator admin.
type UseCase struct {
	username     string
	passwordHash []byte
	cfg          Config
}

// NewUseCase membangun usecase auth; password admin di-hash bcrypt sekali di
// awal supaya plaintext tidak tinggal di memori proses.
func NewUseCase(cfg Config) (*UseCase, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &UseCase{username: cfg.AdminUsername, passwordHash: hash, cfg: cfg}, nil
}

// Login memverifikasi kredensial admin dan menerbitkan token sesi.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username != uc.username {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.cfg.JWTSecret, uc.username, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Username: uc.username}, nil
}
