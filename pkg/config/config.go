package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config mengelompokkan konfigurasi aplikasi (dibaca via Viper dari env dan
// opsional file .env).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	Auth  AuthConfig
	AI    AIConfig
	Store StoreConfig
}

// AppConfig konfigurasi umum aplikasi.
type AppConfig struct {
	Env  string // development, production
	Name string
}

// HTTPConfig konfigurasi server HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr mengembalikan alamat listen (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AuthConfig identitas admin tetap + parameter token sesi.
// Sistem satu operator: tidak ada manajemen user ataupun role.
type AuthConfig struct {
	AdminUsername string
	AdminPassword string
	JWTSecret     string
	JWTExpMinutes int
	JWTIssuer     string
}

// AIConfig konfigurasi asisten wawasan bisnis (Gemini REST).
// APIKey kosong = fitur dimatikan, endpoint membalas string fallback.
type AIConfig struct {
	GeminiAPIKey string
	GeminiModel  string
}

// StoreConfig lokasi berkas snapshot SQLite.
type StoreConfig struct {
	Path string
}

// Load membaca konfigurasi dari variabel lingkungan (dan opsional .env).
// Env vars diprioritaskan. Nama yang dipakai: APP_ENV, HTTP_PORT,
// ADMIN_USERNAME, JWT_SECRET, GEMINI_API_KEY, STORE_PATH, dst.
func Load() (*Config, error) {
	v := viper.New()

	// Opsional: file .env di direktori kerja
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // diabaikan bila tidak ada

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "bcr-erp"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Auth: AuthConfig{
			AdminUsername: getString(v, "ADMIN_USERNAME", "admin"),
			AdminPassword: getString(v, "ADMIN_PASSWORD", "admin123"),
			JWTSecret:     getString(v, "JWT_SECRET", ""),
			JWTExpMinutes: getInt(v, "JWT_EXPIRATION_MINUTES", 12*60),
			JWTIssuer:     getString(v, "JWT_ISSUER", "bcr-erp"),
		},
		AI: AIConfig{
			GeminiAPIKey: getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:  getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
		},
		Store: StoreConfig{
			Path: getString(v, "STORE_PATH", "bcr-erp.db"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}
