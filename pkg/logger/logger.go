package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opsi logger.
type Config struct {
	Env   string // development -> konsol terbaca; production -> JSON
	Level string // trace, debug, info, warn, error
}

// Logger pembungkus zerolog untuk injeksi dan konsistensi.
type Logger struct {
	zl zerolog.Logger
}

// New membuat logger terstruktur. Development memakai keluaran konsol,
// production JSON.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level := parseLevel(cfg.Level)
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()

	// Arahkan logger global zerolog untuk pustaka yang memakainya
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Info memulai event level info.
func (l *Logger) Info() *zerolog.Event { return l.zl.Info() }

// Warn memulai event level warn.
func (l *Logger) Warn() *zerolog.Event { return l.zl.Warn() }

// Error memulai event level error.
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// Fatal memulai event fatal (os.Exit(1) setelah Msg).
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
