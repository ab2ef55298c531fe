package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controla la salida y el nivel mínimo del logger.
type Config struct {
	Env   string // en development la salida es consola legible; cualquier otro valor, JSON
	Level string // trace, debug, info, warn, error (default: info)
}

// Logger envuelve zerolog para inyectarlo por constructor en vez de usar el
// logger global. Toda la app loggea a través de este tipo.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger de la aplicación según la configuración dada.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()

	// Las librerías que usan el global de zerolog escriben por la misma salida
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

// Eventos por nivel, delegados a zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un sublogger con campos fijos (p. ej. el nombre del componente).
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog expone el logger subyacente para integraciones que piden zerolog.Logger.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
