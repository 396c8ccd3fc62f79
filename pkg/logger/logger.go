// Package logger salida estructurada del servicio sobre zerolog.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mdmgroup/inventory-api/pkg/config"
)

// Logger superficie de logging del servicio. Envuelve zerolog para poder
// inyectarlo en middlewares y casos de uso sin acoplar la librería.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger a partir de la sección App de la configuración:
// consola legible en development, JSON en cualquier otro entorno. El nivel
// viene de App.LogLevel y cada línea lleva el nombre del servicio.
func New(app config.AppConfig) *Logger {
	var w io.Writer = os.Stdout
	if app.Env == config.EnvDevelopment {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).
		Level(parseLevel(app.LogLevel)).
		With().
		Timestamp().
		Str("service", app.Name).
		Logger()

	// Redirigir el logger global de zerolog para librerías que lo usen
	log.Logger = zl

	return &Logger{zl: zl}
}

// parseLevel mapea el nivel configurado; un valor desconocido o vacío cae a info.
func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Debug, Info, Warn, Error, Fatal delegados a zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
