package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mdmgroup/inventory-api/pkg/config"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verboso", zerolog.InfoLevel},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, parseLevel(c.in), "nivel %q", c.in)
	}
}

func TestNew_AplicaNivelConfigurado(t *testing.T) {
	l := New(config.AppConfig{Env: config.EnvProduction, Name: "mdm-inventory", LogLevel: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.zl.GetLevel())
}

func TestNew_NivelDesconocidoCaeAInfo(t *testing.T) {
	l := New(config.AppConfig{Env: config.EnvProduction, Name: "mdm-inventory", LogLevel: "ruidoso"})
	assert.Equal(t, zerolog.InfoLevel, l.zl.GetLevel())
}
