package log

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Level(t *testing.T) {
	t.Setenv("DEBUG", "")
	assert.Equal(t, zerolog.InfoLevel, NewLogger().GetLevel())

	t.Setenv("DEBUG", "true")
	assert.Equal(t, zerolog.DebugLevel, NewLogger().GetLevel())
}

func TestEventLogger(t *testing.T) {
	assert.NotNil(t, EventLogger(zerolog.Nop()))
}
