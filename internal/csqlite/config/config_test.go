package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateDQS(t *testing.T) {
	t.Run("ValidModes", func(t *testing.T) {
		for _, mode := range []string{"default", "on", "off"} {
			assert.NoError(t, validateDQS(mode))
		}
	})

	t.Run("InvalidModes", func(t *testing.T) {
		for _, mode := range []string{"", "ON", "yes", "true", "0"} {
			assert.Error(t, validateDQS(mode))
		}
	})
}

func TestValidateBusyTimeout(t *testing.T) {
	t.Run("ZeroOrGreater", func(t *testing.T) {
		assert.NoError(t, validateBusyTimeout(0))
		assert.NoError(t, validateBusyTimeout(5*time.Second))
	})

	t.Run("Negative", func(t *testing.T) {
		assert.Error(t, validateBusyTimeout(-time.Millisecond))
	})
}
