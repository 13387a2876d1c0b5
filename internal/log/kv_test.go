package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKvToArgs(t *testing.T) {
	t.Run("NoArgs", func(t *testing.T) {
		result := kvToArgs()
		assert.Equal(t, []any{}, result)
	})

	t.Run("OneArg", func(t *testing.T) {
		kv := KV{"key": "value"}
		result := kvToArgs(kv)
		assert.Equal(t, []any{"key", "value"}, result)
	})

	t.Run("MultipleArgs", func(t *testing.T) {
		kv1 := KV{"key1": "value1", "key2": "value2"}
		kv2 := KV{"key3": "value3"}
		result := kvToArgs(kv1, kv2)
		assert.Equal(t, []any{"key1", "value1", "key2", "value2", "key3", "value3"}, result)
	})

	t.Run("DuplicateKeysFirstWins", func(t *testing.T) {
		kv1 := KV{"key": "first"}
		kv2 := KV{"key": "second"}
		result := kvToArgs(kv1, kv2)
		assert.Equal(t, []any{"key", "first"}, result)
	})

	t.Run("Order", func(t *testing.T) {
		kv := KV{"z": "value1", "a": "value2"}
		result := kvToArgs(kv)
		assert.Equal(t, []any{"a", "value2", "z", "value1"}, result)
	})
}

func TestKvToArgsNs(t *testing.T) {
	result := kvToArgsNs("sqlite", KV{"code": 1})
	assert.Equal(t, []any{"namespace", "sqlite", "code", 1}, result)
}
