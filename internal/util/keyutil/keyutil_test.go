package keyutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveArgon2Key(t *testing.T) {
	salt := []byte("0123456789abcdef")

	t.Run("Deterministic", func(t *testing.T) {
		first, err := DeriveArgon2Key("secret", salt)
		assert.NoError(t, err)
		assert.Len(t, first, 32)

		second, err := DeriveArgon2Key("secret", salt)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("PassphraseChangesKey", func(t *testing.T) {
		first, err := DeriveArgon2Key("secret", salt)
		assert.NoError(t, err)

		second, err := DeriveArgon2Key("other", salt)
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("RequiresSalt", func(t *testing.T) {
		_, err := DeriveArgon2Key("secret", nil)
		assert.Error(t, err)
	})
}

func TestDeriveScryptKey(t *testing.T) {
	salt := []byte("0123456789abcdef")

	t.Run("Deterministic", func(t *testing.T) {
		first, err := DeriveScryptKey("secret", salt)
		assert.NoError(t, err)
		assert.Len(t, first, 32)

		second, err := DeriveScryptKey("secret", salt)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("RequiresSalt", func(t *testing.T) {
		_, err := DeriveScryptKey("secret", nil)
		assert.Error(t, err)
	})
}

func TestRawKeyPragma(t *testing.T) {
	t.Run("FormatsHexKey", func(t *testing.T) {
		key := make([]byte, 32)
		key[0] = 0xAB

		pragma, err := RawKeyPragma(key)
		assert.NoError(t, err)
		assert.Contains(t, pragma, `"x'AB00`)
	})

	t.Run("RejectsWrongLength", func(t *testing.T) {
		_, err := RawKeyPragma([]byte("short"))
		assert.Error(t, err)
	})
}

func TestPassphrasePragma(t *testing.T) {
	assert.Equal(t, "PRAGMA key = 'secret'", PassphrasePragma("secret"))
	assert.Equal(t, "PRAGMA key = 'it''s'", PassphrasePragma("it's"))
}
