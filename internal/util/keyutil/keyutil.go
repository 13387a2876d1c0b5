// Package keyutil derives raw SQLCipher keys from passphrases and formats
// them as key pragmas. Deriving a raw key on the Go side and handing SQLCipher
// the result skips its built-in PBKDF2 and keeps the KDF choice with the
// application.
package keyutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matthewhartstonge/argon2"
	"golang.org/x/crypto/scrypt"
)

// rawKeyLen is the key size SQLCipher expects for raw keys.
const rawKeyLen = 32

// DeriveArgon2Key derives a raw 32-byte key from the passphrase with
// argon2id. The salt must be stored alongside the database or the key cannot
// be re-derived.
func DeriveArgon2Key(passphrase string, salt []byte) ([]byte, error) {
	if len(salt) == 0 {
		return nil, errors.New("failed to derive key: salt is required")
	}

	config := argon2.DefaultConfig()
	config.HashLength = rawKeyLen
	config.SaltLength = uint32(len(salt))

	raw, err := config.Hash([]byte(passphrase), salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return raw.Hash, nil
}

// DeriveScryptKey derives a raw 32-byte key from the passphrase with scrypt
// and the recommended interactive parameters.
func DeriveScryptKey(passphrase string, salt []byte) ([]byte, error) {
	if len(salt) == 0 {
		return nil, errors.New("failed to derive key: salt is required")
	}

	key, err := scrypt.Key([]byte(passphrase), salt, 1<<15, 8, 1, rawKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}

// RawKeyPragma formats a raw key as the SQLCipher raw-key PRAGMA, bypassing
// its internal key derivation.
//
// https://www.zetetic.net/sqlcipher/sqlcipher-api/#key
func RawKeyPragma(key []byte) (string, error) {
	if len(key) != rawKeyLen {
		return "", fmt.Errorf("failed to format key pragma: raw keys must be %d bytes, got %d", rawKeyLen, len(key))
	}
	return fmt.Sprintf(`PRAGMA key = "x'%X'"`, key), nil
}

// PassphrasePragma formats a passphrase as a PRAGMA key statement, leaving
// key derivation to SQLCipher itself.
func PassphrasePragma(passphrase string) string {
	escaped := strings.ReplaceAll(passphrase, "'", "''")
	return fmt.Sprintf("PRAGMA key = '%s'", escaped)
}
