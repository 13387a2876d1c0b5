//go:build sqlcipher

package sqlitedrv

import (
	"github.com/nsqlite/csqlite/internal/util/keyutil"
)

// WithEncryptionKey derives a raw 32-byte key from the passphrase with
// argon2id and issues it as PRAGMA key before any other statement runs on
// the connection. The salt must stay stable for the lifetime of the
// database.
func WithEncryptionKey(passphrase string, salt []byte) connectorOption {
	return func(connector *Connector) {
		key, err := keyutil.DeriveArgon2Key(passphrase, salt)
		if err != nil {
			connector.keyErr = err
			return
		}
		connector.keyPragma, connector.keyErr = keyutil.RawKeyPragma(key)
	}
}

// WithRawEncryptionKey issues the given raw 32-byte key as PRAGMA key before
// any other statement runs on the connection.
func WithRawEncryptionKey(key []byte) connectorOption {
	return func(connector *Connector) {
		connector.keyPragma, connector.keyErr = keyutil.RawKeyPragma(key)
	}
}

// WithPassphrase issues the passphrase as PRAGMA key, leaving key derivation
// to SQLCipher's built-in PBKDF2.
func WithPassphrase(passphrase string) connectorOption {
	return func(connector *Connector) {
		connector.keyPragma = keyutil.PassphrasePragma(passphrase)
	}
}
