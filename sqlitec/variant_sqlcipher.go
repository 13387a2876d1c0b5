//go:build sqlcipher

package sqlitec

// The sqlcipher variant links against a system SQLCipher. The include path
// is added so that <sqlite3.h> resolves to SQLCipher's copy of the header.

/*
#cgo CFLAGS: -DSQLITE_HAS_CODEC
#cgo linux CFLAGS: -I/usr/include/sqlcipher
#cgo darwin CFLAGS: -I/usr/local/opt/sqlcipher/include/sqlcipher
#cgo darwin LDFLAGS: -L/usr/local/opt/sqlcipher/lib
#cgo LDFLAGS: -lsqlcipher -lcrypto
*/
import "C"
