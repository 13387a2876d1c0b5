//go:build !sqlite_custom && !sqlcipher

package sqlitec

/*
#cgo CFLAGS: -I/usr/local/include
#cgo LDFLAGS: -L/usr/local/lib -lsqlite3
#cgo linux LDFLAGS: -lm
*/
import "C"
