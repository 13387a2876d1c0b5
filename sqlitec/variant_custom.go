//go:build sqlite_custom

package sqlitec

// The sqlite_custom variant compiles its own SQLite from an amalgamation
// dropped into this directory as sqlite3.c, with the optional interfaces
// this package can surface enabled. --allow-multiple-definition lets the
// bundled copy coexist with other SQLite-carrying cgo packages in the same
// binary.

/*
#cgo CFLAGS: -DSQLITE_THREADSAFE=2
#cgo CFLAGS: -DSQLITE_ENABLE_SNAPSHOT
#cgo CFLAGS: -DSQLITE_ENABLE_PREUPDATE_HOOK
#cgo CFLAGS: -DSQLITE_ENABLE_FTS5
#cgo CFLAGS: -DSQLITE_ENABLE_JSON1
#cgo CFLAGS: -DSQLITE_ENABLE_RTREE
#cgo CFLAGS: -DSQLITE_LIKE_DOESNT_MATCH_BLOBS
#cgo CFLAGS: -DSQLITE_OMIT_DEPRECATED
#cgo LDFLAGS: -Wl,--allow-multiple-definition
#cgo linux LDFLAGS: -ldl -lm
#cgo linux CFLAGS: -std=c99
#cgo openbsd LDFLAGS: -lm
#cgo openbsd CFLAGS: -std=c99

#include "sqlite3.c"
*/
import "C"
