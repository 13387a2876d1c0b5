//go:build sqlite_preupdate_hook

package sqlitec

/*
#include <sqlite3.h>
*/
import "C"
import (
	"runtime/cgo"
	"unsafe"
)

// csqlitePreUpdateTrampoline is invoked by SQLite before each row change on
// a connection with a registered preupdate hook. pCtx carries the cgo handle
// of the registration.
//
//export csqlitePreUpdateTrampoline
func csqlitePreUpdateTrampoline(pCtx unsafe.Pointer, db *C.sqlite3, op C.int, zDb *C.char, zName *C.char, iKey1 C.sqlite3_int64, iKey2 C.sqlite3_int64) {
	hookCtx, ok := cgo.Handle(uintptr(pCtx)).Value().(*preUpdateHookCtx)
	if !ok || hookCtx.fn == nil {
		return
	}

	hookCtx.fn(PreUpdateData{
		Conn:         hookCtx.conn,
		Op:           int(op),
		DatabaseName: C.GoString(zDb),
		TableName:    C.GoString(zName),
		OldRowID:     int64(iKey1),
		NewRowID:     int64(iKey2),
	})
}
