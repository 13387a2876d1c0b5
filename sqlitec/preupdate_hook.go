//go:build sqlite_preupdate_hook

package sqlitec

/*
#cgo CFLAGS: -DSQLITE_ENABLE_PREUPDATE_HOOK

#include <sqlite3.h>
#include <stdint.h>

extern void csqlitePreUpdateTrampoline(void *pCtx, sqlite3 *db, int op, char *zDb, char *zName, sqlite3_int64 iKey1, sqlite3_int64 iKey2);

static void csqlite_preupdate_hook(sqlite3 *db, uintptr_t handle) {
	sqlite3_preupdate_hook(
		db,
		(void (*)(void *, sqlite3 *, int, char const *, char const *, sqlite3_int64, sqlite3_int64))csqlitePreUpdateTrampoline,
		(void *)handle
	);
}

static void csqlite_preupdate_unhook(sqlite3 *db) {
	sqlite3_preupdate_hook(db, (void *)0, (void *)0);
}
*/
import "C"
import (
	"fmt"
	"runtime/cgo"
	"sync"
	"unsafe"
)

// PreUpdateHookFunc is invoked immediately before each row-level INSERT,
// UPDATE or DELETE on the connection it is registered on.
type PreUpdateHookFunc func(data PreUpdateData)

// PreUpdateData describes the row change a preupdate hook is observing. Its
// accessor methods are only valid while the hook callback is running.
//
// https://www.sqlite.org/c3ref/preupdate_blobwrite.html
type PreUpdateData struct {
	Conn         *Conn
	Op           int // SQLITE_INSERT, SQLITE_UPDATE or SQLITE_DELETE
	DatabaseName string
	TableName    string
	OldRowID     int64
	NewRowID     int64
}

// preUpdateHooks tracks the cgo handle registered per connection so that
// re-registration and unregistration release the previous handle.
var preUpdateHooks = struct {
	sync.Mutex
	handles map[*Conn]cgo.Handle
}{handles: map[*Conn]cgo.Handle{}}

type preUpdateHookCtx struct {
	conn *Conn
	fn   PreUpdateHookFunc
}

// RegisterPreUpdateHook installs fn as the preupdate hook of the connection.
// Only one hook is active per connection; a second registration replaces the
// first. Passing nil unregisters the hook.
//
// https://www.sqlite.org/c3ref/preupdate_blobwrite.html
func (conn *Conn) RegisterPreUpdateHook(fn PreUpdateHookFunc) {
	preUpdateHooks.Lock()
	defer preUpdateHooks.Unlock()

	if prev, ok := preUpdateHooks.handles[conn]; ok {
		prev.Delete()
		delete(preUpdateHooks.handles, conn)
	}

	if fn == nil {
		C.csqlite_preupdate_unhook(conn.cDB)
		return
	}

	handle := cgo.NewHandle(&preUpdateHookCtx{conn: conn, fn: fn})
	preUpdateHooks.handles[conn] = handle
	C.csqlite_preupdate_hook(conn.cDB, C.uintptr_t(handle))
}

// Count returns the number of columns in the row being changed.
//
// https://www.sqlite.org/c3ref/preupdate_blobwrite.html
func (data *PreUpdateData) Count() int {
	return int(C.sqlite3_preupdate_count(data.Conn.cDB))
}

// Depth returns 0 for changes made by direct SQL, 1 for changes made by
// triggers fired by direct SQL, and so on for nested triggers.
//
// https://www.sqlite.org/c3ref/preupdate_blobwrite.html
func (data *PreUpdateData) Depth() int {
	return int(C.sqlite3_preupdate_depth(data.Conn.cDB))
}

// Old returns the pre-change column values of the row. Only valid for
// SQLITE_UPDATE and SQLITE_DELETE operations.
//
// https://www.sqlite.org/c3ref/preupdate_blobwrite.html
func (data *PreUpdateData) Old() ([]any, error) {
	if data.Op == SQLITE_INSERT {
		return nil, fmt.Errorf("failed to read old values: an INSERT has no old row")
	}
	return data.rowValues(false)
}

// New returns the post-change column values of the row. Only valid for
// SQLITE_INSERT and SQLITE_UPDATE operations.
//
// https://www.sqlite.org/c3ref/preupdate_blobwrite.html
func (data *PreUpdateData) New() ([]any, error) {
	if data.Op == SQLITE_DELETE {
		return nil, fmt.Errorf("failed to read new values: a DELETE has no new row")
	}
	return data.rowValues(true)
}

func (data *PreUpdateData) rowValues(useNew bool) ([]any, error) {
	count := data.Count()
	values := make([]any, count)

	for i := 0; i < count; i++ {
		var cValue *C.sqlite3_value
		var resCode C.int
		if useNew {
			resCode = C.sqlite3_preupdate_new(data.Conn.cDB, C.int(i), &cValue)
		} else {
			resCode = C.sqlite3_preupdate_old(data.Conn.cDB, C.int(i), &cValue)
		}
		if resCode != SQLITE_OK {
			return nil, fmt.Errorf("failed to read row value %d: %s", i, getResCodeStr(resCode))
		}
		values[i] = protectedValueToGo(cValue)
	}

	return values, nil
}

// protectedValueToGo converts a protected sqlite3_value into the Go type
// matching its runtime SQLite type.
func protectedValueToGo(cValue *C.sqlite3_value) any {
	switch C.sqlite3_value_type(cValue) {
	case C.SQLITE_INTEGER:
		return int64(C.sqlite3_value_int64(cValue))
	case C.SQLITE_FLOAT:
		return float64(C.sqlite3_value_double(cValue))
	case C.SQLITE_TEXT:
		text := (*C.char)(unsafe.Pointer(C.sqlite3_value_text(cValue)))
		if text == nil {
			return ""
		}
		return C.GoStringN(text, C.sqlite3_value_bytes(cValue))
	case C.SQLITE_BLOB:
		length := C.sqlite3_value_bytes(cValue)
		if length <= 0 {
			return []byte(nil)
		}
		return C.GoBytes(C.sqlite3_value_blob(cValue), length)
	default:
		return nil
	}
}
