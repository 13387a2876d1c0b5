//go:build sqlite_snapshot

package sqlitec

/*
#cgo CFLAGS: -DSQLITE_ENABLE_SNAPSHOT

#include <sqlite3.h>
#include <stdlib.h>
*/
import "C"
import "unsafe"

// Snapshot is an opaque handle to a point-in-time view of a WAL database.
// A snapshot is only meaningful against the database it was taken from;
// SQLite leaves cross-database use undefined and so does this package.
//
// https://www.sqlite.org/c3ref/snapshot.html
type Snapshot struct {
	cSnap *C.sqlite3_snapshot
}

// SnapshotsEnabled reports whether this build carries a real snapshot
// implementation.
func SnapshotsEnabled() bool {
	return true
}

// SnapshotGet records a snapshot of the named schema, e.g. "main". The
// database must be in WAL mode and a read transaction must be open or
// obtainable. Failures are returned as *Error with the engine's result code
// passed through unchanged.
//
// https://www.sqlite.org/c3ref/snapshot_get.html
func (conn *Conn) SnapshotGet(schema string) (*Snapshot, error) {
	cSchema := C.CString(schema)
	defer C.free(unsafe.Pointer(cSchema))

	var cSnap *C.sqlite3_snapshot
	resCode := C.sqlite3_snapshot_get(conn.cDB, cSchema, &cSnap)
	if resCode != SQLITE_OK {
		return nil, &Error{Code: int(resCode), Message: conn.getLastError().Error()}
	}

	return &Snapshot{cSnap: cSnap}, nil
}

// Free releases the snapshot. Safe to call on a nil or already freed
// snapshot.
//
// https://www.sqlite.org/c3ref/snapshot_free.html
func (snap *Snapshot) Free() {
	if snap == nil || snap.cSnap == nil {
		return
	}
	C.sqlite3_snapshot_free(snap.cSnap)
	snap.cSnap = nil
}

// SnapshotCompare returns a negative value if a is older than b, zero if
// they are equal, and a positive value if a is newer than b. Both snapshots
// must come from the same database file.
//
// https://www.sqlite.org/c3ref/snapshot_cmp.html
func SnapshotCompare(a, b *Snapshot) int {
	return int(C.sqlite3_snapshot_cmp(a.cSnap, b.cSnap))
}
