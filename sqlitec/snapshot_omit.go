//go:build !sqlite_snapshot

package sqlitec

// Snapshot is an opaque handle to a point-in-time view of a WAL database.
// This build has no snapshot support; the type exists so callers compile
// unchanged against both build shapes.
type Snapshot struct{}

// SnapshotsEnabled reports whether this build carries a real snapshot
// implementation.
func SnapshotsEnabled() bool {
	return false
}

// SnapshotGet always fails with SQLITE_MISUSE in this build. Absence of the
// feature is a normal, checkable error, never a crash.
func (conn *Conn) SnapshotGet(schema string) (*Snapshot, error) {
	return nil, &Error{Code: SQLITE_MISUSE, Message: "snapshot support is not compiled in"}
}

// Free is a no-op in this build, on any handle value.
func (snap *Snapshot) Free() {}

// SnapshotCompare reports every pair of snapshots as equal in this build.
func SnapshotCompare(a, b *Snapshot) int {
	return 0
}
