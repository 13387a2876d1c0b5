// Package sqlitec provides a lightweight wrapper for the SQLite C library,
// centered on the handful of C APIs that cannot be called directly through
// cgo: variadic configuration entry points, function-pointer constants, and
// interfaces that only exist on some library versions or builds.
//
//   - https://www.sqlite.org/cintro.html
//   - https://www.sqlite.org/c3ref/intro.html
//
// # Library variants
//
// Exactly one library variant is linked, selected with build tags:
//
//   - default: dynamic link against the system SQLite (-lsqlite3).
//   - sqlite_custom: compiles a SQLite amalgamation dropped into this
//     directory as sqlite3.c, with snapshots, preupdate hooks, FTS5 and
//     JSON1 enabled.
//   - sqlcipher: dynamic link against SQLCipher (-lsqlcipher).
//
// The sqlite_custom and sqlcipher tags are mutually exclusive.
//
// # Optional features
//
// Snapshot support requires a library compiled with SQLITE_ENABLE_SNAPSHOT
// and the sqlite_snapshot build tag. Without the tag the snapshot functions
// stay callable but degrade the way the engine itself degrades: SnapshotGet
// reports SQLITE_MISUSE, Free is a no-op and SnapshotCompare reports equal.
//
// Preupdate hooks require SQLITE_ENABLE_PREUPDATE_HOOK and the
// sqlite_preupdate_hook build tag. Without the tag the symbols are absent
// entirely, so missing support is a compile-time error, not a runtime one.
package sqlitec
