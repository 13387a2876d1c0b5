package sqlitec

/*
#include <sqlite3.h>

// sqlite3_db_config() is variadic and cannot be called from cgo. The DQS
// verbs only exist since SQLite 3.29.0; on older libraries both toggles
// degrade to silent no-ops so callers can invoke them unconditionally.
#if SQLITE_VERSION_NUMBER >= 3029000
static void csqlite_dqs(sqlite3 *db, int enable) {
	sqlite3_db_config(db, SQLITE_DBCONFIG_DQS_DDL, enable, (void *)0);
	sqlite3_db_config(db, SQLITE_DBCONFIG_DQS_DML, enable, (void *)0);
}

static int csqlite_dqs_supported(void) { return 1; }
#else
static void csqlite_dqs(sqlite3 *db, int enable) { (void)db; (void)enable; }

static int csqlite_dqs_supported(void) { return 0; }
#endif
*/
import "C"

// EnableDoubleQuotedStringLiterals makes the connection accept double-quoted
// strings as string literals instead of identifiers, in both DDL and DML
// statements. No-op on libraries older than 3.29.0.
//
// https://www.sqlite.org/quirks.html#dblquote
func (conn *Conn) EnableDoubleQuotedStringLiterals() {
	C.csqlite_dqs(conn.cDB, 1)
}

// DisableDoubleQuotedStringLiterals makes the connection treat double-quoted
// tokens strictly as identifiers, in both DDL and DML statements. No-op on
// libraries older than 3.29.0.
//
// https://www.sqlite.org/quirks.html#dblquote
func (conn *Conn) DisableDoubleQuotedStringLiterals() {
	C.csqlite_dqs(conn.cDB, 0)
}

// DoubleQuotedStringLiteralsSupported reports whether the linked library is
// recent enough for the DQS toggles to have any effect.
func DoubleQuotedStringLiteralsSupported() bool {
	return C.csqlite_dqs_supported() != 0
}
