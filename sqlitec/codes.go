package sqlitec

/*
#include <sqlite3.h>
*/
import "C"
import "fmt"

// Result codes forwarded from the C library. Only the codes this package
// branches on are mirrored here; everything else passes through unchanged
// inside error messages.
//
// https://www.sqlite.org/rescode.html
const (
	SQLITE_OK     = C.SQLITE_OK
	SQLITE_ERROR  = C.SQLITE_ERROR
	SQLITE_BUSY   = C.SQLITE_BUSY
	SQLITE_MISUSE = C.SQLITE_MISUSE
	SQLITE_ROW    = C.SQLITE_ROW
	SQLITE_DONE   = C.SQLITE_DONE
)

// Operation codes reported by preupdate hooks.
//
// https://www.sqlite.org/c3ref/c_alter_table.html
const (
	SQLITE_INSERT = C.SQLITE_INSERT
	SQLITE_UPDATE = C.SQLITE_UPDATE
	SQLITE_DELETE = C.SQLITE_DELETE
)

// Error is a SQLite result code surfaced as a Go error. It is returned by
// operations whose callers need to branch on the code itself, such as the
// snapshot family, where SQLITE_MISUSE means the linked library lacks the
// feature.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return getResCodeStr(C.int(e.Code))
	}
	return fmt.Sprintf("%s: %s", getResCodeStr(C.int(e.Code)), e.Message)
}

// getResCodeStr returns the human readable form of a SQLite result code.
func getResCodeStr(resCode C.int) string {
	return fmt.Sprintf("%s (%d)", C.GoString(C.sqlite3_errstr(resCode)), int(resCode))
}
