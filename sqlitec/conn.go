package sqlitec

/*
#include <sqlite3.h>
#include <stdlib.h>
*/
import "C"
import (
	"errors"
	"fmt"
	"unsafe"
)

// Conn represents a connection to a SQLite database.
//
// https://www.sqlite.org/c3ref/sqlite3.html
type Conn struct {
	cDB *C.sqlite3
}

// Open opens a new SQLite database connection using the given path.
//
// https://www.sqlite.org/c3ref/open.html
func Open(filePath string) (*Conn, error) {
	cFilePath := C.CString(filePath)
	defer C.free(unsafe.Pointer(cFilePath))

	var db *C.sqlite3
	resCode := C.sqlite3_open(cFilePath, &db)
	if resCode != SQLITE_OK {
		errMsg := (&Conn{cDB: db}).getLastError()
		_ = C.sqlite3_close(db)
		return nil, fmt.Errorf("failed to open database: %s: %s", getResCodeStr(resCode), errMsg)
	}

	return &Conn{cDB: db}, nil
}

// Close finalizes the connection to the SQLite database.
//
// https://www.sqlite.org/c3ref/close.html
func (conn *Conn) Close() error {
	if conn.cDB == nil {
		return nil
	}

	// The sqlite3_close_v2() interface is intended for use with host
	// languages that are garbage collected, and where the order in which
	// destructors are called is arbitrary.
	resCode := C.sqlite3_close_v2(conn.cDB)
	if resCode != SQLITE_OK {
		return fmt.Errorf("failed to close database: %s: %s", getResCodeStr(resCode), conn.getLastError())
	}
	conn.cDB = nil

	return nil
}

// getLastError returns the last error message from the SQLite database.
func (conn *Conn) getLastError() error {
	if conn.cDB == nil {
		return errors.New("failed to get last error: database connection is nil")
	}
	return errors.New(C.GoString(C.sqlite3_errmsg(conn.cDB)))
}

// LastInsertRowID returns the row ID of the most recent successful INSERT
// into the database from the current connection.
//
// https://www.sqlite.org/c3ref/last_insert_rowid.html
func (conn *Conn) LastInsertRowID() int64 {
	return int64(C.sqlite3_last_insert_rowid(conn.cDB))
}

// RowsAffected returns the number of rows modified, inserted, or deleted by
// the most recent successful INSERT, UPDATE, or DELETE statement from the
// current connection.
//
// https://www.sqlite.org/c3ref/changes.html
func (conn *Conn) RowsAffected() int64 {
	return int64(C.sqlite3_changes(conn.cDB))
}

// BusyTimeout sets the busy handler of the connection to sleep for up to the
// given number of milliseconds when a table is locked.
//
// https://www.sqlite.org/c3ref/busy_timeout.html
func (conn *Conn) BusyTimeout(ms int) error {
	resCode := C.sqlite3_busy_timeout(conn.cDB, C.int(ms))
	if resCode != SQLITE_OK {
		return fmt.Errorf("failed to set busy timeout: %s", getResCodeStr(resCode))
	}
	return nil
}

// Exec executes the given SQL query on the SQLite database connection
// from start to finish, without returning any data.
//
// https://www.sqlite.org/c3ref/exec.html
func (conn *Conn) Exec(query string) error {
	cQuery := C.CString(query)
	defer C.free(unsafe.Pointer(cQuery))

	var errMsg *C.char
	resCode := C.sqlite3_exec(conn.cDB, cQuery, nil, nil, &errMsg)
	if resCode != SQLITE_OK {
		defer C.sqlite3_free(unsafe.Pointer(errMsg))
		return fmt.Errorf("failed to execute query: %s: %s", getResCodeStr(resCode), C.GoString(errMsg))
	}

	return nil
}

// Prepare compiles the given SQL query into a prepared statement.
//
// https://www.sqlite.org/c3ref/prepare.html
func (conn *Conn) Prepare(query string) (*Stmt, error) {
	cQuery := C.CString(query)
	defer C.free(unsafe.Pointer(cQuery))

	var cStmt *C.sqlite3_stmt
	resCode := C.sqlite3_prepare_v2(conn.cDB, cQuery, C.int(-1), &cStmt, nil)
	if resCode != SQLITE_OK {
		return nil, fmt.Errorf("failed to prepare statement: %s: %s", getResCodeStr(resCode), conn.getLastError())
	}
	return &Stmt{conn: conn, cStmt: cStmt}, nil
}
