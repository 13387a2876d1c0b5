package sqlitec

/*
#include <sqlite3.h>
#include <stdlib.h>

// sqlite3_bind_text() and sqlite3_bind_blob() take SQLITE_TRANSIENT as their
// destructor argument, a function-pointer constant that cgo cannot express.
// These helpers fix the argument in C.
static int csqlite_bind_text(sqlite3_stmt *stmt, int idx, const char *value, int n) {
	return sqlite3_bind_text(stmt, idx, value, n, SQLITE_TRANSIENT);
}

static int csqlite_bind_blob(sqlite3_stmt *stmt, int idx, const void *value, int n) {
	return sqlite3_bind_blob(stmt, idx, value, n, SQLITE_TRANSIENT);
}
*/
import "C"
import (
	"fmt"
	"unsafe"
)

// Stmt represents a prepared statement in SQLite.
//
// https://www.sqlite.org/c3ref/stmt.html
type Stmt struct {
	conn  *Conn
	cStmt *C.sqlite3_stmt
}

// ReadOnly returns true if the prepared statement makes no direct changes to
// the content of the database file.
//
// https://www.sqlite.org/c3ref/stmt_readonly.html
func (stmt *Stmt) ReadOnly() bool {
	return C.sqlite3_stmt_readonly(stmt.cStmt) != 0
}

// ParamCount returns the number of bind parameters of the statement.
//
// https://www.sqlite.org/c3ref/bind_parameter_count.html
func (stmt *Stmt) ParamCount() int {
	return int(C.sqlite3_bind_parameter_count(stmt.cStmt))
}

// ParamIndex returns the index of the bind parameter with the given name, or
// zero if no such parameter exists. The name is tried as given and, when it
// carries no prefix, with each of the ?, :, @ and $ prefixes.
//
// https://www.sqlite.org/c3ref/bind_parameter_index.html
func (stmt *Stmt) ParamIndex(name string) int {
	if name == "" {
		return 0
	}

	candidates := []string{name}
	if name[0] != '?' && name[0] != ':' && name[0] != '@' && name[0] != '$' {
		candidates = []string{"?" + name, ":" + name, "@" + name, "$" + name}
	}

	for _, candidate := range candidates {
		cName := C.CString(candidate)
		idx := int(C.sqlite3_bind_parameter_index(stmt.cStmt, cName))
		C.free(unsafe.Pointer(cName))
		if idx > 0 {
			return idx
		}
	}

	return 0
}

// BindInt binds an int parameter at the given index.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (stmt *Stmt) BindInt(index int, value int) error {
	if stmt.cStmt == nil {
		return fmt.Errorf("cannot bind to a nil statement")
	}

	resCode := C.sqlite3_bind_int(stmt.cStmt, C.int(index), C.int(value))
	if resCode != SQLITE_OK {
		return fmt.Errorf("failed to bind int: %s", getResCodeStr(resCode))
	}
	return nil
}

// BindInt64 binds an int64 parameter at the given index.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (stmt *Stmt) BindInt64(index int, value int64) error {
	if stmt.cStmt == nil {
		return fmt.Errorf("cannot bind to a nil statement")
	}

	resCode := C.sqlite3_bind_int64(stmt.cStmt, C.int(index), C.sqlite3_int64(value))
	if resCode != SQLITE_OK {
		return fmt.Errorf("failed to bind int64: %s", getResCodeStr(resCode))
	}
	return nil
}

// BindFloat64 binds a float64 parameter at the given index.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (stmt *Stmt) BindFloat64(index int, value float64) error {
	if stmt.cStmt == nil {
		return fmt.Errorf("cannot bind to a nil statement")
	}

	resCode := C.sqlite3_bind_double(stmt.cStmt, C.int(index), C.double(value))
	if resCode != SQLITE_OK {
		return fmt.Errorf("failed to bind float64: %s", getResCodeStr(resCode))
	}
	return nil
}

// BindText binds a string parameter at the given index.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (stmt *Stmt) BindText(index int, value string) error {
	if stmt.cStmt == nil {
		return fmt.Errorf("cannot bind to a nil statement")
	}
	cStr := C.CString(value)
	defer C.free(unsafe.Pointer(cStr))

	resCode := C.csqlite_bind_text(stmt.cStmt, C.int(index), cStr, C.int(-1))
	if resCode != SQLITE_OK {
		return fmt.Errorf("failed to bind text: %s", getResCodeStr(resCode))
	}
	return nil
}

// BindBlob binds a byte slice parameter at the given index.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (stmt *Stmt) BindBlob(index int, data []byte) error {
	if stmt.cStmt == nil {
		return fmt.Errorf("cannot bind to a nil statement")
	}
	if len(data) == 0 {
		return stmt.BindNull(index)
	}

	resCode := C.csqlite_bind_blob(stmt.cStmt, C.int(index), unsafe.Pointer(&data[0]), C.int(len(data)))
	if resCode != SQLITE_OK {
		return fmt.Errorf("failed to bind blob: %s", getResCodeStr(resCode))
	}
	return nil
}

// BindNull binds a NULL value at the given index.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (stmt *Stmt) BindNull(index int) error {
	if stmt.cStmt == nil {
		return fmt.Errorf("cannot bind to a nil statement")
	}

	resCode := C.sqlite3_bind_null(stmt.cStmt, C.int(index))
	if resCode != SQLITE_OK {
		return fmt.Errorf("failed to bind null: %s", getResCodeStr(resCode))
	}
	return nil
}

// BindValue binds a Go value of any supported type at the given index.
func (stmt *Stmt) BindValue(index int, value any) error {
	switch v := value.(type) {
	case nil:
		return stmt.BindNull(index)
	case bool:
		if v {
			return stmt.BindInt(index, 1)
		}
		return stmt.BindInt(index, 0)
	case int:
		return stmt.BindInt(index, v)
	case int64:
		return stmt.BindInt64(index, v)
	case float64:
		return stmt.BindFloat64(index, v)
	case string:
		return stmt.BindText(index, v)
	case []byte:
		return stmt.BindBlob(index, v)
	default:
		return fmt.Errorf("unsupported bind type %T", value)
	}
}

// Step advances the statement to the next row of data, returning true if a new row
// is available, or false if there are no more rows. If an error occurs, it is returned.
//
// https://www.sqlite.org/c3ref/step.html
func (stmt *Stmt) Step() (bool, error) {
	resCode := C.sqlite3_step(stmt.cStmt)

	if resCode == SQLITE_DONE {
		return false, nil
	}

	if resCode == SQLITE_ROW {
		return true, nil
	}

	return false, fmt.Errorf("failed to step statement: %s", getResCodeStr(resCode))
}

// ColumnCount returns the number of columns in the result set of the
// statement.
//
// https://www.sqlite.org/c3ref/column_count.html
func (stmt *Stmt) ColumnCount() int {
	return int(C.sqlite3_column_count(stmt.cStmt))
}

// ColumnName returns the name of the column at the given index.
//
// https://www.sqlite.org/c3ref/column_name.html
func (stmt *Stmt) ColumnName(colIndex int) string {
	return C.GoString(C.sqlite3_column_name(stmt.cStmt, C.int(colIndex)))
}

// ColumnDeclType returns the declared type of the column at the given index.
//
// https://www.sqlite.org/c3ref/column_decltype.html
func (stmt *Stmt) ColumnDeclType(colIndex int) string {
	return C.GoString(C.sqlite3_column_decltype(stmt.cStmt, C.int(colIndex)))
}

// ColumnInt returns the column value at the given index as int.
//
// https://www.sqlite.org/c3ref/column_blob.html
func (stmt *Stmt) ColumnInt(colIndex int) int {
	return int(C.sqlite3_column_int64(stmt.cStmt, C.int(colIndex)))
}

// ColumnInt64 returns the column value at the given index as int64.
//
// https://www.sqlite.org/c3ref/column_blob.html
func (stmt *Stmt) ColumnInt64(colIndex int) int64 {
	return int64(C.sqlite3_column_int64(stmt.cStmt, C.int(colIndex)))
}

// ColumnFloat64 returns the column value at the given index as float64.
//
// https://www.sqlite.org/c3ref/column_blob.html
func (stmt *Stmt) ColumnFloat64(colIndex int) float64 {
	return float64(C.sqlite3_column_double(stmt.cStmt, C.int(colIndex)))
}

// ColumnText returns the column value at the given index as a string.
//
// https://www.sqlite.org/c3ref/column_blob.html
func (stmt *Stmt) ColumnText(colIndex int) string {
	text := (*C.char)(unsafe.Pointer(C.sqlite3_column_text(stmt.cStmt, C.int(colIndex))))
	if text == nil {
		return ""
	}
	length := C.sqlite3_column_bytes(stmt.cStmt, C.int(colIndex))
	return C.GoStringN(text, length)
}

// ColumnBlob returns the column value at the given index as a byte slice.
//
// https://www.sqlite.org/c3ref/column_blob.html
func (stmt *Stmt) ColumnBlob(colIndex int) []byte {
	size := C.sqlite3_column_bytes(stmt.cStmt, C.int(colIndex))
	if size <= 0 {
		return nil
	}
	dataPtr := C.sqlite3_column_blob(stmt.cStmt, C.int(colIndex))
	if dataPtr == nil {
		return nil
	}
	return C.GoBytes(dataPtr, size)
}

// ColumnTypeName returns the runtime SQLite type of the column at the given
// index in the current row: "INTEGER", "FLOAT", "TEXT", "BLOB" or "NULL".
//
// https://www.sqlite.org/c3ref/column_blob.html
func (stmt *Stmt) ColumnTypeName(colIndex int) string {
	switch C.sqlite3_column_type(stmt.cStmt, C.int(colIndex)) {
	case C.SQLITE_INTEGER:
		return "INTEGER"
	case C.SQLITE_FLOAT:
		return "FLOAT"
	case C.SQLITE_TEXT:
		return "TEXT"
	case C.SQLITE_BLOB:
		return "BLOB"
	default:
		return "NULL"
	}
}

// ColumnValue returns the column value at the given index converted to the
// Go type matching its runtime SQLite type.
//
// https://www.sqlite.org/c3ref/column_blob.html
func (stmt *Stmt) ColumnValue(colIndex int) any {
	switch C.sqlite3_column_type(stmt.cStmt, C.int(colIndex)) {
	case C.SQLITE_INTEGER:
		return stmt.ColumnInt(colIndex)
	case C.SQLITE_FLOAT:
		return stmt.ColumnFloat64(colIndex)
	case C.SQLITE_TEXT:
		return stmt.ColumnText(colIndex)
	case C.SQLITE_BLOB:
		return stmt.ColumnBlob(colIndex)
	default:
		return nil
	}
}

// Reset resets the statement so it can be stepped again, keeping the current
// bindings.
//
// https://www.sqlite.org/c3ref/reset.html
func (stmt *Stmt) Reset() error {
	resCode := C.sqlite3_reset(stmt.cStmt)
	if resCode != SQLITE_OK {
		return fmt.Errorf("failed to reset statement: %s", getResCodeStr(resCode))
	}
	return nil
}

// Finalize frees the resources associated with this statement.
//
// https://www.sqlite.org/c3ref/finalize.html
func (stmt *Stmt) Finalize() error {
	if stmt.cStmt == nil {
		return nil
	}

	resCode := C.sqlite3_finalize(stmt.cStmt)
	if resCode != SQLITE_OK {
		return fmt.Errorf("failed to finalize statement: %s: %s", getResCodeStr(resCode), C.GoString(C.sqlite3_errmsg(stmt.conn.cDB)))
	}
	stmt.cStmt = nil

	return nil
}
