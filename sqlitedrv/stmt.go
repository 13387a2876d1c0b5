package sqlitedrv

import (
	"database/sql/driver"
	"fmt"
	"io"
	"time"

	"github.com/nsqlite/csqlite/sqlitec"
)

var (
	_ driver.Stmt = (*Stmt)(nil)
	_ driver.Tx   = (*Tx)(nil)
	_ driver.Rows = (*Rows)(nil)
)

// Stmt implements the database/sql/driver.Stmt interface
type Stmt struct {
	conn *Conn
	stmt *sqlitec.Stmt
}

// Close finalizes the statement
func (stmt *Stmt) Close() error {
	return stmt.stmt.Finalize()
}

// NumInput returns the number of bind parameters of the statement
func (stmt *Stmt) NumInput() int {
	return stmt.stmt.ParamCount()
}

// Exec runs the statement to completion without returning rows
func (stmt *Stmt) Exec(args []driver.Value) (driver.Result, error) {
	if err := stmt.rebind(args); err != nil {
		return nil, err
	}

	hasNext := true
	var err error
	for hasNext {
		hasNext, err = stmt.stmt.Step()
		if err != nil {
			return nil, err
		}
	}

	return &Result{
		lastInsertID: stmt.conn.conn.LastInsertRowID(),
		rowsAffected: stmt.conn.conn.RowsAffected(),
	}, nil
}

// Query runs the statement and returns its rows
func (stmt *Stmt) Query(args []driver.Value) (driver.Rows, error) {
	if err := stmt.rebind(args); err != nil {
		return nil, err
	}
	return &Rows{stmt: stmt.stmt}, nil
}

// rebind resets the statement and binds the given driver values
func (stmt *Stmt) rebind(args []driver.Value) error {
	if err := stmt.stmt.Reset(); err != nil {
		return err
	}

	for i, arg := range args {
		index := i + 1

		var err error
		switch v := arg.(type) {
		case nil:
			err = stmt.stmt.BindNull(index)
		case int64:
			err = stmt.stmt.BindInt64(index, v)
		case float64:
			err = stmt.stmt.BindFloat64(index, v)
		case bool:
			if v {
				err = stmt.stmt.BindInt(index, 1)
			} else {
				err = stmt.stmt.BindInt(index, 0)
			}
		case []byte:
			err = stmt.stmt.BindBlob(index, v)
		case string:
			err = stmt.stmt.BindText(index, v)
		case time.Time:
			err = stmt.stmt.BindText(index, v.Format(time.RFC3339Nano))
		default:
			err = fmt.Errorf("unsupported bind type %T", arg)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Tx implements the database/sql/driver.Tx interface
type Tx struct {
	conn *Conn
}

// Commit commits the transaction
func (tx *Tx) Commit() error {
	return tx.conn.conn.Exec("COMMIT")
}

// Rollback aborts the transaction
func (tx *Tx) Rollback() error {
	return tx.conn.conn.Exec("ROLLBACK")
}

// Rows implements the database/sql/driver.Rows interface
type Rows struct {
	stmt *sqlitec.Stmt
	done bool
}

// Columns returns the column names of the result set
func (rows *Rows) Columns() []string {
	count := rows.stmt.ColumnCount()
	columns := make([]string, count)
	for i := 0; i < count; i++ {
		columns[i] = rows.stmt.ColumnName(i)
	}
	return columns
}

// Close resets the statement so it can be executed again
func (rows *Rows) Close() error {
	rows.done = true
	return rows.stmt.Reset()
}

// Next advances to the next row and scans it into dest
func (rows *Rows) Next(dest []driver.Value) error {
	if rows.done {
		return io.EOF
	}

	hasNext, err := rows.stmt.Step()
	if err != nil {
		return err
	}
	if !hasNext {
		rows.done = true
		return io.EOF
	}

	for i := range dest {
		switch rows.stmt.ColumnTypeName(i) {
		case "INTEGER":
			dest[i] = rows.stmt.ColumnInt64(i)
		case "FLOAT":
			dest[i] = rows.stmt.ColumnFloat64(i)
		case "TEXT":
			dest[i] = rows.stmt.ColumnText(i)
		case "BLOB":
			dest[i] = rows.stmt.ColumnBlob(i)
		default:
			dest[i] = nil
		}
	}

	return nil
}

// Result implements the database/sql/driver.Result interface
type Result struct {
	lastInsertID int64
	rowsAffected int64
}

// LastInsertId returns the row ID of the most recent successful INSERT
func (res *Result) LastInsertId() (int64, error) {
	return res.lastInsertID, nil
}

// RowsAffected returns the number of rows changed by the statement
func (res *Result) RowsAffected() (int64, error) {
	return res.rowsAffected, nil
}
