package sqlitec

import (
	"fmt"
	"time"
)

// QueryParam represents one parameter to bind to a query. Name is optional;
// when empty the parameter is bound by position, otherwise it is resolved
// through ParamIndex, so every SQLite naming variant is accepted.
//
// https://www.sqlite.org/lang_expr.html#varparam
type QueryParam struct {
	Name  string
	Value any
}

// QueryResult represents the result of Query for both read and write
// statements.
type QueryResult struct {
	Time         time.Duration
	LastInsertID int64
	RowsAffected int64
	Columns      []string
	Rows         [][]any
}

// Query executes the given SQL query on the SQLite database connection from
// start to finish, returning the result for both write and read operations.
// Whether the statement returns data is detected from its column count.
func (conn *Conn) Query(query string, params []QueryParam) (*QueryResult, error) {
	start := time.Now()

	stmt, err := conn.Prepare(query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query: %w", err)
	}
	defer func() {
		_ = stmt.Finalize()
	}()

	if err := stmt.bindParams(params); err != nil {
		return nil, err
	}

	result := &QueryResult{}
	columnCount := stmt.ColumnCount()

	if columnCount == 0 {
		hasNext := true
		for hasNext {
			hasNext, err = stmt.Step()
			if err != nil {
				return nil, fmt.Errorf("failed to step statement: %w", err)
			}
		}

		result.LastInsertID = conn.LastInsertRowID()
		result.RowsAffected = conn.RowsAffected()
	}

	if columnCount > 0 {
		result.Columns = make([]string, columnCount)
		result.Rows = make([][]any, 0)

		for i := 0; i < columnCount; i++ {
			result.Columns[i] = stmt.ColumnName(i)
		}

		hasNext := true
		for hasNext {
			hasNext, err = stmt.Step()
			if err != nil {
				return nil, fmt.Errorf("failed to step statement: %w", err)
			}
			if !hasNext {
				break
			}

			row := make([]any, columnCount)
			for i := 0; i < columnCount; i++ {
				row[i] = stmt.ColumnValue(i)
			}
			result.Rows = append(result.Rows, row)
		}
	}

	result.Time = time.Since(start)
	return result, nil
}

// bindParams binds the given parameters to the statement, positionally for
// unnamed parameters and by resolved index for named ones.
func (stmt *Stmt) bindParams(params []QueryParam) error {
	position := 0
	for _, param := range params {
		index := 0
		if param.Name != "" {
			index = stmt.ParamIndex(param.Name)
			if index == 0 {
				return fmt.Errorf("failed to bind parameter: no parameter named %q", param.Name)
			}
		}
		if index == 0 {
			position++
			index = position
		} else {
			position = index
		}

		if err := stmt.BindValue(index, param.Value); err != nil {
			return err
		}
	}
	return nil
}
