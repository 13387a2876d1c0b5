//go:build sqlite_preupdate_hook

package sqlitec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreUpdateHook(t *testing.T) {
	type capturedChange struct {
		op        int
		table     string
		database  string
		oldValues []any
		newValues []any
		count     int
		depth     int
	}

	newConn := func(t *testing.T) (*Conn, *[]capturedChange) {
		conn, err := Open(":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { _ = conn.Close() })

		require.NoError(t, conn.Exec("CREATE TABLE hooked (id INTEGER PRIMARY KEY, value TEXT)"))

		changes := &[]capturedChange{}
		conn.RegisterPreUpdateHook(func(data PreUpdateData) {
			change := capturedChange{
				op:       data.Op,
				table:    data.TableName,
				database: data.DatabaseName,
				count:    data.Count(),
				depth:    data.Depth(),
			}
			if data.Op != SQLITE_INSERT {
				change.oldValues, _ = data.Old()
			}
			if data.Op != SQLITE_DELETE {
				change.newValues, _ = data.New()
			}
			*changes = append(*changes, change)
		})

		return conn, changes
	}

	t.Run("Insert", func(t *testing.T) {
		conn, changes := newConn(t)

		require.NoError(t, conn.Exec("INSERT INTO hooked (id, value) VALUES (1, 'one')"))

		require.Len(t, *changes, 1)
		change := (*changes)[0]
		assert.Equal(t, SQLITE_INSERT, change.op)
		assert.Equal(t, "main", change.database)
		assert.Equal(t, "hooked", change.table)
		assert.Equal(t, 2, change.count)
		assert.Equal(t, 0, change.depth)
		assert.Equal(t, []any{int64(1), "one"}, change.newValues)
		assert.Nil(t, change.oldValues)
	})

	t.Run("Update", func(t *testing.T) {
		conn, changes := newConn(t)

		require.NoError(t, conn.Exec("INSERT INTO hooked (id, value) VALUES (1, 'before')"))
		require.NoError(t, conn.Exec("UPDATE hooked SET value = 'after' WHERE id = 1"))

		require.Len(t, *changes, 2)
		change := (*changes)[1]
		assert.Equal(t, SQLITE_UPDATE, change.op)
		assert.Equal(t, []any{int64(1), "before"}, change.oldValues)
		assert.Equal(t, []any{int64(1), "after"}, change.newValues)
	})

	t.Run("Delete", func(t *testing.T) {
		conn, changes := newConn(t)

		require.NoError(t, conn.Exec("INSERT INTO hooked (id, value) VALUES (1, 'gone')"))
		require.NoError(t, conn.Exec("DELETE FROM hooked WHERE id = 1"))

		require.Len(t, *changes, 2)
		change := (*changes)[1]
		assert.Equal(t, SQLITE_DELETE, change.op)
		assert.Equal(t, []any{int64(1), "gone"}, change.oldValues)
		assert.Nil(t, change.newValues)
	})

	t.Run("Unregister", func(t *testing.T) {
		conn, changes := newConn(t)

		conn.RegisterPreUpdateHook(nil)
		require.NoError(t, conn.Exec("INSERT INTO hooked (id, value) VALUES (1, 'silent')"))
		assert.Empty(t, *changes)
	})

	t.Run("ReplaceKeepsLastRegistration", func(t *testing.T) {
		conn, changes := newConn(t)

		replaced := 0
		conn.RegisterPreUpdateHook(func(data PreUpdateData) {
			replaced++
		})

		require.NoError(t, conn.Exec("INSERT INTO hooked (id, value) VALUES (1, 'last')"))
		assert.Empty(t, *changes)
		assert.Equal(t, 1, replaced)
	})
}
