package sqlitec

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshots(t *testing.T) {
	if !SnapshotsEnabled() {
		t.Run("GetReportsMisuse", func(t *testing.T) {
			conn, err := Open(":memory:")
			require.NoError(t, err)
			defer conn.Close()

			snap, err := conn.SnapshotGet("main")
			assert.Nil(t, snap)
			assert.Error(t, err)

			var sqliteErr *Error
			assert.True(t, errors.As(err, &sqliteErr))
			assert.Equal(t, SQLITE_MISUSE, sqliteErr.Code)
		})

		t.Run("FreeNeverFaults", func(t *testing.T) {
			var snap *Snapshot
			snap.Free()
			(&Snapshot{}).Free()
		})

		t.Run("CompareReportsEqual", func(t *testing.T) {
			assert.Equal(t, 0, SnapshotCompare(&Snapshot{}, &Snapshot{}))
			assert.Equal(t, 0, SnapshotCompare(nil, nil))
		})
		return
	}

	newWalConn := func(t *testing.T) *Conn {
		dbPath := filepath.Join(t.TempDir(), "snap.db")
		conn, err := Open(dbPath)
		require.NoError(t, err)
		t.Cleanup(func() { _ = conn.Close() })

		require.NoError(t, conn.Exec("PRAGMA journal_mode = WAL"))
		require.NoError(t, conn.Exec("CREATE TABLE snap_test (id INTEGER PRIMARY KEY, value TEXT)"))
		require.NoError(t, conn.Exec("INSERT INTO snap_test (value) VALUES ('seed')"))
		return conn
	}

	t.Run("GetFreeRoundTrip", func(t *testing.T) {
		conn := newWalConn(t)

		require.NoError(t, conn.Exec("BEGIN"))
		defer func() { _ = conn.Exec("COMMIT") }()

		_, err := conn.Query("SELECT COUNT(*) FROM snap_test", nil)
		require.NoError(t, err)

		snap, err := conn.SnapshotGet("main")
		require.NoError(t, err)
		require.NotNil(t, snap)

		snap.Free()
		snap.Free()
	})

	t.Run("UnchangedDatabaseComparesEqual", func(t *testing.T) {
		conn := newWalConn(t)

		require.NoError(t, conn.Exec("BEGIN"))
		defer func() { _ = conn.Exec("COMMIT") }()

		_, err := conn.Query("SELECT COUNT(*) FROM snap_test", nil)
		require.NoError(t, err)

		first, err := conn.SnapshotGet("main")
		require.NoError(t, err)
		defer first.Free()

		second, err := conn.SnapshotGet("main")
		require.NoError(t, err)
		defer second.Free()

		assert.Equal(t, 0, SnapshotCompare(first, second))
	})

	t.Run("UnknownSchemaFails", func(t *testing.T) {
		conn := newWalConn(t)

		require.NoError(t, conn.Exec("BEGIN"))
		defer func() { _ = conn.Exec("COMMIT") }()

		snap, err := conn.SnapshotGet("no_such_schema")
		assert.Nil(t, snap)
		assert.Error(t, err)
	})
}
