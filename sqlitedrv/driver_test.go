package sqlitedrv

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsqlite/csqlite/sqlitec"
)

func newTestDB(t *testing.T, options ...connectorOption) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "drv.db")

	db := sql.OpenDB(NewConnector(dbPath, options...))
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Ping())
	return db
}

func TestDriver(t *testing.T) {
	t.Run("RegisteredWithDatabaseSQL", func(t *testing.T) {
		db, err := sql.Open("csqlite", filepath.Join(t.TempDir(), "open.db"))
		require.NoError(t, err)
		defer db.Close()

		assert.NoError(t, db.Ping())
	})

	t.Run("ExecAndQuery", func(t *testing.T) {
		db := newTestDB(t)

		_, err := db.Exec("CREATE TABLE drv_test (id INTEGER PRIMARY KEY, value TEXT)")
		require.NoError(t, err)

		value := uuid.NewString()
		res, err := db.Exec("INSERT INTO drv_test (value) VALUES (?)", value)
		require.NoError(t, err)

		affected, err := res.RowsAffected()
		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		lastID, err := res.LastInsertId()
		assert.NoError(t, err)
		assert.Equal(t, int64(1), lastID)

		var got string
		err = db.QueryRow("SELECT value FROM drv_test WHERE id = ?", lastID).Scan(&got)
		assert.NoError(t, err)
		assert.Equal(t, value, got)
	})

	t.Run("ScanTypes", func(t *testing.T) {
		db := newTestDB(t)

		_, err := db.Exec("CREATE TABLE typed (i INTEGER, f REAL, s TEXT, b BLOB, n TEXT)")
		require.NoError(t, err)

		_, err = db.Exec(
			"INSERT INTO typed (i, f, s, b, n) VALUES (?, ?, ?, ?, ?)",
			int64(7), 2.5, "text", []byte("blob"), nil,
		)
		require.NoError(t, err)

		var (
			i int64
			f float64
			s string
			b []byte
			n sql.NullString
		)
		err = db.QueryRow("SELECT i, f, s, b, n FROM typed").Scan(&i, &f, &s, &b, &n)
		require.NoError(t, err)
		assert.Equal(t, int64(7), i)
		assert.Equal(t, 2.5, f)
		assert.Equal(t, "text", s)
		assert.Equal(t, []byte("blob"), b)
		assert.False(t, n.Valid)
	})

	t.Run("PreparedStatementReuse", func(t *testing.T) {
		db := newTestDB(t)

		_, err := db.Exec("CREATE TABLE reuse (id INTEGER PRIMARY KEY, value TEXT)")
		require.NoError(t, err)

		stmt, err := db.Prepare("INSERT INTO reuse (value) VALUES (?)")
		require.NoError(t, err)
		defer stmt.Close()

		for i := 0; i < 5; i++ {
			_, err := stmt.Exec(uuid.NewString())
			require.NoError(t, err)
		}

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM reuse").Scan(&count)
		assert.NoError(t, err)
		assert.Equal(t, 5, count)
	})

	t.Run("TransactionCommit", func(t *testing.T) {
		db := newTestDB(t)
		db.SetMaxOpenConns(1)

		_, err := db.Exec("CREATE TABLE txc (id INTEGER PRIMARY KEY)")
		require.NoError(t, err)

		tx, err := db.Begin()
		require.NoError(t, err)
		_, err = tx.Exec("INSERT INTO txc (id) VALUES (1)")
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		var count int
		assert.NoError(t, db.QueryRow("SELECT COUNT(*) FROM txc").Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("TransactionRollback", func(t *testing.T) {
		db := newTestDB(t)
		db.SetMaxOpenConns(1)

		_, err := db.Exec("CREATE TABLE txr (id INTEGER PRIMARY KEY)")
		require.NoError(t, err)

		tx, err := db.Begin()
		require.NoError(t, err)
		_, err = tx.Exec("INSERT INTO txr (id) VALUES (1)")
		require.NoError(t, err)
		require.NoError(t, tx.Rollback())

		var count int
		assert.NoError(t, db.QueryRow("SELECT COUNT(*) FROM txr").Scan(&count))
		assert.Equal(t, 0, count)
	})

	t.Run("PostConnectQueries", func(t *testing.T) {
		db := newTestDB(t, WithPostConnectQueries([]string{"PRAGMA foreign_keys = ON"}))
		db.SetMaxOpenConns(1)

		var enabled int
		assert.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
		assert.Equal(t, 1, enabled)
	})

	t.Run("JournalModeOption", func(t *testing.T) {
		db := newTestDB(t, WithJournalMode(JournalWAL))
		db.SetMaxOpenConns(1)

		var mode string
		assert.NoError(t, db.QueryRow("PRAGMA journal_mode").Scan(&mode))
		assert.Equal(t, "wal", mode)
	})
}

func TestDriverDoubleQuotedStrings(t *testing.T) {
	if !sqlitec.DoubleQuotedStringLiteralsSupported() {
		t.Skip("linked SQLite predates the DQS toggles")
	}

	t.Run("Enabled", func(t *testing.T) {
		db := newTestDB(t, WithDoubleQuotedStrings(true))
		db.SetMaxOpenConns(1)

		_, err := db.Exec("CREATE TABLE dqs (value TEXT)")
		require.NoError(t, err)

		_, err = db.Exec(`INSERT INTO dqs (value) VALUES ("literal")`)
		assert.NoError(t, err)
	})

	t.Run("Disabled", func(t *testing.T) {
		db := newTestDB(t, WithDoubleQuotedStrings(false))
		db.SetMaxOpenConns(1)

		_, err := db.Exec("CREATE TABLE dqs (value TEXT)")
		require.NoError(t, err)

		_, err = db.Exec(`INSERT INTO dqs (value) VALUES ("literal")`)
		assert.Error(t, err)
	})
}
