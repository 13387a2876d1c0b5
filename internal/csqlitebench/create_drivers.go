package csqlitebench

import (
	"database/sql"
	"fmt"
	"os"
	"path"

	_ "github.com/mattn/go-sqlite3"
	"github.com/nsqlite/csqlite/sqlitedrv"
)

func createMattnDriver(dir string) (*sql.DB, error) {
	dbPath := path.Join(dir, "mattn", "bench.db")

	if err := os.MkdirAll(path.Dir(dbPath), 0755); err != nil {
		return nil, err
	}
	fmt.Println("mattn/go-sqlite3 db path:", dbPath)

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func createCsqliteDriver(dir string) (*sql.DB, error) {
	dbPath := path.Join(dir, "csqlite", "bench.db")

	if err := os.MkdirAll(path.Dir(dbPath), 0755); err != nil {
		return nil, err
	}
	fmt.Println("csqlite db path:", dbPath)

	db := sql.OpenDB(sqlitedrv.NewConnector(
		dbPath,
		sqlitedrv.WithBusyTimeout(5000),
		sqlitedrv.WithJournalMode(sqlitedrv.JournalWAL),
	))

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
