// Package sqlitedrv provides a database/sql/driver implementation for the
// SQLite C API wrapper of this project.
//
// This package exists to take advantage of the internal connection pooling
// provided by database/sql while still exposing the underlying wrapper
// connection, so the low-level surface (error log, DQS toggles, snapshots,
// preupdate hooks) stays reachable.
package sqlitedrv

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/nsqlite/csqlite/sqlitec"
	"github.com/orsinium-labs/enum"
)

var (
	_ driver.Driver          = (*Driver)(nil)
	_ driver.Conn            = (*Conn)(nil)
	_ driver.Validator       = (*Conn)(nil)
	_ driver.SessionResetter = (*Conn)(nil)
	_ driver.Connector       = (*Connector)(nil)
)

func init() {
	sql.Register("csqlite", &Driver{})
}

// JournalMode is the journaling mode applied to new connections.
type JournalMode = enum.Member[string]

var (
	JournalDelete   = JournalMode{Value: "DELETE"}
	JournalTruncate = JournalMode{Value: "TRUNCATE"}
	JournalMemory   = JournalMode{Value: "MEMORY"}
	JournalWAL      = JournalMode{Value: "WAL"}
	JournalModes    = enum.New(JournalDelete, JournalTruncate, JournalMemory, JournalWAL)
)

// Synchronous is the fsync policy applied to new connections.
type Synchronous = enum.Member[string]

var (
	SynchronousOff    = Synchronous{Value: "OFF"}
	SynchronousNormal = Synchronous{Value: "NORMAL"}
	SynchronousFull   = Synchronous{Value: "FULL"}
	SynchronousModes  = enum.New(SynchronousOff, SynchronousNormal, SynchronousFull)
)

// Driver implements the database/sql/driver interface
type Driver struct{}

// Open creates a new connection to the SQLite database
func (drv *Driver) Open(dsn string) (driver.Conn, error) {
	connector := NewConnector(dsn)
	return connector.Connect(context.Background())
}

type connectorOption func(*Connector)

// WithPostConnectQueries sets a slice of queries to be executed after a
// connection is established
func WithPostConnectQueries(queries []string) connectorOption {
	return func(connector *Connector) {
		connector.postConnectQueries = queries
	}
}

// WithBusyTimeout sets the busy handler timeout in milliseconds for new
// connections
func WithBusyTimeout(ms int) connectorOption {
	return func(connector *Connector) {
		connector.busyTimeoutMs = ms
	}
}

// WithDoubleQuotedStrings toggles acceptance of double-quoted string
// literals on new connections. When the option is not given the parser
// default of the linked library is left untouched; on libraries older than
// 3.29.0 the toggle is a silent no-op either way.
func WithDoubleQuotedStrings(enabled bool) connectorOption {
	return func(connector *Connector) {
		connector.dqs = &enabled
	}
}

// WithJournalMode sets the journal mode for new connections
func WithJournalMode(mode JournalMode) connectorOption {
	return func(connector *Connector) {
		connector.journalMode = &mode
	}
}

// WithSynchronous sets the synchronous pragma for new connections
func WithSynchronous(mode Synchronous) connectorOption {
	return func(connector *Connector) {
		connector.synchronous = &mode
	}
}

// Connector implements the database/sql/driver.Connector interface
type Connector struct {
	dsn                string
	postConnectQueries []string
	busyTimeoutMs      int
	dqs                *bool
	journalMode        *JournalMode
	synchronous        *Synchronous
	keyPragma          string
	keyErr             error
}

// NewConnector creates a new connector to the SQLite database
func NewConnector(dsn string, options ...connectorOption) *Connector {
	connector := &Connector{
		dsn: dsn,
	}

	for _, option := range options {
		option(connector)
	}

	return connector
}

// Connect creates a new connection to the SQLite database
func (connector *Connector) Connect(_ context.Context) (driver.Conn, error) {
	return newConn(connector)
}

// Driver returns the driver
func (connector *Connector) Driver() driver.Driver {
	return &Driver{}
}

// Conn implements the database/sql/driver.Conn interface
type Conn struct {
	conn *sqlitec.Conn
}

// newConn creates a new connection to the SQLite database
func newConn(connector *Connector) (driver.Conn, error) {
	if connector.keyErr != nil {
		return nil, fmt.Errorf("failed to prepare encryption key: %w", connector.keyErr)
	}

	conn, err := sqlitec.Open(connector.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection: %w", err)
	}

	// The key pragma must run before any statement touches the database.
	if connector.keyPragma != "" {
		if err := conn.Exec(connector.keyPragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to apply encryption key: %w", err)
		}
	}

	if connector.busyTimeoutMs > 0 {
		if err := conn.BusyTimeout(connector.busyTimeoutMs); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	if connector.dqs != nil {
		if *connector.dqs {
			conn.EnableDoubleQuotedStringLiterals()
		} else {
			conn.DisableDoubleQuotedStringLiterals()
		}
	}

	pragmas := []string{}
	if connector.journalMode != nil {
		pragmas = append(pragmas, fmt.Sprintf("PRAGMA journal_mode = %s", connector.journalMode.Value))
	}
	if connector.synchronous != nil {
		pragmas = append(pragmas, fmt.Sprintf("PRAGMA synchronous = %s", connector.synchronous.Value))
	}
	pragmas = append(pragmas, connector.postConnectQueries...)

	for _, pragma := range pragmas {
		if err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf(`failed to execute "%s" post-connect query: %w`, pragma, err)
		}
	}

	return &Conn{
		conn: conn,
	}, nil
}

// RawConn returns the underlying SQLite C API connection
func (conn *Conn) RawConn() *sqlitec.Conn {
	return conn.conn
}

// Close closes the connection to the SQLite database
func (conn *Conn) Close() error {
	if err := conn.conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}

// Prepare compiles the query into a reusable statement
func (conn *Conn) Prepare(query string) (driver.Stmt, error) {
	stmt, err := conn.conn.Prepare(query)
	if err != nil {
		return nil, err
	}
	return &Stmt{conn: conn, stmt: stmt}, nil
}

// Begin starts a deferred transaction
func (conn *Conn) Begin() (driver.Tx, error) {
	if err := conn.conn.Exec("BEGIN"); err != nil {
		return nil, err
	}
	return &Tx{conn: conn}, nil
}

// ResetSession is a no-op; connections carry no per-session state beyond
// what database/sql already resets
func (conn *Conn) ResetSession(_ context.Context) error {
	return nil
}

// IsValid reports whether the connection can be reused by the pool
func (conn *Conn) IsValid() bool {
	return conn.conn != nil
}
