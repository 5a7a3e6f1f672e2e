// Package relational loads the dashboard's data sets through an embedded
// DuckDB database.
package relational

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb" // Register DuckDB driver
)

// Tuning is the engine configuration applied after the database opens.
// Zero fields keep DuckDB's own defaults.
type Tuning struct {
	Threads       int
	MemoryLimitGB int
	OpenTimeout   time.Duration
}

// DuckDBClient owns the connection to a DuckDB database.
type DuckDBClient struct {
	db     *sql.DB
	tuning Tuning
}

// DuckDBOption adjusts Tuning before the database opens.
type DuckDBOption func(*Tuning)

// WithThreads caps DuckDB's worker threads. n <= 0 is ignored.
func WithThreads(n int) DuckDBOption {
	return func(t *Tuning) { t.Threads = n }
}

// WithMemoryLimit caps DuckDB's buffer memory in gigabytes. gb <= 0 is ignored.
func WithMemoryLimit(gb int) DuckDBOption {
	return func(t *Tuning) { t.MemoryLimitGB = gb }
}

// WithTimeout bounds opening and tuning the database. d <= 0 means no bound.
func WithTimeout(d time.Duration) DuckDBOption {
	return func(t *Tuning) { t.OpenTimeout = d }
}

// NewDuckDBClient opens dsn and applies the tuning options. An empty dsn or
// ":memory:" gives an in-memory database that disappears with the process.
func NewDuckDBClient(dsn string, opts ...DuckDBOption) (*DuckDBClient, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	c := &DuckDBClient{}
	for _, opt := range opts {
		if opt != nil {
			opt(&c.tuning)
		}
	}

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("open duckdb %s: %w", dsn, err)
	}
	// An in-memory database is private to its connection, so keep exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	c.db = db

	ctx := context.Background()
	if c.tuning.OpenTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.tuning.OpenTimeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping duckdb %s: %w", dsn, err)
	}
	if err := c.apply(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return c, nil
}

// NewInMemoryDB opens a private in-memory database.
func NewInMemoryDB(opts ...DuckDBOption) (*DuckDBClient, error) {
	return NewDuckDBClient(":memory:", opts...)
}

// NewFileDB opens a file-backed database.
func NewFileDB(path string, opts ...DuckDBOption) (*DuckDBClient, error) {
	if path == "" {
		return nil, fmt.Errorf("database path required")
	}
	return NewDuckDBClient(path, opts...)
}

func (c *DuckDBClient) apply(ctx context.Context) error {
	if c.tuning.Threads > 0 {
		if _, err := c.db.ExecContext(ctx, fmt.Sprintf("SET threads = %d", c.tuning.Threads)); err != nil {
			return fmt.Errorf("set threads: %w", err)
		}
	}
	if c.tuning.MemoryLimitGB > 0 {
		if _, err := c.db.ExecContext(ctx, fmt.Sprintf("SET memory_limit = '%dGB'", c.tuning.MemoryLimitGB)); err != nil {
			return fmt.Errorf("set memory limit: %w", err)
		}
	}
	return nil
}

// Settings is what DuckDB reports it is running with.
type Settings struct {
	Threads     int64
	MemoryLimit string // human readable, e.g. "1.8 GiB"
}

// Settings reads the live engine settings.
func (c *DuckDBClient) Settings(ctx context.Context) (Settings, error) {
	return readSettings(ctx, c.db)
}

func readSettings(ctx context.Context, db *sql.DB) (Settings, error) {
	var s Settings
	row := db.QueryRowContext(ctx, "SELECT current_setting('threads'), current_setting('memory_limit')")
	if err := row.Scan(&s.Threads, &s.MemoryLimit); err != nil {
		return Settings{}, fmt.Errorf("read duckdb settings: %w", err)
	}
	return s, nil
}

// DB returns the underlying handle.
func (c *DuckDBClient) DB() *sql.DB {
	return c.db
}

func (c *DuckDBClient) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
