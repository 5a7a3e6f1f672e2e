package relational

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"admindash/internal/orders"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS orders (
  order_id  VARCHAR PRIMARY KEY,
  user_name VARCHAR NOT NULL,
  project   VARCHAR NOT NULL,
  address   VARCHAR NOT NULL,
  date_text VARCHAR NOT NULL,
  status    VARCHAR NOT NULL
);
`

// OrderRepo reads and writes orders through database/sql.
type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// OpenOrderRepo opens dsn, migrates it and seeds it with rows when the table
// is empty.
func OpenOrderRepo(ctx context.Context, dsn string, rows []orders.Order, opts ...DuckDBOption) (*OrderRepo, error) {
	client, err := NewDuckDBClient(dsn, opts...)
	if err != nil {
		return nil, err
	}
	repo := NewOrderRepo(client.DB())
	if err := repo.Migrate(ctx); err != nil {
		_ = repo.Close()
		return nil, err
	}

	counts, err := repo.CountByStatus(ctx)
	if err != nil {
		_ = repo.Close()
		return nil, err
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 && len(rows) > 0 {
		if err := repo.SeedOrders(ctx, rows); err != nil {
			_ = repo.Close()
			return nil, err
		}
	}
	return repo, nil
}

// Settings reports the engine settings of the underlying database.
func (r *OrderRepo) Settings(ctx context.Context) (Settings, error) {
	return readSettings(ctx, r.db)
}

func (r *OrderRepo) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *OrderRepo) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, SchemaSQL); err != nil {
		return fmt.Errorf("migrate orders: %w", err)
	}
	return nil
}

func (r *OrderRepo) SeedOrders(ctx context.Context, rows []orders.Order) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO orders (order_id, user_name, project, address, date_text, status)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare seed: %w", err)
	}
	defer stmt.Close()

	for _, o := range rows {
		if o.ID == "" {
			return fmt.Errorf("seed order: empty id")
		}
		if _, err = stmt.ExecContext(ctx, o.ID, o.User, o.Project, o.Address, o.Date, o.Status); err != nil {
			return fmt.Errorf("seed order %s: %w", o.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
