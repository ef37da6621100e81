package sheetcfg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository using pgxpool. Expected schema:
//
//	CREATE TABLE sheets_config (
//	    id             smallint PRIMARY KEY DEFAULT 1 CHECK (id = 1),
//	    spreadsheet_id text NOT NULL,
//	    cell_range     text NOT NULL,
//	    updated_at     timestamptz NOT NULL DEFAULT now()
//	);
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository parses the database URL, establishes a connection
// pool, and verifies it with a ping.
func NewPostgresRepository(ctx context.Context, databaseURL string) (*PostgresRepository, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

// Get retrieves the single configuration record.
func (r *PostgresRepository) Get(ctx context.Context) (*Config, error) {
	query := `
		SELECT spreadsheet_id, cell_range, updated_at
		FROM sheets_config
		WHERE id = 1`

	var cfg Config
	err := r.pool.QueryRow(ctx, query).Scan(&cfg.SpreadsheetID, &cfg.Range, &cfg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotConfigured
		}
		return nil, fmt.Errorf("querying sheet configuration: %w", err)
	}

	return &cfg, nil
}

// Put upserts the single configuration record.
func (r *PostgresRepository) Put(ctx context.Context, cfg *Config) error {
	query := `
		INSERT INTO sheets_config (id, spreadsheet_id, cell_range, updated_at)
		VALUES (1, $1, $2, now())
		ON CONFLICT (id) DO UPDATE
		SET spreadsheet_id = EXCLUDED.spreadsheet_id,
		    cell_range = EXCLUDED.cell_range,
		    updated_at = now()`

	if _, err := r.pool.Exec(ctx, query, cfg.SpreadsheetID, cfg.Range); err != nil {
		return fmt.Errorf("storing sheet configuration: %w", err)
	}
	return nil
}

// Ping verifies the database connection is alive.
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close closes the connection pool.
func (r *PostgresRepository) Close() {
	r.pool.Close()
}
