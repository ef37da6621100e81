// Package sheetcfg persists the runtime spreadsheet configuration — the
// spreadsheet id and cell range that requests fall back to when they don't
// supply their own. A single record; values from the environment remain the
// last-resort default.
package sheetcfg

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured is returned when no configuration has been stored yet.
var ErrNotConfigured = errors.New("sheet configuration not set")

// Config is the stored spreadsheet target.
type Config struct {
	SpreadsheetID string
	Range         string
	UpdatedAt     time.Time
}

// Repository stores and retrieves the single configuration record.
type Repository interface {
	Get(ctx context.Context) (*Config, error)
	Put(ctx context.Context, cfg *Config) error
}
