package sheetcfg

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps the configuration in process memory. Used when no
// DATABASE_URL is configured; the stored value does not survive restarts.
type MemoryRepository struct {
	mu  sync.RWMutex
	cfg *Config
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Get returns the stored configuration, or ErrNotConfigured.
func (r *MemoryRepository) Get(_ context.Context) (*Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.cfg == nil {
		return nil, ErrNotConfigured
	}
	copied := *r.cfg
	return &copied, nil
}

// Put stores the configuration, replacing any previous value.
func (r *MemoryRepository) Put(_ context.Context, cfg *Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *cfg
	stored.UpdatedAt = time.Now().UTC()
	r.cfg = &stored
	return nil
}
