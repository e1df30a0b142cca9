// Package runstore persists recommendation runs across SQL backends.
package runstore

import (
	"fmt"
	"sync"
	"time"

	"github.com/pathfinder-ke/pathfinder/internal/contract"
	"github.com/pathfinder-ke/pathfinder/schema"
)

// Table names for run tracking.
const (
	runsTable            = "pathfinder_runs"
	recommendationsTable = "pathfinder_run_recommendations"
)

// RunStoreManagerImpl manages the process-wide run store instance.
type RunStoreManagerImpl struct {
	sync.RWMutex // Protects the store pointer during initialization
	store        contract.RunStore
}

var _ contract.RunStoreManager = &RunStoreManagerImpl{} // Compile-time check

// GetRunStore returns the configured run store, nil before initialization.
func (mgr *RunStoreManagerImpl) GetRunStore() contract.RunStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.store
}

// Global Manager instance for main logic.
var (
	Manager   = &RunStoreManagerImpl{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitRunStore initializes the global run store manager. An empty backend
// leaves run tracking disabled.
func InitRunStore(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		if backend == "" {
			return
		}
		store, err := NewRunStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize run store: %w", err)
			return
		}
		Manager.Lock()
		Manager.store = store
		Manager.Unlock()
	})

	return initErr
}

// CloseRunStore should be called on application shutdown.
func CloseRunStore() { // called from main before exit
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.store != nil {
			_ = Manager.store.Close()
		}
	})
}

// quoteTableName quotes a table identifier for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("%q", name)
	}
}

// formatTime converts a time.Time to the appropriate storage format for the
// backend. SQLite stores timestamps as RFC 3339 text.
func formatTime(t time.Time, backend schema.DatabaseBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.UTC().Format(time.RFC3339Nano)
	default:
		return t
	}
}

// parseTime is the inverse of formatTime for SQLite-stored timestamps.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse stored timestamp %q: %w", s, err)
	}
	return t, nil
}
