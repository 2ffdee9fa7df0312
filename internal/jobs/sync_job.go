package job

import (
	"log/slog"

	"github.com/maheshrc27/socialplanner/internal/store"
)

// StorageSyncJob periodically re-reads durable state so that an external
// writer (another process sharing the data directory) is picked up. In a
// single-writer deployment the store's change marker never moves and the
// job is a cheap no-op.
type StorageSyncJob struct {
	store *store.Store
}

func NewStorageSyncJob(s *store.Store) *StorageSyncJob {
	return &StorageSyncJob{store: s}
}

func (j *StorageSyncJob) SyncStorage() {
	if j.store.Sync() {
		slog.Info("storage sync: reloaded state", "lastUpdated", j.store.LastUpdated())
	}
}
