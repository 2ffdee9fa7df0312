// Package store holds the single source of truth for planner state. Every
// read and write goes through Store; every mutation is followed by a
// best-effort durable write. Persistence failures never surface to callers:
// the in-memory state stays authoritative and the next successful write
// overwrites stale durable state.
package store

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/maheshrc27/socialplanner/internal/models"
	"github.com/maheshrc27/socialplanner/internal/storage"
)

const (
	snapshotKey    = "storage"
	contentsKey    = "contents"
	lastUpdatedKey = "lastUpdated"
)

type Store struct {
	mu          sync.Mutex
	kv          storage.KV
	namespace   string
	state       models.Snapshot
	lastUpdated string
}

// New constructs the store and rehydrates it from durable storage. A missing
// or corrupt snapshot falls back to the built-in default state; the failure
// is logged, never raised.
func New(kv storage.KV, namespace string) *Store {
	s := &Store{
		kv:        kv,
		namespace: namespace,
	}
	s.loadLocked()
	if marker, ok, err := kv.Get(s.key(lastUpdatedKey)); err == nil && ok {
		s.lastUpdated = marker
	}
	return s
}

func (s *Store) key(suffix string) string {
	return s.namespace + "-" + suffix
}

func (s *Store) loadLocked() {
	s.state = models.DefaultSnapshot(time.Now())

	raw, ok, err := s.kv.Get(s.key(snapshotKey))
	if err != nil {
		slog.Error("failed to load from storage: " + err.Error())
		return
	}
	if !ok {
		return
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		slog.Error("failed to parse stored snapshot: " + err.Error())
		return
	}

	if snapshot.Theme == "" {
		snapshot.Theme = models.ThemeDark
	}
	s.state = snapshot
}

// persistLocked writes the snapshot plus the legacy contents/lastUpdated
// keys. The legacy marker doubles as the change signal the sync job polls.
func (s *Store) persistLocked() {
	snapshot, err := json.Marshal(s.state)
	if err != nil {
		slog.Error("failed to serialize snapshot: " + err.Error())
		return
	}
	if err := s.kv.Set(s.key(snapshotKey), string(snapshot)); err != nil {
		slog.Error("failed to save to storage: " + err.Error())
		return
	}

	contents, err := json.Marshal(s.state.Contents)
	if err != nil {
		slog.Error("failed to serialize contents: " + err.Error())
		return
	}
	if err := s.kv.Set(s.key(contentsKey), string(contents)); err != nil {
		slog.Error("failed to save contents: " + err.Error())
	}

	stamp := time.Now().Format(time.RFC3339Nano)
	if err := s.kv.Set(s.key(lastUpdatedKey), stamp); err != nil {
		slog.Error("failed to save last-updated stamp: " + err.Error())
		return
	}
	s.lastUpdated = stamp
}

// Snapshot returns a copy of the current persisted-subset state.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state
	snapshot.Contents = append([]models.ContentItem(nil), s.state.Contents...)
	snapshot.Assets = copyLibrary(s.state.Assets)
	return snapshot
}

// LastUpdated returns the durable last-updated marker, or empty if none.
func (s *Store) LastUpdated() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	marker, ok, err := s.kv.Get(s.key(lastUpdatedKey))
	if err != nil || !ok {
		return ""
	}
	return marker
}

// Sync re-reads durable state if another writer moved the last-updated
// marker since this store last touched it, reporting whether a reload
// happened. Best effort: a single-writer deployment never takes the reload
// path.
func (s *Store) Sync() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	marker, ok, err := s.kv.Get(s.key(lastUpdatedKey))
	if err != nil || !ok || marker == s.lastUpdated {
		return false
	}
	s.loadLocked()
	s.lastUpdated = marker
	return true
}

func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Theme
}

func (s *Store) ToggleTheme() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Theme == models.ThemeDark {
		s.state.Theme = models.ThemeLight
	} else {
		s.state.Theme = models.ThemeDark
	}
	s.persistLocked()
	return s.state.Theme
}

func (s *Store) SidebarCollapsed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SidebarCollapsed
}

func (s *Store) ToggleSidebar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SidebarCollapsed = !s.state.SidebarCollapsed
	s.persistLocked()
	return s.state.SidebarCollapsed
}

// ClearAllData removes every content item. Assets and UI state stay.
func (s *Store) ClearAllData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Contents = []models.ContentItem{}
	s.persistLocked()
}

func copyLibrary(lib models.AssetLibrary) models.AssetLibrary {
	return models.AssetLibrary{
		Images:   append([]models.Asset(nil), lib.Images...),
		Videos:   append([]models.Asset(nil), lib.Videos...),
		Captions: append([]models.Asset(nil), lib.Captions...),
		Hashtags: append([]models.Asset(nil), lib.Hashtags...),
	}
}
