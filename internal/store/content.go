package store

import (
	"strings"
	"time"

	"github.com/maheshrc27/socialplanner/internal/models"
	"github.com/maheshrc27/socialplanner/internal/planner"
	"github.com/maheshrc27/socialplanner/internal/stats"
	"github.com/maheshrc27/socialplanner/internal/transfer"
	"github.com/maheshrc27/socialplanner/pkg/utils"
)

// AddContent stamps the record and appends it. No schema validation happens
// here: partially-formed records are stored as-is, the creation form is the
// validation layer.
func (s *Store) AddContent(c models.ContentItem) models.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if c.ID == "" {
		c.ID = utils.NewID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	s.state.Contents = append(s.state.Contents, c)
	s.persistLocked()
	return c
}

// UpdateContent merges patch into the matching record and refreshes its
// updatedAt stamp. Missing ids are a silent no-op.
func (s *Store) UpdateContent(id string, patch transfer.ContentPatch) (models.ContentItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Contents {
		if s.state.Contents[i].ID == id {
			applyPatch(&s.state.Contents[i], patch)
			s.state.Contents[i].UpdatedAt = time.Now()
			s.persistLocked()
			return s.state.Contents[i], true
		}
	}
	return models.ContentItem{}, false
}

func (s *Store) DeleteContent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Contents[:0]
	for _, c := range s.state.Contents {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.state.Contents = kept
	s.persistLocked()
}

func (s *Store) DeleteMultipleContents(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := s.state.Contents[:0]
	for _, c := range s.state.Contents {
		if _, ok := drop[c.ID]; !ok {
			kept = append(kept, c)
		}
	}
	s.state.Contents = kept
	s.persistLocked()
}

// GetContentByID returns the matching record or nil.
func (s *Store) GetContentByID(id string) *models.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.state.Contents {
		if c.ID == id {
			found := c
			return &found
		}
	}
	return nil
}

func (s *Store) ListContents() []models.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ContentItem(nil), s.state.Contents...)
}

// SearchContents does a case-insensitive substring match across title,
// description, tags, platform and type. An empty query returns everything.
func (s *Store) SearchContents(query string) []models.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if query == "" {
		return append([]models.ContentItem(nil), s.state.Contents...)
	}

	q := strings.ToLower(query)
	matched := []models.ContentItem{}
	for _, c := range s.state.Contents {
		if strings.Contains(strings.ToLower(c.Title), q) ||
			strings.Contains(strings.ToLower(c.Description), q) ||
			strings.Contains(strings.ToLower(c.Tags), q) ||
			strings.Contains(strings.ToLower(c.Platform), q) ||
			strings.Contains(strings.ToLower(c.Type), q) {
			matched = append(matched, c)
		}
	}
	return matched
}

// FilterContents applies a conjunctive filter; empty filter fields are no
// constraint. Date bounds apply to the scheduled date; items whose scheduled
// date cannot be parsed are not excluded by date bounds.
func (s *Store) FilterContents(filters transfer.ContentFilters) []models.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []models.ContentItem{}
	for _, c := range s.state.Contents {
		if filters.Type != "" && c.Type != filters.Type {
			continue
		}
		if filters.Platform != "" && c.Platform != filters.Platform {
			continue
		}
		if filters.Status != "" && c.Status != filters.Status {
			continue
		}
		if !withinDateBounds(c.ScheduledDate, filters.DateFrom, filters.DateTo) {
			continue
		}
		matched = append(matched, c)
	}
	return matched
}

func withinDateBounds(scheduled, from, to string) bool {
	t, ok := planner.ParseScheduledDate(scheduled)
	if !ok {
		return true
	}
	if from != "" {
		if f, ok := planner.ParseScheduledDate(from); ok && t.Before(f) {
			return false
		}
	}
	if to != "" {
		if u, ok := planner.ParseScheduledDate(to); ok && t.After(u) {
			return false
		}
	}
	return true
}

// BulkUpdateContents applies the same patch to every matching record with a
// single shared updatedAt stamp. Returns the number of records touched.
func (s *Store) BulkUpdateContents(ids []string, patch transfer.ContentPatch) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	match := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		match[id] = struct{}{}
	}

	stamp := time.Now()
	updated := 0
	for i := range s.state.Contents {
		if _, ok := match[s.state.Contents[i].ID]; ok {
			applyPatch(&s.state.Contents[i], patch)
			s.state.Contents[i].UpdatedAt = stamp
			updated++
		}
	}
	if updated > 0 {
		s.persistLocked()
	}
	return updated
}

// ImportData stamps missing ids and timestamps per record and appends them
// all. Individual records are not validated beyond that; permissive import
// is deliberate (see DESIGN.md). Returns the number of records imported.
func (s *Store) ImportData(records []models.ContentItem) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for _, r := range records {
		if r.ID == "" {
			r.ID = utils.NewID()
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = now
		}
		r.UpdatedAt = now
		s.state.Contents = append(s.state.Contents, r)
	}

	s.persistLocked()
	return len(records)
}

func (s *Store) ExportData() []models.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ContentItem(nil), s.state.Contents...)
}

func (s *Store) GetStats() stats.ContentStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stats.Contents(s.state.Contents)
}

func applyPatch(c *models.ContentItem, p transfer.ContentPatch) {
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Platform != nil {
		c.Platform = *p.Platform
	}
	if p.Tags != nil {
		c.Tags = *p.Tags
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.ScheduledDate != nil {
		c.ScheduledDate = *p.ScheduledDate
	}
}
