package store

import (
	"time"

	"github.com/maheshrc27/socialplanner/internal/models"
	"github.com/maheshrc27/socialplanner/internal/stats"
	"github.com/maheshrc27/socialplanner/internal/transfer"
	"github.com/maheshrc27/socialplanner/pkg/utils"
)

// AddAsset stamps the asset and appends it to the category collection.
// Unknown categories are a no-op.
func (s *Store) AddAsset(category string, a models.Asset) (models.Asset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection := s.state.Assets.Slice(category)
	if collection == nil {
		return models.Asset{}, false
	}

	if a.ID == "" {
		a.ID = utils.NewID()
	}
	if a.Date == "" {
		a.Date = time.Now().Format(models.AssetDateLayout)
	}

	*collection = append(*collection, a)
	s.persistLocked()
	return a, true
}

// UpdateAsset merges patch into the matching asset's metadata. Missing ids
// and unknown categories are a silent no-op.
func (s *Store) UpdateAsset(category, id string, patch transfer.AssetPatch) (models.Asset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection := s.state.Assets.Slice(category)
	if collection == nil {
		return models.Asset{}, false
	}

	for i := range *collection {
		if (*collection)[i].ID == id {
			applyAssetPatch(&(*collection)[i], patch)
			s.persistLocked()
			return (*collection)[i], true
		}
	}
	return models.Asset{}, false
}

func (s *Store) DeleteAsset(category, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection := s.state.Assets.Slice(category)
	if collection == nil {
		return
	}

	kept := (*collection)[:0]
	for _, a := range *collection {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	*collection = kept
	s.persistLocked()
}

// GetAssetsByType returns the category collection, or an empty slice for
// unknown categories.
func (s *Store) GetAssetsByType(category string) []models.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection := s.state.Assets.Slice(category)
	if collection == nil {
		return []models.Asset{}
	}
	return append([]models.Asset(nil), *collection...)
}

func (s *Store) GetAssetStats() stats.AssetStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stats.Assets(s.state.Assets, time.Now())
}

func (s *Store) GetRecentAssets(limit int) []stats.RecentAsset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stats.RecentAssets(s.state.Assets, limit)
}

func applyAssetPatch(a *models.Asset, p transfer.AssetPatch) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Text != nil {
		a.Text = *p.Text
		a.CharacterCount = len(*p.Text)
	}
	if p.Platform != nil {
		a.Platform = *p.Platform
	}
	if p.Tone != nil {
		a.Tone = *p.Tone
	}
	if p.Tags != nil {
		a.Tags = *p.Tags
	}
	if p.Hashtags != nil {
		a.Hashtags = *p.Hashtags
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Reach != nil {
		a.Reach = *p.Reach
	}
	if p.Engagement != nil {
		a.Engagement = *p.Engagement
	}
	if p.Posts != nil {
		a.Posts = *p.Posts
	}
	if p.Trend != nil {
		a.Trend = *p.Trend
	}
}
