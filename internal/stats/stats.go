// Package stats computes the dashboard figures from the current planner
// state. Everything is recomputed from scratch per call; collections are
// user-entered and stay small, so there is no cached aggregation.
package stats

import (
	"sort"
	"time"

	"github.com/maheshrc27/socialplanner/internal/models"
)

type ContentStats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Scheduled int `json:"scheduled"`
	Drafts    int `json:"drafts"`
	Archived  int `json:"archived"`
}

func Contents(contents []models.ContentItem) ContentStats {
	s := ContentStats{Total: len(contents)}
	for _, c := range contents {
		switch c.Status {
		case models.ContentStatusPublished:
			s.Published++
		case models.ContentStatusScheduled:
			s.Scheduled++
		case models.ContentStatusDraft:
			s.Drafts++
		case models.ContentStatusArchived:
			s.Archived++
		}
	}
	return s
}

// WeeklyProgress is the share of the weekly content goal reached so far:
// items created since the most recent Sunday midnight, divided by the goal,
// as a percentage capped at 100.
func WeeklyProgress(contents []models.ContentItem, now time.Time, goal int) float64 {
	if goal <= 0 {
		goal = 5
	}

	weekStart := time.Date(now.Year(), now.Month(), now.Day()-int(now.Weekday()), 0, 0, 0, 0, now.Location())
	weekEnd := weekStart.AddDate(0, 0, 7)

	count := 0
	for _, c := range contents {
		if c.CreatedAt.IsZero() {
			continue
		}
		if !c.CreatedAt.Before(weekStart) && c.CreatedAt.Before(weekEnd) {
			count++
		}
	}

	progress := float64(count) / float64(goal) * 100
	if progress > 100 {
		progress = 100
	}
	return progress
}

type CategoryStats struct {
	Total  int `json:"total"`
	Recent int `json:"recent"`
}

type AssetStats struct {
	Images   CategoryStats `json:"images"`
	Videos   CategoryStats `json:"videos"`
	Captions CategoryStats `json:"captions"`
	Hashtags CategoryStats `json:"hashtags"`
}

func Assets(lib models.AssetLibrary, now time.Time) AssetStats {
	return AssetStats{
		Images:   categoryStats(lib.Images, now),
		Videos:   categoryStats(lib.Videos, now),
		Captions: categoryStats(lib.Captions, now),
		Hashtags: categoryStats(lib.Hashtags, now),
	}
}

func categoryStats(assets []models.Asset, now time.Time) CategoryStats {
	cutoff := now.Add(-7 * 24 * time.Hour)
	s := CategoryStats{Total: len(assets)}
	for _, a := range assets {
		if d, ok := parseAssetDate(a.Date); ok && d.After(cutoff) {
			s.Recent++
		}
	}
	return s
}

// RecentAsset is an asset annotated with the collection it came from.
type RecentAsset struct {
	models.Asset
	AssetKind string `json:"assetKind"` // image, video, caption, hashtag
}

// RecentAssets merges the four collections, newest first, truncated to limit.
func RecentAssets(lib models.AssetLibrary, limit int) []RecentAsset {
	merged := make([]RecentAsset, 0, len(lib.Images)+len(lib.Videos)+len(lib.Captions)+len(lib.Hashtags))
	for _, a := range lib.Images {
		merged = append(merged, RecentAsset{Asset: a, AssetKind: "image"})
	}
	for _, a := range lib.Videos {
		merged = append(merged, RecentAsset{Asset: a, AssetKind: "video"})
	}
	for _, a := range lib.Captions {
		merged = append(merged, RecentAsset{Asset: a, AssetKind: "caption"})
	}
	for _, a := range lib.Hashtags {
		merged = append(merged, RecentAsset{Asset: a, AssetKind: "hashtag"})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		di, _ := parseAssetDate(merged[i].Date)
		dj, _ := parseAssetDate(merged[j].Date)
		return di.After(dj)
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

func parseAssetDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if d, err := time.Parse(models.AssetDateLayout, value); err == nil {
		return d, true
	}
	if d, err := time.Parse(time.RFC3339, value); err == nil {
		return d, true
	}
	return time.Time{}, false
}
