package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/socialplanner/internal/models"
)

func TestContents(t *testing.T) {
	items := []models.ContentItem{
		{Status: models.ContentStatusPublished},
		{Status: models.ContentStatusPublished},
		{Status: models.ContentStatusDraft},
		{Status: models.ContentStatusScheduled},
		{Status: models.ContentStatusArchived},
		{Status: "Unexpected"},
	}

	s := Contents(items)
	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 2, s.Published)
	assert.Equal(t, 1, s.Drafts)
	assert.Equal(t, 1, s.Scheduled)
	assert.Equal(t, 1, s.Archived)
	assert.LessOrEqual(t, s.Published+s.Drafts+s.Scheduled+s.Archived, s.Total)

	empty := Contents(nil)
	assert.Equal(t, 0, empty.Total)
}

func TestWeeklyProgress(t *testing.T) {
	// Wednesday June 12 2024; the week started Sunday June 9.
	now := time.Date(2024, 6, 12, 15, 0, 0, 0, time.Local)
	weekStart := time.Date(2024, 6, 9, 0, 0, 0, 0, time.Local)

	createdAt := func(t time.Time) models.ContentItem {
		return models.ContentItem{CreatedAt: t}
	}

	t.Run("counts items created since the most recent Sunday", func(t *testing.T) {
		items := []models.ContentItem{
			createdAt(weekStart),                     // boundary counts
			createdAt(now.Add(-time.Hour)),           // this week
			createdAt(weekStart.Add(-time.Second)),   // last week
			createdAt(weekStart.AddDate(0, 0, -100)), // long ago
			{}, // no createdAt
		}
		assert.InDelta(t, 40.0, WeeklyProgress(items, now, 5), 0.001)
	})

	t.Run("caps at 100 percent", func(t *testing.T) {
		var items []models.ContentItem
		for i := 0; i < 12; i++ {
			items = append(items, createdAt(now.Add(-time.Minute)))
		}
		assert.Equal(t, 100.0, WeeklyProgress(items, now, 5))
	})

	t.Run("empty collection is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, WeeklyProgress(nil, now, 5))
	})

	t.Run("non-positive goal falls back to the default target", func(t *testing.T) {
		items := []models.ContentItem{createdAt(now.Add(-time.Hour))}
		assert.InDelta(t, 20.0, WeeklyProgress(items, now, 0), 0.001)
	})
}

func TestAssets(t *testing.T) {
	now := time.Date(2024, 6, 12, 12, 0, 0, 0, time.Local)
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(models.AssetDateLayout)
	}

	lib := models.AssetLibrary{
		Images: []models.Asset{
			{ID: "1", Date: day(0)},
			{ID: "2", Date: day(-3)},
			{ID: "3", Date: day(-10)},
		},
		Captions: []models.Asset{
			{ID: "4", Date: day(-8)},
		},
		Hashtags: []models.Asset{
			{ID: "5", Date: "garbage"},
		},
	}

	s := Assets(lib, now)
	assert.Equal(t, 3, s.Images.Total)
	assert.Equal(t, 2, s.Images.Recent)
	assert.Equal(t, 1, s.Captions.Total)
	assert.Equal(t, 0, s.Captions.Recent)
	assert.Equal(t, 0, s.Videos.Total)
	assert.Equal(t, 1, s.Hashtags.Total)
	assert.Equal(t, 0, s.Hashtags.Recent, "unparseable dates are never recent")
}

func TestRecentAssets(t *testing.T) {
	lib := models.AssetLibrary{
		Images:   []models.Asset{{ID: "i", Name: "old image", Date: "2024-06-01"}},
		Videos:   []models.Asset{{ID: "v", Name: "new video", Date: "2024-06-10"}},
		Captions: []models.Asset{{ID: "c", Title: "caption", Date: "2024-06-05"}},
		Hashtags: []models.Asset{{ID: "h", Title: "tags", Date: "2024-06-08"}},
	}

	t.Run("merges, sorts newest first and annotates the kind", func(t *testing.T) {
		recent := RecentAssets(lib, 0)
		require.Len(t, recent, 4)
		assert.Equal(t, []string{"v", "h", "c", "i"}, []string{recent[0].ID, recent[1].ID, recent[2].ID, recent[3].ID})
		assert.Equal(t, "video", recent[0].AssetKind)
		assert.Equal(t, "hashtag", recent[1].AssetKind)
	})

	t.Run("truncates to the limit", func(t *testing.T) {
		recent := RecentAssets(lib, 2)
		require.Len(t, recent, 2)
		assert.Equal(t, "v", recent[0].ID)
	})
}
