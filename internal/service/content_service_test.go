package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/socialplanner/internal/models"
	"github.com/maheshrc27/socialplanner/internal/service"
	"github.com/maheshrc27/socialplanner/internal/transfer"
)

func TestContentCreate(t *testing.T) {
	valid := transfer.ContentCreation{
		Type:        "Post",
		Title:       "Launch Post",
		Description: "x",
		Platform:    "Instagram",
	}

	t.Run("creates a valid record with Draft default", func(t *testing.T) {
		s := newTestStore(t)
		svc := service.NewContentService(s)

		item, err := svc.Create(&valid)
		require.NoError(t, err)
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, models.ContentStatusDraft, item.Status)
		assert.NotNil(t, s.GetContentByID(item.ID))
	})

	t.Run("keeps an explicit status", func(t *testing.T) {
		svc := service.NewContentService(newTestStore(t))

		cc := valid
		cc.Status = models.ContentStatusScheduled
		cc.ScheduledDate = "2024-06-01T10:00"

		item, err := svc.Create(&cc)
		require.NoError(t, err)
		assert.Equal(t, models.ContentStatusScheduled, item.Status)
		assert.Equal(t, "2024-06-01T10:00", item.ScheduledDate)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		s := newTestStore(t)
		svc := service.NewContentService(s)
		before := s.GetStats().Total

		for _, mutate := range []func(*transfer.ContentCreation){
			func(cc *transfer.ContentCreation) { cc.Title = "" },
			func(cc *transfer.ContentCreation) { cc.Description = "" },
			func(cc *transfer.ContentCreation) { cc.Type = "" },
			func(cc *transfer.ContentCreation) { cc.Platform = "" },
		} {
			cc := valid
			mutate(&cc)
			_, err := svc.Create(&cc)
			assert.Error(t, err)
		}
		assert.Equal(t, before, s.GetStats().Total, "rejected forms create nothing")
	})

	t.Run("rejects nil creation data", func(t *testing.T) {
		svc := service.NewContentService(newTestStore(t))
		_, err := svc.Create(nil)
		assert.Error(t, err)
	})
}
