package service_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/socialplanner/internal/models"
	"github.com/maheshrc27/socialplanner/internal/service"
	"github.com/maheshrc27/socialplanner/internal/storage"
	"github.com/maheshrc27/socialplanner/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	kv, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return store.New(kv, "social-planner")
}

func TestImportFile(t *testing.T) {
	t.Run("imports a JSON array", func(t *testing.T) {
		s := newTestStore(t)
		svc := service.NewDataService(s)
		before := s.GetStats().Total

		count, err := svc.ImportFile("backup.json", []byte(`[
			{"title": "One", "platform": "Instagram"},
			{"title": "Two", "status": "Draft"}
		]`))
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, before+2, s.GetStats().Total)
	})

	t.Run("imports CSV rows zipped against the header", func(t *testing.T) {
		s := newTestStore(t)
		s.ClearAllData()
		svc := service.NewDataService(s)

		count, err := svc.ImportFile("items.csv", []byte("title,platform\nHello,Instagram"))
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		contents := s.ListContents()
		require.Len(t, contents, 1)
		assert.Equal(t, "Hello", contents[0].Title)
		assert.Equal(t, "Instagram", contents[0].Platform)
		assert.Empty(t, contents[0].Description)
		assert.NotEmpty(t, contents[0].ID, "missing ids are stamped on import")
	})

	t.Run("CSV rows may have fewer values than headers", func(t *testing.T) {
		s := newTestStore(t)
		s.ClearAllData()
		svc := service.NewDataService(s)

		count, err := svc.ImportFile("items.csv", []byte("title,platform,status\nSolo\nFull,YouTube,Draft\n"))
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		contents := s.ListContents()
		assert.Equal(t, "Solo", contents[0].Title)
		assert.Empty(t, contents[0].Platform)
		assert.Equal(t, "Draft", contents[1].Status)
	})

	t.Run("rejects non-array JSON without importing", func(t *testing.T) {
		s := newTestStore(t)
		svc := service.NewDataService(s)
		before := s.GetStats().Total

		_, err := svc.ImportFile("backup.json", []byte(`{"title": "not an array"}`))
		assert.Error(t, err)
		assert.Equal(t, before, s.GetStats().Total)
	})

	t.Run("rejects malformed JSON without importing", func(t *testing.T) {
		s := newTestStore(t)
		svc := service.NewDataService(s)
		before := s.GetStats().Total

		_, err := svc.ImportFile("backup.json", []byte(`[{"title": `))
		assert.Error(t, err)
		assert.Equal(t, before, s.GetStats().Total)
	})

	t.Run("rejects unsupported extensions", func(t *testing.T) {
		svc := service.NewDataService(newTestStore(t))

		_, err := svc.ImportFile("notes.txt", []byte("whatever"))
		assert.Error(t, err)
	})

	t.Run("rejects an empty CSV file", func(t *testing.T) {
		svc := service.NewDataService(newTestStore(t))

		_, err := svc.ImportFile("empty.csv", []byte("\n\n"))
		assert.Error(t, err)
	})
}

func TestExport(t *testing.T) {
	s := newTestStore(t)
	s.ClearAllData()
	s.AddContent(models.ContentItem{Title: "Exported", Platform: "Medium"})
	svc := service.NewDataService(s)

	filename, body, err := svc.Export()
	require.NoError(t, err)

	expected := fmt.Sprintf("social-planner-content-%s.json", time.Now().Format("2006-01-02"))
	assert.Equal(t, expected, filename)

	var records []models.ContentItem
	require.NoError(t, json.Unmarshal(body, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Exported", records[0].Title)

	assert.Contains(t, string(body), "\n  ", "export is pretty-printed")
}
