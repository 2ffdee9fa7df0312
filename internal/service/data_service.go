package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/maheshrc27/socialplanner/internal/models"
	"github.com/maheshrc27/socialplanner/internal/store"
)

type DataService interface {
	ImportFile(filename string, data []byte) (int, error)
	Export() (filename string, body []byte, err error)
}

type dataService struct {
	store *store.Store
}

func NewDataService(s *store.Store) DataService {
	return &dataService{store: s}
}

// ImportFile parses an uploaded JSON or CSV file into content records and
// appends them to the store. A parse failure imports nothing; individual
// records past parsing are not validated.
func (s *dataService) ImportFile(filename string, data []byte) (int, error) {
	var records []models.ContentItem
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		records, err = parseJSON(data)
	case ".csv":
		records, err = parseCSV(string(data))
	default:
		err = errors.New("unsupported file type, use .json or .csv")
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return s.store.ImportData(records), nil
}

func parseJSON(data []byte) ([]models.ContentItem, error) {
	var records []models.ContentItem
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("invalid import file: %w", err)
	}
	return records, nil
}

// parseCSV consumes the planner's naive CSV dialect: the first line is a
// literal comma-separated header, each later non-blank line is split on
// commas and zipped against it. There is no quoting, so fields containing
// commas are not representable.
func parseCSV(text string) ([]models.ContentItem, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return nil, errors.New("csv file is empty")
	}

	header := strings.Split(lines[0], ",")
	records := make([]models.ContentItem, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := strings.Split(line, ",")
		var record models.ContentItem
		for i, key := range header {
			if i >= len(values) {
				break
			}
			setContentField(&record, strings.TrimSpace(key), strings.TrimSpace(values[i]))
		}
		records = append(records, record)
	}
	return records, nil
}

func setContentField(c *models.ContentItem, key, value string) {
	switch key {
	case "id":
		c.ID = value
	case "type":
		c.Type = value
	case "title":
		c.Title = value
	case "description":
		c.Description = value
	case "platform":
		c.Platform = value
	case "tags":
		c.Tags = value
	case "status":
		c.Status = value
	case "scheduledDate":
		c.ScheduledDate = value
	case "createdAt":
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			c.CreatedAt = t
		}
	case "updatedAt":
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			c.UpdatedAt = t
		}
	}
}

// Export serializes the content collection to pretty-printed JSON with a
// date-stamped download filename.
func (s *dataService) Export() (string, []byte, error) {
	body, err := json.MarshalIndent(s.store.ExportData(), "", "  ")
	if err != nil {
		slog.Error(err.Error())
		return "", nil, err
	}

	filename := fmt.Sprintf("social-planner-content-%s.json", time.Now().Format("2006-01-02"))
	return filename, body, nil
}
