package service

import (
	"errors"
	"log/slog"

	"github.com/maheshrc27/socialplanner/internal/models"
	"github.com/maheshrc27/socialplanner/internal/store"
	"github.com/maheshrc27/socialplanner/internal/transfer"
)

type ContentService interface {
	Create(cc *transfer.ContentCreation) (models.ContentItem, error)
	Update(id string, patch transfer.ContentPatch) (models.ContentItem, bool)
	Remove(id string)
	RemoveMany(ids []string)
	Get(id string) *models.ContentItem
	List() []models.ContentItem
	Search(query string) []models.ContentItem
	Filter(filters transfer.ContentFilters) []models.ContentItem
	BulkUpdate(ids []string, patch transfer.ContentPatch) int
	ClearAll()
}

type contentService struct {
	store *store.Store
}

func NewContentService(s *store.Store) ContentService {
	return &contentService{store: s}
}

// Create is the validation layer the creation form goes through. The store
// itself stays permissive; only records created here are checked.
func (s *contentService) Create(cc *transfer.ContentCreation) (models.ContentItem, error) {
	if cc == nil {
		err := errors.New("content creation data is nil")
		slog.Error(err.Error())
		return models.ContentItem{}, err
	}
	if cc.Title == "" {
		err := errors.New("title cannot be empty")
		slog.Info(err.Error())
		return models.ContentItem{}, err
	}
	if cc.Description == "" {
		err := errors.New("description cannot be empty")
		slog.Info(err.Error())
		return models.ContentItem{}, err
	}
	if cc.Type == "" {
		err := errors.New("content type cannot be empty")
		slog.Info(err.Error())
		return models.ContentItem{}, err
	}
	if cc.Platform == "" {
		err := errors.New("platform cannot be empty")
		slog.Info(err.Error())
		return models.ContentItem{}, err
	}

	status := cc.Status
	if status == "" {
		status = models.ContentStatusDraft
	}

	item := s.store.AddContent(models.ContentItem{
		Type:          cc.Type,
		Title:         cc.Title,
		Description:   cc.Description,
		Platform:      cc.Platform,
		Tags:          cc.Tags,
		Status:        status,
		ScheduledDate: cc.ScheduledDate,
	})
	return item, nil
}

func (s *contentService) Update(id string, patch transfer.ContentPatch) (models.ContentItem, bool) {
	return s.store.UpdateContent(id, patch)
}

func (s *contentService) Remove(id string) {
	s.store.DeleteContent(id)
}

func (s *contentService) RemoveMany(ids []string) {
	s.store.DeleteMultipleContents(ids)
}

func (s *contentService) Get(id string) *models.ContentItem {
	return s.store.GetContentByID(id)
}

func (s *contentService) List() []models.ContentItem {
	return s.store.ListContents()
}

func (s *contentService) Search(query string) []models.ContentItem {
	return s.store.SearchContents(query)
}

func (s *contentService) Filter(filters transfer.ContentFilters) []models.ContentItem {
	return s.store.FilterContents(filters)
}

func (s *contentService) BulkUpdate(ids []string, patch transfer.ContentPatch) int {
	return s.store.BulkUpdateContents(ids, patch)
}

func (s *contentService) ClearAll() {
	s.store.ClearAllData()
}
