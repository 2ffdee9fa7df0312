package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/maheshrc27/socialplanner/internal/models"
	"github.com/maheshrc27/socialplanner/internal/store"
	"github.com/maheshrc27/socialplanner/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var (
	imageExtensions = map[string]struct{}{"jpeg": {}, "jpg": {}, "png": {}, "gif": {}}
	videoExtensions = map[string]struct{}{"mp4": {}, "mov": {}}
)

type AssetService interface {
	Upload(ctx context.Context, category string, files []*multipart.FileHeader) ([]models.Asset, error)
	Create(category string, ac *transfer.AssetCreation) (models.Asset, error)
	Update(category, id string, patch transfer.AssetPatch) (models.Asset, bool)
	Remove(category, id string)
	List(category string) ([]models.Asset, error)
}

type assetService struct {
	store *store.Store
	blob  *BlobService
}

func NewAssetService(s *store.Store, blob *BlobService) AssetService {
	return &assetService{store: s, blob: blob}
}

// Upload stores image/video files: bytes are sniffed for their real type,
// written through the blob service and recorded in the asset library.
func (s *assetService) Upload(ctx context.Context, category string, files []*multipart.FileHeader) ([]models.Asset, error) {
	var allowed map[string]struct{}
	switch category {
	case models.AssetCategoryImages:
		allowed = imageExtensions
	case models.AssetCategoryVideos:
		allowed = videoExtensions
	default:
		err := fmt.Errorf("category %s does not accept file uploads", category)
		slog.Info(err.Error())
		return nil, err
	}

	if len(files) == 0 {
		err := errors.New("no files provided")
		slog.Info(err.Error())
		return nil, err
	}

	var saved []models.Asset
	for _, file := range files {
		asset, err := s.saveFile(ctx, category, allowed, file)
		if err != nil {
			return nil, err
		}
		saved = append(saved, asset)
	}
	return saved, nil
}

func (s *assetService) saveFile(ctx context.Context, category string, allowed map[string]struct{}, file *multipart.FileHeader) (models.Asset, error) {
	fileContent, err := file.Open()
	if err != nil {
		return models.Asset{}, fmt.Errorf("error opening file: %w", err)
	}
	defer fileContent.Close()

	fileBytes, err := io.ReadAll(fileContent)
	if err != nil {
		return models.Asset{}, fmt.Errorf("error reading file content: %w", err)
	}

	fileType, err := filetype.Match(fileBytes)
	if err != nil || fileType == types.Unknown {
		return models.Asset{}, fmt.Errorf("unsupported file type: %w", err)
	}
	if _, ok := allowed[fileType.Extension]; !ok {
		return models.Asset{}, fmt.Errorf("file type %s is not allowed", fileType.Extension)
	}

	key, err := gonanoid.New()
	if err != nil {
		slog.Error(err.Error())
		return models.Asset{}, err
	}
	key = key + "." + fileType.Extension

	url, err := s.blob.Upload(ctx, key, fileBytes, fileType.MIME.Value)
	if err != nil {
		return models.Asset{}, fmt.Errorf("error uploading file: %w", err)
	}

	asset, ok := s.store.AddAsset(category, models.Asset{
		Name: file.Filename,
		Size: int64(len(fileBytes)),
		Type: fileType.MIME.Value,
		URL:  url,
	})
	if !ok {
		return models.Asset{}, fmt.Errorf("unknown asset category %s", category)
	}
	return asset, nil
}

// Create records a manually entered asset (captions and hashtag sets).
func (s *assetService) Create(category string, ac *transfer.AssetCreation) (models.Asset, error) {
	if ac == nil {
		err := errors.New("asset creation data is nil")
		slog.Error(err.Error())
		return models.Asset{}, err
	}
	if !models.IsAssetCategory(category) {
		err := fmt.Errorf("unknown asset category %s", category)
		slog.Info(err.Error())
		return models.Asset{}, err
	}

	switch category {
	case models.AssetCategoryCaptions:
		if ac.Text == "" {
			err := errors.New("caption text cannot be empty")
			slog.Info(err.Error())
			return models.Asset{}, err
		}
	case models.AssetCategoryHashtags:
		if len(ac.Hashtags) == 0 {
			err := errors.New("hashtag set cannot be empty")
			slog.Info(err.Error())
			return models.Asset{}, err
		}
	}

	asset := models.Asset{
		Name:        ac.Name,
		Title:       ac.Title,
		Description: ac.Description,
		Date:        ac.Date,
		Text:        ac.Text,
		Platform:    ac.Platform,
		Tone:        ac.Tone,
		Tags:        ac.Tags,
		Hashtags:    ac.Hashtags,
		Category:    ac.Category,
		Reach:       ac.Reach,
		Engagement:  ac.Engagement,
		Posts:       ac.Posts,
		Trend:       ac.Trend,
	}
	if asset.Text != "" {
		asset.CharacterCount = len(asset.Text)
	}

	created, ok := s.store.AddAsset(category, asset)
	if !ok {
		return models.Asset{}, fmt.Errorf("unknown asset category %s", category)
	}
	return created, nil
}

func (s *assetService) Update(category, id string, patch transfer.AssetPatch) (models.Asset, bool) {
	return s.store.UpdateAsset(category, id, patch)
}

func (s *assetService) Remove(category, id string) {
	s.store.DeleteAsset(category, id)
}

func (s *assetService) List(category string) ([]models.Asset, error) {
	if !models.IsAssetCategory(category) {
		err := fmt.Errorf("unknown asset category %s", category)
		slog.Info(err.Error())
		return nil, err
	}
	return s.store.GetAssetsByType(category), nil
}
