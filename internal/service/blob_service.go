package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/maheshrc27/socialplanner/configs"
)

// BlobService stores uploaded media bytes. With R2 credentials configured it
// uploads to Cloudflare R2 Storage; otherwise it writes under the local data
// directory and returns a /media URL served by the app itself.
type BlobService struct {
	config   cfg.Config
	mediaDir string
}

func NewBlobService(cfg cfg.Config) *BlobService {
	return &BlobService{
		config:   cfg,
		mediaDir: filepath.Join(cfg.DataDir, "media"),
	}
}

// MediaDir is the local directory served at /media.
func (b *BlobService) MediaDir() string {
	return b.mediaDir
}

func (b *BlobService) remoteEnabled() bool {
	return b.config.R2.AccountID != "" && b.config.R2.BucketName != ""
}

func (b *BlobService) r2Client() (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(b.config.R2.AccessKey, b.config.R2.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", b.config.R2.AccountID))
	}), nil
}

// Upload stores the file under key and returns the URL it is reachable at.
func (b *BlobService) Upload(ctx context.Context, key string, file []byte, filetype string) (string, error) {
	if !b.remoteEnabled() {
		return b.uploadLocal(key, file)
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(b.config.R2.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file),
		ContentType: aws.String(filetype),
	}

	r2Client, err := b.r2Client()
	if err != nil {
		return "", err
	}

	if _, err := r2Client.PutObject(ctx, input); err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return fmt.Sprintf("%s/%s", b.config.R2.PublicURL, key), nil
}

func (b *BlobService) uploadLocal(key string, file []byte) (string, error) {
	if err := os.MkdirAll(b.mediaDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(b.mediaDir, key), file, 0644); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}
	return "/media/" + key, nil
}
