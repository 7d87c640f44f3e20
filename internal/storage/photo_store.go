// Package storage keeps uploaded meal photos.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/blaisecz/nutrition-coach/internal/logger"
	"github.com/google/uuid"
)

// PhotoStore persists a meal photo and returns the key it was stored under.
// An empty key means the photo was not kept.
type PhotoStore interface {
	Save(ctx context.Context, userID uuid.UUID, image []byte, mimeType string) (string, error)
}

// NoopStore discards photos. It is used when no bucket is configured.
type NoopStore struct{}

func (NoopStore) Save(ctx context.Context, userID uuid.UUID, image []byte, mimeType string) (string, error) {
	return "", nil
}

// putObjectAPI is the subset of the S3 client used by S3Store.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store uploads photos to an S3 bucket under prefix/userID/.
type S3Store struct {
	client putObjectAPI
	bucket string
	prefix string
	now    func() time.Time
}

// S3Config configures the S3 photo store.
type S3Config struct {
	Bucket string
	Region string
	Prefix string
}

// NewPhotoStore returns an S3-backed store, or a NoopStore when no bucket is configured.
func NewPhotoStore(ctx context.Context, cfg S3Config) (PhotoStore, error) {
	if cfg.Bucket == "" {
		logger.Info("meal photo storage disabled", "reason", "PHOTO_BUCKET is empty")
		return NoopStore{}, nil
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	logger.Info("meal photo storage enabled", "bucket", cfg.Bucket, "region", cfg.Region)
	return newS3Store(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Prefix), nil
}

func newS3Store(client putObjectAPI, bucket, prefix string) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		now:    time.Now,
	}
}

func (s *S3Store) Save(ctx context.Context, userID uuid.UUID, image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", nil
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	key := ObjectKey(s.prefix, userID, uuid.New(), s.now(), mimeType)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(image),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", fmt.Errorf("upload meal photo: %w", err)
	}

	return key, nil
}

// ObjectKey builds prefix/userID/YYYY/MM/DD/<unix-nanos>-<photoID><ext> for a photo.
func ObjectKey(prefix string, userID, photoID uuid.UUID, at time.Time, mimeType string) string {
	at = at.UTC()
	name := fmt.Sprintf("%d-%s%s", at.UnixNano(), photoID, extensionFor(mimeType))
	return path.Join(prefix, userID.String(), at.Format("2006/01/02"), name)
}

func extensionFor(mimeType string) string {
	contentType := strings.TrimSpace(strings.SplitN(mimeType, ";", 2)[0])
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 && parts[1] != "" {
		return "." + parts[1]
	}
	return ""
}
