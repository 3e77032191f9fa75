package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	appconfig "serviciosjt/internal/infrastructure/config"
	"serviciosjt/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioImageStorage stores publication/proposal/profile images in a
// MinIO (S3-compatible) bucket and hands back plain URLs. The rest of
// the system treats those URLs as opaque strings.

type MinioImageStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

var _ interfaces.IImageStorage = (*MinioImageStorage)(nil)

func NewMinioImageStorage(cfg appconfig.Config) (*MinioImageStorage, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}

	publicURL := strings.TrimRight(cfg.MinioPublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if cfg.MinioUseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.MinioEndpoint)
	}

	s := &MinioImageStorage{
		client:    client,
		bucket:    cfg.MinioBucket,
		publicURL: publicURL,
	}
	if err := s.ensureBucket(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MinioImageStorage) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	log.Printf("[storage] creating bucket %s", s.bucket)
	return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

// Upload stores the object under folder/userID/<ts>_<rand><ext> and
// returns its URL.
func (s *MinioImageStorage) Upload(ctx context.Context, folder, userID, fileName, contentType string, body io.Reader, size int64) (string, error) {
	ext := strings.ToLower(path.Ext(fileName))
	if ext == "" {
		ext = ".jpg"
	}
	objectName := fmt.Sprintf("%s/%s/%d_%s%s", folder, userID, time.Now().UTC().UnixMilli(), uuid.NewString(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
}

// Delete removes an object previously returned by Upload. URLs from
// other origins are ignored.
func (s *MinioImageStorage) Delete(ctx context.Context, url string) error {
	prefix := fmt.Sprintf("%s/%s/", s.publicURL, s.bucket)
	if !strings.HasPrefix(url, prefix) {
		return nil
	}
	objectName := strings.TrimPrefix(url, prefix)
	return s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
}
