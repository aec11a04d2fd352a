package storage

import (
	"context"
	"io"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"

	"github.com/evermeet/booking-go/internal/config"
)

// Store is the MinIO-backed object store for registration file
// uploads.
type Store struct {
	client *minioSDK.Client
	bucket string
}

func NewStore() (*Store, error) {
	client, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}

	s := &Store{client: client, bucket: config.MinioBucket}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, s.bucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		log.Info().Str("bucket", s.bucket).Msg("Bucket created")
	}

	log.Info().Msg("Connected to MinIO")
	return s, nil
}

func (s *Store) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *Store) Get(ctx context.Context, key string) (io.ReadCloser, string, int64, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minioSDK.GetObjectOptions{})
	if err != nil {
		return nil, "", 0, err
	}

	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, "", 0, err
	}
	return obj, info.ContentType, info.Size, nil
}
