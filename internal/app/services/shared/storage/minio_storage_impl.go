package storage

import (
	"context"
	"io"
	"nanomed-service/internal/app/contracts"
	"nanomed-service/internal/pkg/exceptions"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) UploadFile(ctx context.Context, file io.Reader, objectName, contentType string, size int64) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return objectName, nil
}

func (m *minioStorage) PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, expiry, nil)
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, m.BucketName)
	}

	return presignedURL.String(), nil
}
