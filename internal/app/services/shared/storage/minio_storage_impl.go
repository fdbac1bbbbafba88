package storage

import (
	"context"
	"health-records-service/internal/app/contracts"
	"health-records-service/internal/pkg/constvars"
	"health-records-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

// UploadFile copies a local file into the bucket, creating the bucket when it
// does not exist yet.
func (m *minioStorage) UploadFile(ctx context.Context, filePath, bucketName, objectName string) (string, error) {
	exists, err := m.MinioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}
	if !exists {
		err = m.MinioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return "", exceptions.ErrMinioCreateObject(err, bucketName)
		}
	}

	_, err = m.MinioClient.FPutObject(ctx, bucketName, objectName, filePath, minio.PutObjectOptions{
		ContentType: constvars.MIMEApplicationJSON,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return objectName, nil
}
