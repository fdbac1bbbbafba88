package contracts

import (
	"context"
)

type Storage interface {
	UploadFile(ctx context.Context, filePath, bucketName, objectName string) (string, error)
}
