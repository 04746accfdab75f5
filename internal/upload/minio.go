package upload

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/i-fetch/p2pvault/pkg/kycflow"
)

// Ensure MinioUploader implements the workflow's uploader interface.
var _ kycflow.IUploader = (*MinioUploader)(nil)

// Minio (S3) backed uploader. The bucket is expected to have a public-read
// policy; returned URLs are plain object URLs without credentials.
type MinioUploader struct {
	client *minio.Client
	bucket string
}

func NewMinioUploader(endpoint, id, secret string, ssl bool, bucket string) (*MinioUploader, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(id, secret, ""),
		Secure: ssl,
	})
	if err != nil {
		return nil, err
	}

	return &MinioUploader{
		client: client,
		bucket: bucket,
	}, nil
}

func NewMinioUploaderFromClient(client *minio.Client, bucket string) *MinioUploader {
	return &MinioUploader{
		client: client,
		bucket: bucket,
	}
}

func (u *MinioUploader) UploadImage(ctx context.Context, name, contentType string, r io.Reader, size int64) (string, error) {
	object := objectName(name)
	_, err := u.client.PutObject(ctx, u.bucket, object, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", u.client.EndpointURL(), u.bucket, object), nil
}
