package repositories

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Repository stores generated step images durably. PutObject overwrites
// an existing key, which is what re-runs of the pipeline rely on.
type S3Repository struct {
	client        *s3.Client
	publicBaseURL string
}

func NewS3Repository(cfg aws.Config, publicBaseURL string) *S3Repository {
	return &S3Repository{
		client: s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.UsePathStyle = true
		}),
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (r *S3Repository) UploadBytes(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return r.PublicURL(bucket, key), nil
}

// PublicURL resolves the stable public URL for an object. Deterministic:
// the same bucket and key always produce the same URL.
func (r *S3Repository) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", r.publicBaseURL, bucket, key)
}
