package aws

import (
	"context"
	"fmt"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// URLPresigner issues presigned upload URLs.
type URLPresigner interface {
	PresignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, map[string]string, error)
}

// S3Presigner presigns PUT requests against one bucket.
type S3Presigner struct {
	presigner *s3.PresignClient
	bucket    string
}

func NewS3Presigner(cfg sdkaws.Config, bucket string) *S3Presigner {
	return &S3Presigner{presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)), bucket: bucket}
}

// PresignPut returns the URL and the headers the client must send with the upload.
func (p *S3Presigner) PresignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, map[string]string, error) {
	input := &s3.PutObjectInput{
		Bucket: sdkaws.String(p.bucket),
		Key:    sdkaws.String(key),
	}
	if contentType != "" {
		input.ContentType = sdkaws.String(contentType)
	}

	presigned, err := p.presigner.PresignPutObject(ctx, input, func(o *s3.PresignOptions) {
		o.Expires = expiry
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to presign put object: %w", err)
	}

	headers := make(map[string]string)
	for k, v := range presigned.SignedHeader {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}
	return presigned.URL, headers, nil
}
