package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/seyirtepe/seyirtepe-backend/pkg/logger"
)

// S3Storage stores objects in an S3 bucket.
type S3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
	timeout time.Duration
}

func NewS3Storage(region, bucket, accessKeyID, secretAccessKey, baseURL string, timeout time.Duration) *S3Storage {
	var cfg aws.Config
	var err error

	// If credentials are provided, use them. Otherwise, use default credential chain
	if accessKeyID != "" && secretAccessKey != "" {
		cfg = aws.Config{
			Region: region,
			Credentials: credentials.NewStaticCredentialsProvider(
				accessKeyID,
				secretAccessKey,
				"",
			),
		}
	} else {
		// Default credential chain (environment variables, ~/.aws/credentials, IAM role, etc.)
		cfg, err = awsconfig.LoadDefaultConfig(context.TODO(),
			awsconfig.WithRegion(region),
		)
		if err != nil {
			cfg = aws.Config{
				Region: region,
			}
		}
	}

	client := s3.NewFromConfig(cfg)

	return &S3Storage{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
		timeout: timeout,
	}
}

// Configured reports whether a bucket is set. Without a bucket every
// upload falls through to local storage.
func (s *S3Storage) Configured() bool {
	return s != nil && s.bucket != ""
}

func (s *S3Storage) Upload(ctx context.Context, data io.Reader, size int64, opts UploadOptions) (*UploadResult, error) {
	name := opts.PublicID
	if name == "" {
		name = uuid.New().String()
	}
	key := fmt.Sprintf("%s/%s%s", opts.Folder, name, safeExtension(opts.Filename, opts.ContentType))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          data,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(opts.ContentType),
	})
	if err != nil {
		logger.Error("Failed to upload object to S3", err, map[string]interface{}{
			"bucket": s.bucket,
			"key":    key,
		})
		return nil, fmt.Errorf("failed to upload object to s3: %w", err)
	}

	var fileURL string
	if s.baseURL != "" {
		// CloudFront or custom domain
		fileURL = fmt.Sprintf("%s/%s", s.baseURL, key)
	} else {
		fileURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.client.Options().Region, key)
	}

	logger.Debug("Object uploaded to S3", map[string]interface{}{
		"bucket": s.bucket,
		"key":    key,
		"size":   size,
	})

	return &UploadResult{
		URL:      fileURL,
		PublicID: key,
		Backend:  BackendCloud,
	}, nil
}

func (s *S3Storage) Delete(ctx context.Context, publicID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		logger.Error("Failed to delete object from S3", err, map[string]interface{}{
			"bucket": s.bucket,
			"key":    publicID,
		})
		return fmt.Errorf("failed to delete object from s3: %w", err)
	}

	logger.Debug("Object deleted from S3", map[string]interface{}{
		"bucket": s.bucket,
		"key":    publicID,
	})
	return nil
}
