package store

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/doc-vault/internal/config"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// s3API is the subset of *s3.Client used by [s3ObjectStorage].
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3ObjectStorage struct {
	client     s3API
	presigner  *s3.PresignClient
	bucket     string
	publicBase string
	presignTTL time.Duration
	logger     *logger.Logger
}

// NewS3ObjectStorage builds an [ObjectStorage] on an S3-compatible bucket.
// Static credentials are used when both keys are configured, otherwise the
// default AWS credential chain applies. A custom endpoint switches the
// client to path-style addressing, as MinIO and Supabase storage expect.
func NewS3ObjectStorage(ctx context.Context, cfg config.Files, log *logger.Logger) (ObjectStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3ObjectStorage").Msg("error loading aws config")
		return nil, fmt.Errorf("%w: %w", ErrObjectStore, err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info().Str("func", "NewS3ObjectStorage").Str("bucket", cfg.Bucket).Msg("object storage configured")

	return &s3ObjectStorage{
		client:     client,
		presigner:  newS3PresignClient(client),
		bucket:     cfg.Bucket,
		publicBase: strings.TrimRight(cfg.PublicBaseURL, "/"),
		presignTTL: cfg.PresignTTL,
		logger:     log,
	}, nil
}

func (s *s3ObjectStorage) PutObject(ctx context.Context, key, contentType string, size int64, body io.Reader) error {
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if size > 0 {
		in.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, in); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3ObjectStorage.PutObject").Str("key", key).Msg("upload failed")
		return fmt.Errorf("%w: %w", ErrObjectStore, err)
	}

	return nil
}

func (s *s3ObjectStorage) DeleteObject(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3ObjectStorage.DeleteObject").Str("key", key).Msg("delete failed")
		return fmt.Errorf("%w: %w", ErrObjectStore, err)
	}

	return nil
}

// PresignGet returns a time-limited download URL for key.
func (s *s3ObjectStorage) PresignGet(ctx context.Context, key string) (string, error) {
	req, err := presignGetObject(s.presigner, ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.presignTTL))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrObjectStore, err)
	}

	return req.URL, nil
}

// PublicURL is the permanent URL stored alongside a document. Without a
// configured public base it is the bare key.
func (s *s3ObjectStorage) PublicURL(key string) string {
	if s.publicBase == "" {
		return key
	}
	return s.publicBase + "/" + key
}
