package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// S3Store uploads documents to an S3-compatible object storage bucket.
type S3Store struct {
	client   *s3.Client
	bucket   string
	endpoint string
	prefix   string
	logger   *zap.Logger
}

// S3Options configures the object storage connection.
type S3Options struct {
	Bucket          string
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	KeyPrefix       string
}

// NewS3Store creates an S3-compatible object storage client.
func NewS3Store(opts S3Options, logger *zap.Logger) (*S3Store, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	clientOpts := s3.Options{
		Region: opts.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			opts.AccessKeyID,
			opts.SecretAccessKey,
			"",
		),
	}
	if opts.Endpoint != "" {
		clientOpts.BaseEndpoint = aws.String(opts.Endpoint)
	}

	logger.Info("object storage client initialized",
		zap.String("bucket", opts.Bucket),
		zap.String("endpoint", opts.Endpoint),
		zap.String("region", opts.Region),
	)

	return &S3Store{
		client:   s3.New(clientOpts),
		bucket:   opts.Bucket,
		endpoint: strings.TrimRight(opts.Endpoint, "/"),
		prefix:   strings.Trim(opts.KeyPrefix, "/"),
		logger:   logger,
	}, nil
}

// Put uploads the document and returns its public URL.
func (s *S3Store) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if s.prefix != "" {
		key = s.prefix + "/" + key
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.logger.Warn("object storage upload failed", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("put object %q: %w", key, err)
	}

	s.logger.Info("object stored", zap.String("key", key))
	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key), nil
}

// ResolveURL returns the reference unchanged: bucket object URLs are already
// permanent.
func (s *S3Store) ResolveURL(ref string) (string, error) {
	return ref, nil
}
