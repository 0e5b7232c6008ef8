package common

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config carries one job's resolved storage target. Empty values fall back
// to the standard AWS config/credential chain.
type S3Config struct {
	// EndpointURL points at an S3-compatible service. If set, path-style
	// addressing is used, which those services generally require.
	EndpointURL string
	AccessKey   string
	SecretKey   string
	// Region to use for requests. If empty, AWS defaults apply; custom
	// endpoints that ignore regions still need one for request signing.
	Region string
}

// S3 wraps the AWS SDK for Go v2 S3 client behind the narrow surface the
// pipeline needs.
type S3 struct {
	client *s3.Client
}

// NewS3 creates an S3 wrapper from the default AWS configuration chain with
// overrides from cfg.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	} else if cfg.EndpointURL != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion("us-east-1"))
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	c := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			o.UsePathStyle = true
		}
	})
	return &S3{client: c}, nil
}

// Put uploads an object to the given bucket/key.
// If contentType is non-empty, it is set on the object.
func (s *S3) Put(ctx context.Context, bucket, key string, body io.Reader, contentType string) error {
	in := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	_, err := s.client.PutObject(ctx, in)
	return err
}

// Upload streams a local file to bucket/key as UTF-8 text.
func (s *S3) Upload(ctx context.Context, bucket, key, filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open %s: %w", filePath, err)
	}
	defer f.Close()

	return s.Put(ctx, bucket, key, f, "text/plain; charset=utf-8")
}

// Client exposes the underlying SDK client for advanced callers (avoid when possible).
func (s *S3) Client() *s3.Client { return s.client }
