package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Options configures the S3 share target. Empty AccessKey falls back to
// the ambient credential chain.
type S3Options struct {
	Bucket    string
	Region    string
	Prefix    string
	AccessKey string
	SecretKey string
}

// S3Sharer uploads exports to a bucket so they can be fetched from any
// device.
type S3Sharer struct {
	opts S3Options
}

func NewS3Sharer(opts S3Options) *S3Sharer {
	return &S3Sharer{opts: opts}
}

func (s *S3Sharer) Name() string { return "s3" }

func (s *S3Sharer) Available(context.Context) bool {
	return s.opts.Bucket != ""
}

func (s *S3Sharer) Share(ctx context.Context, path, _ string) error {
	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if s.opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(s.opts.Region))
	}
	if s.opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.opts.AccessKey, s.opts.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return fmt.Errorf("failed to load aws config: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open export for upload: %w", err)
	}
	defer file.Close()

	key := filepath.Base(path)
	if s.opts.Prefix != "" {
		key = s.opts.Prefix + "/" + key
	}

	uploader := manager.NewUploader(s3.NewFromConfig(cfg))
	_, err = uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("failed to upload export to s3: %w", err)
	}
	return nil
}
