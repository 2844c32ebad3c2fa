package manifest

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3Getter is the slice of the S3 client the source needs. *s3.Client
// satisfies it; tests substitute a fake.
type s3Getter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads the manifest from an S3 object, the shape used by deploy
// pipelines that publish the sidebar alongside rendered content.
//
// Example usage:
//
//	src, err := manifest.NewS3Source(ctx, "docs-deploy", "nav/sidebar.json")
//	entries, err := manifest.Load(ctx, src)
type S3Source struct {
	client s3Getter
	bucket string
	key    string
}

// NewS3Source creates an S3-backed manifest source using the default AWS
// credential chain.
func NewS3Source(ctx context.Context, bucket, key string) (*S3Source, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("manifest: load aws config: %w", err)
	}
	return NewS3SourceWithClient(s3.NewFromConfig(cfg), bucket, key), nil
}

// NewS3SourceWithClient creates an S3-backed manifest source with an
// existing client.
func NewS3SourceWithClient(client s3Getter, bucket, key string) *S3Source {
	return &S3Source{client: client, bucket: bucket, key: key}
}

// Fetch implements Source.
func (s *S3Source) Fetch(ctx context.Context) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: s3://%s/%s: %v", ErrRead, s.bucket, s.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: s3://%s/%s: %v", ErrRead, s.bucket, s.key, err)
	}
	return data, nil
}

// Describe implements Source.
func (s *S3Source) Describe() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}
