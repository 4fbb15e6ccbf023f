package output

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// UploadTimeout bounds a single upload
const UploadTimeout = 30 * time.Second

// S3Config holds the settings of an S3 compatible object store
type S3Config struct {
	Endpoint  string // Empty for AWS itself
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	ACL       string // Canned ACL, e.g. "public-read"; empty leaves the bucket default
}

// S3Uploader publishes encoded renders to a bucket
type S3Uploader struct {
	client s3iface.S3API
	bucket string
	acl    string
}

// NewS3Uploader opens a session with static credentials and path-style addressing
func NewS3Uploader(cfg S3Config) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3: bucket is required")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	awsConfig := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.AccessKey != "" || cfg.SecretKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("s3: create session: %w", err)
	}

	return NewS3UploaderWithClient(s3.New(sess), cfg.Bucket, cfg.ACL), nil
}

// NewS3UploaderWithClient wraps an existing S3 client
func NewS3UploaderWithClient(client s3iface.S3API, bucket, acl string) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket, acl: acl}
}

// Bucket returns the destination bucket
func (u *S3Uploader) Bucket() string {
	return u.bucket
}

// Upload stores data under key
func (u *S3Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	input := &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	}
	if u.acl != "" {
		input.ACL = aws.String(u.acl)
	}

	if _, err := u.client.PutObjectWithContext(ctx, input); err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

// UploadImage encodes img in the format implied by key and uploads it
func (u *S3Uploader) UploadImage(ctx context.Context, key string, img image.Image) (int, error) {
	format, err := FormatFromFilename(key)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, format); err != nil {
		return 0, err
	}
	if err := u.Upload(ctx, key, buf.Bytes(), format.ContentType()); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}
