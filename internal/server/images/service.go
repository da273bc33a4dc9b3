// Package images stores uploaded image files in an S3-compatible backend
// and hands public URLs back to the API layer.
package images

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"time"

	"github.com/google/uuid"

	sc "github.com/dvargas92/fotoapp/internal/server/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Seams for tests: the AWS SDK constructors and calls are package variables
// so unit tests can intercept them without a live backend.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

type Service struct {
	config *sc.Config
}

func NewService(config *sc.Config) *Service {
	return &Service{config: config}
}

// StorageKey builds the object key for an upload: one directory per user and
// day, a fresh UUID per file, the original extension preserved.
func StorageKey(userID, filename string) string {
	d := time.Now()
	return fmt.Sprintf("users/%s/%d/%d/%d/%v%s",
		userID, d.Year(), int(d.Month()), d.Day(), uuid.New(), path.Ext(filename))
}

func (s *Service) getClient() (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return client, nil
}

// Upload streams the file body to the bucket and returns the public URL of
// the stored object.
func (s *Service) Upload(ctx context.Context, userID, filename, contentType string, body io.Reader) (string, error) {

	client, err := s.getClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	key := StorageKey(userID, filename)

	in := &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = &contentType
	}

	if _, err := putObject(client, ctx, in); err != nil {
		return "", fmt.Errorf("error uploading object: %w", err)
	}

	return s.ObjectURL(key)
}

// ObjectURL resolves the public URL of a stored object against the
// configured base endpoint (path-style addressing).
func (s *Service) ObjectURL(key string) (string, error) {
	base, err := url.Parse(s.config.S3BaseEndpoint)
	if err != nil {
		return "", fmt.Errorf("error parsing base endpoint: %w", err)
	}
	return base.JoinPath(s.config.S3Bucket, key).String(), nil
}

// PresignedGetURL returns a time-limited URL for fetching a stored object.
func (s *Service) PresignedGetURL(ctx context.Context, key string) (string, error) {

	client, err := s.getClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
