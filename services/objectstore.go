package services

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	appconfig "vote-monitor-api/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// StoredObject identifies an uploaded artifact.
type StoredObject struct {
	URL string
	Key string
}

// ObjectStore is the durable media storage collaborator.
type ObjectStore interface {
	Put(ctx context.Context, data []byte, mimeType, suggestedName string) (*StoredObject, error)
	Delete(ctx context.Context, key string) error
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// S3Store stores media in an S3 bucket. Objects are private and encrypted
// at rest; access goes through short-lived signed URLs.
type S3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	region  string
	timeout time.Duration
}

// NewS3Store builds a store from the default AWS credential chain.
func NewS3Store(ctx context.Context, settings appconfig.S3Settings) (*S3Store, error) {
	if settings.Bucket == "" {
		return nil, fmt.Errorf("s3 store: bucket not set")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(settings.Region))
	if err != nil {
		return nil, fmt.Errorf("s3 store: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &S3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  settings.Bucket,
		region:  settings.Region,
		timeout: 60 * time.Second,
	}, nil
}

// Put uploads the bytes under uploads/<year>/<month>/<uuid><ext> with
// server-side AES256 encryption and private visibility.
func (s *S3Store) Put(ctx context.Context, data []byte, mimeType, suggestedName string) (*StoredObject, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	now := time.Now()
	key := fmt.Sprintf("uploads/%d/%d/%s%s",
		now.Year(), int(now.Month()), uuid.NewString(), filepath.Ext(suggestedName))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:               aws.String(s.bucket),
		Key:                  aws.String(key),
		Body:                 bytes.NewReader(data),
		ContentType:          aws.String(mimeType),
		ServerSideEncryption: s3types.ServerSideEncryptionAes256,
		ACL:                  s3types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 store: upload: %w", err)
	}

	return &StoredObject{
		URL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key),
		Key: key,
	}, nil
}

// Delete removes an object; used to clean up partial uploads.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 store: delete: %w", err)
	}
	return nil
}

// SignedURL returns a presigned GET URL valid for ttl.
func (s *S3Store) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("s3 store: presign: %w", err)
	}
	return req.URL, nil
}
