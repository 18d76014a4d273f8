package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Store wraps the S3 client and presigner for the photo bucket. Keys are
// namespaced under the configured folder prefix so one bucket can host
// multiple environments.
type Store struct {
	client       *s3.Client
	presigner    *s3.PresignClient
	bucket       string
	folderPrefix string
	region       string
}

func NewStore(ctx context.Context, region, bucket, folderPrefix string) (*Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &Store{
		client:       client,
		presigner:    s3.NewPresignClient(client),
		bucket:       bucket,
		folderPrefix: folderPrefix,
		region:       region,
	}, nil
}

func sanitizeFileName(name string) string {
	return unsafeFileChars.ReplaceAllString(name, "_")
}

// UploadKey builds the storage key for a homeowner upload.
func (s *Store) UploadKey(fileName string) string {
	return fmt.Sprintf("%suploads/%d-%s", s.folderPrefix, time.Now().UnixMilli(), sanitizeFileName(fileName))
}

// PresignUpload returns a presigned PUT URL the browser uploads to directly,
// along with the key the object will land at.
func (s *Store) PresignUpload(ctx context.Context, fileName, contentType string) (uploadURL, key string, err error) {
	key = s.UploadKey(fileName)
	result, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		ContentType: &contentType,
	}, s3.WithPresignExpires(1*time.Hour))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return result.URL, key, nil
}

// PresignGet returns a presigned GET URL for viewing an object inline.
func (s *Store) PresignGet(ctx context.Context, key string) (string, error) {
	result, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(1*time.Hour))
	if err != nil {
		return "", fmt.Errorf("failed to presign get for %s: %w", key, err)
	}
	return result.URL, nil
}

// PresignDownload returns a presigned GET URL that forces a download with
// the given filename.
func (s *Store) PresignDownload(ctx context.Context, key, fileName string) (string, error) {
	result, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket:                     &s.bucket,
		Key:                        &key,
		ResponseContentDisposition: aws.String(fmt.Sprintf(`attachment; filename="%s"`, fileName)),
	}, s3.WithPresignExpires(1*time.Hour))
	if err != nil {
		return "", fmt.Errorf("failed to presign download for %s: %w", key, err)
	}
	return result.URL, nil
}

// UploadEnhanced stores a processed image under the enhanced prefix and
// returns its key.
func (s *Store) UploadEnhanced(ctx context.Context, data []byte, fileName, contentType string) (string, error) {
	key := fmt.Sprintf("%senhanced/%d-%s", s.folderPrefix, time.Now().UnixMilli(), sanitizeFileName(fileName))
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             &s.bucket,
		Key:                &key,
		Body:               bytes.NewReader(data),
		ContentType:        &contentType,
		ContentDisposition: aws.String("inline"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return key, nil
}

// Download fetches an object's bytes.
func (s *Store) Download(ctx context.Context, key string) ([]byte, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Delete removes an object. Missing keys are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
