package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"locations/internal/keys"
)

// S3Service is a client for S3-compatible storage, used to archive the raw
// API response and the produced CSV for each run.
type S3Service struct {
	client *minio.Client
}

// Configured reports whether the S3 archive environment is set at all. An
// unconfigured archive is a normal condition, not an error.
func Configured() bool {
	return os.Getenv("MINIO_ENDPOINT") != ""
}

// NewS3Service initializes and returns a new S3 storage service.
// It connects to the MinIO server using credentials from environment variables.
func NewS3Service() (*S3Service, error) {
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	if minioEndpoint == "" || minioAccessKey == "" || minioSecretKey == "" {
		return nil, fmt.Errorf("missing one or more required environment variables: MINIO_ENDPOINT, MINIO_ACCESS_KEY, MINIO_SECRET_KEY")
	}

	minioClient, err := minio.New(minioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(minioAccessKey, minioSecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %v", err)
	}

	log.Println("Successfully connected to MinIO endpoint:", minioEndpoint)
	return &S3Service{client: minioClient}, nil
}

func (s *S3Service) CreateBucket(ctx context.Context, bucketName string, location string) (bool, error) {
	exists, err := s.client.BucketExists(ctx, bucketName)
	if err != nil {
		return false, fmt.Errorf("error checking bucket existence: %v", err)
	}
	if !exists {
		err = s.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
		if err != nil {
			return false, err
		}
	}
	return true, nil
}

// ArchiveRun stores the raw response body and the CSV file written for one
// fetch of city under timestamped keys in bucketName.
func (s *S3Service) ArchiveRun(ctx context.Context, bucketName, city string, rawBody []byte, csvPath string) error {
	now := time.Now()

	if err := s.put(ctx, bucketName, keys.RawResponse(city, now), rawBody, "application/json"); err != nil {
		return fmt.Errorf("failed to archive raw response: %v", err)
	}

	csvData, err := os.ReadFile(csvPath)
	if err != nil {
		return fmt.Errorf("failed to read CSV for archiving: %v", err)
	}
	if err := s.put(ctx, bucketName, keys.CSV(city, now), csvData, "text/csv"); err != nil {
		return fmt.Errorf("failed to archive CSV: %v", err)
	}
	return nil
}

func (s *S3Service) put(ctx context.Context, bucketName, objectKey string, data []byte, contentType string) error {
	_, err := s.client.PutObject(
		ctx,
		bucketName,
		objectKey,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return fmt.Errorf("failed to store object in S3: %v", err)
	}
	log.Printf("Successfully archived object in bucket '%s' with key '%s'", bucketName, objectKey)
	return nil
}
