package resumeinfra

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the subset of the S3 client used for uploads
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Storage implements resume.Storage on an S3 bucket
type S3Storage struct {
	client        PutObjectAPI
	bucket        string
	region        string
	publicBaseURL string
}

// NewS3Storage creates S3-backed resume storage. When publicBaseURL is empty, objects are
// addressed with the virtual-hosted S3 URL.
func NewS3Storage(client PutObjectAPI, bucket, region, publicBaseURL string) *S3Storage {
	return &S3Storage{
		client:        client,
		bucket:        bucket,
		region:        region,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// BaseURL is the prefix of every URL returned by Put
func (s *S3Storage) BaseURL() string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucket, s.region)
}

// Put uploads body under key and returns its public URL
func (s *S3Storage) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return s.BaseURL() + key, nil
}
