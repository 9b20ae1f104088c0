package resumeinfra

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if params.Body != nil {
		data, _ := io.ReadAll(params.Body)
		f.body = string(data)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestPutUsesVirtualHostedURL(t *testing.T) {
	fake := &fakeS3{}
	storage := NewS3Storage(fake, "careers-bucket", "us-east-1", "")

	url, err := storage.Put(context.Background(), "resumes/2025/01/a.pdf", strings.NewReader("%PDF-"), 5, "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, "https://careers-bucket.s3.us-east-1.amazonaws.com/resumes/2025/01/a.pdf", url)
	assert.Equal(t, "careers-bucket", aws.ToString(fake.input.Bucket))
	assert.Equal(t, "resumes/2025/01/a.pdf", aws.ToString(fake.input.Key))
	assert.Equal(t, "application/pdf", aws.ToString(fake.input.ContentType))
	assert.Equal(t, int64(5), aws.ToInt64(fake.input.ContentLength))
	assert.Equal(t, "%PDF-", fake.body)
}

func TestPutUsesPublicBaseURL(t *testing.T) {
	storage := NewS3Storage(&fakeS3{}, "b", "eu-west-1", "https://cdn.example.com/")

	url, err := storage.Put(context.Background(), "resumes/x.pdf", strings.NewReader(""), 0, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/resumes/x.pdf", url)
	assert.Equal(t, "https://cdn.example.com/", storage.BaseURL())
}

func TestPutPropagatesErrors(t *testing.T) {
	storage := NewS3Storage(&fakeS3{err: errors.New("access denied")}, "b", "us-east-1", "")

	_, err := storage.Put(context.Background(), "k", strings.NewReader(""), 0, "application/pdf")
	assert.ErrorContains(t, err, "access denied")
}
