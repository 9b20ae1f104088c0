package resume

import (
	"context"
	"io"
)

// Storage persists resume files and returns their durable public URL
type Storage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}
