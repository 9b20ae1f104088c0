package resumesrv

import (
	"bytes"
	"context"
	"time"

	"github.com/Abraxas-365/vatalique/pkg/kernel"
	"github.com/Abraxas-365/vatalique/pkg/logx"
	"github.com/Abraxas-365/vatalique/recruitment/resume"
	"github.com/google/uuid"
)

// Service stores uploaded resumes
type Service struct {
	storage resume.Storage
	now     func() time.Time
}

// NewService creates the upload service. A nil storage disables uploads.
func NewService(storage resume.Storage) *Service {
	return &Service{
		storage: storage,
		now:     time.Now,
	}
}

// Enabled reports whether uploads can be stored
func (s *Service) Enabled() bool {
	return s.storage != nil
}

// Upload validates a PDF resume and stores it under a fresh key
func (s *Service) Upload(ctx context.Context, data []byte) (*resume.UploadResult, error) {
	if s.storage == nil {
		return nil, resume.ErrStorageUnavailable()
	}

	if err := resume.ValidatePDF(data); err != nil {
		return nil, err
	}

	key := resume.ObjectKey(s.now(), uuid.NewString())
	url, err := s.storage.Put(ctx, key, bytes.NewReader(data), int64(len(data)), resume.ContentTypePDF)
	if err != nil {
		logx.Errorf("resume upload failed for %s: %v", key, err)
		return nil, resume.ErrUploadFailed().WithCause(err)
	}

	logx.With("key", key, "size", len(data)).Info("resume stored")
	return &resume.UploadResult{
		URL:  kernel.ResumeURL(url),
		Key:  key,
		Size: int64(len(data)),
	}, nil
}
