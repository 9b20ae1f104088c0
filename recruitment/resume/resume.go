// Package resume handles resume files: PDF checks, object storage and the policy for
// which resume URLs an application may reference.
package resume

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Abraxas-365/vatalique/pkg/kernel"
	"github.com/ledongthuc/pdf"
)

const (
	// MaxSize is the largest accepted resume upload
	MaxSize = 10 << 20

	ContentTypePDF = "application/pdf"
)

var pdfMagic = []byte("%PDF-")

// UploadResult - DTO returned after storing a resume
type UploadResult struct {
	URL  kernel.ResumeURL `json:"url"`
	Key  string           `json:"key"`
	Size int64            `json:"size"`
}

// ValidatePDF checks size, signature and that the document has at least one page
func ValidatePDF(data []byte) (err error) {
	if len(data) > MaxSize {
		return ErrFileTooLarge().WithDetail("max_bytes", MaxSize).WithDetail("size", len(data))
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return ErrInvalidFileType().WithDetail("reason", "missing PDF header")
	}

	// the parser panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			err = ErrInvalidFileType().WithDetail("reason", fmt.Sprint(r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ErrInvalidFileType().WithDetail("reason", err.Error())
	}
	if reader.NumPage() == 0 {
		return ErrInvalidFileType().WithDetail("reason", "document has no pages")
	}
	return nil
}

// ObjectKey builds the storage key for a resume uploaded at t
func ObjectKey(t time.Time, id string) string {
	t = t.UTC()
	return fmt.Sprintf("resumes/%04d/%02d/%s.pdf", t.Year(), int(t.Month()), id)
}

// URLPolicy decides which resume URLs an application may reference
type URLPolicy struct {
	prefixes []string
}

// NewURLPolicy creates a policy. With no prefixes any absolute http(s) URL is accepted.
func NewURLPolicy(prefixes ...string) *URLPolicy {
	cleaned := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return &URLPolicy{prefixes: cleaned}
}

// Check validates a resume URL against the policy
func (p *URLPolicy) Check(raw kernel.ResumeURL) error {
	u, err := url.Parse(strings.TrimSpace(raw.String()))
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidURL().WithDetail("resume_url", raw.String())
	}

	if len(p.prefixes) == 0 {
		return nil
	}
	for _, prefix := range p.prefixes {
		if strings.HasPrefix(u.String(), prefix) {
			return nil
		}
	}
	return ErrInvalidURL().
		WithMessage("Resume URL was not issued by the resume upload service").
		WithDetail("resume_url", raw.String())
}
