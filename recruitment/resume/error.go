package resume

import (
	"net/http"

	"github.com/Abraxas-365/vatalique/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("RESUME")

// Error codes
var (
	CodeMissingFile        = ErrRegistry.Register("MISSING_FILE", errx.TypeValidation, http.StatusBadRequest, "A resume file is required in the 'file' field")
	CodeFileTooLarge       = ErrRegistry.Register("FILE_TOO_LARGE", errx.TypeValidation, http.StatusRequestEntityTooLarge, "Resume must be 10MB or smaller")
	CodeInvalidFileType    = ErrRegistry.Register("INVALID_FILE_TYPE", errx.TypeValidation, http.StatusBadRequest, "Resume must be a PDF document")
	CodeInvalidURL         = ErrRegistry.Register("INVALID_URL", errx.TypeValidation, http.StatusBadRequest, "Resume URL must be an absolute http or https URL")
	CodeStorageUnavailable = ErrRegistry.Register("STORAGE_UNAVAILABLE", errx.TypeUnavailable, http.StatusServiceUnavailable, "Resume uploads are not configured")
	CodeUploadFailed       = ErrRegistry.Register("UPLOAD_FAILED", errx.TypeExternal, http.StatusBadGateway, "Failed to store resume")
)

func ErrMissingFile() *errx.Error {
	return ErrRegistry.New(CodeMissingFile)
}

func ErrFileTooLarge() *errx.Error {
	return ErrRegistry.New(CodeFileTooLarge)
}

func ErrInvalidFileType() *errx.Error {
	return ErrRegistry.New(CodeInvalidFileType)
}

func ErrInvalidURL() *errx.Error {
	return ErrRegistry.New(CodeInvalidURL)
}

func ErrStorageUnavailable() *errx.Error {
	return ErrRegistry.New(CodeStorageUnavailable)
}

func ErrUploadFailed() *errx.Error {
	return ErrRegistry.New(CodeUploadFailed)
}
