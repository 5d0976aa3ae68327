package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// record store errors
	ErrNotFound = errors.New("not found")

	// upstream storage errors
	ErrConnectivity            = errors.New("cannot reach remote storage")
	ErrUploadTimeout           = errors.New("upload timed out")
	ErrObjectTooLarge          = errors.New("object too large for remote storage")
	ErrInsufficientPermissions = errors.New("insufficient permissions for remote storage")
	ErrPermissionGrantFailed   = errors.New("object created but public read grant failed")
	ErrUpstream                = errors.New("remote storage error")

	// local staging errors
	ErrFileTooLarge = errors.New("file exceeds the size limit")
	ErrIO           = errors.New("local staging failed")
)

// ValidationError reports which required fields a request is missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// MediaTypeError is returned when neither the declared mime type nor the
// file extension is on the allow-list.
type MediaTypeError struct {
	MimeType  string
	Extension string
}

func (e *MediaTypeError) Error() string {
	return fmt.Sprintf("file type not allowed: %s (%s)", e.MimeType, e.Extension)
}

// IngestionError wraps the failure that aborted a batch upload. Uploaded
// lists the remote ids that had already landed so a caller can retry the
// batch without re-uploading them.
type IngestionError struct {
	Slot     string
	Index    int
	Uploaded []string
	Cause    error
}

func (e *IngestionError) Error() string {
	if e.Slot == "multipleFiles" {
		return fmt.Sprintf("ingestion failed at %s[%d]: %v", e.Slot, e.Index, e.Cause)
	}
	return fmt.Sprintf("ingestion failed at %s: %v", e.Slot, e.Cause)
}

func (e *IngestionError) Unwrap() error {
	return e.Cause
}
