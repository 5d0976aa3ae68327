package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"apridrive/internal/apperr"
	"apridrive/internal/pkg/httputils"
)

// Multer-compatible limit codes, kept so existing clients can switch on them.
const (
	codeFileSize   = "LIMIT_FILE_SIZE"
	codeFileCount  = "LIMIT_FILE_COUNT"
	codeFieldValue = "LIMIT_FIELD_VALUE"
)

func writeError(w http.ResponseWriter, err error, devMode bool) {
	var ingErr *apperr.IngestionError
	if errors.As(err, &ingErr) {
		status, msg, _ := classify(ingErr.Cause, devMode)
		slot := ingErr.Slot
		if slot == "multipleFiles" {
			slot = fmt.Sprintf("%s[%d]", ingErr.Slot, ingErr.Index)
		}
		httputils.ResponseError(w, status, msg, fmt.Sprintf("slot %s: %v", slot, ingErr.Cause))
		return
	}

	status, msg, details := classify(err, devMode)
	httputils.ResponseError(w, status, msg, details)
}

func classify(err error, devMode bool) (status int, msg, details string) {
	var vErr *apperr.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, "validation failed",
			"missing required fields: " + strings.Join(vErr.Missing, ", ")
	}

	var mtErr *apperr.MediaTypeError
	if errors.As(err, &mtErr) {
		return http.StatusBadRequest, "unsupported file type",
			fmt.Sprintf("mime type %q with extension %q is not allowed", mtErr.MimeType, mtErr.Extension)
	}

	switch {
	case errors.Is(err, apperr.ErrFileTooLarge):
		return http.StatusBadRequest, codeFileSize, "file exceeds the 100 MiB limit"
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, "not found", ""
	case errors.Is(err, apperr.ErrUploadTimeout):
		return http.StatusRequestTimeout, "upload timed out", ""
	case errors.Is(err, apperr.ErrObjectTooLarge):
		return http.StatusRequestEntityTooLarge, "file too large for remote storage", ""
	case errors.Is(err, apperr.ErrConnectivity),
		errors.Is(err, apperr.ErrUpstream),
		errors.Is(err, apperr.ErrInsufficientPermissions),
		errors.Is(err, apperr.ErrPermissionGrantFailed):
		if devMode {
			return http.StatusBadGateway, "storage backend failure", err.Error()
		}
		return http.StatusBadGateway, "storage backend failure", ""
	}

	if devMode {
		return http.StatusInternalServerError, "internal error", err.Error()
	}
	return http.StatusInternalServerError, "internal error", ""
}
