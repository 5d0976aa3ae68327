package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"

	"apridrive/internal/apperr"
)

// classifyTransport maps transport-level symptoms shared by every backend
// to domain errors. Returns nil when the error is not a transport problem.
func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", apperr.ErrUploadTimeout, err)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Errorf("%w: %v", apperr.ErrConnectivity, err)
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) {
		return fmt.Errorf("%w: %v", apperr.ErrConnectivity, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return fmt.Errorf("%w: %v", apperr.ErrConnectivity, err)
	}

	return nil
}

// classifyStatus maps backend HTTP status codes to domain errors.
func classifyStatus(code int, err error) error {
	switch code {
	case http.StatusForbidden:
		return fmt.Errorf("%w: %v", apperr.ErrInsufficientPermissions, err)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %v", apperr.ErrObjectTooLarge, err)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %v", apperr.ErrNotFound, err)
	case http.StatusRequestTimeout:
		return fmt.Errorf("%w: %v", apperr.ErrUploadTimeout, err)
	}
	return nil
}
