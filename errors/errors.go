package errors

import (
	"errors"
	"fmt"
	"net/http"

	"forum-lab/domain"
)

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrEmptyWords        = fmt.Errorf("no words have been found")
	ErrUnauthenticated   = fmt.Errorf("not logged in")
	ErrNotFound          = fmt.Errorf("not found")
	ErrUnknownConnection = fmt.Errorf("unknown connection")
	ErrInvalidOperation  = fmt.Errorf("invalid operation")
	ErrUnknownOperation  = fmt.Errorf("unknown operation")
	ErrSinkClosed        = fmt.Errorf("sink closed")
	ErrSinkFull          = fmt.Errorf("sink full")
	ErrTokenGeneration   = fmt.Errorf("token generation failed")
	ErrAuditExists       = fmt.Errorf("audit record already exists")
	ErrAlreadyExists     = fmt.Errorf("already exists")
)

// GuardRejectedError is returned when an authorization guard fails.
// The pipeline stops at the first one.
type GuardRejectedError struct {
	Reason domain.RejectReason
}

func (e *GuardRejectedError) Error() string {
	return fmt.Sprintf("guard rejected: %s", e.Reason)
}

func NewGuardRejected(reason domain.RejectReason) error {
	return &GuardRejectedError{Reason: reason}
}

type MutationFailedError struct {
	Cause error
}

func (e *MutationFailedError) Error() string { return fmt.Sprintf("mutation failed: %v", e.Cause) }
func (e *MutationFailedError) Unwrap() error { return e.Cause }

type AuditWriteFailedError struct {
	Cause error
}

func (e *AuditWriteFailedError) Error() string { return fmt.Sprintf("audit write failed: %v", e.Cause) }
func (e *AuditWriteFailedError) Unwrap() error { return e.Cause }

// IsRejected reports whether err is a guard rejection for the given reason.
func IsRejected(err error, reason domain.RejectReason) bool {
	var rejected *GuardRejectedError
	return errors.As(err, &rejected) && rejected.Reason == reason
}

// Code maps an operation error to the short code written on the wire.
func Code(err error) string {
	var (
		rejected *GuardRejectedError
		mutation *MutationFailedError
		audit    *AuditWriteFailedError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &rejected):
		return rejected.Reason.Code()
	case errors.As(err, &audit):
		return "couldnt_create_mod_log"
	case errors.As(err, &mutation):
		return "couldnt_update_post"
	case errors.Is(err, ErrUnauthenticated):
		return "not_logged_in"
	case errors.Is(err, ErrNotFound):
		return "couldnt_find_post"
	case errors.Is(err, ErrInvalidOperation):
		return "invalid_operation"
	case errors.Is(err, ErrUnknownOperation):
		return "unknown_operation"
	case errors.Is(err, ErrUnknownConnection):
		return "unknown_connection"
	default:
		return "unknown"
	}
}

// HTTPStatus maps an operation error to the status used by the HTTP transport.
func HTTPStatus(err error) int {
	var (
		rejected *GuardRejectedError
		mutation *MutationFailedError
		audit    *AuditWriteFailedError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &rejected):
		return http.StatusForbidden
	case errors.As(err, &audit), errors.As(err, &mutation):
		return http.StatusInternalServerError
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidOperation), errors.Is(err, ErrUnknownOperation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func Is(err, target error) bool { return errors.Is(err, target) }
func As(err error, target any) bool { return errors.As(err, target) }
