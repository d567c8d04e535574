package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Sentinel errors for stream hot paths. Wrap with %w so errors.Is works
// through AppError and fmt wrapping alike.
var (
	// ErrStreamClosed is returned by writes on a closed stream writer.
	ErrStreamClosed = stderrors.New("stream closed")
	// ErrReadTimeout is returned when a stream read exceeds its per-read deadline.
	ErrReadTimeout = stderrors.New("read timeout")
	// ErrRegistryShutdown is returned by operations on a shut-down registry.
	ErrRegistryShutdown = stderrors.New("registry shut down")
)

// Is reports whether any error in err's chain matches target.
// Re-exported so callers don't need to import both this package and stdlib errors.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// ConnectionFailed creates a new AppError for a failed connection to a peer.
func ConnectionFailed(target string) *AppError {
	return &AppError{
		Code: ErrCodeConnectionFailed, Message: fmt.Sprintf("Unable to connect to %s.", target),
		HTTPStatus: http.StatusServiceUnavailable, Retryable: true,
		Details: map[string]any{"target": target},
	}
}

// WriteFailed creates a new AppError for a failed send on an open stream.
func WriteFailed(connectionID uint64, cause error) *AppError {
	return &AppError{
		Code: ErrCodeWriteFailed, Message: "Sending to the peer failed. The connection has been dropped.",
		HTTPStatus: http.StatusBadGateway, Retryable: true,
		Details: map[string]any{"connection_id": connectionID},
		Cause:   cause,
	}
}

// StreamClosed creates a new AppError for a write on a closed stream.
func StreamClosed() *AppError {
	return &AppError{
		Code: ErrCodeStreamClosed, Message: "The stream is closed.",
		HTTPStatus: http.StatusGone, Retryable: false,
		Cause: ErrStreamClosed,
	}
}

// ReadTimeout creates a new AppError for a stream read that exceeded its deadline.
func ReadTimeout(timeoutMS int64) *AppError {
	return &AppError{
		Code: ErrCodeReadTimeout, Message: "Reading from the stream took too long.",
		HTTPStatus: http.StatusGatewayTimeout, Retryable: true,
		Details: map[string]any{"timeout_ms": timeoutMS},
		Cause:   ErrReadTimeout,
	}
}

// StreamEnded creates a new AppError for a stream the peer ended unexpectedly.
func StreamEnded(cause error) *AppError {
	return &AppError{
		Code: ErrCodeStreamEnded, Message: "The stream ended unexpectedly.",
		HTTPStatus: http.StatusBadGateway, Retryable: true,
		Cause: cause,
	}
}

// InvalidSseRequest creates a new AppError for a request that is not a valid SSE exchange.
func InvalidSseRequest(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidRequest, Message: fmt.Sprintf("Not a valid SSE request: %s", reason),
		HTTPStatus: http.StatusNotAcceptable, Retryable: false,
	}
}

// InvalidSseResponse creates a new AppError for response headers that are not a valid SSE response.
func InvalidSseResponse(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidResponse, Message: fmt.Sprintf("Not a valid SSE response: %s", reason),
		HTTPStatus: http.StatusBadGateway, Retryable: false,
	}
}

// RegistryShutdown creates a new AppError for operations on a shut-down registry.
func RegistryShutdown() *AppError {
	return &AppError{
		Code: ErrCodeShutdown, Message: "The connection registry has shut down.",
		HTTPStatus: http.StatusServiceUnavailable, Retryable: false,
		Cause: ErrRegistryShutdown,
	}
}

// NotFound creates a new AppError for a resource that was not found.
func NotFound(resource string, id any) *AppError {
	details := map[string]any{"resource": resource}
	if id != nil {
		details["id"] = id
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("The requested %s was not found.", resource),
		HTTPStatus: http.StatusNotFound, Retryable: false, Details: details,
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest, Retryable: false, Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"field": field},
	}
}

// Internal creates a new AppError for an internal error.
func Internal(message string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: message,
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
		Cause: cause,
	}
}
