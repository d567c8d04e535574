package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Transport errors (retryable)
const (
	// ErrCodeConnectionFailed indicates a failed connection to a peer.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeWriteFailed indicates a send on an open stream failed.
	ErrCodeWriteFailed ErrorCode = "WRITE_FAILED"
	// ErrCodeReadTimeout indicates a stream read exceeded its deadline.
	ErrCodeReadTimeout ErrorCode = "READ_TIMEOUT"
	// ErrCodeTimeout indicates a request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Stream lifecycle errors
const (
	// ErrCodeStreamClosed indicates a write or close on an already-closed stream.
	ErrCodeStreamClosed ErrorCode = "STREAM_CLOSED"
	// ErrCodeStreamEnded indicates the peer ended the stream unexpectedly.
	ErrCodeStreamEnded ErrorCode = "STREAM_ENDED"
	// ErrCodeShutdown indicates an operation on a registry that has shut down.
	ErrCodeShutdown ErrorCode = "SHUTDOWN"
)

// Protocol errors
const (
	// ErrCodeInvalidRequest indicates headers/method do not form a valid SSE request.
	ErrCodeInvalidRequest ErrorCode = "INVALID_SSE_REQUEST"
	// ErrCodeInvalidResponse indicates response headers do not form a valid SSE response.
	ErrCodeInvalidResponse ErrorCode = "INVALID_SSE_RESPONSE"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeConnectionFailed: true,
	ErrCodeWriteFailed:      true,
	ErrCodeReadTimeout:      true,
	ErrCodeTimeout:          true,
	ErrCodeStreamEnded:      true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
