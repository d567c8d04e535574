// Package errors provides unified error handling for ssekit.
// It implements structured error types with error codes, HTTP status mapping,
// and retryable detection following RFC 7807 and Google AIP-193.
//
// Stream-specific sentinel errors (ErrStreamClosed, ErrReadTimeout, ...) are
// plain values so hot paths can compare with errors.Is without allocating.
package errors
