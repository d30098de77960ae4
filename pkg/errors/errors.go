package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeAPI        = "API_ERROR"
	CodeQuota      = "QUOTA_EXCEEDED"
	CodeCache      = "CACHE_ERROR"
	CodeTranscript = "TRANSCRIPT_ERROR"
)

type AppError struct {
	Message string
	Code    string
	Context map[string]any
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// ValidationError reports a rejected input, e.g. comparing fewer than two
// channels or an empty video ID.
type ValidationError struct {
	*AppError
	Field string
	Value any
}

func NewValidationError(message, field string, value any) *ValidationError {
	return &ValidationError{
		AppError: &AppError{
			Message: message,
			Code:    CodeValidation,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

// NotFoundError marks an upstream entity the API could not resolve. In batch
// operations it is attached to the individual item, never the whole call.
type NotFoundError struct {
	*AppError
	Resource string
	ID       string
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{
		AppError: &AppError{
			Message: fmt.Sprintf("%s not found: %s", resource, id),
			Code:    CodeNotFound,
			Context: map[string]any{
				"resource": resource,
				"id":       id,
			},
		},
		Resource: resource,
		ID:       id,
	}
}

// APIError wraps an upstream Data API failure. These are surfaced verbatim
// and never retried.
type APIError struct {
	*AppError
	StatusCode int
}

func NewAPIError(message string, statusCode int, cause error) *APIError {
	return &APIError{
		AppError: &AppError{
			Message: message,
			Code:    CodeAPI,
			Cause:   cause,
			Context: map[string]any{
				"status_code": statusCode,
			},
		},
		StatusCode: statusCode,
	}
}

type CacheError struct {
	*AppError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		AppError: &AppError{
			Message: message,
			Code:    CodeCache,
			Cause:   cause,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
		},
		Operation: operation,
		Key:       key,
	}
}

// TranscriptError covers caption retrieval failures (disabled, missing
// language, unavailable video).
type TranscriptError struct {
	*AppError
	VideoID string
	Reason  string
}

func NewTranscriptError(message, videoID, reason string) *TranscriptError {
	return &TranscriptError{
		AppError: &AppError{
			Message: message,
			Code:    CodeTranscript,
			Context: map[string]any{
				"video_id": videoID,
				"reason":   reason,
			},
		},
		VideoID: videoID,
		Reason:  reason,
	}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return stderrors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}
