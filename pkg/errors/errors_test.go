package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNotFoundErrorMessage(t *testing.T) {
	err := NewNotFoundError("video", "abc123")

	if got := err.Error(); got != "video not found: abc123" {
		t.Errorf("Error() = %q", got)
	}
	if err.Code != CodeNotFound {
		t.Errorf("Code = %q", err.Code)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound should match")
	}
	if IsValidation(err) {
		t.Error("IsValidation should not match")
	}
}

func TestValidationErrorCarriesField(t *testing.T) {
	err := NewValidationError("at least 2 channels are required", "channel_ids", 1)

	if !IsValidation(err) {
		t.Error("IsValidation should match")
	}
	if err.Field != "channel_ids" {
		t.Errorf("Field = %q", err.Field)
	}
	if err.Context["value"] != 1 {
		t.Errorf("Context value = %v", err.Context["value"])
	}
}

func TestAPIErrorUnwrapsCause(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewAPIError("videos.list failed", 500, cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
	want := "videos.list failed: connection reset"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestMatchingThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("tool failed: %w", NewNotFoundError("channel", "UCx"))

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should match through fmt.Errorf wrapping")
	}
}

func TestTranscriptErrorContext(t *testing.T) {
	err := NewTranscriptError("captions disabled", "vid1", "disabled")

	if err.Code != CodeTranscript {
		t.Errorf("Code = %q", err.Code)
	}
	if err.Reason != "disabled" {
		t.Errorf("Reason = %q", err.Reason)
	}
}
