package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "no upload", err: ErrNoImageUploaded, want: KindNoImageUploaded},
		{name: "wrapped unsupported", err: fmt.Errorf("normalize: %w", ErrUnsupportedFormat), want: KindUnsupportedFormat},
		{name: "invalid image", err: ErrInvalidImage, want: KindInvalidImage},
		{name: "template", err: fmt.Errorf("%w: missing", ErrTemplate), want: KindTemplate},
		{name: "unreachable", err: NewInferenceError(InferenceUnreachable, "dial tcp"), want: KindInferenceUnreachable},
		{name: "timeout", err: NewInferenceError(InferenceTimeout, "deadline"), want: KindInferenceTimeout},
		{name: "rejected", err: NewInferenceError(InferenceRejected, "quota"), want: KindInferenceRejected},
		{name: "unknown", err: NewInferenceError(InferenceUnknown, "boom"), want: KindInferenceUnknown},
		{name: "wrapped inference", err: fmt.Errorf("analyze: %w", NewInferenceError(InferenceTimeout, "x")), want: KindInferenceTimeout},
		{name: "malformed", err: &MalformedResponseError{Raw: "nope"}, want: KindMalformedResponse},
		{name: "anything else", err: errors.New("disk on fire"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorKind(tt.err))
		})
	}
}

func TestErrorDetail_HidesInternalErrors(t *testing.T) {
	assert.Equal(t, "internal error", ErrorDetail(errors.New("/var/lib/secret path leaked")))
	assert.Equal(t, "inference rejected: quota exceeded", ErrorDetail(NewInferenceError(InferenceRejected, "quota exceeded")))
	assert.Equal(t, ErrUnsupportedFormat.Error(), ErrorDetail(fmt.Errorf("x: %w", ErrUnsupportedFormat)))
}

func TestInferenceError_Unwrap(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewInferenceError(InferenceUnreachable, "connection refused"))

	assert.ErrorIs(t, err, ErrInference)

	var infErr *InferenceError
	assert.True(t, errors.As(err, &infErr))
	assert.Equal(t, InferenceUnreachable, infErr.Kind)
	assert.Equal(t, "connection refused", infErr.Detail)
}

func TestMalformedResponseError(t *testing.T) {
	err := &MalformedResponseError{Raw: "Sure!", Reason: "no JSON value found"}

	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Contains(t, err.Error(), "no JSON value found")
	assert.Equal(t, ErrMalformedResponse.Error(), (&MalformedResponseError{}).Error())
}
