package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business-level errors that can occur in the pipeline.
// These errors are used across layers to communicate specific failure conditions.
var (
	// Upload errors
	ErrNoImageUploaded   = errors.New("no image uploaded")
	ErrUnsupportedFormat = errors.New("unsupported file format (only .jpg/.jpeg/.png)")
	ErrInvalidImage      = errors.New("uploaded file is not a valid image")

	// Prompt errors
	ErrTemplate = errors.New("prompt template error")

	// Inference errors
	ErrInference     = errors.New("inference failed")
	ErrMissingAPIKey = errors.New("no inference API key configured")

	// Extraction errors
	ErrMalformedResponse = errors.New("model response is not valid JSON")
)

// InferenceErrorKind classifies a failed call to the inference service.
type InferenceErrorKind string

const (
	InferenceUnreachable InferenceErrorKind = "unreachable"
	InferenceTimeout     InferenceErrorKind = "timeout"
	InferenceRejected    InferenceErrorKind = "rejected"
	InferenceUnknown     InferenceErrorKind = "unknown"
)

// InferenceError is returned by inference clients when the single call fails.
type InferenceError struct {
	Kind   InferenceErrorKind
	Detail string
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference %s: %s", e.Kind, e.Detail)
}

// Unwrap lets callers match any inference failure with errors.Is(err, ErrInference).
func (e *InferenceError) Unwrap() error {
	return ErrInference
}

// NewInferenceError creates a classified inference error.
func NewInferenceError(kind InferenceErrorKind, detail string) *InferenceError {
	return &InferenceError{Kind: kind, Detail: detail}
}

// MalformedResponseError carries the raw model text that could not be parsed.
type MalformedResponseError struct {
	Raw    string
	Reason string
}

func (e *MalformedResponseError) Error() string {
	if e.Reason == "" {
		return ErrMalformedResponse.Error()
	}
	return fmt.Sprintf("%s: %s", ErrMalformedResponse.Error(), e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return ErrMalformedResponse
}

// KindOK is the metrics kind recorded for successful runs.
const KindOK = "ok"

// Machine-readable error kinds exposed at the boundary.
const (
	KindUnsupportedFormat    = "unsupported_format"
	KindInvalidImage         = "invalid_image"
	KindTemplate             = "template_error"
	KindInferenceUnreachable = "inference_unreachable"
	KindInferenceTimeout     = "inference_timeout"
	KindInferenceRejected    = "inference_rejected"
	KindInferenceUnknown     = "inference_unknown"
	KindMalformedResponse    = "malformed_response"
	KindNoImageUploaded      = "no_image_uploaded"
	KindInternal             = "internal"
)

// ErrorKind maps a pipeline error to its machine-readable kind.
func ErrorKind(err error) string {
	var infErr *InferenceError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &infErr):
		switch infErr.Kind {
		case InferenceUnreachable:
			return KindInferenceUnreachable
		case InferenceTimeout:
			return KindInferenceTimeout
		case InferenceRejected:
			return KindInferenceRejected
		default:
			return KindInferenceUnknown
		}
	case errors.Is(err, ErrNoImageUploaded):
		return KindNoImageUploaded
	case errors.Is(err, ErrUnsupportedFormat):
		return KindUnsupportedFormat
	case errors.Is(err, ErrInvalidImage):
		return KindInvalidImage
	case errors.Is(err, ErrMalformedResponse):
		return KindMalformedResponse
	case errors.Is(err, ErrTemplate):
		return KindTemplate
	default:
		return KindInternal
	}
}

// ErrorDetail returns the human-readable detail for a pipeline error.
// Internal errors are reduced to a generic message.
func ErrorDetail(err error) string {
	var infErr *InferenceError
	var malformed *MalformedResponseError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &infErr):
		return infErr.Error()
	case errors.As(err, &malformed):
		return malformed.Error()
	case errors.Is(err, ErrNoImageUploaded):
		return ErrNoImageUploaded.Error()
	case errors.Is(err, ErrUnsupportedFormat):
		return ErrUnsupportedFormat.Error()
	case errors.Is(err, ErrInvalidImage):
		return ErrInvalidImage.Error()
	case errors.Is(err, ErrMalformedResponse):
		return ErrMalformedResponse.Error()
	case errors.Is(err, ErrTemplate):
		return ErrTemplate.Error()
	default:
		return "internal error"
	}
}
