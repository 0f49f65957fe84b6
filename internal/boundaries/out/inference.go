// Package out defines output ports (interfaces) for external dependencies.
// These interfaces are implemented by driven adapters (inference service, templates, telemetry).
package out

import (
	"context"

	"github.com/platelens/platelens/internal/domain"
)

// InferenceClient defines the contract for a single multimodal inference call.
type InferenceClient interface {
	// Infer sends the prompt and inlined image and returns the generated text.
	// An empty response is returned as "" with a nil error.
	// Failures are reported as *domain.InferenceError.
	Infer(ctx context.Context, req domain.InferenceRequest) (string, error)

	// Model returns the model identifier used for calls.
	Model() string
}
