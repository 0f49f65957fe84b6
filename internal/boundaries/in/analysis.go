// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (HTTP, CLI)
// and the business logic (use cases).
package in

import (
	"context"
	"io"

	"github.com/platelens/platelens/internal/domain"
)

// AnalysisService defines the contract for the upload-normalize-infer-extract pipeline.
type AnalysisService interface {
	// Analyze runs the full pipeline for one uploaded image.
	// It returns either a complete analysis or a classified error, never a partial result.
	Analyze(ctx context.Context, upload domain.Upload, cfg domain.PromptConfiguration) (*domain.Analysis, error)
}

// ImageNormalizer validates an upload and re-encodes it into a transport format.
type ImageNormalizer interface {
	// Normalize reads body once and returns the re-encoded image.
	// Fails with domain.ErrUnsupportedFormat or domain.ErrInvalidImage.
	Normalize(ctx context.Context, filename string, body io.Reader) (*domain.NormalizedImage, error)
}

// PromptBuilder renders the nutrition extraction prompt.
type PromptBuilder interface {
	// Build renders the prompt for the given configuration.
	Build(ctx context.Context, cfg domain.PromptConfiguration) (string, error)
}

// ResponseExtractor recovers a JSON value from free-form model text.
type ResponseExtractor interface {
	// Extract fails with *domain.MalformedResponseError when no JSON value can be recovered.
	Extract(rawText string) (*domain.NutritionReport, error)
}
