// Package extract recovers the nutrition JSON document from free-form model output.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/bnema/zerowrap"

	"github.com/platelens/platelens/internal/domain"
)

// fencePattern matches the first triple-backtick block, optionally tagged json.
var fencePattern = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)```")

// Extractor implements the ResponseExtractor interface.
// Only a fenced block is unwrapped; prose around an unfenced value is not searched.
type Extractor struct {
	log zerowrap.Logger
}

// NewExtractor creates a response extractor.
func NewExtractor(log zerowrap.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract parses rawText into a NutritionReport without validating its shape.
func (e *Extractor) Extract(rawText string) (*domain.NutritionReport, error) {
	candidate := Candidate(rawText)

	if candidate == "" {
		e.log.Debug().Msg("model response is empty")
		return nil, &domain.MalformedResponseError{Raw: rawText, Reason: "empty response"}
	}
	if !json.Valid([]byte(candidate)) {
		e.log.Debug().Int("length", len(rawText)).Msg("model response is not valid JSON")
		return nil, &domain.MalformedResponseError{Raw: rawText, Reason: "no JSON value found"}
	}

	return &domain.NutritionReport{Raw: json.RawMessage(candidate)}, nil
}

// Candidate returns the text that Extract will try to parse.
func Candidate(rawText string) string {
	if m := fencePattern.FindStringSubmatch(rawText); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(rawText)
}
