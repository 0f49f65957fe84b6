package domain

import "time"

// InferenceRequest is a single prompt + image call to the inference service.
type InferenceRequest struct {
	Prompt string
	Image  NormalizedImage
}

// Analysis is the outcome of a successful pipeline run.
type Analysis struct {
	Report   *NutritionReport
	Image    NormalizedImage
	Model    string
	Duration time.Duration
}
