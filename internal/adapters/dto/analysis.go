package dto

import (
	"encoding/json"

	"github.com/platelens/platelens/internal/domain"
)

// AnalysisResponse is returned by POST /api/v1/upload.
type AnalysisResponse struct {
	Result     json.RawMessage `json:"result"`
	NotFood    bool            `json:"not_food"`
	MIMEType   string          `json:"mime_type"`
	Image      string          `json:"image"`
	Model      string          `json:"model"`
	DurationMs int64           `json:"duration_ms"`
}

// NewAnalysisResponse converts a pipeline result to its wire form.
func NewAnalysisResponse(a *domain.Analysis) AnalysisResponse {
	return AnalysisResponse{
		Result:     a.Report.Raw,
		NotFood:    a.Report.IsNotFood(),
		MIMEType:   a.Image.MIMEType,
		Image:      a.Image.Payload,
		Model:      a.Model,
		DurationMs: a.Duration.Milliseconds(),
	}
}

// HealthResponse is returned by GET /api/v1/health_check.
type HealthResponse struct {
	Status string `json:"status"`
}
