// Package analysis implements the HTTP adapter for the nutrition analysis endpoints.
package analysis

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/bnema/zerowrap"

	"github.com/platelens/platelens/internal/adapters/dto"
	"github.com/platelens/platelens/internal/boundaries/in"
	"github.com/platelens/platelens/internal/domain"
)

// Routes served by the handler.
const (
	UploadPath = "/api/v1/upload"
	HealthPath = "/api/v1/health_check"
)

// Multipart field names. "uploadInput" is what the web frontend sends.
const (
	FieldUpload             = "uploadInput"
	FieldUploadAlias        = "file"
	FieldStrictJSON         = "strict_json"
	FieldDefaultServingSize = "default_serving_size"
)

// kindRequestTooLarge is reported when the body exceeds the upload limit.
const kindRequestTooLarge = "request_too_large"

// multipartMemory is how much of a multipart body is kept in memory before spilling to disk.
const multipartMemory = 8 << 20

// Config holds the handler settings.
type Config struct {
	MaxUploadBytes int64
	Defaults       domain.PromptConfiguration
}

// Handler handles requests under /api/v1.
type Handler struct {
	svc in.AnalysisService
	cfg Config
	log zerowrap.Logger
}

// NewHandler creates a new analysis handler.
func NewHandler(svc in.AnalysisService, cfg Config, log zerowrap.Logger) *Handler {
	return &Handler{
		svc: svc,
		cfg: cfg,
		log: log,
	}
}

// RegisterRoutes mounts the handler on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle(UploadPath, h)
	mux.Handle(HealthPath, h)
}

// ServeHTTP routes requests to the appropriate handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch strings.TrimSuffix(r.URL.Path, "/") {
	case UploadPath:
		h.handleUpload(w, r)
	case HealthPath:
		h.handleHealth(w, r)
	default:
		sendJSON(w, http.StatusNotFound, dto.ErrorResponse{Kind: "not_found", Detail: "not found"})
	}
}

// handleHealth handles GET /api/v1/health_check.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		sendJSON(w, http.StatusMethodNotAllowed, dto.ErrorResponse{Kind: "method_not_allowed", Detail: "method not allowed"})
		return
	}
	sendJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// handleUpload handles POST /api/v1/upload.
func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := zerowrap.CtxWithFields(r.Context(), map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "http",
		zerowrap.FieldHandler: "analysis",
		zerowrap.FieldMethod:  r.Method,
		zerowrap.FieldPath:    r.URL.Path,
	})
	log := zerowrap.FromCtx(ctx)

	if r.Method != http.MethodPost {
		sendJSON(w, http.StatusMethodNotAllowed, dto.ErrorResponse{Kind: "method_not_allowed", Detail: "method not allowed"})
		return
	}

	if h.cfg.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if isTooLarge(err) {
			log.Info().Int64("limit", h.cfg.MaxUploadBytes).Msg("upload exceeds size limit")
			sendJSON(w, http.StatusRequestEntityTooLarge, dto.ErrorResponse{
				Kind:   kindRequestTooLarge,
				Detail: "uploaded file is too large",
			})
			return
		}
		log.Debug().Err(err).Msg("request is not a multipart form")
		sendError(w, domain.ErrNoImageUploaded)
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile(FieldUpload)
	if errors.Is(err, http.ErrMissingFile) {
		file, header, err = r.FormFile(FieldUploadAlias)
	}
	if err != nil {
		sendError(w, domain.ErrNoImageUploaded)
		return
	}
	defer file.Close()
	if header.Filename == "" {
		sendError(w, domain.ErrNoImageUploaded)
		return
	}

	cfg := h.promptConfig(r, log)

	analysis, err := h.svc.Analyze(ctx, domain.Upload{Filename: header.Filename, Body: file}, cfg)
	if err != nil {
		if StatusForError(err) == http.StatusInternalServerError {
			log.Error().Err(err).Msg("analysis failed")
		}
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, dto.NewAnalysisResponse(analysis))
}

// promptConfig applies the optional form overrides to the configured defaults.
func (h *Handler) promptConfig(r *http.Request, log zerowrap.Logger) domain.PromptConfiguration {
	cfg := h.cfg.Defaults

	if v := strings.TrimSpace(r.FormValue(FieldStrictJSON)); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			log.Debug().Str("value", v).Msg("ignoring invalid strict_json value")
		} else {
			cfg.StrictJSON = strict
		}
	}
	if v := strings.TrimSpace(r.FormValue(FieldDefaultServingSize)); v != "" {
		cfg.DefaultServingSize = &v
	}
	return cfg
}

// StatusForError maps a pipeline error to its HTTP status.
func StatusForError(err error) int {
	switch domain.ErrorKind(err) {
	case domain.KindNoImageUploaded, domain.KindUnsupportedFormat, domain.KindInvalidImage, domain.KindMalformedResponse:
		return http.StatusBadRequest
	case domain.KindInferenceUnreachable, domain.KindInferenceTimeout, domain.KindInferenceRejected, domain.KindInferenceUnknown:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// isTooLarge reports whether err came from the MaxBytesReader limit.
// Some multipart read paths drop the typed error, so the message is checked too.
func isTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}

func sendError(w http.ResponseWriter, err error) {
	sendJSON(w, StatusForError(err), dto.ErrorResponse{
		Kind:   domain.ErrorKind(err),
		Detail: domain.ErrorDetail(err),
	})
}

func sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
