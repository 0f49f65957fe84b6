// Package analysis implements the upload-to-nutrition-report pipeline.
package analysis

import (
	"context"
	"time"

	"github.com/bnema/zerowrap"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/platelens/platelens/internal/boundaries/in"
	"github.com/platelens/platelens/internal/boundaries/out"
	"github.com/platelens/platelens/internal/domain"
)

// Service implements the AnalysisService interface.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	normalizer in.ImageNormalizer
	prompts    in.PromptBuilder
	inference  out.InferenceClient
	extractor  in.ResponseExtractor
	metrics    out.MetricsRecorder
	tracer     trace.Tracer
	log        zerowrap.Logger
}

// NewService creates a new analysis service.
func NewService(
	normalizer in.ImageNormalizer,
	prompts in.PromptBuilder,
	inference out.InferenceClient,
	extractor in.ResponseExtractor,
	metrics out.MetricsRecorder,
	log zerowrap.Logger,
) *Service {
	return &Service{
		normalizer: normalizer,
		prompts:    prompts,
		inference:  inference,
		extractor:  extractor,
		metrics:    metrics,
		tracer:     otel.Tracer("platelens/analysis"),
		log:        log,
	}
}

// Analyze runs normalize, prompt, infer and extract for one upload.
// The first failing stage aborts the run; no partial report is returned.
func (s *Service) Analyze(ctx context.Context, upload domain.Upload, cfg domain.PromptConfiguration) (analysis *domain.Analysis, err error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Analyze",
		"filename":            upload.Filename,
	})
	log := zerowrap.FromCtx(ctx)

	ctx, span := s.tracer.Start(ctx, "analysis.Analyze",
		trace.WithAttributes(attribute.String("upload.filename", upload.Filename)))
	start := time.Now()
	defer func() {
		kind := domain.KindOK
		if err != nil {
			kind = domain.ErrorKind(err)
			span.RecordError(err)
			span.SetStatus(codes.Error, kind)
		}
		span.SetAttributes(attribute.String("analysis.kind", kind))
		span.End()
		s.metrics.RecordAnalysis(ctx, kind, time.Since(start))
	}()

	if upload.Body == nil || upload.Filename == "" {
		return nil, domain.ErrNoImageUploaded
	}

	image, err := s.normalizer.Normalize(ctx, upload.Filename, upload.Body)
	if err != nil {
		log.Info().Err(err).Str("kind", domain.ErrorKind(err)).Msg("upload rejected")
		return nil, err
	}

	prompt, err := s.prompts.Build(ctx, cfg)
	if err != nil {
		return nil, err
	}

	text, err := s.infer(ctx, prompt, *image)
	if err != nil {
		log.Warn().Err(err).Str("kind", domain.ErrorKind(err)).Msg("inference failed")
		return nil, err
	}

	report, err := s.extractor.Extract(text)
	if err != nil {
		log.Warn().Err(err).Int("response_length", len(text)).Msg("could not extract report from model response")
		return nil, err
	}

	duration := time.Since(start)
	log.Info().
		Str("mime_type", image.MIMEType).
		Bool("not_food", report.IsNotFood()).
		Dur("duration", duration).
		Msg("analysis complete")

	return &domain.Analysis{
		Report:   report,
		Image:    *image,
		Model:    s.inference.Model(),
		Duration: duration,
	}, nil
}

// infer performs the single inference call and records its latency.
func (s *Service) infer(ctx context.Context, prompt string, image domain.NormalizedImage) (string, error) {
	model := s.inference.Model()
	ctx, span := s.tracer.Start(ctx, "analysis.Infer",
		trace.WithAttributes(
			attribute.String("inference.model", model),
			attribute.String("image.mime_type", image.MIMEType),
		))
	defer span.End()

	start := time.Now()
	text, err := s.inference.Infer(ctx, domain.InferenceRequest{Prompt: prompt, Image: image})

	kind := domain.KindOK
	if err != nil {
		kind = domain.ErrorKind(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, kind)
	}
	s.metrics.RecordInference(ctx, model, kind, time.Since(start))
	return text, err
}
