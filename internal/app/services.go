package app

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/bnema/zerowrap"

	"github.com/platelens/platelens/internal/adapters/out/gemini"
	"github.com/platelens/platelens/internal/adapters/out/prompttemplate"
	"github.com/platelens/platelens/internal/adapters/out/telemetry"
	"github.com/platelens/platelens/internal/boundaries/in"
	"github.com/platelens/platelens/internal/usecase/analysis"
	"github.com/platelens/platelens/internal/usecase/extract"
	"github.com/platelens/platelens/internal/usecase/normalize"
	"github.com/platelens/platelens/internal/usecase/prompt"
)

// services holds the wired pipeline stages.
type services struct {
	promptSvc   in.PromptBuilder
	analysisSvc in.AnalysisService
	model       string
}

// createServices wires the full pipeline. A missing API key fails here, at startup.
func createServices(cfg Config, log zerowrap.Logger) (*services, error) {
	promptSvc, err := createPromptBuilder(cfg, log)
	if err != nil {
		return nil, err
	}

	client, err := createInferenceClient(cfg, log)
	if err != nil {
		return nil, err
	}

	metrics, err := telemetry.NewMetrics()
	if err != nil {
		return nil, log.WrapErr(err, "failed to create metrics")
	}

	analysisSvc := analysis.NewService(
		normalize.NewService(cfg.Image.JPEGQuality, cfg.Image.MaxPixels, log),
		promptSvc,
		client,
		extract.NewExtractor(log),
		metrics,
		log,
	)

	return &services{
		promptSvc:   promptSvc,
		analysisSvc: analysisSvc,
		model:       client.Model(),
	}, nil
}

// createPromptBuilder loads the prompt templates, from prompt.templates_dir when set.
func createPromptBuilder(cfg Config, log zerowrap.Logger) (*prompt.Builder, error) {
	var fsys fs.FS = prompttemplate.Builtin()
	if cfg.Prompt.TemplatesDir != "" {
		fsys = os.DirFS(cfg.Prompt.TemplatesDir)
		log.Info().
			Str(zerowrap.FieldLayer, "app").
			Str("templates_dir", cfg.Prompt.TemplatesDir).
			Msg("using prompt templates from disk")
	}

	renderer, err := prompttemplate.New(fsys, log)
	if err != nil {
		return nil, err
	}
	return prompt.NewBuilder(renderer, log)
}

func createInferenceClient(cfg Config, log zerowrap.Logger) (*gemini.Client, error) {
	client, err := gemini.New(cfg.Gemini.APIKey, log,
		gemini.WithBaseURL(cfg.Gemini.BaseURL),
		gemini.WithModel(cfg.Gemini.Model),
		gemini.WithTimeout(cfg.Gemini.Timeout),
		gemini.WithTemperature(cfg.Gemini.Temperature),
		gemini.WithMaxOutputTokens(cfg.Gemini.MaxOutputTokens),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create inference client: %w", err)
	}
	return client, nil
}
