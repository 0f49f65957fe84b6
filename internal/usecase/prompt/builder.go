// Package prompt implements the nutrition prompt use case.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/zerowrap"

	"github.com/platelens/platelens/internal/boundaries/out"
	"github.com/platelens/platelens/internal/domain"
)

// Template variables understood by the nutrition template.
const (
	VarStrictJSON         = "strict_json"
	VarDefaultServingSize = "default_serving_size"
)

// Builder implements the PromptBuilder interface.
type Builder struct {
	renderer out.TemplateRenderer
	template string
	log      zerowrap.Logger
}

// NewBuilder creates a prompt builder. It fails with domain.ErrTemplate when the
// renderer does not know the nutrition template, so a broken install is caught at startup.
func NewBuilder(renderer out.TemplateRenderer, log zerowrap.Logger) (*Builder, error) {
	if !renderer.Has(domain.NutritionTemplate) {
		return nil, fmt.Errorf("%w: template %q not found", domain.ErrTemplate, domain.NutritionTemplate)
	}
	return &Builder{
		renderer: renderer,
		template: domain.NutritionTemplate,
		log:      log,
	}, nil
}

// Build renders the nutrition prompt for cfg.
func (b *Builder) Build(ctx context.Context, cfg domain.PromptConfiguration) (string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "BuildPrompt",
	})
	log := zerowrap.FromCtx(ctx)

	text, err := b.renderer.Render(b.template, map[string]any{
		VarStrictJSON:         cfg.StrictJSON,
		VarDefaultServingSize: cfg.ServingSizeHint(),
	})
	if err != nil {
		if !errors.Is(err, domain.ErrTemplate) {
			err = fmt.Errorf("%w: %v", domain.ErrTemplate, err)
		}
		log.Error().Err(err).Msg("failed to render prompt")
		return "", err
	}

	log.Debug().
		Bool("strict_json", cfg.StrictJSON).
		Str("serving_size", cfg.ServingSizeHint()).
		Int("length", len(text)).
		Msg("prompt rendered")
	return text, nil
}
