package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platelens/platelens/internal/boundaries/out/mocks"
	"github.com/platelens/platelens/internal/domain"
)

func testLogger() zerowrap.Logger {
	return zerowrap.Default()
}

func TestNewBuilder_MissingTemplate(t *testing.T) {
	renderer := mocks.NewMockTemplateRenderer(t)
	renderer.EXPECT().Has(domain.NutritionTemplate).Return(false)

	builder, err := NewBuilder(renderer, testLogger())

	assert.Nil(t, builder)
	assert.ErrorIs(t, err, domain.ErrTemplate)
	assert.Equal(t, domain.KindTemplate, domain.ErrorKind(err))
}

func TestBuilder_Build_Variables(t *testing.T) {
	portion := "1 cup"

	tests := []struct {
		name        string
		cfg         domain.PromptConfiguration
		wantStrict  bool
		wantServing string
	}{
		{
			name:        "strict without serving size",
			cfg:         domain.PromptConfiguration{StrictJSON: true},
			wantStrict:  true,
			wantServing: "unknown",
		},
		{
			name:        "lenient with serving size",
			cfg:         domain.PromptConfiguration{StrictJSON: false, DefaultServingSize: &portion},
			wantStrict:  false,
			wantServing: "1 cup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := mocks.NewMockTemplateRenderer(t)
			renderer.EXPECT().Has(domain.NutritionTemplate).Return(true)
			renderer.EXPECT().Render(domain.NutritionTemplate, map[string]any{
				VarStrictJSON:         tt.wantStrict,
				VarDefaultServingSize: tt.wantServing,
			}).Return("rendered prompt", nil).Once()

			builder, err := NewBuilder(renderer, testLogger())
			require.NoError(t, err)

			text, err := builder.Build(context.Background(), tt.cfg)

			require.NoError(t, err)
			assert.Equal(t, "rendered prompt", text)
		})
	}
}

func TestBuilder_Build_RenderErrorIsTemplateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "plain error", err: errors.New("template: nutrition:3: unexpected EOF")},
		{name: "already classified", err: domain.ErrTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := mocks.NewMockTemplateRenderer(t)
			renderer.EXPECT().Has(domain.NutritionTemplate).Return(true)
			renderer.EXPECT().Render(domain.NutritionTemplate, map[string]any{
				VarStrictJSON:         true,
				VarDefaultServingSize: "unknown",
			}).Return("", tt.err)

			builder, err := NewBuilder(renderer, testLogger())
			require.NoError(t, err)

			text, err := builder.Build(context.Background(), domain.PromptConfiguration{StrictJSON: true})

			assert.Empty(t, text)
			assert.ErrorIs(t, err, domain.ErrTemplate)
		})
	}
}
