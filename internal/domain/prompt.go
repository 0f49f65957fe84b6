package domain

// PromptConfiguration tunes the rendered nutrition prompt.
type PromptConfiguration struct {
	StrictJSON bool
	// DefaultServingSize is the serving-size hint; nil means "unknown".
	DefaultServingSize *string
}

// ServingSizeHint returns the configured serving-size fallback.
func (c PromptConfiguration) ServingSizeHint() string {
	if c.DefaultServingSize == nil || *c.DefaultServingSize == "" {
		return UnknownServingSize
	}
	return *c.DefaultServingSize
}

// UnknownServingSize is used when no default serving size is configured.
const UnknownServingSize = "unknown"

// NutritionTemplate is the name of the nutrition extraction prompt template.
const NutritionTemplate = "nutrition"
