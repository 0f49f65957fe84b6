package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/platelens/platelens/internal/app"
	"github.com/platelens/platelens/internal/boundaries/in"
	"github.com/platelens/platelens/internal/domain"
)

// kernel is the slice of app.Kernel the commands use.
type kernel interface {
	Context() context.Context
	PromptDefaults() domain.PromptConfiguration
	Prompts() in.PromptBuilder
	Analysis() in.AnalysisService
	Close() error
}

var openAnalysisKernel = func(configPath string) (kernel, error) {
	k, err := app.NewKernel(configPath)
	if err != nil {
		return nil, err
	}
	return k, nil
}

var openPromptKernel = func(configPath string) (kernel, error) {
	k, err := app.NewPromptKernel(configPath)
	if err != nil {
		return nil, err
	}
	return k, nil
}

// promptFlags are the prompt overrides shared by analyze and prompt.
type promptFlags struct {
	strictJSON  bool
	servingSize string
}

func (f *promptFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.strictJSON, "strict-json", true, "Ask the model for strict JSON syntax")
	cmd.Flags().StringVar(&f.servingSize, "serving-size", "", "Default serving size hint, e.g. \"1 plate\"")
}

// apply overrides defaults with the flags the user actually set.
func (f *promptFlags) apply(cmd *cobra.Command, defaults domain.PromptConfiguration) domain.PromptConfiguration {
	cfg := defaults
	if cmd.Flags().Changed("strict-json") {
		cfg.StrictJSON = f.strictJSON
	}
	if cmd.Flags().Changed("serving-size") {
		size := f.servingSize
		cfg.DefaultServingSize = &size
	}
	return cfg
}
