package app

import (
	"context"

	"github.com/bnema/zerowrap"

	"github.com/platelens/platelens/internal/boundaries/in"
	"github.com/platelens/platelens/internal/domain"
)

// Kernel provides in-process service access for local CLI execution.
//
// It does not start HTTP servers or register signal handlers.
type Kernel struct {
	ctx         context.Context
	defaults    domain.PromptConfiguration
	promptSvc   in.PromptBuilder
	analysisSvc in.AnalysisService
	model       string
	cleanup     func()
}

// NewKernel wires the full pipeline. It fails with domain.ErrMissingAPIKey when no key is configured.
func NewKernel(configPath string) (*Kernel, error) {
	return newKernel(configPath, true)
}

// NewPromptKernel wires only the prompt builder; no API key is required.
func NewPromptKernel(configPath string) (*Kernel, error) {
	return newKernel(configPath, false)
}

func newKernel(configPath string, withInference bool) (*Kernel, error) {
	_, cfg, err := initConfig(configPath)
	if err != nil {
		return nil, err
	}

	log, cleanup, err := initLogger(cfg)
	if err != nil {
		return nil, err
	}
	if cleanup == nil {
		cleanup = func() {}
	}

	k := &Kernel{
		ctx:      zerowrap.WithCtx(context.Background(), log),
		defaults: cfg.PromptDefaults(),
		cleanup:  cleanup,
	}

	if !withInference {
		promptSvc, err := createPromptBuilder(cfg, log)
		if err != nil {
			cleanup()
			return nil, err
		}
		k.promptSvc = promptSvc
		return k, nil
	}

	svc, err := createServices(cfg, log)
	if err != nil {
		cleanup()
		return nil, err
	}
	k.promptSvc = svc.promptSvc
	k.analysisSvc = svc.analysisSvc
	k.model = svc.model
	return k, nil
}

func (k *Kernel) Close() error {
	if k == nil || k.cleanup == nil {
		return nil
	}
	k.cleanup()
	return nil
}

// Context returns a background context carrying the kernel's logger.
func (k *Kernel) Context() context.Context { return k.ctx }

// PromptDefaults returns the configured prompt settings.
func (k *Kernel) PromptDefaults() domain.PromptConfiguration { return k.defaults }

func (k *Kernel) Prompts() in.PromptBuilder { return k.promptSvc }

// Analysis is nil for a kernel built with NewPromptKernel.
func (k *Kernel) Analysis() in.AnalysisService { return k.analysisSvc }

func (k *Kernel) Model() string { return k.model }
