package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/platelens/platelens/internal/adapters/dto"
	"github.com/platelens/platelens/internal/adapters/in/cli/ui/components"
	"github.com/platelens/platelens/internal/boundaries/in"
	"github.com/platelens/platelens/internal/domain"
)

var errInterrupted = errors.New("interrupted")

var isInteractive = isInteractiveTerminal

// newAnalyzeCmd creates the analyze command.
func newAnalyzeCmd() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
		flags      promptFlags
	)

	cmd := &cobra.Command{
		Use:   "analyze <image>",
		Short: "Analyze a food photo",
		Long: `Run the nutrition pipeline on a local image file and print the report.
Accepts .jpg, .jpeg and .png files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := openAnalysisKernel(configPath)
			if err != nil {
				return err
			}
			defer k.Close()

			cfg := flags.apply(cmd, k.PromptDefaults())
			return runAnalyze(cmd, k, args[0], cfg, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the raw JSON response")
	flags.register(cmd)

	return cmd
}

func runAnalyze(cmd *cobra.Command, k kernel, path string, cfg domain.PromptConfiguration, jsonOutput bool) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	upload := domain.Upload{Filename: filepath.Base(path), Body: file}

	var analysis *domain.Analysis
	if isInteractive() && !jsonOutput {
		analysis, err = analyzeWithSpinner(k.Context(), k.Analysis(), upload, cfg)
	} else {
		if err := cliWriteLine(cmd.ErrOrStderr(), cliRenderMuted(fmt.Sprintf("Analyzing %s...", upload.Filename))); err != nil {
			return err
		}
		analysis, err = k.Analysis().Analyze(k.Context(), upload, cfg)
	}
	if err != nil {
		if errors.Is(err, errInterrupted) {
			return err
		}
		return fmt.Errorf("%s: %s", domain.ErrorKind(err), domain.ErrorDetail(err))
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.NewAnalysisResponse(analysis))
	}
	return renderAnalysis(out, analysis)
}

func analyzeWithSpinner(ctx context.Context, svc in.AnalysisService, upload domain.Upload, cfg domain.PromptConfiguration) (*domain.Analysis, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan analyzeOutcome, 1)
	go func() {
		analysis, err := svc.Analyze(ctx, upload, cfg)
		done <- analyzeOutcome{analysis: analysis, err: err}
	}()

	model := newAnalyzeSpinnerModel(upload.Filename, done)
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	fmt.Print("\r\033[K")
	if err != nil {
		return nil, err
	}

	spinnerModel, ok := final.(analyzeSpinnerModel)
	if !ok {
		return nil, fmt.Errorf("spinner exited with unexpected model type %T", final)
	}
	if spinnerModel.interrupted {
		return nil, errInterrupted
	}
	if !spinnerModel.finished {
		return nil, fmt.Errorf("spinner exited before the analysis finished")
	}

	return spinnerModel.outcome.analysis, spinnerModel.outcome.err
}

type analyzeOutcome struct {
	analysis *domain.Analysis
	err      error
}

type analyzeDoneMsg analyzeOutcome

type analyzeSpinnerModel struct {
	spinner     components.SpinnerModel
	done        <-chan analyzeOutcome
	outcome     analyzeOutcome
	finished    bool
	interrupted bool
}

func newAnalyzeSpinnerModel(filename string, done <-chan analyzeOutcome) analyzeSpinnerModel {
	return analyzeSpinnerModel{
		spinner: components.NewSpinner(
			components.WithMessage(fmt.Sprintf("Analyzing %s...", filename)),
		),
		done: done,
	}
}

func (m analyzeSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Init(), waitForAnalyzeDone(m.done))
}

func (m analyzeSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case analyzeDoneMsg:
		m.outcome = analyzeOutcome(msg)
		m.finished = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.interrupted = true
			return m, tea.Quit
		}
		return m, nil
	default:
		updated, cmd := m.spinner.Update(msg)
		if spinnerModel, ok := updated.(components.SpinnerModel); ok {
			m.spinner = spinnerModel
		}
		return m, cmd
	}
}

func (m analyzeSpinnerModel) View() string {
	return m.spinner.View()
}

func waitForAnalyzeDone(done <-chan analyzeOutcome) tea.Cmd {
	return func() tea.Msg {
		return analyzeDoneMsg(<-done)
	}
}

func isInteractiveTerminal() bool {
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return false
	}
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
