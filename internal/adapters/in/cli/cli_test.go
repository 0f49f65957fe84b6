package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/platelens/platelens/internal/adapters/dto"
	"github.com/platelens/platelens/internal/boundaries/in"
	"github.com/platelens/platelens/internal/boundaries/in/mocks"
	"github.com/platelens/platelens/internal/domain"
)

type stubKernel struct {
	defaults domain.PromptConfiguration
	prompts  in.PromptBuilder
	analysis in.AnalysisService
	closed   bool
}

func (k *stubKernel) Context() context.Context                  { return context.Background() }
func (k *stubKernel) PromptDefaults() domain.PromptConfiguration { return k.defaults }
func (k *stubKernel) Prompts() in.PromptBuilder                  { return k.prompts }
func (k *stubKernel) Analysis() in.AnalysisService               { return k.analysis }
func (k *stubKernel) Close() error {
	k.closed = true
	return nil
}

// useKernel swaps the kernel factories and disables the spinner for one test.
func useKernel(t *testing.T, k *stubKernel) {
	t.Helper()
	origAnalysis, origPrompt, origInteractive := openAnalysisKernel, openPromptKernel, isInteractive
	openAnalysisKernel = func(string) (kernel, error) { return k, nil }
	openPromptKernel = func(string) (kernel, error) { return k, nil }
	isInteractive = func() bool { return false }
	t.Cleanup(func() {
		openAnalysisKernel, openPromptKernel, isInteractive = origAnalysis, origPrompt, origInteractive
	})
}

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeImage(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("image bytes"), 0o600))
	return path
}

func sampleAnalysis(raw string) *domain.Analysis {
	return &domain.Analysis{
		Report:   &domain.NutritionReport{Raw: json.RawMessage(raw)},
		Image:    domain.NormalizedImage{MIMEType: "image/jpeg", Payload: "AAAA", DetectedFormat: domain.FormatJPEG},
		Model:    "gemini-test",
		Duration: 1500 * time.Millisecond,
	}
}

const sampleReport = `{"items":[{"name":"apple","serving_size":"1 medium","calories":95,"protein_g":0.5,"carbs_g":25,"fat_g":0.3}],"totals":{"calories":95,"protein_g":0.5,"carbs_g":25,"fat_g":0.3},"healthTags":["vegan","low_fat"]}`

func TestVersionCmd(t *testing.T) {
	stdout, _, err := runRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "platelens "+Version)
	assert.Contains(t, stdout, "Commit:")
}

func TestSetVersionInfo_KeepsDefaultsForEmptyValues(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origDate })

	SetVersionInfo("1.2.3", "", "")
	assert.Equal(t, "1.2.3", Version)
	assert.Equal(t, origCommit, Commit)
	assert.Equal(t, origDate, BuildDate)
}

func TestAnalyzeCmd_TableOutput(t *testing.T) {
	svc := mocks.NewMockAnalysisService(t)
	k := &stubKernel{defaults: domain.PromptConfiguration{StrictJSON: true}, analysis: svc}
	useKernel(t, k)

	svc.EXPECT().
		Analyze(mock.Anything, mock.MatchedBy(func(u domain.Upload) bool { return u.Filename == "lunch.jpg" }), domain.PromptConfiguration{StrictJSON: true}).
		Return(sampleAnalysis(sampleReport), nil).
		Once()

	stdout, stderr, err := runRoot(t, "analyze", writeImage(t, "lunch.jpg"))
	require.NoError(t, err)

	assert.Contains(t, stderr, "Analyzing lunch.jpg")
	assert.Contains(t, stdout, "apple")
	assert.Contains(t, stdout, "1 medium")
	assert.Contains(t, stdout, "Total")
	assert.Contains(t, stdout, "vegan")
	assert.Contains(t, stdout, "low_fat")
	assert.Contains(t, stdout, "gemini-test")
	assert.True(t, k.closed)
}

func TestAnalyzeCmd_JSONOutput(t *testing.T) {
	svc := mocks.NewMockAnalysisService(t)
	useKernel(t, &stubKernel{analysis: svc})

	svc.EXPECT().
		Analyze(mock.Anything, mock.Anything, mock.Anything).
		Return(sampleAnalysis(`{"error":"not_food"}`), nil).
		Once()

	stdout, _, err := runRoot(t, "analyze", "--json", writeImage(t, "cat.png"))
	require.NoError(t, err)

	var resp dto.AnalysisResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.True(t, resp.NotFood)
	assert.JSONEq(t, `{"error":"not_food"}`, string(resp.Result))
	assert.Equal(t, "image/jpeg", resp.MIMEType)
	assert.Equal(t, int64(1500), resp.DurationMs)
}

func TestAnalyzeCmd_FlagOverrides(t *testing.T) {
	svc := mocks.NewMockAnalysisService(t)
	useKernel(t, &stubKernel{defaults: domain.PromptConfiguration{StrictJSON: true}, analysis: svc})

	svc.EXPECT().
		Analyze(mock.Anything, mock.Anything, mock.MatchedBy(func(cfg domain.PromptConfiguration) bool {
			return !cfg.StrictJSON && cfg.DefaultServingSize != nil && *cfg.DefaultServingSize == "1 bowl"
		})).
		Return(sampleAnalysis(sampleReport), nil).
		Once()

	_, _, err := runRoot(t, "analyze", "--strict-json=false", "--serving-size", "1 bowl", writeImage(t, "soup.jpg"))
	require.NoError(t, err)
}

func TestAnalyzeCmd_PipelineError(t *testing.T) {
	svc := mocks.NewMockAnalysisService(t)
	useKernel(t, &stubKernel{analysis: svc})

	svc.EXPECT().
		Analyze(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.NewInferenceError(domain.InferenceTimeout, "deadline exceeded")).
		Once()

	_, _, err := runRoot(t, "analyze", writeImage(t, "meal.jpg"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.KindInferenceTimeout)
}

func TestAnalyzeCmd_MissingFile(t *testing.T) {
	svc := mocks.NewMockAnalysisService(t)
	useKernel(t, &stubKernel{analysis: svc})

	_, _, err := runRoot(t, "analyze", filepath.Join(t.TempDir(), "nope.jpg"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open image")
}

func TestAnalyzeCmd_KernelError(t *testing.T) {
	orig := openAnalysisKernel
	openAnalysisKernel = func(string) (kernel, error) { return nil, domain.ErrMissingAPIKey }
	t.Cleanup(func() { openAnalysisKernel = orig })

	_, _, err := runRoot(t, "analyze", "meal.jpg")
	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
}

func TestAnalyzeCmd_RequiresOneArg(t *testing.T) {
	_, _, err := runRoot(t, "analyze")
	require.Error(t, err)
}

func TestPromptCmd(t *testing.T) {
	prompts := mocks.NewMockPromptBuilder(t)
	useKernel(t, &stubKernel{defaults: domain.PromptConfiguration{StrictJSON: true}, prompts: prompts})

	prompts.EXPECT().
		Build(mock.Anything, mock.MatchedBy(func(cfg domain.PromptConfiguration) bool {
			return cfg.StrictJSON && cfg.ServingSizeHint() == "1 slice"
		})).
		Return("rendered prompt", nil).
		Once()

	stdout, _, err := runRoot(t, "prompt", "--serving-size", "1 slice")
	require.NoError(t, err)
	assert.Equal(t, "rendered prompt\n", stdout)
}

func TestPromptCmd_TemplateError(t *testing.T) {
	prompts := mocks.NewMockPromptBuilder(t)
	useKernel(t, &stubKernel{prompts: prompts})

	prompts.EXPECT().Build(mock.Anything, mock.Anything).Return("", domain.ErrTemplate).Once()

	_, _, err := runRoot(t, "prompt")
	assert.True(t, errors.Is(err, domain.ErrTemplate))
}
