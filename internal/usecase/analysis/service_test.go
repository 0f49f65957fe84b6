package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	inmocks "github.com/platelens/platelens/internal/boundaries/in/mocks"
	outmocks "github.com/platelens/platelens/internal/boundaries/out/mocks"
	"github.com/platelens/platelens/internal/domain"
	"github.com/platelens/platelens/internal/usecase/extract"
	"github.com/platelens/platelens/internal/usecase/normalize"
)

const testModel = "gemini-1.5-flash"

func testLogger() zerowrap.Logger {
	return zerowrap.New(zerowrap.Config{Level: "warn"})
}

type fixture struct {
	normalizer *inmocks.MockImageNormalizer
	prompts    *inmocks.MockPromptBuilder
	inference  *outmocks.MockInferenceClient
	extractor  *inmocks.MockResponseExtractor
	metrics    *outmocks.MockMetricsRecorder
	svc        *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		normalizer: inmocks.NewMockImageNormalizer(t),
		prompts:    inmocks.NewMockPromptBuilder(t),
		inference:  outmocks.NewMockInferenceClient(t),
		extractor:  inmocks.NewMockResponseExtractor(t),
		metrics:    outmocks.NewMockMetricsRecorder(t),
	}
	f.svc = NewService(f.normalizer, f.prompts, f.inference, f.extractor, f.metrics, testLogger())
	return f
}

var testImage = &domain.NormalizedImage{MIMEType: "image/png", Payload: "aGVsbG8=", DetectedFormat: domain.FormatPNG}

func TestService_Analyze_Success(t *testing.T) {
	f := newFixture(t)
	body := strings.NewReader("image bytes")
	cfg := domain.PromptConfiguration{StrictJSON: true}
	report := &domain.NutritionReport{Raw: json.RawMessage(`{"items":[],"totals":{"calories":0}}`)}

	f.normalizer.EXPECT().Normalize(mock.Anything, "lunch.png", body).Return(testImage, nil).Once()
	f.prompts.EXPECT().Build(mock.Anything, cfg).Return("describe the food", nil).Once()
	f.inference.EXPECT().Model().Return(testModel)
	f.inference.EXPECT().Infer(mock.Anything, domain.InferenceRequest{Prompt: "describe the food", Image: *testImage}).
		Return("```json\n{}\n```", nil).Once()
	f.extractor.EXPECT().Extract("```json\n{}\n```").Return(report, nil).Once()
	f.metrics.EXPECT().RecordInference(mock.Anything, testModel, domain.KindOK, mock.Anything).Once()
	f.metrics.EXPECT().RecordAnalysis(mock.Anything, domain.KindOK, mock.Anything).Once()

	result, err := f.svc.Analyze(context.Background(), domain.Upload{Filename: "lunch.png", Body: body}, cfg)

	require.NoError(t, err)
	assert.Same(t, report, result.Report)
	assert.Equal(t, *testImage, result.Image)
	assert.Equal(t, testModel, result.Model)
}

func TestService_Analyze_NoUpload(t *testing.T) {
	tests := []struct {
		name   string
		upload domain.Upload
	}{
		{name: "nil body", upload: domain.Upload{Filename: "a.png"}},
		{name: "empty filename", upload: domain.Upload{Body: strings.NewReader("x")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.metrics.EXPECT().RecordAnalysis(mock.Anything, domain.KindNoImageUploaded, mock.Anything).Once()

			result, err := f.svc.Analyze(context.Background(), tt.upload, domain.PromptConfiguration{})

			assert.Nil(t, result)
			assert.ErrorIs(t, err, domain.ErrNoImageUploaded)
		})
	}
}

func TestService_Analyze_NormalizeFailureStopsPipeline(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind string
	}{
		{name: "unsupported format", err: domain.ErrUnsupportedFormat, wantKind: domain.KindUnsupportedFormat},
		{name: "invalid image", err: domain.ErrInvalidImage, wantKind: domain.KindInvalidImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.normalizer.EXPECT().Normalize(mock.Anything, "a.gif", mock.Anything).Return(nil, tt.err).Once()
			f.metrics.EXPECT().RecordAnalysis(mock.Anything, tt.wantKind, mock.Anything).Once()

			result, err := f.svc.Analyze(context.Background(), domain.Upload{Filename: "a.gif", Body: strings.NewReader("x")}, domain.PromptConfiguration{})

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestService_Analyze_TemplateFailure(t *testing.T) {
	f := newFixture(t)
	f.normalizer.EXPECT().Normalize(mock.Anything, "a.png", mock.Anything).Return(testImage, nil).Once()
	f.prompts.EXPECT().Build(mock.Anything, mock.Anything).Return("", domain.ErrTemplate).Once()
	f.metrics.EXPECT().RecordAnalysis(mock.Anything, domain.KindTemplate, mock.Anything).Once()

	result, err := f.svc.Analyze(context.Background(), domain.Upload{Filename: "a.png", Body: strings.NewReader("x")}, domain.PromptConfiguration{})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrTemplate)
}

func TestService_Analyze_InferenceFailure(t *testing.T) {
	tests := []struct {
		kind     domain.InferenceErrorKind
		wantKind string
	}{
		{kind: domain.InferenceUnreachable, wantKind: domain.KindInferenceUnreachable},
		{kind: domain.InferenceTimeout, wantKind: domain.KindInferenceTimeout},
		{kind: domain.InferenceRejected, wantKind: domain.KindInferenceRejected},
		{kind: domain.InferenceUnknown, wantKind: domain.KindInferenceUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			f := newFixture(t)
			infErr := domain.NewInferenceError(tt.kind, "boom")

			f.normalizer.EXPECT().Normalize(mock.Anything, "a.png", mock.Anything).Return(testImage, nil).Once()
			f.prompts.EXPECT().Build(mock.Anything, mock.Anything).Return("prompt", nil).Once()
			f.inference.EXPECT().Model().Return(testModel)
			f.inference.EXPECT().Infer(mock.Anything, mock.Anything).Return("", infErr).Once()
			f.metrics.EXPECT().RecordInference(mock.Anything, testModel, tt.wantKind, mock.Anything).Once()
			f.metrics.EXPECT().RecordAnalysis(mock.Anything, tt.wantKind, mock.Anything).Once()

			result, err := f.svc.Analyze(context.Background(), domain.Upload{Filename: "a.png", Body: strings.NewReader("x")}, domain.PromptConfiguration{})

			assert.Nil(t, result)
			var got *domain.InferenceError
			require.True(t, errors.As(err, &got))
			assert.Equal(t, tt.kind, got.Kind)
			assert.ErrorIs(t, err, domain.ErrInference)
		})
	}
}

func TestService_Analyze_MalformedResponse(t *testing.T) {
	f := newFixture(t)
	malformed := &domain.MalformedResponseError{Raw: "no json here"}

	f.normalizer.EXPECT().Normalize(mock.Anything, "a.png", mock.Anything).Return(testImage, nil).Once()
	f.prompts.EXPECT().Build(mock.Anything, mock.Anything).Return("prompt", nil).Once()
	f.inference.EXPECT().Model().Return(testModel)
	f.inference.EXPECT().Infer(mock.Anything, mock.Anything).Return("no json here", nil).Once()
	f.extractor.EXPECT().Extract("no json here").Return(nil, malformed).Once()
	f.metrics.EXPECT().RecordInference(mock.Anything, testModel, domain.KindOK, mock.Anything).Once()
	f.metrics.EXPECT().RecordAnalysis(mock.Anything, domain.KindMalformedResponse, mock.Anything).Once()

	result, err := f.svc.Analyze(context.Background(), domain.Upload{Filename: "a.png", Body: strings.NewReader("x")}, domain.PromptConfiguration{})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestService_Analyze_WithRealStages(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 200, B: 30, A: 0xff})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	prompts := inmocks.NewMockPromptBuilder(t)
	inference := outmocks.NewMockInferenceClient(t)
	metrics := outmocks.NewMockMetricsRecorder(t)
	svc := NewService(
		normalize.NewService(normalize.DefaultJPEGQuality, normalize.DefaultMaxPixels, testLogger()),
		prompts,
		inference,
		extract.NewExtractor(testLogger()),
		metrics,
		testLogger(),
	)

	prompts.EXPECT().Build(mock.Anything, mock.Anything).Return("prompt", nil).Once()
	inference.EXPECT().Model().Return(testModel)
	inference.EXPECT().Infer(mock.Anything, mock.MatchedBy(func(req domain.InferenceRequest) bool {
		return req.Image.MIMEType == "image/png" && req.Image.Payload != ""
	})).Return("Sure:\n```json\n{\"error\":\"not_food\"}\n```", nil).Once()
	metrics.EXPECT().RecordInference(mock.Anything, testModel, domain.KindOK, mock.Anything).Once()
	metrics.EXPECT().RecordAnalysis(mock.Anything, domain.KindOK, mock.Anything).Once()

	result, err := svc.Analyze(context.Background(), domain.Upload{Filename: "shoe.PNG", Body: &buf}, domain.PromptConfiguration{StrictJSON: true})

	require.NoError(t, err)
	assert.True(t, result.Report.IsNotFood())
	assert.JSONEq(t, `{"error":"not_food"}`, string(result.Report.Raw))
}
