// Package normalize implements the image normalization use case.
//
// Uploads are decoded from their actual content, not their declared filename,
// and re-encoded as JPEG or PNG for transport to the inference service.
package normalize

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/bnema/zerowrap"

	// Registered decoders. GIF, WEBP, BMP and TIFF are accepted as input and
	// re-encoded according to the filename extension.
	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/platelens/platelens/internal/domain"
)

// DefaultJPEGQuality matches the quality most decoders assume when re-saving.
const DefaultJPEGQuality = 75

// DefaultMaxPixels caps decoded image area so a small upload cannot declare
// dimensions that need gigabytes of pixel buffer.
const DefaultMaxPixels int64 = 89_478_485

// extensionFormats maps the accepted filename extensions to their fallback format.
var extensionFormats = map[string]domain.ImageFormat{
	".jpg":  domain.FormatJPEG,
	".jpeg": domain.FormatJPEG,
	".png":  domain.FormatPNG,
}

// Service implements the ImageNormalizer interface.
type Service struct {
	jpegQuality int
	maxPixels   int64
	log         zerowrap.Logger
}

// NewService creates a new normalization service.
// A quality outside 1..100 falls back to DefaultJPEGQuality and a
// non-positive pixel cap falls back to DefaultMaxPixels.
func NewService(jpegQuality int, maxPixels int64, log zerowrap.Logger) *Service {
	if jpegQuality < 1 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	return &Service{
		jpegQuality: jpegQuality,
		maxPixels:   maxPixels,
		log:         log,
	}
}

// Normalize decodes body and re-encodes it into a transport format.
func (s *Service) Normalize(ctx context.Context, filename string, body io.Reader) (*domain.NormalizedImage, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Normalize",
		"filename":            filename,
	})
	log := zerowrap.FromCtx(ctx)

	ext := strings.ToLower(filepath.Ext(filename))
	fallback, ok := extensionFormats[ext]
	if !ok {
		log.Debug().Str("extension", ext).Msg("rejected upload extension")
		return nil, domain.ErrUnsupportedFormat
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, log.WrapErr(err, "failed to read upload")
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		log.Debug().Err(err).Int("size", len(data)).Msg("upload is not a decodable image")
		return nil, domain.ErrInvalidImage
	}
	if pixels := int64(cfg.Width) * int64(cfg.Height); cfg.Width <= 0 || cfg.Height <= 0 || pixels > s.maxPixels {
		log.Debug().
			Int("width", cfg.Width).
			Int("height", cfg.Height).
			Int64("max_pixels", s.maxPixels).
			Msg("rejected image dimensions")
		return nil, domain.ErrInvalidImage
	}

	img, formatName, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Debug().Err(err).Int("size", len(data)).Msg("upload is not a decodable image")
		return nil, domain.ErrInvalidImage
	}

	detected := domain.ParseImageFormat(formatName)
	target := detected
	if !target.IsTransportFormat() {
		target = fallback
	}
	if !target.IsTransportFormat() {
		return nil, domain.ErrUnsupportedFormat
	}

	var buf bytes.Buffer
	switch target {
	case domain.FormatJPEG:
		if needsFlatten(img) {
			img = flatten(img)
		}
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: s.jpegQuality})
	case domain.FormatPNG:
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return nil, log.WrapErr(err, "failed to re-encode image")
	}

	log.Debug().
		Str("detected_format", string(detected)).
		Str("target_format", string(target)).
		Int("input_bytes", len(data)).
		Int("output_bytes", buf.Len()).
		Msg("image normalized")

	return &domain.NormalizedImage{
		MIMEType:       target.MIMEType(),
		Payload:        base64.StdEncoding.EncodeToString(buf.Bytes()),
		DetectedFormat: detected,
	}, nil
}

// needsFlatten reports whether img carries alpha or palette data the JPEG encoder
// cannot represent.
func needsFlatten(img image.Image) bool {
	switch img.(type) {
	case *image.YCbCr, *image.Gray, *image.Gray16, *image.CMYK:
		return false
	case *image.Paletted:
		return true
	}
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return true
}

// flatten drops the alpha channel, keeping the straight (non-premultiplied) RGB values.
func flatten(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return out
}
