package domain

import (
	"encoding/base64"
	"io"
	"strings"
)

// ImageFormat identifies an image encoding, as reported by the decoder.
type ImageFormat string

const (
	FormatJPEG ImageFormat = "JPEG"
	FormatPNG  ImageFormat = "PNG"
	FormatGIF  ImageFormat = "GIF"
	FormatWEBP ImageFormat = "WEBP"
	FormatBMP  ImageFormat = "BMP"
	FormatTIFF ImageFormat = "TIFF"
)

// ParseImageFormat converts a decoder format name ("jpeg", "png", ...) to an ImageFormat.
func ParseImageFormat(name string) ImageFormat {
	return ImageFormat(strings.ToUpper(name))
}

// IsTransportFormat reports whether the format can be sent to the inference service as-is.
func (f ImageFormat) IsTransportFormat() bool {
	return f == FormatJPEG || f == FormatPNG
}

// MIMEType returns the MIME type for a transport format, or an empty string.
func (f ImageFormat) MIMEType() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatPNG:
		return "image/png"
	default:
		return ""
	}
}

// Upload is a raw uploaded file as received by an inbound adapter.
type Upload struct {
	Filename string
	Body     io.Reader
}

// NormalizedImage is an upload re-encoded into a transport format.
// MIMEType always describes the encoding of Payload, never the declared filename.
type NormalizedImage struct {
	MIMEType       string      `json:"mime_type"`
	Payload        string      `json:"data"`
	DetectedFormat ImageFormat `json:"detected_format"`
}

// Format returns the transport format matching MIMEType.
func (n NormalizedImage) Format() ImageFormat {
	switch n.MIMEType {
	case "image/jpeg":
		return FormatJPEG
	case "image/png":
		return FormatPNG
	default:
		return ""
	}
}

// Bytes decodes the base64 payload.
func (n NormalizedImage) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(n.Payload)
}
