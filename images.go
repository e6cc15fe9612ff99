package inkpress

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// maxImageDimension bounds the larger side of a compressed upload.
	maxImageDimension = 1200
	jpegQuality       = 80
	maxUploadSize     = 10 << 20 // 10MB
)

// NormalizeImage resolves a draft's image input into the single encoded
// value stored on the post.
//
// URL-sourced values are trimmed and passed through untouched, never
// fetched or compressed. File-sourced values must be a data-URI (the
// upload preview); they are decoded, bounded to maxImageDimension, and
// re-encoded as a JPEG data-URI. A value that cannot be decoded as an image
// fails with ErrInvalidImage and produces no partial result.
func NormalizeImage(source ImageSource, value string) (string, error) {
	switch source {
	case SourceURL:
		return strings.TrimSpace(value), nil
	case SourceFile:
		if value == "" {
			return "", nil
		}
		return CompressDataURI(value)
	}
	return "", fmt.Errorf("unknown image source %q", source)
}

// NormalizeUpload reads an uploaded file and returns it as a compressed
// JPEG data-URI. A declared non-image content type or an undecodable
// payload fails with ErrInvalidImage.
func NormalizeUpload(src io.Reader, contentType string) (string, error) {
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: content type %s", ErrInvalidImage, contentType)
	}
	data, err := io.ReadAll(io.LimitReader(src, maxUploadSize))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
		if !strings.HasPrefix(contentType, "image/") {
			return "", fmt.Errorf("%w: content type %s", ErrInvalidImage, contentType)
		}
	}
	return compressBytes(data, contentType)
}

// CompressDataURI re-encodes an image data-URI as a bounded JPEG data-URI.
// If the JPEG encode step fails the original bytes are kept as-is.
func CompressDataURI(uri string) (string, error) {
	data, mime, err := decodeDataURI(uri)
	if err != nil {
		return "", err
	}
	out, err := compressBytes(data, mime)
	if err != nil {
		return "", err
	}
	return out, nil
}

func compressBytes(data []byte, mime string) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Scale both dimensions by the same ratio so the larger side lands
	// exactly on maxImageDimension. No cropping, no distortion.
	if m := max(w, h); m > maxImageDimension {
		w = w * maxImageDimension / m
		h = h * maxImageDimension / m
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		// Keep the original bytes rather than failing the submission.
		return encodeDataURI(data, mime), nil
	}
	return encodeDataURI(buf.Bytes(), "image/jpeg"), nil
}

// decodeDataURI splits a "data:<mime>;base64,<payload>" string into its raw
// bytes and MIME type. Anything that is not an image data-URI is an input
// error.
func decodeDataURI(uri string) ([]byte, string, error) {
	if !IsDataURI(uri) {
		return nil, "", fmt.Errorf("%w: not a data URI", ErrInvalidImage)
	}
	meta, payload, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return nil, "", fmt.Errorf("%w: malformed data URI", ErrInvalidImage)
	}
	mime := strings.TrimSuffix(meta, ";base64")
	if !strings.HasPrefix(mime, "image/") {
		return nil, "", fmt.Errorf("%w: content type %s", ErrInvalidImage, mime)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return data, mime, nil
}

func encodeDataURI(data []byte, mime string) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
