package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ProcessedImage contains all variants of a processed image
type ProcessedImage struct {
	Original    []byte
	Thumbnail   []byte
	ContentType string
	Width       int
	Height      int
	ThumbWidth  int
	ThumbHeight int
}

// Config for image processing
type Config struct {
	MaxWidth    int // Max width for original
	MaxHeight   int // Max height for original
	ThumbWidth  int // Thumbnail width
	ThumbHeight int // Thumbnail height
	Quality     int // JPEG quality 1-100
}

// DefaultConfig returns processing defaults for vehicle gallery shots
func DefaultConfig() Config {
	return Config{
		MaxWidth:    2000,
		MaxHeight:   2000,
		ThumbWidth:  400,
		ThumbHeight: 300,
		Quality:     85,
	}
}

// Processor handles image processing
type Processor struct {
	config Config
}

// NewProcessor creates image processor
func NewProcessor(config Config) *Processor {
	return &Processor{config: config}
}

// Process decodes an image, bounds the original, and produces a thumbnail
func (p *Processor) Process(reader io.Reader, filename string) (*ProcessedImage, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	// Shrink oversized originals, never upscale
	bounds := img.Bounds()
	if bounds.Dx() > p.config.MaxWidth || bounds.Dy() > p.config.MaxHeight {
		img = imaging.Fit(img, p.config.MaxWidth, p.config.MaxHeight, imaging.Lanczos)
	}

	thumb := imaging.Fill(img, p.config.ThumbWidth, p.config.ThumbHeight, imaging.Center, imaging.Lanczos)

	contentType := contentTypeFor(format, filename)

	original, err := p.encode(img, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to encode original: %w", err)
	}

	thumbnail, err := p.encode(thumb, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	finalBounds := img.Bounds()
	return &ProcessedImage{
		Original:    original,
		Thumbnail:   thumbnail,
		ContentType: contentType,
		Width:       finalBounds.Dx(),
		Height:      finalBounds.Dy(),
		ThumbWidth:  p.config.ThumbWidth,
		ThumbHeight: p.config.ThumbHeight,
	}, nil
}

func (p *Processor) encode(img image.Image, contentType string) ([]byte, error) {
	var buf bytes.Buffer
	switch contentType {
	case "image/png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.config.Quality}); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func contentTypeFor(format, filename string) string {
	switch format {
	case "png":
		return "image/png"
	case "jpeg":
		return "image/jpeg"
	}
	if strings.EqualFold(filepath.Ext(filename), ".png") {
		return "image/png"
	}
	return "image/jpeg"
}
