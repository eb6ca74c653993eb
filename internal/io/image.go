package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// jpegQuality is used for every JPEG this package encodes.
const jpegQuality = 90

// ImageService provides image processing operations for storyboard images.
//
// ImageService is used to:
//   - Shrink rendered shots into JPEG thumbnails for exports
//   - Scale shots down to a handful of pixels for terminal previews
//
// Example usage:
//
//	svc := NewImageService()
//
//	// Resize to max 320x240 and encode as JPEG
//	thumb, _ := svc.ResizeImage(ctx, pngData, 320, 240)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// ResizeImage resizes an image to fit within the specified maximum dimensions.
//
// The aspect ratio is preserved and images are never enlarged. The result
// is always JPEG-encoded, even when no resizing was needed.
//
// Example:
//
//	// An 800x600 shot becomes 320x240
//	thumb, err := svc.ResizeImage(ctx, pngData, 320, 320)
func (s *ImageService) ResizeImage(ctx context.Context, data []byte, maxWidth, maxHeight int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	width, height := FitWithin(img.Bounds().Dx(), img.Bounds().Dy(), maxWidth, maxHeight)
	return encodeJPEG(s.Scale(img, width, height))
}

// Scale resizes img to exactly width x height using Catmull-Rom interpolation.
func (s *ImageService) Scale(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// ConvertToJPEG converts an encoded image (PNG, JPEG) to JPEG format.
func (s *ImageService) ConvertToJPEG(ctx context.Context, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return encodeJPEG(img)
}

// DecodeImage decodes PNG or JPEG bytes.
func (s *ImageService) DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// FitWithin returns the largest size with the aspect ratio of width x height
// that fits inside maxWidth x maxHeight. Sizes already inside the box are
// returned unchanged. Neither dimension drops below 1.
//
// Example:
//
//	FitWithin(1500, 1000, 1000, 1000) // 1000, 666
//	FitWithin(800, 600, 1000, 1000)   // 800, 600
func FitWithin(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	ratio := float64(width) / float64(height)
	if float64(maxWidth)/float64(maxHeight) > ratio {
		// Height is the limiting factor
		width = int(float64(maxHeight) * ratio)
		height = maxHeight
	} else {
		// Width is the limiting factor
		height = int(float64(maxWidth) / ratio)
		width = maxWidth
	}

	return max(width, 1), max(height, 1)
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
