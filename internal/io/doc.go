// Package ioutils provides file system, data URL and image processing
// utilities for storyboard-creator.
//
// This package contains functions for:
//   - Writing files and creating directories
//   - Filename sanitization for cross-platform compatibility
//   - Encoding and decoding data URLs
//   - Image resizing and format conversion
//
// # Data URLs
//
// Placeholder images travel through the application as data URLs:
//
//	url := ioutils.EncodeDataURL("image/png", pngBytes)
//	// data:image/png;base64,iVBORw0KGgo...
//
//	mediaType, data, err := ioutils.DecodeDataURL(url)
//
// # Image Processing
//
// The ImageService shrinks storyboard images for thumbnails and previews:
//
//	svc := ioutils.NewImageService()
//
//	// Resize to fit within 320x240 and encode as JPEG
//	thumb, _ := svc.ResizeImage(ctx, pngData, 320, 240)
//
//	// Scale a decoded image to exactly 32x24 pixels
//	small := svc.Scale(img, 32, 24)
package ioutils
