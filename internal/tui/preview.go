package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	ioutils "github.com/handiism/storyboard-creator/internal/io"
	"github.com/handiism/storyboard-creator/internal/render"
)

// previewCell draws the upper pixel in the foreground color and the lower
// pixel in the background color.
const previewCell = "▀"

// Preview renders an image data URL as half-block cells, width cells wide.
// Every terminal row carries two image rows, so the preview keeps the
// image's aspect ratio on terminals with 1:2 cells.
func Preview(images *ioutils.ImageService, dataURL string, width int) (string, error) {
	if width < 1 {
		return "", errors.New("preview width must be positive")
	}

	mediaType, data, err := ioutils.DecodeDataURL(dataURL)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return "", fmt.Errorf("preview: unsupported media type %q", mediaType)
	}

	img, err := images.DecodeImage(data)
	if err != nil {
		return "", fmt.Errorf("preview: %w", err)
	}

	bounds := img.Bounds()
	height := max(width*bounds.Dy()/max(bounds.Dx(), 1), 2)
	height += height % 2
	scaled := images.Scale(img, width, height)

	var b strings.Builder
	for y := 0; y < height; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			top := scaled.RGBAAt(x, y)
			bottom := scaled.RGBAAt(x, y+1)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(render.Hex(top))).
				Background(lipgloss.Color(render.Hex(bottom))).
				Render(previewCell))
		}
	}
	return b.String(), nil
}

// previewCache keeps rendered previews per shot and width.
type previewCache struct {
	images  *ioutils.ImageService
	entries map[previewKey]string
}

type previewKey struct {
	id    string
	width int
}

func newPreviewCache() *previewCache {
	return &previewCache{
		images:  ioutils.NewImageService(),
		entries: make(map[previewKey]string),
	}
}

// get returns the cached preview, rendering it on first use. Images that
// cannot be decoded yield a blank block of the same size.
func (c *previewCache) get(id, dataURL string, width int) string {
	key := previewKey{id: id, width: width}
	if s, ok := c.entries[key]; ok {
		return s
	}

	s, err := Preview(c.images, dataURL, width)
	if err != nil {
		rows := max(width*3/8, 1)
		s = strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", width)+"\n", rows), "\n")
	}
	c.entries[key] = s
	return s
}

// forget drops every preview of shots not in keep.
func (c *previewCache) forget(keep map[string]bool) {
	for key := range c.entries {
		if !keep[key.id] {
			delete(c.entries, key)
		}
	}
}
