package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	ioutils "github.com/handiism/storyboard-creator/internal/io"
)

// Drop shadow behind the text.
const (
	shadowBlur    = 10
	shadowOffsetX = 2
	shadowOffsetY = 2
)

var shadowColor = color.NRGBA{A: 0x80}

// Artifact is a rendered placeholder image.
type Artifact struct {
	// PNG is the encoded image.
	PNG []byte

	// Gradient is the background that was drawn.
	Gradient Gradient

	// Layout is the text layout that was drawn.
	Layout Layout
}

// DataURL returns the image as a "data:image/png;base64," URL.
func (a *Artifact) DataURL() string {
	return ioutils.EncodeDataURL("image/png", a.PNG)
}

// Renderer draws placeholder images.
//
// Renderer is safe for concurrent use; renders are serialised because the
// font face and the Picker keep internal state.
type Renderer struct {
	mu      sync.Mutex
	face    font.Face
	picker  Picker
	palette []Gradient
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPicker sets the source of background choices.
func WithPicker(p Picker) Option {
	return func(r *Renderer) {
		r.picker = p
	}
}

// WithPalette replaces the default Palette. Empty palettes are ignored.
func WithPalette(palette []Gradient) Option {
	return func(r *Renderer) {
		if len(palette) > 0 {
			r.palette = palette
		}
	}
}

// NewFace returns the bold 24px sans-serif face used for prompt text.
func NewFace() (font.Face, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing bold font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    FontSize,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating font face: %w", err)
	}
	return face, nil
}

// NewRenderer creates a Renderer using Palette and RandomPicker unless
// overridden by options.
func NewRenderer(opts ...Option) (*Renderer, error) {
	face, err := NewFace()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		face:    face,
		picker:  RandomPicker{},
		palette: Palette,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Layout returns the text layout Render would use for prompt.
func (r *Renderer) Layout(prompt string) Layout {
	r.mu.Lock()
	defer r.mu.Unlock()
	return LayoutText(prompt, FaceMeasurer{Face: r.face})
}

// Measure returns the width of s in the prompt font.
func (r *Renderer) Measure(s string) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return FaceMeasurer{Face: r.face}.Measure(s)
}

// Render draws prompt onto a fresh placeholder image.
//
// Any prompt, including the empty string, produces an image. An error is
// only returned if PNG encoding fails.
func (r *Renderer) Render(prompt string) (*Artifact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	gradient := r.palette[r.picker.IntN(len(r.palette))]
	layout := LayoutText(prompt, FaceMeasurer{Face: r.face})

	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	fillLinearGradient(img, gradient, image.Pt(0, 0), image.Pt(Width, Height))

	text := r.textMask(layout)
	shadow := blurAlpha(text, shadowBlur/2)
	offset := image.Pt(shadowOffsetX, shadowOffsetY)
	draw.DrawMask(img, img.Bounds(), image.NewUniform(shadowColor), image.Point{}, shadow, img.Bounds().Min.Sub(offset), draw.Over)
	draw.DrawMask(img, img.Bounds(), image.White, image.Point{}, text, image.Point{}, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding placeholder: %w", err)
	}

	return &Artifact{
		PNG:      buf.Bytes(),
		Gradient: gradient,
		Layout:   layout,
	}, nil
}

// textMask rasterises the laid out lines into an alpha mask, each line
// centred on its X coordinate with its baseline at Y.
func (r *Renderer) textMask(layout Layout) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, Width, Height))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: r.face,
	}

	for _, line := range layout.Lines {
		if line.Text == "" {
			continue
		}
		width := fixedToFloat(d.MeasureString(line.Text))
		d.Dot = fixed.Point26_6{
			X: floatToFixed(line.X - width/2),
			Y: floatToFixed(line.Y),
		}
		d.DrawString(line.Text)
	}

	return mask
}

// fillLinearGradient paints g along the line from p0 to p1. Each pixel takes
// the color at its centre's projection onto that line.
func fillLinearGradient(img *image.RGBA, g Gradient, p0, p1 image.Point) {
	dx := float64(p1.X - p0.X)
	dy := float64(p1.Y - p0.Y)
	length2 := dx*dx + dy*dy

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var t float64
			if length2 > 0 {
				px := float64(x) + 0.5 - float64(p0.X)
				py := float64(y) + 0.5 - float64(p0.Y)
				t = (px*dx + py*dy) / length2
			}
			c := g.At(t)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
}
