package render

import (
	"fmt"
	"image/color"
	"math/rand/v2"
)

// Gradient is a two-stop color ramp.
type Gradient struct {
	From color.RGBA
	To   color.RGBA
}

// At returns the color at position t in [0, 1], interpolating each channel
// linearly. Values outside the range are clamped.
func (g Gradient) At(t float64) color.RGBA {
	t = min(max(t, 0), 1)
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return color.RGBA{
		R: lerp(g.From.R, g.To.R),
		G: lerp(g.From.G, g.To.G),
		B: lerp(g.From.B, g.To.B),
		A: 0xff,
	}
}

// String returns the stops as CSS hex colors, e.g. "#667eea,#764ba2".
func (g Gradient) String() string {
	return Hex(g.From) + "," + Hex(g.To)
}

// Hex formats c as a CSS "#rrggbb" color.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Palette is the fixed set of background gradients.
var Palette = []Gradient{
	{rgb(0x667eea), rgb(0x764ba2)},
	{rgb(0xf093fb), rgb(0xf5576c)},
	{rgb(0x4facfe), rgb(0x00f2fe)},
	{rgb(0x43e97b), rgb(0x38f9d7)},
	{rgb(0xfa709a), rgb(0xfee140)},
	{rgb(0x30cfd0), rgb(0x330867)},
}

// Picker chooses a palette entry. IntN returns a value in [0, n).
//
// *rand.Rand from math/rand/v2 satisfies Picker.
type Picker interface {
	IntN(n int) int
}

// RandomPicker draws from the global math/rand/v2 source.
type RandomPicker struct{}

// IntN implements Picker.
func (RandomPicker) IntN(n int) int {
	return rand.IntN(n)
}

// FixedPicker always chooses the same palette index, modulo the palette size.
type FixedPicker int

// IntN implements Picker.
func (p FixedPicker) IntN(n int) int {
	i := int(p) % n
	if i < 0 {
		i += n
	}
	return i
}

// NewSeededPicker returns a reproducible Picker. It is not safe for
// concurrent use on its own; Renderer serialises access to it.
func NewSeededPicker(seed uint64) Picker {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// PickerForSeed returns NewSeededPicker(seed), or a RandomPicker when seed
// is zero.
func PickerForSeed(seed uint64) Picker {
	if seed == 0 {
		return RandomPicker{}
	}
	return NewSeededPicker(seed)
}
