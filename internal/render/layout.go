package render

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas and text metrics of every placeholder image.
const (
	Width        = 800
	Height       = 600
	FontSize     = 24
	MaxLineWidth = 700
	LineHeight   = 35
)

// Measurer reports the rendered width of a string in pixels.
type Measurer interface {
	Measure(s string) float64
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(s string) float64

// Measure implements Measurer.
func (f MeasureFunc) Measure(s string) float64 {
	return f(s)
}

// FaceMeasurer measures strings with a font face.
type FaceMeasurer struct {
	Face font.Face
}

// Measure implements Measurer.
func (m FaceMeasurer) Measure(s string) float64 {
	return fixedToFloat(font.MeasureString(m.Face, s))
}

// Line is one line of laid out text. X is the horizontal centre and Y the
// baseline, both in pixels from the top-left corner.
type Line struct {
	Text string
	X    float64
	Y    float64
}

// Layout is the result of placing a prompt on the canvas.
type Layout struct {
	Lines  []Line
	StartY float64
}

// Texts returns the text of each line.
func (l Layout) Texts() []string {
	out := make([]string, len(l.Lines))
	for i, line := range l.Lines {
		out[i] = line.Text
	}
	return out
}

// Wrap breaks prompt into lines using greedy word wrapping.
//
// Words are separated by whitespace. Each word is tentatively appended,
// followed by a space, to the current line; if the result measures wider
// than maxWidth and the current line is not empty, the current line is
// committed and the word starts a new one. A single word wider than
// maxWidth is never split. The remainder is always committed, so an empty
// prompt yields one empty line.
//
// Returned lines have their trailing space trimmed.
func Wrap(prompt string, maxWidth float64, m Measurer) []string {
	var lines []string
	current := ""

	for _, word := range strings.Fields(prompt) {
		test := current + word + " "
		if m.Measure(test) > maxWidth && current != "" {
			lines = append(lines, strings.TrimSpace(current))
			current = word + " "
		} else {
			current = test
		}
	}

	return append(lines, strings.TrimSpace(current))
}

// LayoutText wraps prompt to MaxLineWidth and positions the lines so the
// block is vertically centred on the canvas: the first baseline sits at
// Height/2 - n*LineHeight/2 and each following line LineHeight below.
// Every line is horizontally centred at Width/2.
func LayoutText(prompt string, m Measurer) Layout {
	texts := Wrap(prompt, MaxLineWidth, m)
	startY := Height/2 - float64(len(texts)*LineHeight)/2

	lines := make([]Line, len(texts))
	for i, text := range texts {
		lines[i] = Line{
			Text: text,
			X:    Width / 2,
			Y:    startY + float64(i*LineHeight),
		}
	}

	return Layout{Lines: lines, StartY: startY}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	if v < 0 {
		return -fixed.Int26_6(-v*64 + 0.5)
	}
	return fixed.Int26_6(v*64 + 0.5)
}
