package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

// tenPerRune measures every character, spaces included, as 10px wide.
var tenPerRune = MeasureFunc(func(s string) float64 {
	return float64(utf8.RuneCountInString(s) * 10)
})

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		maxWidth float64
		want     []string
	}{
		{"empty prompt", "", 100, []string{""}},
		{"whitespace only", "  \t ", 100, []string{""}},
		{"single word", "Intro", 100, []string{"Intro"}},
		{"fits on one line", "aaa bbb", 80, []string{"aaa bbb"}},
		// "aaa bbb ccc " is 120px > 100
		{"breaks before overflowing word", "aaa bbb ccc", 100, []string{"aaa bbb", "ccc"}},
		// trailing space counts: "aaaa bbbb " is 100px, not > 100
		{"exact fit with trailing space", "aaaa bbbb cc", 100, []string{"aaaa bbbb", "cc"}},
		{"long word is not split", "supercalifragilistic", 50, []string{"supercalifragilistic"}},
		{"long word after short word", "a supercalifragilistic b", 50, []string{"a", "supercalifragilistic", "b"}},
		{"collapses whitespace", "aa \n bb\t\tcc", 1000, []string{"aa bb cc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.prompt, tt.maxWidth, tenPerRune)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Wrap(%q) mismatch (-want +got):\n%s", tt.prompt, diff)
			}
		})
	}
}

func TestWrap_LinesFitMaxWidth(t *testing.T) {
	prompt := strings.Repeat("lorem ipsum dolor sit amet ", 20)
	for _, line := range Wrap(prompt, 150, tenPerRune) {
		if w := tenPerRune.Measure(line + " "); w > 150 {
			t.Errorf("line %q measures %v, want <= 150", line, w)
		}
	}
}

func TestWrap_GoBoldScenario(t *testing.T) {
	face, err := NewFace()
	if err != nil {
		t.Fatal(err)
	}
	m := FaceMeasurer{Face: face}

	prompt := "Opening scene Hero walks into sunset over mountains"
	lines := Wrap(prompt, MaxLineWidth, m)

	if m.Measure(prompt+" ") > MaxLineWidth && len(lines) < 2 {
		t.Errorf("prompt measures %v > %d but Wrap returned %d line(s)", m.Measure(prompt+" "), MaxLineWidth, len(lines))
	}
	for _, line := range lines {
		if strings.Contains(line, " ") && m.Measure(line+" ") > MaxLineWidth {
			t.Errorf("line %q measures %v, want <= %d", line, m.Measure(line+" "), MaxLineWidth)
		}
	}
	if got := strings.Join(lines, " "); got != prompt {
		t.Errorf("joined lines = %q, want %q", got, prompt)
	}

	long := strings.Repeat(prompt+" ", 3)
	if lines := Wrap(long, MaxLineWidth, m); len(lines) < 2 {
		t.Errorf("Wrap() of a %vpx prompt returned %d line(s)", m.Measure(long), len(lines))
	}
}

func TestLayoutText_Centering(t *testing.T) {
	// Three 500px words never share a 700px line
	prompt := strings.Join([]string{
		strings.Repeat("a", 50), strings.Repeat("b", 50), strings.Repeat("c", 50),
	}, " ")

	layout := LayoutText(prompt, tenPerRune)

	if len(layout.Lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(layout.Lines))
	}
	if layout.StartY != 247.5 {
		t.Errorf("StartY = %v, want 247.5", layout.StartY)
	}
	for i, line := range layout.Lines {
		wantY := 247.5 + float64(i)*35
		if line.Y != wantY {
			t.Errorf("line %d Y = %v, want %v", i, line.Y, wantY)
		}
		if line.X != 400 {
			t.Errorf("line %d X = %v, want 400", i, line.X)
		}
	}
}

func TestLayoutText_EmptyPrompt(t *testing.T) {
	layout := LayoutText("", tenPerRune)
	want := Layout{Lines: []Line{{Text: "", X: 400, Y: 282.5}}, StartY: 282.5}
	if diff := cmp.Diff(want, layout); diff != "" {
		t.Errorf("LayoutText(\"\") mismatch (-want +got):\n%s", diff)
	}
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	return img
}

func closeTo(a, b color.Color, tolerance int) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	diff := func(x, y uint32) int {
		d := int(x>>8) - int(y>>8)
		if d < 0 {
			return -d
		}
		return d
	}
	return diff(ar, br) <= tolerance && diff(ag, bg) <= tolerance && diff(ab, bb) <= tolerance
}

func TestRenderer_Render(t *testing.T) {
	r, err := NewRenderer(WithPicker(FixedPicker(3)))
	if err != nil {
		t.Fatal(err)
	}

	art, err := r.Render("Intro")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if art.Gradient != Palette[3] {
		t.Errorf("Gradient = %v, want %v", art.Gradient, Palette[3])
	}
	if diff := cmp.Diff([]string{"Intro"}, art.Layout.Texts()); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}

	img := decodePNG(t, art.PNG)
	if img.Bounds() != image.Rect(0, 0, Width, Height) {
		t.Fatalf("bounds = %v, want 800x600", img.Bounds())
	}

	if !closeTo(img.At(0, 0), Palette[3].From, 2) {
		t.Errorf("top-left = %v, want close to %v", img.At(0, 0), Palette[3].From)
	}
	if !closeTo(img.At(Width-1, Height-1), Palette[3].To, 2) {
		t.Errorf("bottom-right = %v, want close to %v", img.At(Width-1, Height-1), Palette[3].To)
	}

	// Palette[3] has a low red channel, so a bright red channel means text.
	white := false
	for y := 270; y < 300 && !white; y++ {
		for x := 350; x < 450; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r>>8 > 240 {
				white = true
				break
			}
		}
	}
	if !white {
		t.Error("no white text pixels found around the canvas centre")
	}

	if !strings.HasPrefix(art.DataURL(), "data:image/png;base64,") {
		t.Errorf("DataURL() = %.40q..., want PNG data URL", art.DataURL())
	}
}

func TestRenderer_EmptyPromptIsPlainGradient(t *testing.T) {
	r, err := NewRenderer(WithPicker(FixedPicker(0)))
	if err != nil {
		t.Fatal(err)
	}

	art, err := r.Render("")
	if err != nil {
		t.Fatalf("Render(\"\") error = %v", err)
	}
	if len(art.Layout.Lines) != 1 {
		t.Errorf("got %d lines, want 1", len(art.Layout.Lines))
	}

	img := decodePNG(t, art.PNG)
	// The projection of (400.5, 300.5) onto the (0,0)-(800,600) diagonal.
	tCentre := (400.5*800 + 300.5*600) / (800.0*800 + 600*600)
	if want := Palette[0].At(tCentre); !closeTo(img.At(400, 300), want, 1) {
		t.Errorf("centre pixel = %v, want %v", img.At(400, 300), want)
	}
}

func TestRenderer_PickerChoosesPalette(t *testing.T) {
	for i := range Palette {
		r, err := NewRenderer(WithPicker(FixedPicker(i)))
		if err != nil {
			t.Fatal(err)
		}
		art, err := r.Render("x")
		if err != nil {
			t.Fatal(err)
		}
		if art.Gradient != Palette[i] {
			t.Errorf("FixedPicker(%d) drew %v, want %v", i, art.Gradient, Palette[i])
		}
	}
}

func TestRenderer_SeededPickerIsReproducible(t *testing.T) {
	pick := func() []Gradient {
		r, err := NewRenderer(WithPicker(NewSeededPicker(42)))
		if err != nil {
			t.Fatal(err)
		}
		var out []Gradient
		for i := 0; i < 8; i++ {
			art, err := r.Render("seed")
			if err != nil {
				t.Fatal(err)
			}
			out = append(out, art.Gradient)
		}
		return out
	}

	if diff := cmp.Diff(pick(), pick()); diff != "" {
		t.Errorf("seeded renders differ (-first +second):\n%s", diff)
	}
}

func TestRenderer_LayoutMatchesRender(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	prompt := "Opening scene Hero walks into sunset over mountains and keeps walking until night falls"

	art, err := r.Render(prompt)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(r.Layout(prompt), art.Layout); diff != "" {
		t.Errorf("Layout() differs from rendered layout (-want +got):\n%s", diff)
	}
}

func TestRenderer_ConcurrentRenders(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Render("concurrent shot"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Render() error = %v", err)
	}
}

func TestGradient(t *testing.T) {
	g := Palette[0]
	if got := g.At(-1); got != g.From {
		t.Errorf("At(-1) = %v, want %v", got, g.From)
	}
	if got := g.At(2); got != g.To {
		t.Errorf("At(2) = %v, want %v", got, g.To)
	}
	if got := g.String(); got != "#667eea,#764ba2" {
		t.Errorf("String() = %q, want %q", got, "#667eea,#764ba2")
	}
}

func TestFixedPicker(t *testing.T) {
	tests := []struct {
		p    FixedPicker
		n    int
		want int
	}{
		{0, 6, 0},
		{5, 6, 5},
		{7, 6, 1},
		{-1, 6, 5},
	}
	for _, tt := range tests {
		if got := tt.p.IntN(tt.n); got != tt.want {
			t.Errorf("FixedPicker(%d).IntN(%d) = %d, want %d", tt.p, tt.n, got, tt.want)
		}
	}
}

func TestBlurAlpha(t *testing.T) {
	if got := boxRadius(5); got != 5 {
		t.Errorf("boxRadius(5) = %d, want 5", got)
	}

	src := image.NewAlpha(image.Rect(0, 0, 41, 41))
	for y := 18; y <= 22; y++ {
		for x := 18; x <= 22; x++ {
			src.SetAlpha(x, y, color.Alpha{A: 0xff})
		}
	}

	dst := blurAlpha(src, 2)
	centre := dst.AlphaAt(20, 20).A
	if centre == 0 || centre == 0xff {
		t.Errorf("centre alpha = %d, want partially transparent", centre)
	}
	if dst.AlphaAt(20, 25).A == 0 {
		t.Error("blur did not spread below the square")
	}
	if dst.AlphaAt(15, 20) != dst.AlphaAt(25, 20) {
		t.Errorf("blur is not symmetric: %v vs %v", dst.AlphaAt(15, 20), dst.AlphaAt(25, 20))
	}
	if dst.AlphaAt(0, 0).A != 0 {
		t.Errorf("corner alpha = %d, want 0", dst.AlphaAt(0, 0).A)
	}
	if src.AlphaAt(20, 25).A != 0 {
		t.Error("blurAlpha modified its source")
	}
}

func TestPickerForSeed(t *testing.T) {
	if _, ok := PickerForSeed(0).(RandomPicker); !ok {
		t.Errorf("PickerForSeed(0) = %T, want RandomPicker", PickerForSeed(0))
	}

	a, b := PickerForSeed(7), PickerForSeed(7)
	for i := 0; i < 20; i++ {
		if x, y := a.IntN(len(Palette)), b.IntN(len(Palette)); x != y {
			t.Fatalf("draw %d: %d != %d for the same seed", i, x, y)
		}
	}
}
