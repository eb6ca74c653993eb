package ioutils

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Opening scene", "Opening scene"},
		{"Scene: Part 1/2", "Scene_ Part 1_2"},
		{"file<with>brackets", "file_with_brackets"},
		{`back\slash|pipe`, "back_slash_pipe"},
		{"what?*", "what__"},
		{"Fade out...", "Fade out"},
		{"Hero   walks \t in", "Hero walks in"},
		{"  padded  ", "padded"},
		{"", "untitled"},
		{"...", "untitled"},
		{strings.Repeat("a", 200), strings.Repeat("a", 120)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SanitizeFileName(tt.input); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "shot.txt")

	if err := EnsureDir(filepath.Dir(path)); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	if err := WriteFile(context.Background(), path, []byte("hello")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Errorf("file content = %q, want %q", got, "hello")
	}
}

func TestWriteFile_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "never.txt")
	if err := WriteFile(ctx, path, []byte("x")); !errors.Is(err, context.Canceled) {
		t.Errorf("WriteFile() error = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("WriteFile() created a file despite a cancelled context")
	}
}

func TestDataURL_RoundTrip(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0, 1, 2, 3}
	url := EncodeDataURL("image/png", payload)

	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Fatalf("EncodeDataURL() = %q, missing prefix", url)
	}

	mediaType, data, err := DecodeDataURL(url)
	if err != nil {
		t.Fatalf("DecodeDataURL() error = %v", err)
	}
	if mediaType != "image/png" {
		t.Errorf("media type = %q, want %q", mediaType, "image/png")
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("payload = %v, want %v", data, payload)
	}
}

func TestDecodeDataURL_Invalid(t *testing.T) {
	tests := []string{
		"",
		"http://example.com/a.png",
		"data:image/png;base64",
		"data:text/plain,hello",
		"data:image/png;base64,!!!",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, _, err := DecodeDataURL(input); !errors.Is(err, ErrInvalidDataURL) {
				t.Errorf("DecodeDataURL(%q) error = %v, want ErrInvalidDataURL", input, err)
			}
		})
	}
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{800, 600, 1000, 1000, 800, 600},
		{800, 600, 320, 320, 320, 240},
		{1500, 1000, 1000, 1000, 1000, 666},
		{600, 800, 300, 300, 225, 300},
		{1000, 1, 10, 10, 10, 1},
	}

	for _, tt := range tests {
		gotW, gotH := FitWithin(tt.w, tt.h, tt.maxW, tt.maxH)
		if gotW != tt.wantW || gotH != tt.wantH {
			t.Errorf("FitWithin(%d, %d, %d, %d) = %d, %d, want %d, %d",
				tt.w, tt.h, tt.maxW, tt.maxH, gotW, gotH, tt.wantW, tt.wantH)
		}
	}
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 200, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestImageService_ResizeImage(t *testing.T) {
	svc := NewImageService()

	out, err := svc.ResizeImage(context.Background(), testPNG(t, 80, 60), 40, 40)
	if err != nil {
		t.Fatalf("ResizeImage() error = %v", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decoding resized image: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format = %q, want jpeg", format)
	}
	if cfg.Width != 40 || cfg.Height != 30 {
		t.Errorf("size = %dx%d, want 40x30", cfg.Width, cfg.Height)
	}
}

func TestImageService_ConvertToJPEG(t *testing.T) {
	svc := NewImageService()

	out, err := svc.ConvertToJPEG(context.Background(), testPNG(t, 16, 16))
	if err != nil {
		t.Fatalf("ConvertToJPEG() error = %v", err)
	}
	if _, format, err := image.DecodeConfig(bytes.NewReader(out)); err != nil || format != "jpeg" {
		t.Errorf("DecodeConfig() = %q, %v, want jpeg", format, err)
	}

	if _, err := svc.ConvertToJPEG(context.Background(), []byte("not an image")); err == nil {
		t.Error("ConvertToJPEG() accepted garbage input")
	}
}

func TestImageService_Scale(t *testing.T) {
	svc := NewImageService()
	img, err := svc.DecodeImage(testPNG(t, 80, 60))
	if err != nil {
		t.Fatal(err)
	}

	small := svc.Scale(img, 8, 6)
	if small.Bounds().Dx() != 8 || small.Bounds().Dy() != 6 {
		t.Errorf("Scale() bounds = %v, want 8x6", small.Bounds())
	}
}
