package ioutils

import (
	"context"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots     = regexp.MustCompile(`\.+$`)
	repeatedSpace    = regexp.MustCompile(`\s+`)
)

// maxFileNameRunes keeps generated names well inside common filesystem limits.
const maxFileNameRunes = 120

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing. WriteFile returns ctx.Err() without
// touching the file system if the context is already done.
//
// Example:
//
//	err := WriteFile(ctx, "/tmp/storyboard/01 Intro.png", pngData)
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Runs of whitespace → single space
//   - Leading and trailing whitespace → removed
//   - Names longer than 120 characters → truncated
//
// An empty result becomes "untitled".
//
// Example:
//
//	SanitizeFileName("Scene: Part 1/2")      // Returns "Scene_ Part 1_2"
//	SanitizeFileName("Fade out...")          // Returns "Fade out"
//	SanitizeFileName("Hero   walks  in")     // Returns "Hero walks in"
func SanitizeFileName(name string) string {
	name = repeatedSpace.ReplaceAllString(name, " ")
	name = invalidFileChars.ReplaceAllString(name, "_")
	name = strings.TrimSpace(name)

	if utf8.RuneCountInString(name) > maxFileNameRunes {
		name = string([]rune(name)[:maxFileNameRunes])
	}

	name = strings.TrimRight(trailingDots.ReplaceAllString(name, ""), " ")
	if name == "" {
		return "untitled"
	}
	return name
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
