package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/handiism/storyboard-creator/internal/model"
)

// IndexFormat represents supported storyboard index formats.
type IndexFormat int

const (
	// FormatMarkdown creates storyboard.md with one section per shot.
	FormatMarkdown IndexFormat = iota

	// FormatHTML creates storyboard.html, a grid of shot cards.
	FormatHTML

	// FormatJSON creates storyboard.json for other tools.
	FormatJSON
)

// ParseFormat converts "markdown", "html" or "json" to an IndexFormat.
func ParseFormat(s string) (IndexFormat, error) {
	switch strings.ToLower(s) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatMarkdown, fmt.Errorf("unknown index format %q", s)
}

// FileName returns the index file name for the format.
func (f IndexFormat) FileName() string {
	switch f {
	case FormatHTML:
		return "storyboard.html"
	case FormatJSON:
		return "storyboard.json"
	default:
		return "storyboard.md"
	}
}

// String returns the format name accepted by ParseFormat.
func (f IndexFormat) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatJSON:
		return "json"
	default:
		return "markdown"
	}
}

// Entry is one shot as it appears in an index, with the paths of its files
// relative to the index.
type Entry struct {
	Shot      model.Shot
	ImageFile string
	ThumbFile string
}

// Board is the content of an index document.
type Board struct {
	Title     string
	Generated time.Time
	Entries   []Entry
}

// IndexCreator generates storyboard index documents.
//
// Example:
//
//	creator := NewIndexCreator(FormatMarkdown)
//	content, err := creator.CreateIndex(board)
//	os.WriteFile("storyboard.md", content, 0644)
//
//	// Result:
//	// # Storyboard
//	//
//	// ## Shot 1: Intro
//	//
//	// ![Intro](01 Intro.png)
type IndexCreator struct {
	format IndexFormat
}

// NewIndexCreator creates a new IndexCreator.
func NewIndexCreator(format IndexFormat) *IndexCreator {
	return &IndexCreator{format: format}
}

// CreateIndex renders the board in the creator's format.
func (c *IndexCreator) CreateIndex(board Board) ([]byte, error) {
	switch c.format {
	case FormatHTML:
		return c.createHTML(board)
	case FormatJSON:
		return c.createJSON(board)
	default:
		return c.createMarkdown(board), nil
	}
}

// createMarkdown generates a Markdown index:
//
//	# Storyboard
//
//	## Shot 1: Title
//
//	![Title](01 Title.png)
//
//	Description
//
//	> Prompt: rendered text
func (c *IndexCreator) createMarkdown(board Board) []byte {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", board.Title))
	sb.WriteString(fmt.Sprintf("_%d shot(s), exported %s_\n", len(board.Entries), board.Generated.Format(time.RFC1123)))

	for _, e := range board.Entries {
		sb.WriteString(fmt.Sprintf("\n## Shot %d: %s\n\n", e.Shot.Number, e.Shot.Title))
		sb.WriteString(fmt.Sprintf("![%s](%s)\n", escapeMarkdownAlt(e.Shot.Title), markdownPath(e.ImageFile)))
		if e.Shot.HasDescription() {
			sb.WriteString("\n" + e.Shot.Description + "\n")
		}
		if e.Shot.Prompt != "" && e.Shot.Prompt != e.Shot.Title {
			sb.WriteString("\n> Prompt: " + e.Shot.Prompt + "\n")
		}
	}

	return []byte(sb.String())
}

type jsonShot struct {
	ID          string `json:"id"`
	Number      int    `json:"shotNumber"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Prompt      string `json:"prompt,omitempty"`
	Image       string `json:"image"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

type jsonBoard struct {
	Title     string     `json:"title"`
	Generated time.Time  `json:"generated"`
	Shots     []jsonShot `json:"shots"`
}

func (c *IndexCreator) createJSON(board Board) ([]byte, error) {
	out := jsonBoard{
		Title:     board.Title,
		Generated: board.Generated,
		Shots:     make([]jsonShot, len(board.Entries)),
	}
	for i, e := range board.Entries {
		out.Shots[i] = jsonShot{
			ID:          e.Shot.ID,
			Number:      e.Shot.Number,
			Title:       e.Shot.Title,
			Description: e.Shot.Description,
			Prompt:      e.Shot.Prompt,
			Image:       e.ImageFile,
			Thumbnail:   e.ThumbFile,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

var htmlIndex = template.Must(template.New("storyboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; background: linear-gradient(135deg, #faf5ff, #eff6ff); margin: 2rem; }
h1 { text-align: center; color: #6b21a8; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(320px, 1fr)); gap: 1.5rem; }
.card { background: #fff; border-radius: 12px; box-shadow: 0 4px 12px rgba(0,0,0,.1); overflow: hidden; }
.card figure { position: relative; margin: 0; }
.card img { width: 100%; height: 12rem; object-fit: cover; display: block; }
.badge { position: absolute; top: .5rem; left: .5rem; background: #9333ea; color: #fff; font-weight: bold; padding: .25rem .75rem; border-radius: 999px; font-size: .875rem; }
.card .body { padding: 1rem; }
.card h2 { font-size: 1.125rem; margin: 0 0 .5rem; color: #1f2937; }
.card p { color: #4b5563; font-size: .875rem; margin: 0; }
.empty { text-align: center; padding: 4rem; background: #fff; border-radius: 12px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Entries}}<div class="grid">
{{range .Entries}}<div class="card">
<figure><a href="{{.ImageFile}}"><img src="{{if .ThumbFile}}{{.ThumbFile}}{{else}}{{.ImageFile}}{{end}}" alt="{{.Shot.Title}}"></a><span class="badge">Shot {{.Shot.Number}}</span></figure>
<div class="body"><h2>{{.Shot.Title}}</h2>{{if .Shot.Description}}<p>{{.Shot.Description}}</p>{{end}}</div>
</div>
{{end}}</div>
{{else}}<div class="empty"><h2>No shots yet</h2><p>Add your first shot to start building your storyboard</p></div>
{{end}}</body>
</html>
`))

func (c *IndexCreator) createHTML(board Board) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlIndex.Execute(&buf, board); err != nil {
		return nil, fmt.Errorf("rendering html index: %w", err)
	}
	return buf.Bytes(), nil
}

// escapeMarkdownAlt escapes characters that would end image alt text early.
func escapeMarkdownAlt(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "[", `\[`)
	s = strings.ReplaceAll(s, "]", `\]`)
	return s
}

// markdownPath wraps paths containing spaces in angle brackets.
func markdownPath(p string) string {
	if strings.ContainsAny(p, " ()") {
		return "<" + p + ">"
	}
	return p
}
