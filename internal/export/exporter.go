package export

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	ioutils "github.com/handiism/storyboard-creator/internal/io"
	"github.com/handiism/storyboard-creator/internal/model"
)

// thumbsDir is the subdirectory holding JPEG thumbnails.
const thumbsDir = "thumbs"

// Options configures an Exporter.
type Options struct {
	// Title is the heading of the index document. Defaults to "Storyboard".
	Title string

	// Format selects the index document format.
	Format IndexFormat

	// MaxConcurrent limits how many shots are written in parallel.
	// Values below 1 mean one at a time.
	MaxConcurrent int

	// Thumbnails enables JPEG thumbnails no larger than ThumbnailSize
	// on either side.
	Thumbnails    bool
	ThumbnailSize int

	// OnFile is called after each file is written. It may be called from
	// several goroutines at once.
	OnFile func(path string)

	// Now returns the export timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Result describes a finished export.
type Result struct {
	Dir       string
	IndexPath string
	Files     []string
}

// Exporter writes storyboard snapshots to disk.
type Exporter struct {
	opts         Options
	index        *IndexCreator
	imageService *ioutils.ImageService
}

// NewExporter creates an Exporter.
func NewExporter(opts Options) *Exporter {
	if opts.Title == "" {
		opts.Title = "Storyboard"
	}
	if opts.MaxConcurrent < 1 {
		opts.MaxConcurrent = 1
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Exporter{
		opts:         opts,
		index:        NewIndexCreator(opts.Format),
		imageService: ioutils.NewImageService(),
	}
}

// Export writes every shot and the index document into dir, creating it
// if needed. Shots are written concurrently; the index is written last, so
// it only exists when every image was saved. Cancelling ctx stops pending
// writes and returns the context error.
func (e *Exporter) Export(ctx context.Context, shots []model.Shot, dir string) (*Result, error) {
	if err := ioutils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}
	if e.opts.Thumbnails {
		if err := ioutils.EnsureDir(filepath.Join(dir, thumbsDir)); err != nil {
			return nil, fmt.Errorf("creating thumbnail directory: %w", err)
		}
	}

	entries := make([]Entry, len(shots))
	for i, shot := range shots {
		entries[i] = e.entryFor(shot)
	}

	result := &Result{Dir: dir}
	var mu sync.Mutex
	written := func(p string) {
		mu.Lock()
		result.Files = append(result.Files, p)
		mu.Unlock()
		if e.opts.OnFile != nil {
			e.opts.OnFile(p)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.MaxConcurrent)

	for _, entry := range entries {
		g.Go(func() error {
			return e.writeShot(gctx, dir, entry, written)
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}

	content, err := e.index.CreateIndex(Board{
		Title:     e.opts.Title,
		Generated: e.opts.Now(),
		Entries:   entries,
	})
	if err != nil {
		return result, err
	}

	result.IndexPath = filepath.Join(dir, e.opts.Format.FileName())
	if err := ioutils.WriteFile(ctx, result.IndexPath, content); err != nil {
		return result, fmt.Errorf("writing index: %w", err)
	}
	written(result.IndexPath)

	return result, nil
}

// entryFor names the files of a shot. Names are index relative and use
// forward slashes so they work as links in every index format.
func (e *Exporter) entryFor(shot model.Shot) Entry {
	base := fmt.Sprintf("%02d %s", shot.Number, ioutils.SanitizeFileName(shot.Title))
	entry := Entry{
		Shot:      shot,
		ImageFile: base + ".png",
	}
	if e.opts.Thumbnails {
		entry.ThumbFile = path.Join(thumbsDir, base+".jpg")
	}
	return entry
}

func (e *Exporter) writeShot(ctx context.Context, dir string, entry Entry, written func(string)) error {
	mediaType, data, err := ioutils.DecodeDataURL(entry.Shot.ImageURL)
	if err != nil {
		return fmt.Errorf("shot %d: %w", entry.Shot.Number, err)
	}
	if mediaType != "image/png" {
		return fmt.Errorf("shot %d: unexpected media type %q", entry.Shot.Number, mediaType)
	}

	imagePath := filepath.Join(dir, filepath.FromSlash(entry.ImageFile))
	if err := ioutils.WriteFile(ctx, imagePath, data); err != nil {
		return fmt.Errorf("shot %d: writing image: %w", entry.Shot.Number, err)
	}
	written(imagePath)

	if entry.ThumbFile == "" {
		return nil
	}

	thumb, err := e.imageService.ResizeImage(ctx, data, e.opts.ThumbnailSize, e.opts.ThumbnailSize)
	if err != nil {
		return fmt.Errorf("shot %d: creating thumbnail: %w", entry.Shot.Number, err)
	}
	thumbPath := filepath.Join(dir, filepath.FromSlash(entry.ThumbFile))
	if err := ioutils.WriteFile(ctx, thumbPath, thumb); err != nil {
		return fmt.Errorf("shot %d: writing thumbnail: %w", entry.Shot.Number, err)
	}
	written(thumbPath)

	return nil
}
