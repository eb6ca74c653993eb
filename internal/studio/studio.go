package studio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/handiism/storyboard-creator/internal/config"
	"github.com/handiism/storyboard-creator/internal/export"
	"github.com/handiism/storyboard-creator/internal/logging"
	"github.com/handiism/storyboard-creator/internal/model"
	"github.com/handiism/storyboard-creator/internal/render"
)

var (
	// ErrEmptyTitle is returned by AddShot for a blank title.
	ErrEmptyTitle = errors.New("shot title is empty")

	// ErrInFlight is returned by AddShot while another submission is running.
	ErrInFlight = errors.New("a shot is already being generated")
)

// Draft is the form content submitted for a new shot.
type Draft struct {
	Title       string
	Description string
	Prompt      string
}

// RenderPrompt returns the text drawn into the shot image: the prompt if it
// is not blank, the title otherwise.
func (d Draft) RenderPrompt() string {
	if strings.TrimSpace(d.Prompt) != "" {
		return d.Prompt
	}
	return d.Title
}

// ImageRenderer produces placeholder images. *render.Renderer implements it.
type ImageRenderer interface {
	Render(prompt string) (*render.Artifact, error)
}

// Studio coordinates storyboard edits.
//
// All methods are safe for concurrent use. The onEvent callback may be
// invoked from several goroutines at once during an export.
type Studio struct {
	settings *config.Settings
	renderer ImageRenderer
	latency  Latency
	logger   *slog.Logger
	shots    *model.ShotList

	inFlight atomic.Bool
	onEvent  func(Event)
	mu       sync.RWMutex
}

// Option configures a Studio.
type Option func(*Studio)

// WithLatency replaces the simulated backend delay.
func WithLatency(l Latency) Option {
	return func(s *Studio) {
		s.latency = l
	}
}

// WithLogger sets the structured logger. The default discards records.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Studio) {
		s.logger = logger
	}
}

// WithShotList sets the list the Studio edits.
func WithShotList(list *model.ShotList) Option {
	return func(s *Studio) {
		s.shots = list
	}
}

// New creates a Studio with an empty storyboard.
func New(settings *config.Settings, renderer ImageRenderer, onEvent func(Event), opts ...Option) *Studio {
	s := &Studio{
		settings: settings,
		renderer: renderer,
		latency:  SimulatedLatency{Delay: settings.GenerateDelay()},
		logger:   logging.Discard(),
		shots:    model.NewShotList(),
		onEvent:  onEvent,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddShot generates the placeholder image for draft and appends the new
// shot to the storyboard.
//
// A blank title fails with ErrEmptyTitle and a submission made while
// another is in flight fails with ErrInFlight; neither changes anything.
// The backend wait ignores cancellation of ctx: once started, the
// submission runs to completion.
func (s *Studio) AddShot(ctx context.Context, draft Draft) (model.Shot, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return model.Shot{}, ErrEmptyTitle
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return model.Shot{}, ErrInFlight
	}
	defer s.inFlight.Store(false)

	prompt := draft.RenderPrompt()
	s.emit(Event{Message: fmt.Sprintf("Generating image for %q", draft.Title), Level: LevelVerbose})

	if err := s.latency.Wait(context.WithoutCancel(ctx)); err != nil {
		s.emit(Event{Message: fmt.Sprintf("Image backend failed for %q: %v", draft.Title, err), Level: LevelError})
		return model.Shot{}, fmt.Errorf("waiting for image backend: %w", err)
	}

	art, err := s.renderer.Render(prompt)
	if err != nil {
		s.emit(Event{Message: fmt.Sprintf("Rendering failed for %q: %v", draft.Title, err), Level: LevelError})
		return model.Shot{}, fmt.Errorf("rendering placeholder: %w", err)
	}

	s.mu.Lock()
	shot, ok := s.shots.Add(draft.Title, draft.Description, art.DataURL(), model.WithPrompt(prompt))
	s.mu.Unlock()
	if !ok {
		return model.Shot{}, ErrEmptyTitle
	}

	s.logger.Debug("rendered placeholder",
		"shot", shot.ID,
		"gradient", art.Gradient.String(),
		"lines", len(art.Layout.Lines),
		"bytes", len(art.PNG))
	s.emit(Event{Message: fmt.Sprintf("Added shot %d: %s", shot.Number, shot.Title), Level: LevelSuccess})

	return shot, nil
}

// Busy reports whether a submission is in flight.
func (s *Studio) Busy() bool {
	return s.inFlight.Load()
}

// DeleteShot removes the shot with the given id. Unknown ids are ignored.
func (s *Studio) DeleteShot(id string) bool {
	s.mu.Lock()
	shot, found := s.shots.Get(id)
	deleted := s.shots.Delete(id)
	s.mu.Unlock()

	if !found || !deleted {
		return false
	}
	s.emit(Event{Message: fmt.Sprintf("Deleted shot %d: %s", shot.Number, shot.Title), Level: LevelInfo})
	return true
}

// MoveShot swaps the shot at index with its neighbour. Moves past either
// end of the storyboard are ignored.
func (s *Studio) MoveShot(index int, dir model.Direction) bool {
	s.mu.Lock()
	moved := s.shots.Move(index, dir)
	s.mu.Unlock()

	if moved {
		s.emit(Event{Message: fmt.Sprintf("Moved shot %d %s", index+1, dir), Level: LevelVerbose})
	}
	return moved
}

// CanMove reports whether MoveShot(index, dir) would change the storyboard.
func (s *Studio) CanMove(index int, dir model.Direction) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shots.CanMove(index, dir)
}

// Shots returns a snapshot of the storyboard in order.
func (s *Studio) Shots() []model.Shot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shots.Shots()
}

// Len returns the number of shots.
func (s *Studio) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shots.Len()
}

// Export writes a snapshot of the storyboard to dir, or to the configured
// export path when dir is empty.
func (s *Studio) Export(ctx context.Context, dir string) (*export.Result, error) {
	format, err := export.ParseFormat(s.settings.ExportFormat)
	if err != nil {
		return nil, err
	}
	if dir == "" {
		dir = s.settings.ExportPath
	}

	exp := export.NewExporter(export.Options{
		Format:        format,
		MaxConcurrent: s.settings.MaxConcurrentExports,
		Thumbnails:    s.settings.SaveThumbnails,
		ThumbnailSize: s.settings.ThumbnailMaxSize,
		OnFile: func(path string) {
			s.emit(Event{Message: fmt.Sprintf("Wrote %s", filepath.Base(path)), Level: LevelVerbose})
		},
	})

	shots := s.Shots()
	result, err := exp.Export(ctx, shots, dir)
	if err != nil {
		s.emit(Event{Message: fmt.Sprintf("Export failed: %v", err), Level: LevelError})
		return result, fmt.Errorf("exporting storyboard: %w", err)
	}

	s.emit(Event{Message: fmt.Sprintf("Exported %d shot(s) to %s", len(shots), result.IndexPath), Level: LevelSuccess})
	return result, nil
}

func (s *Studio) emit(event Event) {
	s.logger.Log(context.Background(), event.Level.slogLevel(), event.Message, "event", event.Level.String())
	if s.onEvent != nil {
		s.onEvent(event)
	}
}
