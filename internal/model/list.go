package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ShotList is the ordered sequence of shots in a storyboard.
//
// ShotList guarantees that, after every operation, the shots are numbered
// 1..N in list order. The sequence is owned by the list: Shots returns a
// copy, so callers can never reorder or renumber shots behind its back.
//
// ShotList is not safe for concurrent use.
type ShotList struct {
	shots []Shot
	newID func() string
	now   func() time.Time
}

// ListOption configures a ShotList.
type ListOption func(*ShotList)

// WithIDGenerator replaces the default UUID generator.
// The generator must return a value that is unique within the list.
func WithIDGenerator(gen func() string) ListOption {
	return func(l *ShotList) {
		l.newID = gen
	}
}

// WithClock replaces time.Now as the source of CreatedAt timestamps.
func WithClock(now func() time.Time) ListOption {
	return func(l *ShotList) {
		l.now = now
	}
}

// NewShotList creates an empty ShotList.
func NewShotList(opts ...ListOption) *ShotList {
	l := &ShotList{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AddOption sets optional fields of a shot created by Add.
type AddOption func(*Shot)

// WithPrompt records the text that was rendered into the shot image.
func WithPrompt(prompt string) AddOption {
	return func(s *Shot) {
		s.Prompt = prompt
	}
}

// Add appends a new shot to the end of the list.
//
// The shot gets a fresh ID and Number = Len()+1. A blank title is rejected:
// nothing is added and ok is false.
//
// Example:
//
//	shot, ok := list.Add("Opening scene", "Hero walks into sunset", imageURL)
//	// shot.Number == list.Len()
func (l *ShotList) Add(title, description, imageURL string, opts ...AddOption) (shot Shot, ok bool) {
	if strings.TrimSpace(title) == "" {
		return Shot{}, false
	}

	shot = Shot{
		ID:          l.newID(),
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		Number:      len(l.shots) + 1,
		CreatedAt:   l.now(),
	}
	for _, opt := range opts {
		opt(&shot)
	}

	l.shots = append(l.shots, shot)
	return shot, true
}

// Delete removes the shot with the given id and renumbers the remaining
// shots. It returns false, leaving the list untouched, if no shot has that id.
func (l *ShotList) Delete(id string) bool {
	i := l.Index(id)
	if i < 0 {
		return false
	}

	l.shots = append(l.shots[:i], l.shots[i+1:]...)
	l.renumber()
	return true
}

// Move swaps the shot at index with its neighbour in direction dir and
// renumbers the list.
//
// Moving the first shot up, the last shot down, or any index outside the
// list is a no-op and returns false.
func (l *ShotList) Move(index int, dir Direction) bool {
	if !l.CanMove(index, dir) {
		return false
	}

	j := index + dir.offset()
	l.shots[index], l.shots[j] = l.shots[j], l.shots[index]
	l.renumber()
	return true
}

// CanMove reports whether Move(index, dir) would change the list.
func (l *ShotList) CanMove(index int, dir Direction) bool {
	if index < 0 || index >= len(l.shots) {
		return false
	}
	j := index + dir.offset()
	return j >= 0 && j < len(l.shots)
}

// Shots returns a copy of the shots in their current order.
func (l *ShotList) Shots() []Shot {
	out := make([]Shot, len(l.shots))
	copy(out, l.shots)
	return out
}

// Len returns the number of shots.
func (l *ShotList) Len() int {
	return len(l.shots)
}

// Get returns the shot with the given id.
func (l *ShotList) Get(id string) (Shot, bool) {
	i := l.Index(id)
	if i < 0 {
		return Shot{}, false
	}
	return l.shots[i], true
}

// Index returns the position of the shot with the given id, or -1.
func (l *ShotList) Index(id string) int {
	for i := range l.shots {
		if l.shots[i].ID == id {
			return i
		}
	}
	return -1
}

// renumber rewrites every shot number from its position.
func (l *ShotList) renumber() {
	for i := range l.shots {
		l.shots[i].Number = i + 1
	}
}
