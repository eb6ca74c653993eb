package model

import "time"

// Shot represents a single storyboard entry.
//
// Shot values are handed out as copies by ShotList; changing a copy has no
// effect on the list. Number is derived from the shot's position and is
// rewritten by the list after every add, delete and move.
type Shot struct {
	// ID uniquely identifies the shot for the lifetime of the list.
	// It never changes when the shot is reordered.
	ID string `json:"id"`

	// Title is the display title. Never blank.
	Title string `json:"title"`

	// Description is an optional free-form description.
	Description string `json:"description,omitempty"`

	// Prompt is the text that was rendered into the placeholder image.
	// It is the explicit image prompt when one was given, the title otherwise.
	Prompt string `json:"prompt,omitempty"`

	// ImageURL is the encoded placeholder image, a PNG data URL.
	ImageURL string `json:"imageUrl"`

	// Number is the 1-based position of the shot in the storyboard.
	Number int `json:"shotNumber"`

	// CreatedAt is when the shot was added.
	CreatedAt time.Time `json:"createdAt"`
}

// HasDescription returns true if the shot carries a non-empty description.
func (s Shot) HasDescription() bool {
	return s.Description != ""
}

// Direction is the direction of a move operation.
type Direction int

const (
	// Up swaps a shot with its predecessor.
	Up Direction = iota

	// Down swaps a shot with its successor.
	Down
)

// String returns "up" or "down".
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// offset returns the index delta of the neighbour in direction d.
func (d Direction) offset() int {
	if d == Up {
		return -1
	}
	return 1
}
