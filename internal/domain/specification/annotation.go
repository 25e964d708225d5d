package specification

import (
	"fmt"
	"time"

	"cordwain/internal/shared/biztime"
)

// Annotation is a note pinned to a point on a persisted media asset.
// Coordinates are normalized to the media's bounding box so they stay
// valid at any display scale.
type Annotation struct {
	id        uint
	mediaID   uint
	x         float64
	y         float64
	note      string
	author    string
	createdAt time.Time
}

func NewAnnotation(mediaID uint, x, y float64, note, author string) (*Annotation, error) {
	if mediaID == 0 {
		return nil, fmt.Errorf("media ID is required")
	}
	if x < 0 || x > 1 || y < 0 || y > 1 {
		return nil, fmt.Errorf("annotation coordinates must be within [0,1], got (%v, %v)", x, y)
	}
	if len(note) == 0 {
		return nil, fmt.Errorf("annotation note is required")
	}
	if len(note) > 2000 {
		return nil, fmt.Errorf("annotation note exceeds maximum length of 2000 characters")
	}
	if len(author) == 0 {
		return nil, fmt.Errorf("annotation author is required")
	}

	return &Annotation{
		mediaID:   mediaID,
		x:         x,
		y:         y,
		note:      note,
		author:    author,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructAnnotation(
	id uint,
	mediaID uint,
	x, y float64,
	note, author string,
	createdAt time.Time,
) (*Annotation, error) {
	if id == 0 {
		return nil, fmt.Errorf("annotation ID cannot be zero")
	}
	if mediaID == 0 {
		return nil, fmt.Errorf("media ID is required")
	}

	return &Annotation{
		id:        id,
		mediaID:   mediaID,
		x:         x,
		y:         y,
		note:      note,
		author:    author,
		createdAt: createdAt,
	}, nil
}

func (a *Annotation) ID() uint {
	return a.id
}

func (a *Annotation) MediaID() uint {
	return a.mediaID
}

func (a *Annotation) X() float64 {
	return a.x
}

func (a *Annotation) Y() float64 {
	return a.y
}

func (a *Annotation) Note() string {
	return a.note
}

func (a *Annotation) Author() string {
	return a.author
}

func (a *Annotation) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Annotation) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("annotation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("annotation ID cannot be zero")
	}
	a.id = id
	return nil
}
