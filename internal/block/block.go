// Package block defines the core domain types for rondo.
package block

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"rondo/internal/clock"
)

// Validation errors.
var (
	ErrEmptyTitle          = errors.New("title cannot be empty")
	ErrNonPositiveDuration = errors.New("duration must be positive")
)

// Domain errors.
var (
	ErrTimeConflict  = errors.New("time span conflicts with existing block")
	ErrBlockNotFound = errors.New("block not found")
	ErrBlockLocked   = errors.New("block is locked")
)

// Block represents one schedulable item on the 24-hour ring.
// Start is hours since midnight in [0, 24); Duration is hours and may
// carry the block past midnight when wrapping is enabled.
type Block struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Color    Color   `json:"color"`
	Locked   bool    `json:"locked"`
}

// New creates a Block with a fresh ID, validating and normalizing fields.
func New(title string, start, duration float64, color Color) (*Block, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNonPositiveDuration, duration)
	}

	return &Block{
		ID:       uuid.NewString(),
		Title:    title,
		Start:    clock.NormalizeHour(start),
		Duration: duration,
		Color:    color,
	}, nil
}

// Validate checks the invariants a deserialized block must hold.
func (b *Block) Validate() error {
	if b.ID == "" {
		return errors.New("block has no id")
	}
	if b.Title == "" {
		return ErrEmptyTitle
	}
	if b.Duration <= 0 {
		return fmt.Errorf("%w: got %v", ErrNonPositiveDuration, b.Duration)
	}
	if b.Start < 0 || b.Start >= clock.HoursPerDay {
		return fmt.Errorf("start %v outside [0, 24)", b.Start)
	}
	return nil
}

// End returns the un-normalized end hour; values above 24 indicate the
// block runs past midnight.
func (b *Block) End() float64 {
	return b.Start + b.Duration
}

// Wraps reports whether the block crosses midnight.
func (b *Block) Wraps() bool {
	return b.End() > clock.HoursPerDay
}

// Spans returns the occupied time ranges of the block, split at midnight
// when it wraps and wrapping is enabled.
func (b *Block) Spans(wrapEnabled bool) []clock.Span {
	return clock.Spans(b.Start, b.Duration, wrapEnabled)
}

// Clone returns a deep copy, keeping the same ID.
func (b *Block) Clone() *Block {
	c := *b
	return &c
}
