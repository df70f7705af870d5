// Package timeline owns the set of blocks on the 24-hour ring and mediates
// every mutation through conflict detection and placement search.
package timeline

import (
	"fmt"
	"sort"

	"rondo/internal/block"
	"rondo/internal/clock"
)

// Snapshot is the serialized form handed to the persistence collaborator on
// every mutation, and accepted back at startup.
type Snapshot struct {
	Blocks       []block.Block `json:"blocks"`
	WrapEnabled  bool          `json:"wrapEnabled"`
	AllowOverlap bool          `json:"allowOverlap"`
	TimeFormat   string        `json:"timeFormat"`
}

// Timeline is the aggregate root for the block collection. It is not safe
// for concurrent use; the application drives it from a single goroutine.
type Timeline struct {
	blocks   map[string]*block.Block
	settings Settings

	onChange   func(Snapshot)
	onConflict func(msg string)
	onNotice   func(msg string)
}

// New creates an empty timeline with the given settings.
func New(st Settings) *Timeline {
	if st.TimeFormat == "" {
		st.TimeFormat = clock.Format24h
	}
	return &Timeline{
		blocks:   make(map[string]*block.Block),
		settings: st,
	}
}

// FromSnapshot restores a timeline from a persisted snapshot. Missing
// settings default to wrap off, overlap off, 24-hour format. Blocks that
// fail validation are rejected, not silently dropped.
func FromSnapshot(s Snapshot) (*Timeline, error) {
	t := New(Settings{
		WrapEnabled:  s.WrapEnabled,
		AllowOverlap: s.AllowOverlap,
		TimeFormat:   s.TimeFormat,
	})
	for i := range s.Blocks {
		b := s.Blocks[i]
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("restoring block %q: %w", b.ID, err)
		}
		if _, dup := t.blocks[b.ID]; dup {
			return nil, fmt.Errorf("restoring block %q: duplicate id", b.ID)
		}
		t.blocks[b.ID] = b.Clone()
	}
	return t, nil
}

// OnChange registers the callback invoked with a fresh snapshot after every
// committed mutation.
func (t *Timeline) OnChange(fn func(Snapshot)) { t.onChange = fn }

// OnConflict registers the callback invoked when an operation is rejected
// because of a time conflict.
func (t *Timeline) OnConflict(fn func(string)) { t.onConflict = fn }

// OnNotice registers the callback for non-fatal warnings, such as a block
// force-placed after an exhausted search.
func (t *Timeline) OnNotice(fn func(string)) { t.onNotice = fn }

// Settings returns the current global settings.
func (t *Timeline) Settings() Settings { return t.settings }

// SetWrapEnabled toggles midnight wrapping. Existing placements are left
// untouched; the flag only affects future operations.
func (t *Timeline) SetWrapEnabled(v bool) {
	t.settings.WrapEnabled = v
	t.changed()
}

// SetOverlapAllowed toggles overlap rejection. Existing overlaps, if any,
// are not retroactively fixed.
func (t *Timeline) SetOverlapAllowed(v bool) {
	t.settings.AllowOverlap = v
	t.changed()
}

// SetTimeFormat sets the display format (clock.Format12h or Format24h).
func (t *Timeline) SetTimeFormat(format string) {
	t.settings.TimeFormat = format
	t.changed()
}

// Len returns the number of blocks.
func (t *Timeline) Len() int { return len(t.blocks) }

// Get returns a copy of the block with the given id.
func (t *Timeline) Get(id string) (*block.Block, error) {
	b, ok := t.blocks[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", block.ErrBlockNotFound, id)
	}
	return b.Clone(), nil
}

// Blocks returns copies of all blocks ordered by start time.
func (t *Timeline) Blocks() []*block.Block {
	out := make([]*block.Block, 0, len(t.blocks))
	for _, b := range t.blocks {
		out = append(out, b.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start == out[j].Start {
			return out[i].ID < out[j].ID
		}
		return out[i].Start < out[j].Start
	})
	return out
}

// Obstacles returns the occupancy view of every block, locked or not.
func (t *Timeline) Obstacles() []Obstacle {
	out := make([]Obstacle, 0, len(t.blocks))
	for _, b := range t.Blocks() {
		out = append(out, Obstacle{ID: b.ID, Start: b.Start, Duration: b.Duration})
	}
	return out
}

// AddBlock validates and inserts a new block at the given start. On
// conflict nothing is mutated and block.ErrTimeConflict is returned.
func (t *Timeline) AddBlock(title string, start, duration float64, color block.Color) (*block.Block, error) {
	b, err := block.New(title, start, duration, color)
	if err != nil {
		return nil, err
	}

	cand := Obstacle{ID: b.ID, Start: b.Start, Duration: b.Duration}
	if HasConflict(cand, t.Obstacles(), "", t.settings) {
		t.conflict(fmt.Sprintf("%q conflicts with an existing block at %s",
			title, clock.FormatSpan(b.Start, b.Duration, t.settings.TimeFormat)))
		return nil, block.ErrTimeConflict
	}

	t.blocks[b.ID] = b
	t.changed()
	return b.Clone(), nil
}

// PlaceBlock inserts a new block wherever the best free gap puts it. When
// the day is completely full the block is force-placed at the fallback
// position with a warning instead of failing.
func (t *Timeline) PlaceBlock(title string, duration float64, color block.Color) (*block.Block, error) {
	b, err := block.New(title, FindBestGap(duration, t.Obstacles(), t.settings), duration, color)
	if err != nil {
		return nil, err
	}

	cand := Obstacle{ID: b.ID, Start: b.Start, Duration: b.Duration}
	if HasConflict(cand, t.Obstacles(), "", t.settings) {
		t.notice(fmt.Sprintf("no free slot for %q; placed at %s with overlap",
			title, clock.FormatHour(b.Start, t.settings.TimeFormat)))
	}

	t.blocks[b.ID] = b
	t.changed()
	return b.Clone(), nil
}

// Patch describes a partial update; nil fields are left unchanged.
type Patch struct {
	Title    *string
	Start    *float64
	Duration *float64
	Color    *block.Color
}

// UpdateBlock applies a partial update to a block. Locked blocks reject all
// updates. A start or duration change is conflict-checked against every
// other block first; on rejection the timeline is left untouched.
func (t *Timeline) UpdateBlock(id string, p Patch) error {
	b, ok := t.blocks[id]
	if !ok {
		return fmt.Errorf("%w: %s", block.ErrBlockNotFound, id)
	}
	if b.Locked {
		return fmt.Errorf("%w: %q", block.ErrBlockLocked, b.Title)
	}

	next := b.Clone()
	if p.Title != nil {
		if *p.Title == "" {
			return block.ErrEmptyTitle
		}
		next.Title = *p.Title
	}
	if p.Start != nil {
		next.Start = clock.NormalizeHour(*p.Start)
	}
	if p.Duration != nil {
		if *p.Duration <= 0 {
			return block.ErrNonPositiveDuration
		}
		next.Duration = *p.Duration
	}
	if p.Color != nil {
		next.Color = *p.Color
	}

	if p.Start != nil || p.Duration != nil {
		cand := Obstacle{ID: id, Start: next.Start, Duration: next.Duration}
		if HasConflict(cand, t.Obstacles(), id, t.settings) {
			t.conflict(fmt.Sprintf("%q cannot move to %s: slot is taken",
				next.Title, clock.FormatSpan(next.Start, next.Duration, t.settings.TimeFormat)))
			return block.ErrTimeConflict
		}
	}

	t.blocks[id] = next
	t.changed()
	return nil
}

// LockBlock marks a block immovable. Locked blocks still occupy time and
// act as obstacles for every placement search.
func (t *Timeline) LockBlock(id string) error {
	return t.setLocked(id, true)
}

// UnlockBlock clears the immovable flag.
func (t *Timeline) UnlockBlock(id string) error {
	return t.setLocked(id, false)
}

func (t *Timeline) setLocked(id string, locked bool) error {
	b, ok := t.blocks[id]
	if !ok {
		return fmt.Errorf("%w: %s", block.ErrBlockNotFound, id)
	}
	if b.Locked == locked {
		return nil
	}
	b.Locked = locked
	t.changed()
	return nil
}

// RemoveBlock deletes a block by id.
func (t *Timeline) RemoveBlock(id string) error {
	if _, ok := t.blocks[id]; !ok {
		return fmt.Errorf("%w: %s", block.ErrBlockNotFound, id)
	}
	delete(t.blocks, id)
	t.changed()
	return nil
}

// DuplicateBlock copies a block to a new id, starting where the original
// ends. With overlap disallowed the candidate start advances in
// quarter-hour steps until a free slot appears, wrapping past midnight when
// allowed and resetting to hour 0 otherwise. The search is bounded by one
// step per quarter hour of the day; if it exhausts, the copy is placed at
// the last candidate with a warning.
func (t *Timeline) DuplicateBlock(id string) (*block.Block, error) {
	orig, ok := t.blocks[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", block.ErrBlockNotFound, id)
	}

	start := clock.NormalizeHour(orig.End())
	obstacles := t.Obstacles()
	forced := false

	if !t.settings.AllowOverlap {
		placed := false
		for i := 0; i < clock.QuartersPerDay; i++ {
			cand := Obstacle{Start: start, Duration: orig.Duration}
			if fits(start, orig.Duration, t.settings) &&
				!HasConflict(cand, obstacles, "", t.settings) {
				placed = true
				break
			}
			start += clock.Quarter
			if start >= clock.HoursPerDay {
				if t.settings.WrapEnabled {
					start = clock.NormalizeHour(start)
				} else {
					start = 0
				}
			}
		}
		forced = !placed
	}

	dup, err := block.New(orig.Title, start, orig.Duration, orig.Color)
	if err != nil {
		return nil, err
	}
	t.blocks[dup.ID] = dup
	if forced {
		t.notice(fmt.Sprintf("no free slot for copy of %q; placed at %s with overlap",
			orig.Title, clock.FormatHour(dup.Start, t.settings.TimeFormat)))
	}
	t.changed()
	return dup.Clone(), nil
}

// Move is one placement decision produced by a shuffle strategy.
type Move struct {
	ID     string
	Start  float64
	Forced bool // placed despite conflicts after an exhausted search
}

// ApplyLayout commits a batch of placement decisions at once. Strategies
// construct conflict-free layouts themselves, so no conflict check runs
// here; locked and unknown blocks are still rejected before anything is
// written, keeping the batch all-or-nothing.
func (t *Timeline) ApplyLayout(moves []Move) error {
	if len(moves) == 0 {
		return nil
	}

	for _, m := range moves {
		b, ok := t.blocks[m.ID]
		if !ok {
			return fmt.Errorf("%w: %s", block.ErrBlockNotFound, m.ID)
		}
		if b.Locked {
			return fmt.Errorf("%w: %q", block.ErrBlockLocked, b.Title)
		}
	}

	for _, m := range moves {
		b := t.blocks[m.ID]
		b.Start = clock.NormalizeHour(m.Start)
		if m.Forced {
			t.notice(fmt.Sprintf("no free slot for %q; placed at %s with overlap",
				b.Title, clock.FormatHour(b.Start, t.settings.TimeFormat)))
		}
	}
	t.changed()
	return nil
}

// Snapshot returns the serialized form of the collection.
func (t *Timeline) Snapshot() Snapshot {
	s := Snapshot{
		WrapEnabled:  t.settings.WrapEnabled,
		AllowOverlap: t.settings.AllowOverlap,
		TimeFormat:   t.settings.TimeFormat,
	}
	for _, b := range t.Blocks() {
		s.Blocks = append(s.Blocks, *b)
	}
	return s
}

func (t *Timeline) changed() {
	if t.onChange != nil {
		t.onChange(t.Snapshot())
	}
}

func (t *Timeline) conflict(msg string) {
	if t.onConflict != nil {
		t.onConflict(msg)
	}
}

func (t *Timeline) notice(msg string) {
	if t.onNotice != nil {
		t.onNotice(msg)
	}
}
