// Package tui provides the interactive day view for rondo.
package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rondo/internal/config"
	"rondo/internal/shuffle"
	"rondo/internal/timeline"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert      // Entering a new block in the input field
)

// noticeLog collects conflict and notice messages emitted by the timeline
// while a key handler runs. It is shared by pointer so the value-copied
// model always sees fresh messages.
type noticeLog struct {
	msgs []string
}

func (n *noticeLog) push(msg string) { n.msgs = append(n.msgs, msg) }

func (n *noticeLog) drain() []string {
	out := n.msgs
	n.msgs = nil
	return out
}

// Model is the main TUI model.
type Model struct {
	tl     *timeline.Timeline
	config *config.Config
	styles Styles

	cursor   int
	mode     Mode
	strategy int // index into shuffle.Strategies()

	input   textinput.Model
	notices *noticeLog
	rng     *rand.Rand

	statusMsg  string
	statusWarn bool

	width  int
	height int
}

// New creates a new TUI model around an existing timeline.
func New(tl *timeline.Timeline, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = `Title, duration[, start]  e.g. "Deep work, 1:30, 9:00"`
	ti.CharLimit = 128

	notices := &noticeLog{}
	tl.OnConflict(notices.push)
	tl.OnNotice(notices.push)

	return Model{
		tl:      tl,
		config:  cfg,
		styles:  NewStyles(),
		input:   ti,
		notices: notices,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// currentStrategy returns the strategy the next shuffle will use.
func (m Model) currentStrategy() shuffle.Strategy {
	return shuffle.Strategies()[m.strategy]
}

// clampCursor keeps the cursor on an existing block after mutations.
func (m *Model) clampCursor() {
	n := m.tl.Len()
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Run starts the TUI.
func Run(tl *timeline.Timeline, cfg *config.Config) error {
	p := tea.NewProgram(New(tl, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
