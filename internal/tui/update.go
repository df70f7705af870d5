package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"rondo/internal/block"
	"rondo/internal/clock"
	"rondo/internal/shuffle"
	"rondo/internal/timeline"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == ModeInsert {
			return m.handleInsertKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "j", "down":
		if m.cursor < m.tl.Len()-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g":
		m.cursor = 0
	case "G":
		m.cursor = m.tl.Len() - 1
		m.clampCursor()

	// Block creation
	case "a":
		m.mode = ModeInsert
		m.input.SetValue("")
		m.input.Focus()
		return m, nil

	// Mutations on the selected block
	case "x":
		if b := m.selected(); b != nil {
			if err := m.tl.RemoveBlock(b.ID); err != nil {
				m.setStatus(err.Error(), true)
			} else {
				m.setStatus(fmt.Sprintf("Removed %q", b.Title), false)
			}
			m.clampCursor()
		}
	case "d":
		if b := m.selected(); b != nil {
			if dup, err := m.tl.DuplicateBlock(b.ID); err != nil {
				m.setStatus(err.Error(), true)
			} else {
				m.setStatus(fmt.Sprintf("Duplicated %q at %s", dup.Title,
					clock.FormatHour(dup.Start, m.tl.Settings().TimeFormat)), false)
			}
		}
	case "l":
		if b := m.selected(); b != nil {
			var err error
			if b.Locked {
				err = m.tl.UnlockBlock(b.ID)
			} else {
				err = m.tl.LockBlock(b.ID)
			}
			if err != nil {
				m.setStatus(err.Error(), true)
			}
		}
	case "J":
		m.nudge(clock.Quarter)
	case "K":
		m.nudge(-clock.Quarter)
	case "+", "=":
		m.resize(clock.Quarter)
	case "-":
		m.resize(-clock.Quarter)

	// Shuffling
	case "s", "enter":
		if res, err := shuffle.Apply(m.tl, m.currentStrategy(), m.rng); err != nil {
			m.setStatus(err.Error(), true)
		} else {
			m.setStatus(res.Message(), res.Forced > 0)
		}
	case "tab", "]":
		m.strategy = (m.strategy + 1) % len(shuffle.Strategies())
	case "[":
		m.strategy = (m.strategy + len(shuffle.Strategies()) - 1) % len(shuffle.Strategies())

	// Settings
	case "w":
		m.tl.SetWrapEnabled(!m.tl.Settings().WrapEnabled)
	case "o":
		m.tl.SetOverlapAllowed(!m.tl.Settings().AllowOverlap)
	case "f":
		if m.tl.Settings().TimeFormat == clock.Format24h {
			m.tl.SetTimeFormat(clock.Format12h)
		} else {
			m.tl.SetTimeFormat(clock.Format24h)
		}

	// Clipboard
	case "y":
		if err := clipboard.WriteAll(m.exportText()); err != nil {
			m.setStatus(fmt.Sprintf("clipboard: %v", err), true)
		} else {
			m.setStatus("Schedule copied to clipboard", false)
		}
	}

	m.drainNotices()
	return m, nil
}

// handleInsertKeys handles keys while the new-block input is focused.
func (m Model) handleInsertKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case "enter":
		title, duration, start, err := parseEntry(m.input.Value())
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}

		color := block.ParseColor(m.config.UI.DefaultColor)
		if start != nil {
			_, err = m.tl.AddBlock(title, *start, duration, color)
		} else {
			_, err = m.tl.PlaceBlock(title, duration, color)
		}
		if err != nil {
			m.setStatus(err.Error(), true)
			m.drainNotices()
			return m, nil
		}

		m.mode = ModeNormal
		m.input.Blur()
		m.setStatus(fmt.Sprintf("Added %q", title), false)
		m.drainNotices()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseEntry parses "Title, duration[, start]" from the input field.
func parseEntry(s string) (title string, duration float64, start *float64, err error) {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) < 2 || parts[0] == "" {
		return "", 0, nil, fmt.Errorf("expected: Title, duration[, start]")
	}

	title = parts[0]
	duration, err = clock.ParseDuration(parts[1])
	if err != nil {
		return "", 0, nil, err
	}

	if len(parts) >= 3 && parts[2] != "" {
		h, err := clock.ParseHour(parts[2])
		if err != nil {
			return "", 0, nil, err
		}
		start = &h
	}
	return title, duration, start, nil
}

// selected returns the block under the cursor, or nil on an empty day.
func (m *Model) selected() *block.Block {
	blocks := m.tl.Blocks()
	if len(blocks) == 0 || m.cursor >= len(blocks) {
		return nil
	}
	return blocks[m.cursor]
}

// nudge moves the selected block by delta hours.
func (m *Model) nudge(delta float64) {
	b := m.selected()
	if b == nil {
		return
	}
	start := clock.NormalizeHour(b.Start + delta)
	if err := m.tl.UpdateBlock(b.ID, timeline.Patch{Start: &start}); err != nil {
		m.setStatus(err.Error(), true)
	}
	m.followBlock(b.ID)
}

// resize grows or shrinks the selected block by delta hours, never below
// one quarter.
func (m *Model) resize(delta float64) {
	b := m.selected()
	if b == nil {
		return
	}
	d := b.Duration + delta
	if d < clock.Quarter {
		d = clock.Quarter
	}
	if err := m.tl.UpdateBlock(b.ID, timeline.Patch{Duration: &d}); err != nil {
		m.setStatus(err.Error(), true)
	}
}

// followBlock keeps the cursor on the block after a reorder.
func (m *Model) followBlock(id string) {
	for i, b := range m.tl.Blocks() {
		if b.ID == id {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

func (m *Model) setStatus(msg string, warn bool) {
	m.statusMsg = msg
	m.statusWarn = warn
}

// drainNotices surfaces the latest timeline warning in the status line.
func (m *Model) drainNotices() {
	msgs := m.notices.drain()
	if len(msgs) > 0 {
		m.setStatus(msgs[len(msgs)-1], true)
	}
}
