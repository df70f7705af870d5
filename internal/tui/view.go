package tui

import (
	"fmt"
	"sort"
	"strings"

	"rondo/internal/clock"
	"rondo/internal/timeline"
)

// View renders the day as a vertical list of blocks and gaps.
func (m Model) View() string {
	var sb strings.Builder

	st := m.tl.Settings()
	sb.WriteString(m.styles.TitleStyle.Render("rondo"))
	sb.WriteString("  ")
	sb.WriteString(m.styles.SettingsStyle.Render(fmt.Sprintf(
		"wrap:%s overlap:%s %s", onOff(st.WrapEnabled), onOff(st.AllowOverlap), st.TimeFormat)))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderDay())
	sb.WriteString("\n")

	sb.WriteString(m.styles.SettingsStyle.Render(
		fmt.Sprintf("strategy: %s — %s", m.currentStrategy(), m.currentStrategy().Description())))
	sb.WriteString("\n")

	if m.mode == ModeInsert {
		sb.WriteString(m.styles.InputStyle.Render(m.input.View()))
		sb.WriteString("\n")
	}

	if m.statusMsg != "" {
		style := m.styles.StatusStyle
		if m.statusWarn {
			style = m.styles.WarningStyle
		}
		sb.WriteString(style.Render(m.statusMsg))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.HelpStyle.Render(m.helpLine()))
	return sb.String()
}

// dayRow is one rendered line, ordered by its position on the ring.
type dayRow struct {
	start float64
	line  string
}

func (m Model) renderDay() string {
	blocks := m.tl.Blocks()
	if len(blocks) == 0 {
		return m.styles.GapStyle.Render("  The day is empty. Press a to add a block.") + "\n"
	}

	st := m.tl.Settings()
	rows := make([]dayRow, 0, len(blocks)*2)

	for i, b := range blocks {
		marker := "  "
		if b.Locked {
			marker = m.styles.LockedStyle.Render("● ")
		}

		span := m.styles.TimeStyle.Render(
			fmt.Sprintf("%-15s", clock.FormatSpan(b.Start, b.Duration, st.TimeFormat)))
		dur := m.styles.DurationStyle.Render(
			fmt.Sprintf("%6s", clock.FormatDurationHours(b.Duration)))
		title := m.styles.blockStyle(b.Color.Hex(), i == m.cursor).Render(" " + b.Title + " ")

		rows = append(rows, dayRow{
			start: b.Start,
			line:  fmt.Sprintf("  %s%s %s %s", marker, span, dur, title),
		})
	}

	for _, g := range timeline.FreeGaps(m.tl.Obstacles(), st) {
		rows = append(rows, dayRow{
			start: g.Start,
			line: m.styles.GapStyle.Render(fmt.Sprintf("    %-15s %6s  · free",
				clock.FormatSpan(g.Start, g.Duration(), st.TimeFormat),
				clock.FormatDurationHours(g.Duration()))),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].start < rows[j].start })

	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(r.line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) helpLine() string {
	if m.mode == ModeInsert {
		return "enter: add  esc: cancel"
	}
	return "a:add x:del d:dup l:lock J/K:move +/-:resize s:shuffle tab:strategy w/o/f:settings y:copy q:quit"
}

// exportText renders the schedule without styling for the clipboard.
func (m Model) exportText() string {
	var sb strings.Builder
	format := m.tl.Settings().TimeFormat
	for _, b := range m.tl.Blocks() {
		lock := " "
		if b.Locked {
			lock = "*"
		}
		fmt.Fprintf(&sb, "%s%-15s %6s  %s\n",
			lock,
			clock.FormatSpan(b.Start, b.Duration, format),
			clock.FormatDurationHours(b.Duration),
			b.Title,
		)
	}
	return sb.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
