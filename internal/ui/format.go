package ui

import (
	"fmt"
	"strings"

	"rondo/internal/block"
	"rondo/internal/clock"
	"rondo/internal/timeline"
)

// resolveBlock turns a CLI block reference into a block. A reference is
// either a 1-based position from `rondo list` or a unique id prefix.
func resolveBlock(tl *timeline.Timeline, ref string) (*block.Block, error) {
	blocks := tl.Blocks()

	var idx int
	if _, err := fmt.Sscanf(ref, "%d", &idx); err == nil && fmt.Sprintf("%d", idx) == ref {
		if idx < 1 || idx > len(blocks) {
			return nil, fmt.Errorf("no block #%d (have %d)", idx, len(blocks))
		}
		return blocks[idx-1], nil
	}

	var match *block.Block
	for _, b := range blocks {
		if strings.HasPrefix(b.ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous id prefix %q", ref)
			}
			match = b
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", block.ErrBlockNotFound, ref)
	}
	return match, nil
}

// lockSymbol returns the per-row indicator for a block.
func lockSymbol(b *block.Block) string {
	if b.Locked {
		return formatLocked("●")
	}
	return "○"
}

// PrintBlockRow prints one block row: position, lock state, span,
// duration and title.
func PrintBlockRow(pos int, b *block.Block, format string, maxTitleWidth int) {
	title := b.Title
	if len(title) > maxTitleWidth {
		title = title[:maxTitleWidth-3] + "..."
	}

	fmt.Printf("  %2d %s  %-15s %6s  %s\n",
		pos,
		lockSymbol(b),
		clock.FormatSpan(b.Start, b.Duration, format),
		formatMuted(clock.FormatDurationHours(b.Duration)),
		title,
	)
}

// PrintSchedule prints every block in start order.
func PrintSchedule(tl *timeline.Timeline) {
	blocks := tl.Blocks()
	if len(blocks) == 0 {
		fmt.Println("The day is empty. Add a block with: rondo add \"Title\" --duration 1")
		return
	}

	maxTitle := termWidth() - 32
	if maxTitle < 20 {
		maxTitle = 20
	}

	format := tl.Settings().TimeFormat
	for i, b := range blocks {
		PrintBlockRow(i+1, b, format, maxTitle)
	}
}

// Stats aggregates occupancy numbers for the whole day.
type Stats struct {
	ScheduledHours float64
	FreeHours      float64
	BlockCount     int
	LockedCount    int
	GapCount       int
	LargestGap     float64
}

// ComputeStats derives day statistics from the timeline's free gaps.
func ComputeStats(tl *timeline.Timeline) Stats {
	var s Stats
	for _, b := range tl.Blocks() {
		s.BlockCount++
		if b.Locked {
			s.LockedCount++
		}
		s.ScheduledHours += b.Duration
	}

	gaps := timeline.FreeGaps(tl.Obstacles(), tl.Settings())
	s.GapCount = len(gaps)
	for _, g := range gaps {
		d := g.Duration()
		s.FreeHours += d
		if d > s.LargestGap {
			s.LargestGap = d
		}
	}
	return s
}

// PrintStats prints the stats summary.
func PrintStats(s Stats) {
	fmt.Printf("%s | %s | %d blocks (%d locked)\n",
		formatStats(fmt.Sprintf("Scheduled: %s", clock.FormatDurationHours(s.ScheduledHours))),
		formatMuted(fmt.Sprintf("Free: %s", clock.FormatDurationHours(s.FreeHours))),
		s.BlockCount,
		s.LockedCount,
	)
	if s.GapCount > 0 {
		fmt.Printf("Gaps: %d, largest %s\n",
			s.GapCount, clock.FormatDurationHours(s.LargestGap))
	}
}

// OccupancyBar renders an ASCII bar of the day's occupancy.
func OccupancyBar(scheduled float64, width int) string {
	if scheduled > clock.HoursPerDay {
		scheduled = clock.HoursPerDay
	}
	filled := int(scheduled / clock.HoursPerDay * float64(width))
	pct := int(scheduled / clock.HoursPerDay * 100)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", formatStats(bar), fmt.Sprintf("(%d%% planned)", pct))
}

// RenderSchedule returns the plain-text schedule, one block per line.
// Used by export, so no color codes.
func RenderSchedule(tl *timeline.Timeline) string {
	var sb strings.Builder
	format := tl.Settings().TimeFormat
	for _, b := range tl.Blocks() {
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
