package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"rondo/internal/clock"
	"rondo/internal/timeline"
)

func (a *App) moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move [block] [time]",
		Short: "Move a block to a new start time",
		Long: `Move a block to a new start time.

The block keeps its duration. The move is rejected if the target slot
conflicts with another block or the block is locked.`,
		Example: `  rondo move 2 14:00
  rondo move 2 14.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			b, err := resolveBlock(a.tl, args[0])
			if err != nil {
				return err
			}

			start, err := clock.ParseHour(args[1])
			if err != nil {
				return err
			}

			if err := a.tl.UpdateBlock(b.ID, timeline.Patch{Start: &start}); err != nil {
				return err
			}

			moved, _ := a.tl.Get(b.ID)
			fmt.Printf("Moved %q to %s\n",
				moved.Title, clock.FormatSpan(moved.Start, moved.Duration, a.tl.Settings().TimeFormat))
			return nil
		},
	}
}

func (a *App) resizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resize [block] [duration]",
		Short: "Change a block's duration",
		Long: `Change a block's duration, keeping its start time.

The resize is rejected if the grown block would conflict with another
block or the block is locked.`,
		Example: `  rondo resize 2 1:30
  rondo resize 2 0.75`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			b, err := resolveBlock(a.tl, args[0])
			if err != nil {
				return err
			}

			d, err := clock.ParseDuration(args[1])
			if err != nil {
				return err
			}

			if err := a.tl.UpdateBlock(b.ID, timeline.Patch{Duration: &d}); err != nil {
				return err
			}

			fmt.Printf("Resized %q to %s\n", b.Title, clock.FormatDurationHours(d))
			return nil
		},
	}
}
