package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"rondo/internal/block"
	"rondo/internal/clock"
)

func (a *App) addCmd() *cobra.Command {
	var (
		at       string
		duration string
		colorHex string
		locked   bool
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new block",
		Long: `Add a new block to the day.

With --at the block goes to that exact time and the command fails on a
conflict. Without --at rondo places it in the best free gap.

Example:
  rondo add "Deep work" --at=09:00 --duration=2
  rondo add "Email" --duration=0:30`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			d, err := clock.ParseDuration(duration)
			if err != nil {
				return err
			}

			color := block.ParseColor(a.config.UI.DefaultColor)
			if colorHex != "" {
				color = block.ParseColor(colorHex)
			}

			var b *block.Block
			if at != "" {
				start, err := clock.ParseHour(at)
				if err != nil {
					return err
				}
				b, err = a.tl.AddBlock(args[0], start, d, color)
				if err != nil {
					return err
				}
			} else {
				b, err = a.tl.PlaceBlock(args[0], d, color)
				if err != nil {
					return err
				}
			}

			if locked {
				if err := a.tl.LockBlock(b.ID); err != nil {
					return err
				}
			}

			fmt.Printf("Added %q at %s\n",
				b.Title, clock.FormatSpan(b.Start, b.Duration, a.tl.Settings().TimeFormat))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Start time (HH:MM or decimal hours, default: best free gap)")
	cmd.Flags().StringVar(&duration, "duration", "1", "Duration (H:MM or decimal hours)")
	cmd.Flags().StringVar(&colorHex, "color", "", "Block color as #rrggbb")
	cmd.Flags().BoolVar(&locked, "locked", false, "Lock the block in place")

	return cmd
}
