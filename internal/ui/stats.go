package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"rondo/internal/clock"
	"rondo/internal/timeline"
)

func (a *App) statsCmd() *cobra.Command {
	var showGaps bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show day occupancy statistics",
		RunE: func(_ *cobra.Command, _ []string) error {
			s := ComputeStats(a.tl)
			PrintStats(s)
			fmt.Println(OccupancyBar(s.ScheduledHours, 30))

			if showGaps {
				gaps := timeline.FreeGaps(a.tl.Obstacles(), a.tl.Settings())
				if len(gaps) == 0 {
					fmt.Println(formatMuted("No free gaps."))
					return nil
				}
				fmt.Println("\nFree gaps:")
				format := a.tl.Settings().TimeFormat
				for _, g := range gaps {
					fmt.Printf("  %-15s %s\n",
						clock.FormatSpan(g.Start, g.Duration(), format),
						formatMuted(clock.FormatDurationHours(g.Duration())))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showGaps, "gaps", false, "List every free gap")

	return cmd
}
