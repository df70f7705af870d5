package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) listCmd() *cobra.Command {
	var showIDs bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the day's blocks",
		Long: `List every block in start order.

The leading number is the position other commands accept as a block
reference; --ids prints the full ids as well.`,
		Example: `  rondo list
  rondo list --ids`,
		RunE: func(_ *cobra.Command, _ []string) error {
			blocks := a.tl.Blocks()
			if len(blocks) == 0 {
				fmt.Println("The day is empty. Add a block with: rondo add \"Title\" --duration 1")
				return nil
			}

			st := a.tl.Settings()
			fmt.Println(formatHeader(fmt.Sprintf("=== Today (%s) ===", describeSettings(st.WrapEnabled, st.AllowOverlap))))
			PrintSchedule(a.tl)

			if showIDs {
				fmt.Println()
				for i, b := range blocks {
					fmt.Printf("  %2d %s\n", i+1, formatMuted(b.ID))
				}
			}

			fmt.Println()
			s := ComputeStats(a.tl)
			fmt.Println(OccupancyBar(s.ScheduledHours, 30))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showIDs, "ids", false, "Also print full block ids")

	return cmd
}

func describeSettings(wrap, overlap bool) string {
	switch {
	case wrap && overlap:
		return "wrap on, overlap on"
	case wrap:
		return "wrap on"
	case overlap:
		return "overlap on"
	default:
		return "strict"
	}
}
