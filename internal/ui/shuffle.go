package ui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"rondo/internal/shuffle"
)

func (a *App) shuffleCmd() *cobra.Command {
	var (
		seed int64
		list bool
	)

	cmd := &cobra.Command{
		Use:   "shuffle [strategy]",
		Short: "Rearrange unlocked blocks with a layout strategy",
		Long: `Rearrange every unlocked block with a layout strategy. Locked blocks
stay where they are and act as obstacles.

Without a strategy the random layout is used. --seed makes a run
reproducible.`,
		Example: `  rondo shuffle
  rondo shuffle compact
  rondo shuffle timeofday --seed=42
  rondo shuffle --list`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if list {
				for _, s := range shuffle.Strategies() {
					fmt.Printf("  %-10s %s\n", s, formatMuted(s.Description()))
				}
				return nil
			}

			strategy := shuffle.Random
			if len(args) > 0 {
				var err error
				strategy, err = shuffle.Parse(args[0])
				if err != nil {
					return err
				}
			}

			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))

			res, err := shuffle.Apply(a.tl, strategy, rng)
			if err != nil {
				return err
			}

			fmt.Println(res.Message())
			if res.Forced > 0 {
				fmt.Println(formatWarn(fmt.Sprintf("%d block(s) placed with overlap, the day is too full", res.Forced)))
			}
			fmt.Println()
			PrintSchedule(a.tl)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = time-based)")
	cmd.Flags().BoolVar(&list, "list", false, "List available strategies")

	return cmd
}
