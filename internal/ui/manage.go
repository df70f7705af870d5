package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"rondo/internal/clock"
)

func (a *App) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove [block]",
		Aliases: []string{"rm"},
		Short:   "Remove a block",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			b, err := resolveBlock(a.tl, args[0])
			if err != nil {
				return err
			}
			if err := a.tl.RemoveBlock(b.ID); err != nil {
				return err
			}
			fmt.Printf("Removed %q\n", b.Title)
			return nil
		},
	}
}

func (a *App) duplicateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "duplicate [block]",
		Aliases: []string{"dup"},
		Short:   "Duplicate a block into the next free slot",
		Long: `Duplicate a block. The copy starts where the original ends, sliding
forward in quarter-hour steps until it finds a free slot.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			b, err := resolveBlock(a.tl, args[0])
			if err != nil {
				return err
			}
			dup, err := a.tl.DuplicateBlock(b.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Duplicated %q at %s\n",
				dup.Title, clock.FormatSpan(dup.Start, dup.Duration, a.tl.Settings().TimeFormat))
			return nil
		},
	}
}

func (a *App) lockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock [block]",
		Short: "Lock a block in place",
		Long:  "Lock a block. Locked blocks reject edits and never move during a shuffle.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			b, err := resolveBlock(a.tl, args[0])
			if err != nil {
				return err
			}
			if err := a.tl.LockBlock(b.ID); err != nil {
				return err
			}
			fmt.Printf("Locked %q\n", b.Title)
			return nil
		},
	}
}

func (a *App) unlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock [block]",
		Short: "Unlock a block",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			b, err := resolveBlock(a.tl, args[0])
			if err != nil {
				return err
			}
			if err := a.tl.UnlockBlock(b.ID); err != nil {
				return err
			}
			fmt.Printf("Unlocked %q\n", b.Title)
			return nil
		},
	}
}
