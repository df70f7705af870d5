package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"rondo/internal/config"
	"rondo/internal/timeline"
	"rondo/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state. Persistence is not its concern:
// the timeline's OnChange observer saves a snapshot after every mutation.
type App struct {
	tl     *timeline.Timeline
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application around a restored timeline.
func NewApp(tl *timeline.Timeline, cfg *config.Config) *App {
	a := &App{tl: tl, config: cfg}

	a.root = &cobra.Command{
		Use:   "rondo",
		Short: "A circular day planner",
		Long: `Rondo plans your day as a 24-hour ring of time blocks.

Add blocks at fixed times or let rondo find the best free gap, lock the
immovable ones, and shuffle the rest with different layout strategies.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.tl, a.config)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.resizeCmd())
	a.root.AddCommand(a.removeCmd())
	a.root.AddCommand(a.duplicateCmd())
	a.root.AddCommand(a.lockCmd())
	a.root.AddCommand(a.unlockCmd())
	a.root.AddCommand(a.shuffleCmd())
	a.root.AddCommand(a.settingsCmd())
	a.root.AddCommand(a.statsCmd())
	a.root.AddCommand(a.exportCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("rondo %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
