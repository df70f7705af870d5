package ui

import (
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		asJSON      bool
		toClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the schedule as text or JSON",
		Long: `Export the schedule. The default is a plain-text listing; --json emits
the snapshot, which rondo can restore from. --copy puts the output on
the system clipboard instead of stdout.`,
		Example: `  rondo export
  rondo export --json > day.json
  rondo export --copy`,
		RunE: func(_ *cobra.Command, _ []string) error {
			var out string
			if asJSON {
				data, err := json.MarshalIndent(a.tl.Snapshot(), "", "  ")
				if err != nil {
					return fmt.Errorf("encoding snapshot: %w", err)
				}
				out = string(data) + "\n"
			} else {
				out = RenderSchedule(a.tl)
			}

			if toClipboard {
				if err := clipboard.WriteAll(out); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Println("Schedule copied to clipboard.")
				return nil
			}

			fmt.Print(out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the snapshot as JSON")
	cmd.Flags().BoolVar(&toClipboard, "copy", false, "Copy to clipboard instead of stdout")

	return cmd
}
