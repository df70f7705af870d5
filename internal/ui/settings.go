package ui

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rondo/internal/clock"
)

func (a *App) settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View or change schedule settings",
		Long: `View or change the schedule settings stored with the snapshot.

Toggling a setting never rewrites existing blocks; it only changes how
future operations behave.`,
		Example: `  rondo settings
  rondo settings wrap on
  rondo settings overlap off
  rondo settings format 12h`,
		RunE: func(_ *cobra.Command, _ []string) error {
			st := a.tl.Settings()
			fmt.Println("Current settings:")
			fmt.Printf("  wrap     = %v\n", st.WrapEnabled)
			fmt.Printf("  overlap  = %v\n", st.AllowOverlap)
			fmt.Printf("  format   = %s\n", st.TimeFormat)
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:       "wrap [on|off]",
			Short:     "Allow blocks to cross midnight",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"on", "off"},
			RunE: func(_ *cobra.Command, args []string) error {
				v, err := parseToggle(args[0])
				if err != nil {
					return err
				}
				a.tl.SetWrapEnabled(v)
				fmt.Printf("Midnight wrapping %s\n", onOff(v))
				return nil
			},
		},
		&cobra.Command{
			Use:       "overlap [on|off]",
			Short:     "Allow blocks to overlap",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"on", "off"},
			RunE: func(_ *cobra.Command, args []string) error {
				v, err := parseToggle(args[0])
				if err != nil {
					return err
				}
				a.tl.SetOverlapAllowed(v)
				fmt.Printf("Overlaps %s\n", onOff(v))
				return nil
			},
		},
		&cobra.Command{
			Use:       "format [12h|24h]",
			Short:     "Set the time display format",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{clock.Format12h, clock.Format24h},
			RunE: func(_ *cobra.Command, args []string) error {
				switch args[0] {
				case clock.Format12h, clock.Format24h:
				default:
					return fmt.Errorf("format must be 12h or 24h, got %q", args[0])
				}
				a.tl.SetTimeFormat(args[0])
				fmt.Printf("Time format set to %s\n", args[0])
				return nil
			},
		},
	)

	return cmd
}

func parseToggle(s string) (bool, error) {
	switch s {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

func onOff(v bool) string {
	if v {
		return "enabled"
	}
	return "disabled"
}
