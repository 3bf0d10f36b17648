package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Browse days interactively",
		Long: "Open an interactive day browser. Arrow keys move between days,\n" +
			"t jumps to today, r reloads, q quits.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("timeline needs an interactive terminal; use \"quadlog list\" instead")
			}

			day, err := resolveDate(date)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newTimelineModel(app, day))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to open (YYYY-MM-DD, default today)")

	return cmd
}
