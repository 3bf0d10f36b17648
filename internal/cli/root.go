package cli

import (
	"github.com/ktsujino/quadlog/internal/screentime"
	"github.com/ktsujino/quadlog/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Activities service.ActivityService
	Reports    service.ReportService
	ScreenTime screentime.Provider

	// IsInteractive reports whether stdin is a terminal; the add command
	// only opens its form when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "quadlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "quadlog",
		Short: "Personal time tracker with an importance/urgency quadrant",
	}

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newEditCmd(app),
		newRemoveCmd(app),
		newReportCmd(app),
		newTimelineCmd(app),
		newDeviceCmd(app),
	)

	return root
}
