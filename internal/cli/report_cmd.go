package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/ktsujino/quadlog/internal/cli/formatter"
	"github.com/ktsujino/quadlog/internal/contract"
	"github.com/ktsujino/quadlog/internal/screentime"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var date string
	var showPie bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show a day's time analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			day, err := resolveDate(date)
			if err != nil {
				return err
			}

			report, err := app.Reports.DayReport(ctx, contract.DayReportRequest{Date: day})
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatDayReport(report))
			if showPie && len(report.Pie) > 0 {
				fmt.Println(formatter.Header("Pie Slices"))
				fmt.Print(formatter.FormatPieLegend(report.Pie, report.PieAngles))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to analyze (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&showPie, "pie", false, "Also print pie slice geometry")

	return cmd
}

func newDeviceCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "device",
		Short: "Show the device screen-time report for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			day, err := resolveDate(date)
			if err != nil {
				return err
			}

			if app.ScreenTime == nil || app.ScreenTime.Status() != screentime.Authorized {
				fmt.Println(formatter.FormatNotAuthorized())
				return nil
			}

			report, err := app.ScreenTime.DayReport(ctx, day)
			if err != nil {
				if errors.Is(err, screentime.ErrNoReport) {
					fmt.Println(formatter.Dim("No device usage recorded for " + formatter.HumanDate(day) + "."))
					return nil
				}
				return err
			}

			fmt.Println(formatter.FormatDeviceReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (YYYY-MM-DD, default today)")

	return cmd
}
