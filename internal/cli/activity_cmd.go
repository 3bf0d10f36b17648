package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/ktsujino/quadlog/internal/cli/formatter"
	"github.com/ktsujino/quadlog/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newAddCmd(app *App) *cobra.Command {
	var from, to, category, priority, memo, date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log an activity",
		Long: "Log an activity with start/end time, category, priority quadrant and memo.\n" +
			"With no time flags on a terminal, opens an interactive form.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if from == "" && to == "" && app.IsInteractive != nil && app.IsInteractive() {
				return runAddForm(ctx, app)
			}
			if from == "" || to == "" {
				return fmt.Errorf("both --from and --to are required")
			}

			day, err := resolveDate(date)
			if err != nil {
				return err
			}

			fields, err := fieldsFromFlags(from, to, category, priority, memo, day)
			if err != nil {
				return err
			}
			if !fields.StartTime.Before(fields.EndTime) {
				return fmt.Errorf("start time must be before end time")
			}

			a, err := app.Activities.Create(ctx, fields)
			if err != nil {
				return err
			}

			fmt.Printf("Logged %s %s (%s)\n",
				a.Category.Label(),
				formatter.ClockRange(a.StartTime, a.EndTime),
				a.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start time (HH:MM or \"YYYY-MM-DD HH:MM\")")
	cmd.Flags().StringVar(&to, "to", "", "End time (HH:MM or \"YYYY-MM-DD HH:MM\")")
	cmd.Flags().StringVar(&category, "category", "life", "Category (work, learning, exercise, hobby, life, sleep)")
	cmd.Flags().StringVar(&priority, "priority", "4", "Priority quadrant (1-4 or key)")
	cmd.Flags().StringVar(&memo, "memo", "", "Free-text memo")
	cmd.Flags().StringVar(&date, "date", "", "Day for HH:MM times (YYYY-MM-DD, default today)")

	return cmd
}

// fieldsFromFlags assembles ActivityFields from raw flag strings.
// HH:MM times land on day.
func fieldsFromFlags(from, to, category, priority, memo string, day time.Time) (service.ActivityFields, error) {
	var fields service.ActivityFields

	start, err := resolveClock(from, day)
	if err != nil {
		return fields, err
	}
	end, err := resolveClock(to, day)
	if err != nil {
		return fields, err
	}
	cat, err := resolveCategory(category)
	if err != nil {
		return fields, err
	}
	prio, err := resolvePriority(priority)
	if err != nil {
		return fields, err
	}
	if err := validateMemoInput(memo); err != nil {
		return fields, err
	}

	fields.StartTime = start
	fields.EndTime = end
	fields.Category = cat
	fields.Priority = prio
	fields.Memo = memo
	return fields, nil
}

func newListCmd(app *App) *cobra.Command {
	var date string
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a day's activities chronologically",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if days > 0 {
				if cmd.Flags().Changed("date") {
					return fmt.Errorf("--date and --days are mutually exclusive")
				}
				activities, err := app.Activities.ListRecent(ctx, days)
				if err != nil {
					return err
				}
				fmt.Print(formatter.FormatRecent(activities))
				return nil
			}

			day, err := resolveDate(date)
			if err != nil {
				return err
			}

			activities, err := app.Activities.ListForDay(ctx, day)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Timeline — " + formatter.HumanDate(day)))
			fmt.Print(formatter.FormatTimeline(activities))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to list (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&days, "days", 0, "List the last N days instead of one day")

	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	var from, to, category, priority, memo, date string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an activity's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id := args[0]

			existing, err := app.Activities.GetByID(ctx, id)
			if err != nil {
				return err
			}

			day, err := resolveDate(date)
			if err != nil {
				return err
			}

			fields := service.ActivityFields{
				StartTime: existing.StartTime,
				EndTime:   existing.EndTime,
				Memo:      existing.Memo,
				Category:  existing.Category,
				Priority:  existing.Priority,
			}
			if err := applyChangedFlags(cmd.Flags(), &fields, day); err != nil {
				return err
			}
			if !fields.StartTime.Before(fields.EndTime) {
				return fmt.Errorf("start time must be before end time")
			}

			if err := app.Activities.Update(ctx, id, fields); err != nil {
				return err
			}

			fmt.Printf("Updated activity %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "New start time (HH:MM or \"YYYY-MM-DD HH:MM\")")
	cmd.Flags().StringVar(&to, "to", "", "New end time (HH:MM or \"YYYY-MM-DD HH:MM\")")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority quadrant (1-4 or key)")
	cmd.Flags().StringVar(&memo, "memo", "", "New memo")
	cmd.Flags().StringVar(&date, "date", "", "Day for HH:MM times (YYYY-MM-DD, default today)")

	return cmd
}

// applyChangedFlags overwrites only the fields whose flags were set on
// the command line, so an untouched flag keeps the stored value. Flag
// values are read back through the FlagSet, which also knows whether
// the user actually passed each one.
func applyChangedFlags(fs *pflag.FlagSet, fields *service.ActivityFields, day time.Time) error {
	if fs.Changed("from") {
		raw, _ := fs.GetString("from")
		start, err := resolveClock(raw, day)
		if err != nil {
			return err
		}
		fields.StartTime = start
	}
	if fs.Changed("to") {
		raw, _ := fs.GetString("to")
		end, err := resolveClock(raw, day)
		if err != nil {
			return err
		}
		fields.EndTime = end
	}
	if fs.Changed("category") {
		raw, _ := fs.GetString("category")
		cat, err := resolveCategory(raw)
		if err != nil {
			return err
		}
		fields.Category = cat
	}
	if fs.Changed("priority") {
		raw, _ := fs.GetString("priority")
		prio, err := resolvePriority(raw)
		if err != nil {
			return err
		}
		fields.Priority = prio
	}
	if fs.Changed("memo") {
		raw, _ := fs.GetString("memo")
		if err := validateMemoInput(raw); err != nil {
			return err
		}
		fields.Memo = raw
	}
	return nil
}

func newRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete an activity",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := app.Activities.Delete(ctx, args[0]); err != nil {
				return err
			}

			fmt.Printf("Deleted activity %s\n", args[0])
			return nil
		},
	}

	return cmd
}
