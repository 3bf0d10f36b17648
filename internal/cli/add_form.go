package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/ktsujino/quadlog/internal/cli/formatter"
	"github.com/ktsujino/quadlog/internal/domain"
	"github.com/ktsujino/quadlog/internal/service"
)

// quadlogHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func quadlogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// categorySelect builds the category picker with icon+label options.
func categorySelect(value *string) *huh.Select[string] {
	options := make([]huh.Option[string], 0, len(domain.AllCategories))
	for _, c := range domain.AllCategories {
		options = append(options, huh.NewOption(c.Icon()+" "+c.Label(), string(c)))
	}
	return huh.NewSelect[string]().
		Title("Category").
		Options(options...).
		Value(value)
}

// prioritySelect builds the quadrant picker.
func prioritySelect(value *string) *huh.Select[string] {
	options := make([]huh.Option[string], 0, len(domain.AllPriorities))
	for _, p := range domain.AllPriorities {
		label := fmt.Sprintf("Q%d — %s", p.Quadrant(), p.Label())
		options = append(options, huh.NewOption(label, string(p)))
	}
	return huh.NewSelect[string]().
		Title("Priority").
		Options(options...).
		Value(value)
}

// runAddForm collects a new activity interactively. The end-time field
// refuses values at or before the start time, so the form cannot save a
// zero or negative duration; the model underneath would accept one.
func runAddForm(ctx context.Context, app *App) error {
	now := time.Now()
	start := now.Add(-time.Hour).Format(clockLayout)
	end := now.Format(clockLayout)
	category := string(domain.CategoryLife)
	priority := string(domain.PriorityNotImportantNotUrgent)
	var memo string

	form := huh.NewForm(
		huh.NewGroup(
			categorySelect(&category),
			prioritySelect(&priority),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Start (HH:MM)").
				Placeholder(start).
				Value(&start).
				Validate(validateClockInput),
			huh.NewInput().
				Title("End (HH:MM)").
				Placeholder(end).
				Value(&end).
				Validate(func(s string) error {
					if err := validateClockInput(s); err != nil {
						return err
					}
					startAt, err := resolveClock(start, now)
					if err != nil {
						return err
					}
					endAt, err := resolveClock(s, now)
					if err != nil {
						return err
					}
					if !startAt.Before(endAt) {
						return fmt.Errorf("end must be after start")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Memo (optional)").
				CharLimit(memoMaxLen).
				Value(&memo),
		),
	).WithTheme(quadlogHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	startAt, err := resolveClock(start, now)
	if err != nil {
		return err
	}
	endAt, err := resolveClock(end, now)
	if err != nil {
		return err
	}

	fields := service.ActivityFields{
		StartTime: startAt,
		EndTime:   endAt,
		Memo:      memo,
		Category:  domain.ParseCategory(category),
		Priority:  domain.ParsePriority(priority),
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
}
