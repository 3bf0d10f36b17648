package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ktsujino/quadlog/internal/cli/formatter"
	"github.com/ktsujino/quadlog/internal/contract"
)

// ── messages ─────────────────────────────────────────────────────────────────

// dayLoadedMsg signals that a day's report has been loaded.
type dayLoadedMsg struct {
	report *contract.DayReport
	err    error
}

// ── key map ──────────────────────────────────────────────────────────────────

type timelineKeyMap struct {
	PrevDay key.Binding
	NextDay key.Binding
	Today   key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultTimelineKeys() timelineKeyMap {
	return timelineKeyMap{
		PrevDay: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev day")),
		NextDay: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next day")),
		Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k timelineKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.Today, k.Refresh, k.Quit}
}

func (k timelineKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ── model ────────────────────────────────────────────────────────────────────

// timelineModel is an interactive day browser: the selected day's
// timeline plus its quick stats, navigable with the arrow keys.
type timelineModel struct {
	app     *App
	date    time.Time
	report  *contract.DayReport
	loading bool
	err     error

	keys timelineKeyMap
	help help.Model
}

func newTimelineModel(app *App, date time.Time) timelineModel {
	return timelineModel{
		app:     app,
		date:    date,
		loading: true,
		keys:    defaultTimelineKeys(),
		help:    help.New(),
	}
}

func (m timelineModel) Init() tea.Cmd {
	return m.loadDay()
}

func (m timelineModel) loadDay() tea.Cmd {
	app, date := m.app, m.date
	return func() tea.Msg {
		report, err := app.Reports.DayReport(context.Background(), contract.DayReportRequest{Date: date})
		return dayLoadedMsg{report: report, err: err}
	}
}

// shiftDay moves the selected day and marks the model loading. Pure
// state transition; the caller pairs it with loadDay.
func (m timelineModel) shiftDay(days int) timelineModel {
	m.date = m.date.AddDate(0, 0, days)
	m.loading = true
	return m
}

func (m timelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dayLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.report = msg.report
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevDay):
			m = m.shiftDay(-1)
			return m, m.loadDay()
		case key.Matches(msg, m.keys.NextDay):
			m = m.shiftDay(1)
			return m, m.loadDay()
		case key.Matches(msg, m.keys.Today):
			m.date = time.Now()
			m.loading = true
			return m, m.loadDay()
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.loadDay()
		}
	}
	return m, nil
}

func (m timelineModel) View() string {
	header := formatter.Header("Timeline — " + formatter.HumanDate(m.date))

	var body string
	switch {
	case m.loading:
		body = formatter.Dim("Loading…") + "\n"
	case m.err != nil:
		body = formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	case m.report != nil:
		body = formatter.FormatTimeline(m.report.Activities)
	}

	return header + "\n" + body + "\n" + m.help.View(m.keys) + "\n"
}
