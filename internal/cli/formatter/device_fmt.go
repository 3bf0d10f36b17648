package formatter

import (
	"strings"

	"github.com/ktsujino/quadlog/internal/screentime"
)

// FormatDeviceReport renders a screen-time report verbatim. Usage
// strings come pre-rendered from the device facility and pass through
// untouched.
func FormatDeviceReport(r *screentime.Report) string {
	var b strings.Builder

	rows := make([][]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		icon := e.Icon
		if icon == "" {
			icon = "·"
		}
		rows = append(rows, []string{
			StyleFg.Render(icon + " " + e.App),
			Dim(e.Category),
			StyleFg.Render(e.Usage),
		})
	}
	b.WriteString(RenderTable([]string{"APP", "CATEGORY", "USAGE"}, rows))

	if r.TotalUsage != "" {
		b.WriteString(Dim("Total: ") + Bold(r.TotalUsage) + "\n")
	}

	return RenderBox("Device Usage — "+r.Date, b.String())
}

// FormatNotAuthorized explains how to connect a screen-time export.
func FormatNotAuthorized() string {
	msg := "Screen-time access is not authorized.\n" +
		"Export a usage report from your device and point QUADLOG_SCREENTIME at the file."
	return RenderBox("Device Usage", Dim(msg))
}
