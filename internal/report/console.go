package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/maxvaer/webrecon/internal/normalize"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00D26A")).
		Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF3838")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// PrintConsole renders every tool's normalized output as a titled section,
// followed by a one-line-per-tool summary. With noColor all styling is
// dropped.
func PrintConsole(w io.Writer, results []normalize.ScanResult, noColor bool) {
	for _, r := range results {
		fmt.Fprintf(w, "\n%s %s\n", renderTitle(r.Tool, noColor), renderStatus(r.OK, noColor))
		body := r.Output
		if body == "" {
			body = renderMuted("(no findings)", noColor)
		}
		for _, line := range strings.Split(body, "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	fmt.Fprintf(w, "\n%s\n", renderTitle("Summary", noColor))
	for _, r := range results {
		fmt.Fprintf(w, "  %-10s %s\n", r.Tool, renderStatus(r.OK, noColor))
	}
}

func renderTitle(s string, noColor bool) string {
	if noColor {
		return "== " + s + " =="
	}
	return titleStyle.Render(s)
}

func renderStatus(ok, noColor bool) string {
	if ok {
		if noColor {
			return "[ok]"
		}
		return okStyle.Render("[ok]")
	}
	if noColor {
		return "[failed]"
	}
	return failStyle.Render("[failed]")
}

func renderMuted(s string, noColor bool) string {
	if noColor {
		return s
	}
	return mutedStyle.Render(s)
}
