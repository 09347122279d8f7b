package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/battsim/internal/report"
	"github.com/san-kum/battsim/internal/thermal"
)

const (
	minPlotWidth  = 20
	minPlotHeight = 5

	// columns taken by asciigraph's y labels and the panel border
	plotMarginX = 16
	// rows taken by header, labels, caption, cursor line and hints
	plotMarginY = 12
)

// Viewer is a read-only bubbletea model showing a finished run.
type Viewer struct {
	series   thermal.Series
	footer   string
	opts     report.PlotOptions
	cursor   int
	width    int
	height   int
	quitting bool
}

func NewViewer(series thermal.Series, footer string) Viewer {
	return Viewer{
		series: series,
		footer: footer,
		opts:   report.DefaultPlotOptions(),
		width:  80 + plotMarginX,
		height: 15 + plotMarginY,
	}
}

func (v Viewer) Init() tea.Cmd { return nil }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.opts.Width = max(msg.Width-plotMarginX, minPlotWidth)
		v.opts.Height = max(msg.Height-plotMarginY, minPlotHeight)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			v.quitting = true
			return v, tea.Quit
		case "g":
			v.opts.Grid = !v.opts.Grid
		case "left", "h":
			v.cursor = max(v.cursor-v.cursorStep(), 0)
		case "right", "l":
			v.cursor = min(v.cursor+v.cursorStep(), len(v.series)-1)
		case "home":
			v.cursor = 0
		case "end":
			v.cursor = len(v.series) - 1
		}
	}
	return v, nil
}

func (v Viewer) cursorStep() int {
	return max(len(v.series)/50, 1)
}

func (v Viewer) View() string {
	if v.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(report.Title))
	sb.WriteString("\n")
	sb.WriteString(GlassPanel.Render(report.ASCIIPlot(v.series, v.opts)))
	sb.WriteString("\n")

	if len(v.series) > 0 {
		s := v.series[v.cursor]
		sb.WriteString(fmt.Sprintf("%s %s  %s %s\n",
			MetricLabel.Render("t ="), MetricValue.Render(fmt.Sprintf("%.3f h", report.Hours(s.Time))),
			MetricLabel.Render("T ="), MetricValue.Render(fmt.Sprintf("%.2f°C", s.Temperature))))
	}
	if v.footer != "" {
		sb.WriteString(Subtle.Render(v.footer))
		sb.WriteString("\n")
	}
	sb.WriteString(KeyHint.Render("←/→ move cursor • g toggle grid • q quit"))
	return sb.String()
}

// Run blocks until the user closes the viewer.
func Run(series thermal.Series, footer string) error {
	p := tea.NewProgram(NewViewer(series, footer), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
