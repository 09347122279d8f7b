package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/battsim/internal/thermal"
)

const (
	Title  = "Temperature Rise of Battery Pack Over Time"
	XLabel = "Time (hours)"
	YLabel = "Temperature (°C)"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ccff")).Bold(true)
)

// FinalLine is the one-line result printed after a successful run.
func FinalLine(duration, final float64) string {
	return fmt.Sprintf("The final temperature of the battery pack after %.1f hours is %.2f°C", duration/3600, final)
}

func Hours(seconds float64) float64 {
	return seconds / 3600
}

// Summary lists the derived constants and the heat balance at the end of the run.
func Summary(cfg thermal.Config, res *thermal.Result) string {
	pack := cfg.Pack()
	peak := res.Series.Peak()

	rows := [][2]string{
		{"integrator", res.Integrator},
		{"samples", fmt.Sprintf("%d", len(res.Series))},
		{"heat generated", fmt.Sprintf("%.4f W", res.Derived.QGenerated)},
		{"pack mass", fmt.Sprintf("%.4f kg", res.Derived.PackMass)},
		{"pack area", fmt.Sprintf("%.4f m²", res.Derived.PackArea)},
		{"heat capacity", fmt.Sprintf("%.2f J/°C", pack.HeatCapacity())},
		{"radiative loss", fmt.Sprintf("%.4f W", pack.RadiativeLoss(res.Final))},
		{"convective loss", fmt.Sprintf("%.4f W", pack.ConvectiveLoss(res.Final))},
		{"net heat", fmt.Sprintf("%.4f W", pack.NetHeat(res.Final))},
		{"peak", fmt.Sprintf("%.2f°C at %.2f h", peak.Temperature, Hours(peak.Time))},
	}
	if ss, ok := pack.SteadyState(); ok {
		rows = append(rows, [2]string{"steady state", fmt.Sprintf("%.2f°C", ss)})
	} else {
		rows = append(rows, [2]string{"steady state", "none (no loss path)"})
	}

	width := 0
	for _, r := range rows {
		if len(r[0]) > width {
			width = len(r[0])
		}
	}

	var sb strings.Builder
	for _, r := range rows {
		label := r[0] + ":" + strings.Repeat(" ", width-len(r[0])+1)
		sb.WriteString("  " + labelStyle.Render(label) + valueStyle.Render(r[1]) + "\n")
	}
	return sb.String()
}
