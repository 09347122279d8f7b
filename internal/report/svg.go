package report

import (
	"fmt"
	"strings"

	"github.com/san-kum/battsim/internal/thermal"
)

const gridDivisions = 5

// SVGPlot renders the series as a standalone SVG line chart with title,
// axis labels and gridlines. Time is shown in hours.
func SVGPlot(series thermal.Series, width, height int) string {
	if len(series) == 0 {
		return ""
	}

	const (
		marginLeft   = 70.0
		marginRight  = 20.0
		marginTop    = 40.0
		marginBottom = 50.0
	)
	plotW := float64(width) - marginLeft - marginRight
	plotH := float64(height) - marginTop - marginBottom

	minX, maxX := Hours(series[0].Time), Hours(series[len(series)-1].Time)
	minY, maxY := series[0].Temperature, series[0].Temperature
	for _, s := range series {
		if s.Temperature < minY {
			minY = s.Temperature
		}
		if s.Temperature > maxY {
			maxY = s.Temperature
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
		minY -= 0.5
		maxY += 0.5
	}

	px := func(x float64) float64 { return marginLeft + (x-minX)/rangeX*plotW }
	py := func(y float64) float64 { return marginTop + plotH - (y-minY)/rangeY*plotH }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<text x="%.1f" y="24" text-anchor="middle" font-family="sans-serif" font-size="16">%s</text>
`, width, height, width, height, float64(width)/2, Title))

	sb.WriteString(`<g class="grid" stroke="#dddddd" stroke-width="1">` + "\n")
	for i := 0; i <= gridDivisions; i++ {
		f := float64(i) / gridDivisions
		x := marginLeft + f*plotW
		y := marginTop + f*plotH
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", x, marginTop, x, marginTop+plotH))
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", marginLeft, y, marginLeft+plotW, y))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(`<g class="ticks" font-family="sans-serif" font-size="11" fill="#333333">` + "\n")
	for i := 0; i <= gridDivisions; i++ {
		f := float64(i) / gridDivisions
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle">%.2f</text>`+"\n",
			marginLeft+f*plotW, marginTop+plotH+16, minX+f*rangeX))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="end">%.2f</text>`+"\n",
			marginLeft-6, marginTop+plotH-f*plotH+4, minY+f*(maxY-minY)))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="13">%s</text>`+"\n",
		marginLeft+plotW/2, float64(height)-12, XLabel))
	sb.WriteString(fmt.Sprintf(`<text x="16" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="13" transform="rotate(-90 16 %.1f)">%s</text>`+"\n",
		marginTop+plotH/2, marginTop+plotH/2, YLabel))

	sb.WriteString(`<path fill="none" stroke="#1f77b4" stroke-width="2" d="M`)
	for i, s := range series {
		if i > 0 {
			sb.WriteString(" L")
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", px(Hours(s.Time)), py(s.Temperature)))
	}
	sb.WriteString(`"/>` + "\n</svg>")
	return sb.String()
}
