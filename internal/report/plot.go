package report

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/battsim/internal/thermal"
)

const (
	gridRow = '┈'
	gridCol = '·'
)

type PlotOptions struct {
	Width  int
	Height int
	Grid   bool
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{Width: 80, Height: 15, Grid: true}
}

// ASCIIPlot draws temperature against time for a terminal. asciigraph has no
// x axis, so the time range goes in the caption.
func ASCIIPlot(series thermal.Series, opts PlotOptions) string {
	if len(series) == 0 {
		return ""
	}

	data := series.Temperatures()
	if len(data) == 1 {
		data = append(data, data[0])
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("%s: %.2f → %.2f",
			XLabel, Hours(series[0].Time), Hours(series[len(series)-1].Time))),
	)
	if opts.Grid {
		graph = overlayGrid(graph, 3, 10)
	}

	var sb strings.Builder
	sb.WriteString(Title + "\n")
	sb.WriteString(YLabel + "\n")
	sb.WriteString(graph)
	return sb.String()
}

// overlayGrid fills blank plot cells right of the y axis with dotted lines
// every rowStep rows and colStep columns.
func overlayGrid(graph string, rowStep, colStep int) string {
	lines := strings.Split(graph, "\n")
	row := 0
	for i, line := range lines {
		runes := []rune(line)
		axis := -1
		for j, r := range runes {
			if r == '┤' || r == '┼' {
				axis = j
				break
			}
		}
		if axis < 0 {
			continue
		}
		for j := axis + 1; j < len(runes); j++ {
			if runes[j] != ' ' {
				continue
			}
			switch {
			case row%rowStep == 0:
				runes[j] = gridRow
			case (j-axis)%colStep == 0:
				runes[j] = gridCol
			}
		}
		lines[i] = string(runes)
		row++
	}
	return strings.Join(lines, "\n")
}
