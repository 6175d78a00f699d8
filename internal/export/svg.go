// Package export writes growth traces in formats meant for other tools.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/corelab/internal/viz"
)

// Series is one named polyline in an SVG chart.
type Series struct {
	Name   string
	Color  string
	Values []float64
}

// GrowthSeries splits a trace into capacity and size series.
func GrowthSeries(samples []viz.GrowthSample) []Series {
	caps := make([]float64, len(samples))
	sizes := make([]float64, len(samples))
	for i, s := range samples {
		caps[i] = float64(s.Capacity)
		sizes[i] = float64(s.Size)
	}
	return []Series{
		{Name: "capacity", Color: "#00ffff", Values: caps},
		{Name: "size", Color: "#00ff88", Values: sizes},
	}
}

// SeriesToSVG draws every series against a shared y axis starting at zero.
// Capacity changes are steps, so each point is joined horizontally first.
func SeriesToSVG(series []Series, width, height int) string {
	n, top := 0, 0.0
	for _, s := range series {
		n = max(n, len(s.Values))
		for _, v := range s.Values {
			top = max(top, v)
		}
	}
	if n < 2 {
		return ""
	}
	if top == 0 {
		top = 1
	}
	top *= 1.1

	x := func(i int) float64 { return float64(i) / float64(n-1) * float64(width) }
	y := func(v float64) float64 { return float64(height) - v/top*float64(height) }

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	for _, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M%.1f,%.1f`, s.Color, x(0), y(s.Values[0]))
		for i := 1; i < len(s.Values); i++ {
			fmt.Fprintf(&sb, " L%.1f,%.1f L%.1f,%.1f", x(i), y(s.Values[i-1]), x(i), y(s.Values[i]))
		}
		fmt.Fprintf(&sb, "\"><title>%s</title></path>\n", s.Name)
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteGrowthCSV writes one row per sample: step, op, size, capacity.
func WriteGrowthCSV(w io.Writer, samples []viz.GrowthSample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "op", "size", "capacity"}); err != nil {
		return err
	}
	for i, s := range samples {
		row := []string{strconv.Itoa(i), s.Op, strconv.Itoa(s.Size), strconv.Itoa(s.Capacity)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
