package charts

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	exportWidth  = 900
	exportHeight = 560
)

// ExportPNG renders a figure's first trace group as a static PNG.
// Plotly figures are richer than what go-chart can express, so the
// export is a best-effort snapshot: pies keep their slices, bars keep
// their categories, everything else becomes a line or point series
// over positional X.
func ExportPNG(fig *Figure, w io.Writer) error {
	if fig == nil || len(fig.Data) == 0 {
		return fmt.Errorf("export: figure has no traces")
	}
	switch fig.Data[0].Type {
	case "pie":
		return exportPie(fig, w)
	case "bar", "funnel":
		return exportBar(fig, w)
	default:
		return exportSeries(fig, w)
	}
}

func exportPie(fig *Figure, w io.Writer) error {
	t := fig.Data[0]
	var values []chart.Value
	for i, label := range t.Labels {
		if i >= len(t.Values) {
			break
		}
		v, ok := asFloat(t.Values[i])
		if !ok || v <= 0 {
			continue
		}
		values = append(values, chart.Value{Label: label, Value: v})
	}
	if len(values) == 0 {
		return fmt.Errorf("export: pie trace has no positive values")
	}
	pie := chart.PieChart{
		Title:  fig.Layout.Title,
		Width:  exportWidth,
		Height: exportHeight,
		Values: values,
	}
	return pie.Render(chart.PNG, w)
}

func exportBar(fig *Figure, w io.Writer) error {
	t := fig.Data[0]
	xs, ys := t.X, t.Y
	if t.Orientation == "h" {
		xs, ys = t.Y, t.X
	}
	var bars []chart.Value
	for i := range xs {
		if i >= len(ys) {
			break
		}
		v, ok := asFloat(ys[i])
		if !ok {
			continue
		}
		bars = append(bars, chart.Value{Label: asLabel(xs[i]), Value: v})
	}
	if len(bars) == 0 {
		return fmt.Errorf("export: bar trace has no numeric values")
	}
	bc := chart.BarChart{
		Title:      fig.Layout.Title,
		Width:      exportWidth,
		Height:     exportHeight,
		BarWidth:   40,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Bars:       bars,
	}
	return bc.Render(chart.PNG, w)
}

func exportSeries(fig *Figure, w io.Writer) error {
	var series []chart.Series
	for i, t := range fig.Data {
		xs, ys := seriesPoints(t)
		if len(xs) == 0 {
			continue
		}
		// go-chart refuses single-point ranges, pad with a duplicate.
		if len(xs) == 1 {
			xs = append(xs, xs[0]+1)
			ys = append(ys, ys[0])
		}
		st := chart.Style{StrokeColor: exportColor(i)}
		if t.Mode == "markers" {
			st = chart.Style{StrokeWidth: 0, DotWidth: 4, DotColor: exportColor(i)}
		}
		series = append(series, chart.ContinuousSeries{
			Name:    t.Name,
			XValues: xs,
			YValues: ys,
			Style:   st,
		})
	}
	if len(series) == 0 {
		return fmt.Errorf("export: no renderable series in figure")
	}
	ch := chart.Chart{
		Title:      fig.Layout.Title,
		Width:      exportWidth,
		Height:     exportHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 24}},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, w)
}

// seriesPoints pairs a trace's axes as float points. Categorical X
// values collapse to their positional index.
func seriesPoints(t Trace) ([]float64, []float64) {
	var xs, ys []float64
	for i := range t.Y {
		y, ok := asFloat(t.Y[i])
		if !ok {
			continue
		}
		x := float64(i)
		if i < len(t.X) {
			if xv, ok := asFloat(t.X[i]); ok {
				x = xv
			}
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func asLabel(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if f, ok := asFloat(v); ok {
		return fmt.Sprintf("%g", f)
	}
	return fmt.Sprint(v)
}

var exportColors = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorRed,
	chart.ColorOrange,
	chart.ColorAlternateGray,
	chart.ColorCyan,
}

func exportColor(i int) drawing.Color {
	return exportColors[i%len(exportColors)]
}
