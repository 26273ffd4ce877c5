package charts

import (
	"fmt"
	"sort"

	"github.com/de-tools/report-deck/pkg/frame"
)

// CategoryDistribution is the shared count-per-category bar with a
// percentage label on each bar.
func CategoryDistribution(f *frame.Frame, col string) *Figure {
	title := fmt.Sprintf("Distribution by %s", col)
	if f.Empty() || !f.HasColumn(col) {
		return emptyFigure(title)
	}
	counts := ValueCounts(f, col)
	total := float64(f.NumRows())
	text := make([]string, len(counts))
	for i, g := range counts {
		text[i] = fmt.Sprintf("%.1f%%", g.Value/total*100)
	}
	return &Figure{
		Data: []Trace{{
			Type:         "bar",
			X:            keys(counts),
			Y:            values(counts),
			Text:         text,
			TextPosition: "outside",
			Marker:       &Marker{Colors: paletteColors(len(counts))},
		}},
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: col},
			YAxis:    &Axis{Title: "Count"},
			Template: templateWhite,
			Height:   550,
		},
	}
}

// NonZeroDistribution plots how often each positive value of valCol
// occurs, folding everything above threshold into one trailing bucket.
func NonZeroDistribution(f *frame.Frame, valCol string, threshold float64) *Figure {
	if f.Empty() || !f.HasColumn(valCol) {
		return emptyFigure("Distribution of Non-Zero Values")
	}
	counts := map[float64]float64{}
	var above float64
	vals, ok := f.Floats(valCol)
	for i, v := range vals {
		if !ok[i] || v <= 0 {
			continue
		}
		if v > threshold {
			above++
			continue
		}
		counts[v]++
	}
	sorted := make([]float64, 0, len(counts))
	for v := range counts {
		sorted = append(sorted, v)
	}
	sort.Float64s(sorted)
	x := make([]any, 0, len(sorted)+1)
	y := make([]float64, 0, len(sorted)+1)
	for _, v := range sorted {
		x = append(x, v)
		y = append(y, counts[v])
	}
	if above > 0 {
		x = append(x, fmt.Sprintf("%.0f+", threshold))
		y = append(y, above)
	}
	if len(x) == 0 {
		return emptyFigure("Distribution of Non-Zero Values")
	}
	return &Figure{
		Data: []Trace{{
			Type:   "scatter",
			Mode:   "lines+markers",
			X:      x,
			Y:      nums(y),
			Marker: &Marker{Color: "blue"},
			Line:   &Line{Color: "blue"},
		}},
		Layout: Layout{
			XAxis:    &Axis{Title: fmt.Sprintf("Value of %s", valCol)},
			YAxis:    &Axis{Title: "Number of Entries"},
			Template: templateWhite,
		},
	}
}
