package charts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/de-tools/report-deck/pkg/frame"
)

// InventoryDepletionByBusiness stacks the twelve largest product
// quantity columns per business. Zip code columns carry numbers but
// are not quantities, so they are excluded.
func InventoryDepletionByBusiness(f *frame.Frame) *Figure {
	const title = "Top 12 Inventory Depletion by Business"
	if f.Empty() || !f.HasColumn("Business name") {
		return emptyFigure(title)
	}
	type colSum struct {
		name string
		sum  float64
	}
	var sums []colSum
	for _, col := range f.Columns() {
		if col == "Business name" || strings.Contains(strings.ToLower(col), "zip") {
			continue
		}
		vals, ok := f.Floats(col)
		var total float64
		numeric := false
		for i, v := range vals {
			if ok[i] {
				numeric = true
				total += v
			}
		}
		if numeric {
			sums = append(sums, colSum{col, total})
		}
	}
	if len(sums) == 0 {
		return emptyFigure(title)
	}
	sort.SliceStable(sums, func(i, j int) bool { return sums[i].sum > sums[j].sum })
	if len(sums) > 12 {
		sums = sums[:12]
	}
	businesses := f.Column("Business name")
	x := make([]any, len(businesses))
	for i, b := range businesses {
		x[i] = b
	}
	traces := make([]Trace, 0, len(sums))
	for ti, cs := range sums {
		vals, ok := f.Floats(cs.name)
		y := make([]any, len(vals))
		text := make([]string, len(vals))
		for i, v := range vals {
			if !ok[i] {
				v = 0
			}
			y[i] = v
			text[i] = fmt.Sprintf("%.0f", v)
		}
		traces = append(traces, Trace{
			Type:         "bar",
			Name:         cs.name,
			X:            x,
			Y:            y,
			Text:         text,
			TextPosition: "auto",
			Marker:       &Marker{Color: paletteColor(ti)},
		})
	}
	return &Figure{
		Data: traces,
		Layout: Layout{
			Title:   title,
			XAxis:   &Axis{Title: "Business Name", TickAngle: -45},
			YAxis:   &Axis{Title: "Quantity"},
			Barmode: "stack",
		},
	}
}
