package charts

import (
	"fmt"

	"github.com/de-tools/report-deck/pkg/frame"
)

// TopCustomersBySales ranks customers by total sales and keeps the ten
// largest.
func TopCustomersBySales(f *frame.Frame) *Figure {
	const title = "Top 10 Customers by Total Sales"
	if f.Empty() {
		return emptyFigure(title)
	}
	top := TopN(GroupSum(f, "Name", "Total sales"), 10)
	text := make([]string, len(top))
	for i, g := range top {
		text[i] = formatUSD(g.Value)
	}
	return &Figure{
		Data: []Trace{{
			Type:         "bar",
			X:            keys(top),
			Y:            values(top),
			Text:         text,
			TextPosition: "outside",
			Marker:       &Marker{Colors: paletteColors(len(top))},
		}},
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Customer"},
			YAxis:    &Axis{Title: "Total Sales"},
			Template: templateWhite,
			Height:   550,
		},
	}
}

// SalesByTerritory is a donut of total sales per territory. Slices
// under one percent of the total fold into "Other".
func SalesByTerritory(f *frame.Frame) *Figure {
	const title = "Sales Distribution by Territory"
	if f.Empty() {
		return emptyFigure(title)
	}
	groups := GroupWithOther(GroupSum(f, "Territory", "Total sales"), 0.01)
	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Key
	}
	return &Figure{
		Data: []Trace{{
			Type:     "pie",
			Labels:   labels,
			Values:   values(groups),
			Hole:     0.3,
			TextInfo: "percent+label",
			Marker:   &Marker{Colors: paletteColors(len(groups))},
		}},
		Layout: Layout{Title: title, Height: 550},
	}
}

// SalesByPaymentTerms totals sales per payment-terms bucket.
func SalesByPaymentTerms(f *frame.Frame) *Figure {
	const title = "Sales Distribution by Payment Terms"
	if f.Empty() {
		return emptyFigure(title)
	}
	groups := GroupSum(f, "Payment terms", "Total sales")
	text := make([]string, len(groups))
	for i, g := range groups {
		text[i] = formatUSD(g.Value)
	}
	return &Figure{
		Data: []Trace{{
			Type:         "bar",
			X:            keys(groups),
			Y:            values(groups),
			Text:         text,
			TextPosition: "outside",
			Marker:       &Marker{Colors: paletteColors(len(groups))},
		}},
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Payment Terms"},
			YAxis:    &Axis{Title: "Total Sales"},
			Template: templateWhite,
			Height:   550,
		},
	}
}

// CustomerGroupsByCity is a grouped bar of client counts per city split
// by customer group.
func CustomerGroupsByCity(f *frame.Frame, title string) *Figure {
	if f.Empty() {
		return emptyFigure(title)
	}
	cities, groups, z := CrossTab(f, "Billing city", "Group", "", false)
	traces := make([]Trace, 0, len(groups))
	x := make([]any, len(cities))
	for i, c := range cities {
		x[i] = c
	}
	for j, g := range groups {
		y := make([]float64, len(cities))
		for i := range cities {
			y[i] = z[i][j]
		}
		traces = append(traces, Trace{
			Type:   "bar",
			Name:   g,
			X:      x,
			Y:      nums(y),
			Marker: &Marker{Color: paletteColor(j)},
		})
	}
	return &Figure{
		Data: traces,
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "City"},
			YAxis:    &Axis{Title: "Number of Clients"},
			Barmode:  "group",
			Template: templateWhite,
			Legend:   &Legend{Title: "Group"},
		},
	}
}

// MostFrequentCity returns the billing city with the most rows, used to
// build the "excluding busiest city" view.
func MostFrequentCity(f *frame.Frame) string {
	counts := ValueCounts(f, "Billing city")
	if len(counts) == 0 {
		return ""
	}
	return counts[0].Key
}

// CustomerGroupsExcludingCity repeats the group distribution without
// the given city.
func CustomerGroupsExcludingCity(f *frame.Frame, city string) *Figure {
	filtered := f.Filter(func(row int) bool {
		return f.Value(row, "Billing city") != city
	})
	return CustomerGroupsByCity(filtered, fmt.Sprintf("Client Group Distribution (Excluding %s)", city))
}
