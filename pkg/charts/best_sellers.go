package charts

import (
	"sort"

	"github.com/de-tools/report-deck/pkg/frame"
)

// AvailableCasesByProduct scatters available case counts per product,
// colored by stock status. Negative quantities count as out of stock.
func AvailableCasesByProduct(f *frame.Frame) *Figure {
	const title = "Available Cases (QTY)"
	if f.Empty() {
		return emptyFigure(title)
	}
	qty, ok := f.Floats("Available cases (QTY)")
	names := f.Column("Product name")
	var inX, outX, inY, outY []any
	for i := range names {
		if !ok[i] {
			continue
		}
		if qty[i] < 0 {
			outX = append(outX, qty[i])
			outY = append(outY, names[i])
		} else {
			inX = append(inX, qty[i])
			inY = append(inY, names[i])
		}
	}
	var traces []Trace
	if len(inX) > 0 {
		traces = append(traces, Trace{
			Type: "scatter", Mode: "markers+text", Name: "In Stock",
			X: inX, Y: inY, TextPosition: "top center",
			Marker: &Marker{Color: "green"},
		})
	}
	if len(outX) > 0 {
		traces = append(traces, Trace{
			Type: "scatter", Mode: "markers+text", Name: "Out of Stock",
			X: outX, Y: outY, TextPosition: "top center",
			Marker: &Marker{Color: "red"},
		})
	}
	if len(traces) == 0 {
		return emptyFigure(title)
	}
	return &Figure{
		Data: traces,
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Available Cases (QTY)", TickAngle: 45},
			Template: templateWhite,
			Legend:   &Legend{Title: "Inventory Status"},
		},
	}
}

// RevenueByProduct is a donut of summed revenue per product.
func RevenueByProduct(f *frame.Frame) *Figure {
	const title = "Total Revenue by Product"
	if f.Empty() {
		return emptyFigure(title)
	}
	groups := GroupSum(f, "Product name", "Total revenue")
	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Key
	}
	return &Figure{
		Data: []Trace{{
			Type:         "pie",
			Labels:       labels,
			Values:       values(groups),
			Hole:         0.3,
			TextInfo:     "percent+label",
			TextPosition: "inside",
			Marker:       &Marker{Colors: paletteColors(len(groups))},
		}},
		Layout: Layout{Title: title},
	}
}

// CasesSoldByProduct is a horizontal funnel of summed cases sold per
// product, largest first.
func CasesSoldByProduct(f *frame.Frame) *Figure {
	const title = "Total Cases Sold by Product"
	if f.Empty() {
		return emptyFigure(title)
	}
	groups := GroupSum(f, "Product name", "Cases sold")
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value > groups[j].Value })
	y := make([]any, len(groups))
	for i, g := range groups {
		y[i] = g.Key
	}
	return &Figure{
		Data: []Trace{{
			Type:        "funnel",
			X:           values(groups),
			Y:           y,
			Orientation: "h",
			Marker:      &Marker{Colors: paletteColors(len(groups))},
		}},
		Layout: Layout{Title: title},
	}
}

// CasesVsRevenue scatters cases sold against revenue per row.
func CasesVsRevenue(f *frame.Frame) *Figure {
	const title = "Relationship between Cases Sold and Total Revenue"
	if f.Empty() {
		return emptyFigure(title)
	}
	cases, okC := f.Floats("Cases sold")
	revenue, okR := f.Floats("Total revenue")
	var x, y []any
	for i := range cases {
		if !okC[i] || !okR[i] {
			continue
		}
		x = append(x, cases[i])
		y = append(y, revenue[i])
	}
	if len(x) == 0 {
		return emptyFigure(title)
	}
	return &Figure{
		Data: []Trace{{
			Type:       "scatter",
			Mode:       "markers",
			X:          x,
			Y:          y,
			ColorScale: "Greens",
		}},
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Cases Sold"},
			YAxis:    &Axis{Title: "Total Revenue"},
			Template: templateWhite,
		},
	}
}

func averagePriceByCategory(f *frame.Frame, priceCol, title string) *Figure {
	if f.Empty() {
		return emptyFigure(title)
	}
	groups := GroupMean(f, "Category name", priceCol)
	return &Figure{
		Data: []Trace{{
			Type:   "bar",
			X:      keys(groups),
			Y:      values(groups),
			Marker: &Marker{Colors: paletteColors(len(groups))},
		}},
		Layout: Layout{
			Title: title,
			XAxis: &Axis{Title: "Category", TickAngle: 45},
			YAxis: &Axis{Title: priceCol},
		},
	}
}

// AverageWholesalePriceByCategory averages wholesale price per category.
func AverageWholesalePriceByCategory(f *frame.Frame) *Figure {
	return averagePriceByCategory(f, "Wholesale price", "Average Wholesale Price by Category")
}

// AverageRetailPriceByCategory averages retail price per category.
func AverageRetailPriceByCategory(f *frame.Frame) *Figure {
	return averagePriceByCategory(f, "Retail price", "Average Retail Price by Category")
}

// RevenueVsProfitByProduct scatters each row's revenue against its
// margin profit, one trace per product. Profit is
// (retail - wholesale) * cases sold.
func RevenueVsProfitByProduct(f *frame.Frame) *Figure {
	const title = "Total Revenue vs. Profit per Product"
	if f.Empty() {
		return emptyFigure(title)
	}
	var order []string
	byProduct := map[string][]int{}
	for r := 0; r < f.NumRows(); r++ {
		p := f.Value(r, "Product name")
		if _, seen := byProduct[p]; !seen {
			order = append(order, p)
		}
		byProduct[p] = append(byProduct[p], r)
	}
	traces := make([]Trace, 0, len(order))
	for i, p := range order {
		rows := byProduct[p]
		x := make([]any, 0, len(rows))
		y := make([]any, 0, len(rows))
		for _, r := range rows {
			revenue, _ := frame.ParseNumber(f.Value(r, "Total revenue"))
			retail, _ := frame.ParseNumber(f.Value(r, "Retail price"))
			wholesale, _ := frame.ParseNumber(f.Value(r, "Wholesale price"))
			sold, _ := frame.ParseNumber(f.Value(r, "Cases sold"))
			x = append(x, revenue)
			y = append(y, (retail-wholesale)*sold)
		}
		traces = append(traces, Trace{
			Type:   "scatter",
			Mode:   "markers",
			Name:   p,
			X:      x,
			Y:      y,
			Marker: &Marker{Color: paletteColor(i), Size: 10},
		})
	}
	return &Figure{
		Data: traces,
		Layout: Layout{
			Title:  title,
			XAxis:  &Axis{Title: "Total Revenue"},
			YAxis:  &Axis{Title: "Profit"},
			Legend: &Legend{Title: "Products"},
		},
	}
}

// RevenueByCategory is a donut of summed revenue per category.
func RevenueByCategory(f *frame.Frame) *Figure {
	const title = "Revenue Breakdown by Category"
	if f.Empty() {
		return emptyFigure(title)
	}
	groups := GroupSum(f, "Category name", "Total revenue")
	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Key
	}
	return &Figure{
		Data: []Trace{{
			Type:         "pie",
			Labels:       labels,
			Values:       values(groups),
			Hole:         0.3,
			TextInfo:     "percent+label",
			TextPosition: "inside",
			Marker:       &Marker{Colors: paletteColors(len(groups))},
		}},
		Layout: Layout{Title: title},
	}
}
