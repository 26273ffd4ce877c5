package charts

import (
	"fmt"
	"sort"

	"github.com/de-tools/report-deck/pkg/frame"
)

// LowStockByCategory is a donut of low stock item counts per category,
// folding slices under one percent into "Other".
func LowStockByCategory(f *frame.Frame) *Figure {
	const title = "Low Stock Items by Category"
	if f.Empty() {
		return emptyFigure(title)
	}
	counts := map[string]float64{}
	var order []string
	for r := 0; r < f.NumRows(); r++ {
		c := f.Value(r, "Category name")
		if _, seen := counts[c]; !seen {
			order = append(order, c)
		}
		counts[c]++
	}
	sort.Strings(order)
	groups := make([]Group, 0, len(order))
	for _, c := range order {
		groups = append(groups, Group{Key: c, Value: counts[c]})
	}
	groups = GroupWithOther(groups, 0.01)
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
		Layout: Layout{Title: title, Legend: &Legend{Title: "Category"}},
	}
}

// WholesalePriceVsQuantity scatters wholesale price against available
// cases for rows with a parsable price.
func WholesalePriceVsQuantity(f *frame.Frame) *Figure {
	const title = "Price vs. Quantity: Low-Stock Items"
	if f.Empty() {
		return emptyFigure(title)
	}
	prices, okP := f.Floats("Wholesale price")
	qty, okQ := f.Floats("Available cases (QTY)")
	var x, y []any
	for i := range prices {
		if !okP[i] || !okQ[i] {
			continue
		}
		x = append(x, prices[i])
		y = append(y, qty[i])
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
			ColorScale: "Viridis",
			Marker:     &Marker{Size: 10},
		}},
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Wholesale Price"},
			YAxis:    &Axis{Title: "Available Cases (QTY)"},
			Template: templateWhite,
		},
	}
}

// ProfitMarginByProduct bars retail minus wholesale price per product,
// largest margin first.
func ProfitMarginByProduct(f *frame.Frame) *Figure {
	const title = "Profit Margins: Low Stock Items"
	if f.Empty() {
		return emptyFigure(title)
	}
	type item struct {
		name   string
		margin float64
	}
	items := make([]item, 0, f.NumRows())
	for r := 0; r < f.NumRows(); r++ {
		retail, _ := frame.ParseNumber(f.Value(r, "Retail price"))
		wholesale, _ := frame.ParseNumber(f.Value(r, "Wholesale price"))
		items = append(items, item{f.Value(r, "Product name"), retail - wholesale})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].margin > items[j].margin })
	x := make([]any, len(items))
	y := make([]any, len(items))
	text := make([]string, len(items))
	for i, it := range items {
		x[i] = it.name
		y[i] = it.margin
		text[i] = formatUSD(it.margin)
	}
	return &Figure{
		Data: []Trace{{
			Type:       "bar",
			X:          x,
			Y:          y,
			Text:       text,
			ColorScale: "greens",
		}},
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Product Name", TickAngle: 45},
			YAxis:    &Axis{Title: "Profit Margin (in $)"},
			Template: templateWhite,
		},
	}
}

// LowStockByManufacturer counts low stock items per manufacturer.
func LowStockByManufacturer(f *frame.Frame) *Figure {
	const title = "Low Stock Items by Manufacturer"
	if f.Empty() {
		return emptyFigure(title)
	}
	counts := ValueCounts(f, "Manufacturer name")
	text := make([]string, len(counts))
	for i, g := range counts {
		text[i] = fmt.Sprintf("%.0f", g.Value)
	}
	return &Figure{
		Data: []Trace{{
			Type: "bar",
			X:    keys(counts),
			Y:    values(counts),
			Text: text,
		}},
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Manufacturer", TickAngle: 45},
			YAxis:    &Axis{Title: "Number of Low Stock Items"},
			Template: templateWhite,
			Legend:   &Legend{Title: "Manufacturer"},
		},
	}
}

// PriceVsQuantityTrend scatters wholesale price against available
// cases and overlays a least-squares trend line.
func PriceVsQuantityTrend(f *frame.Frame) *Figure {
	const title = "Price vs. Quantity Correlation"
	if f.Empty() {
		return emptyFigure(title)
	}
	prices, okP := f.Floats("Wholesale price")
	qty, okQ := f.Floats("Available cases (QTY)")
	var xs, ys []float64
	for i := range prices {
		if !okP[i] || !okQ[i] {
			continue
		}
		xs = append(xs, prices[i])
		ys = append(ys, qty[i])
	}
	if len(xs) == 0 {
		return emptyFigure(title)
	}
	traces := []Trace{{
		Type:   "scatter",
		Mode:   "markers",
		Name:   "Items",
		X:      nums(xs),
		Y:      nums(ys),
		Marker: &Marker{Color: paletteColor(0)},
	}}
	if slope, intercept, ok := linearFit(xs, ys); ok {
		minX, maxX := xs[0], xs[0]
		for _, v := range xs {
			if v < minX {
				minX = v
			}
			if v > maxX {
				maxX = v
			}
		}
		traces = append(traces, Trace{
			Type: "scatter",
			Mode: "lines",
			Name: "Trend",
			X:    []any{minX, maxX},
			Y:    []any{slope*minX + intercept, slope*maxX + intercept},
			Line: &Line{Dash: "dash"},
		})
	}
	return &Figure{
		Data: traces,
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Wholesale Price"},
			YAxis:    &Axis{Title: "Available Cases (QTY)"},
			Template: templateWhite,
		},
	}
}

// QuantityPriceRatio is a horizontal bar of available cases divided by
// retail price per product, ascending.
func QuantityPriceRatio(f *frame.Frame) *Figure {
	const title = "Quantity/Price Ratio: Low-Stock Items"
	if f.Empty() {
		return emptyFigure(title)
	}
	type item struct {
		name  string
		ratio float64
	}
	var items []item
	for r := 0; r < f.NumRows(); r++ {
		qty, okQ := frame.ParseNumber(f.Value(r, "Available cases (QTY)"))
		price, okP := frame.ParseNumber(f.Value(r, "Retail price"))
		if !okQ || !okP || price == 0 {
			continue
		}
		items = append(items, item{f.Value(r, "Product name"), qty / price})
	}
	if len(items) == 0 {
		return emptyFigure(title)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].ratio < items[j].ratio })
	x := make([]any, len(items))
	y := make([]any, len(items))
	text := make([]string, len(items))
	for i, it := range items {
		x[i] = it.ratio
		y[i] = it.name
		text[i] = fmt.Sprintf("%.2f", it.ratio)
	}
	return &Figure{
		Data: []Trace{{
			Type:         "bar",
			Orientation:  "h",
			X:            x,
			Y:            y,
			Text:         text,
			TextPosition: "outside",
			ColorScale:   "purples",
		}},
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "QTY/Price Ratio"},
			YAxis:    &Axis{Title: "Product Name"},
			Template: templateWhite,
		},
	}
}

// linearFit returns the least-squares slope and intercept of y on x.
func linearFit(xs, ys []float64) (slope, intercept float64, ok bool) {
	n := float64(len(xs))
	if n < 2 {
		return 0, 0, false
	}
	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}
	den := n*sumXX - sumX*sumX
	if den == 0 {
		return 0, 0, false
	}
	slope = (n*sumXY - sumX*sumY) / den
	intercept = (sumY - slope*sumX) / n
	return slope, intercept, true
}
