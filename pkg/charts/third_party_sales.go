package charts

import (
	"sort"

	"github.com/de-tools/report-deck/pkg/frame"
)

// OrderShareByProduct is a pie of order counts per product, folding
// products under two percent of orders into "Other".
func OrderShareByProduct(f *frame.Frame) *Figure {
	const title = "Total Sales by Product"
	if f.Empty() {
		return emptyFigure(title)
	}
	counts := ValueCounts(f, "Product name")
	groups := GroupWithOther(counts, 0.02)
	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Key
	}
	return &Figure{
		Data: []Trace{{
			Type:     "pie",
			Labels:   labels,
			Values:   values(groups),
			TextInfo: "percent+label",
		}},
		Layout: Layout{Title: title},
	}
}

// uniqueByColumns keeps the first row for each distinct combination of
// the given columns.
func uniqueByColumns(f *frame.Frame, cols ...string) *frame.Frame {
	seen := map[string]bool{}
	return f.Filter(func(row int) bool {
		key := ""
		for _, c := range cols {
			key += f.Value(row, c) + "\x00"
		}
		if seen[key] {
			return false
		}
		seen[key] = true
		return true
	})
}

// UniqueOrdersByProduct counts distinct orders per product.
func UniqueOrdersByProduct(f *frame.Frame) *Figure {
	const title = "Distribution of Orders by Product"
	if f.Empty() {
		return emptyFigure(title)
	}
	unique := uniqueByColumns(f, "Order Id", "Product name")
	counts := ValueCounts(unique, "Product name")
	return &Figure{
		Data: []Trace{{
			Type:       "bar",
			X:          keys(counts),
			Y:          values(counts),
			ColorScale: "Cividis",
		}},
		Layout: Layout{
			Title: title,
			XAxis: &Axis{Title: "Product", TickAngle: 45},
			YAxis: &Axis{Title: "Number of Orders"},
		},
	}
}

// TopCustomersByOrderTotals ranks customers by grand totals of their
// distinct orders.
func TopCustomersByOrderTotals(f *frame.Frame) *Figure {
	const title = "Top Customers by Sales Amount"
	if f.Empty() {
		return emptyFigure(title)
	}
	unique := uniqueByColumns(f, "Order Id")
	top := TopN(GroupSum(unique, "Customer", "Grand total"), 10)
	return &Figure{
		Data: []Trace{{
			Type:       "bar",
			X:          keys(top),
			Y:          values(top),
			ColorScale: "Bluyl",
		}},
		Layout: Layout{
			Title: title,
			XAxis: &Axis{Title: "Customer", TickAngle: 45},
			YAxis: &Axis{Title: "Sales Amount"},
		},
	}
}

// QuantityDistributionByProduct groups distinct orders by product and
// quantity, one bar trace per product, capped at 15 products.
func QuantityDistributionByProduct(f *frame.Frame) *Figure {
	const title = "Product Quantity Distribution"
	if f.Empty() {
		return emptyFigure(title)
	}
	unique := uniqueByColumns(f, "Order Id", "Product name")
	type bucket map[float64]float64
	byProduct := map[string]bucket{}
	var order []string
	for r := 0; r < unique.NumRows(); r++ {
		qty, ok := frame.ParseNumber(unique.Value(r, "QTY"))
		if !ok {
			continue
		}
		p := unique.Value(r, "Product name")
		if byProduct[p] == nil {
			byProduct[p] = bucket{}
			order = append(order, p)
		}
		byProduct[p][qty]++
	}
	if len(order) > 15 {
		order = order[:15]
	}
	traces := make([]Trace, 0, len(order))
	for _, p := range order {
		qtys := make([]float64, 0, len(byProduct[p]))
		for q := range byProduct[p] {
			qtys = append(qtys, q)
		}
		sort.Float64s(qtys)
		x := make([]any, len(qtys))
		y := make([]any, len(qtys))
		for i, q := range qtys {
			x[i] = q
			y[i] = byProduct[p][q]
		}
		traces = append(traces, Trace{Type: "bar", Name: p, X: x, Y: y})
	}
	if len(traces) == 0 {
		return emptyFigure(title)
	}
	return &Figure{
		Data: traces,
		Layout: Layout{
			Title:   title,
			XAxis:   &Axis{Title: "Quantity"},
			YAxis:   &Axis{Title: "Number of Orders"},
			Barmode: "group",
			Legend:  &Legend{Title: "Product"},
		},
	}
}

// DiscountTypeShare is a donut of row counts per discount type.
func DiscountTypeShare(f *frame.Frame) *Figure {
	const title = "Discount Type Share"
	if f.Empty() || !f.HasColumn("Discount type") {
		return emptyFigure(title)
	}
	counts := ValueCounts(f, "Discount type")
	labels := make([]string, len(counts))
	for i, g := range counts {
		labels[i] = g.Key
	}
	show := false
	return &Figure{
		Data: []Trace{{
			Type:         "pie",
			Labels:       labels,
			Values:       values(counts),
			Hole:         0.4,
			TextInfo:     "percent+label",
			TextPosition: "inside",
			Marker:       &Marker{Colors: paletteColors(len(counts))},
		}},
		Layout: Layout{Title: title, ShowLegend: &show},
	}
}

// AmountBreakdownOverRows stacks grand total and the two discount
// columns as areas over the row index.
func AmountBreakdownOverRows(f *frame.Frame) *Figure {
	const title = "Amount Breakdown Across Orders"
	if f.Empty() {
		return emptyFigure(title)
	}
	cols := []string{"Grand total", "Manufacturer specific discount", "Customer discount"}
	x := make([]any, f.NumRows())
	for i := range x {
		x[i] = i
	}
	traces := make([]Trace, 0, len(cols))
	for _, col := range cols {
		vals, ok := f.Floats(col)
		y := make([]any, len(vals))
		for i, v := range vals {
			if !ok[i] {
				y[i] = 0.0
				continue
			}
			y[i] = v
		}
		traces = append(traces, Trace{
			Type:       "scatter",
			Mode:       "lines",
			Name:       col,
			X:          x,
			Y:          y,
			StackGroup: "one",
		})
	}
	return &Figure{
		Data: traces,
		Layout: Layout{
			Title: title,
			XAxis: &Axis{Title: "Data row number"},
			YAxis: &Axis{Title: "Amount"},
		},
	}
}
