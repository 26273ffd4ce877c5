package charts

import (
	"sort"

	"github.com/de-tools/report-deck/pkg/frame"
)

// TopCustomersBySalesAmount ranks customers by summed grand total.
func TopCustomersBySalesAmount(f *frame.Frame) *Figure {
	const title = "Top 10 Customers by Sales Amount"
	if f.Empty() {
		return emptyFigure(title)
	}
	top := TopN(GroupSum(f, "Customer", "Grand total"), 10)
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

// MonthlySalesTrend sums grand total per calendar month of the order
// creation date.
func MonthlySalesTrend(f *frame.Frame) *Figure {
	const title = "Monthly Sales Trend"
	months := MonthlySum(f, "Created at", "Grand total")
	if len(months) == 0 {
		return emptyFigure(title)
	}
	return &Figure{
		Data: []Trace{{
			Type: "scatter",
			Mode: "lines+markers",
			Name: "Sales Amount",
			X:    keys(months),
			Y:    values(months),
		}},
		Layout: Layout{
			Title: title,
			XAxis: &Axis{Title: "Month"},
			YAxis: &Axis{Title: "Sales Amount"},
		},
	}
}

// SalesByProduct is a pie of total sales per product, largest first.
func SalesByProduct(f *frame.Frame) *Figure {
	const title = "Total Sales by Product"
	if f.Empty() {
		return emptyFigure(title)
	}
	groups := GroupSum(f, "Product name", "Grand total")
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value > groups[j].Value })
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

// OrdersByProduct counts orders per product, ordered by each product's
// sales total so the bar order matches SalesByProduct.
func OrdersByProduct(f *frame.Frame) *Figure {
	const title = "Distribution of Orders by Product"
	if f.Empty() {
		return emptyFigure(title)
	}
	sums := GroupSum(f, "Product name", "Grand total")
	sort.SliceStable(sums, func(i, j int) bool { return sums[i].Value > sums[j].Value })
	counts := map[string]float64{}
	for r := 0; r < f.NumRows(); r++ {
		counts[f.Value(r, "Product name")]++
	}
	x := make([]any, len(sums))
	y := make([]any, len(sums))
	for i, g := range sums {
		x[i] = g.Key
		y[i] = counts[g.Key]
	}
	return &Figure{
		Data: []Trace{{
			Type:       "bar",
			X:          x,
			Y:          y,
			ColorScale: "Cividis",
		}},
		Layout: Layout{
			Title: title,
			XAxis: &Axis{Title: "Product", TickAngle: 45},
			YAxis: &Axis{Title: "Number of Orders"},
		},
	}
}

// DiscountByCustomer ranks customers by summed invoice discount.
func DiscountByCustomer(f *frame.Frame) *Figure {
	const title = "Discount Amount by Customer (Top 10)"
	if f.Empty() {
		return emptyFigure(title)
	}
	top := TopN(GroupSum(f, "Customer", "Total invoice discount"), 10)
	return &Figure{
		Data: []Trace{{
			Type:       "bar",
			X:          keys(top),
			Y:          values(top),
			ColorScale: "Pinkyl",
		}},
		Layout: Layout{
			Title: title,
			XAxis: &Axis{Title: "Customer", TickAngle: 45},
			YAxis: &Axis{Title: "Discount Amount"},
		},
	}
}

// DiscountByType is a pie of summed invoice discount per discount type.
func DiscountByType(f *frame.Frame) *Figure {
	const title = "Distribution of Discount Amount by Type"
	if f.Empty() {
		return emptyFigure(title)
	}
	groups := GroupSum(f, "Discount type", "Total invoice discount")
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value > groups[j].Value })
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

func countPie(f *frame.Frame, col, title string) *Figure {
	if f.Empty() || !f.HasColumn(col) {
		return emptyFigure(title)
	}
	counts := ValueCounts(f, col)
	labels := make([]string, len(counts))
	for i, g := range counts {
		labels[i] = g.Key
	}
	return &Figure{
		Data: []Trace{{
			Type:     "pie",
			Labels:   labels,
			Values:   values(counts),
			TextInfo: "percent+label",
		}},
		Layout: Layout{Title: title},
	}
}

// OrdersByDeliveryStatus is a pie of order counts per delivery status.
func OrdersByDeliveryStatus(f *frame.Frame) *Figure {
	return countPie(f, "Delivery status", "Distribution of Orders by Delivery Status")
}

// OrdersByDeliveryMethod is a pie of order counts per delivery method.
func OrdersByDeliveryMethod(f *frame.Frame) *Figure {
	return countPie(f, "Delivery methods", "Distribution of Orders by Delivery Method")
}

// OrdersByPaymentStatus is a pie of order counts per payment status.
func OrdersByPaymentStatus(f *frame.Frame) *Figure {
	return countPie(f, "Payment status", "Distribution of Orders by Payment Status")
}

// QuantityVsAmountByProduct scatters order quantity against grand
// total, one trace per product.
func QuantityVsAmountByProduct(f *frame.Frame) *Figure {
	const title = "Relationship between Quantity and Amount (by Product)"
	if f.Empty() {
		return emptyFigure(title)
	}
	traces := scatterByCategory(f, "Product name", "QTY", "Grand total")
	return &Figure{
		Data: traces,
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Quantity", TickAngle: 45},
			YAxis:    &Axis{Title: "Sales Amount"},
			Template: templateWhite,
		},
	}
}

// OrdersByProductAndStatus is a grouped bar of order counts per product
// split by delivery status.
func OrdersByProductAndStatus(f *frame.Frame) *Figure {
	const title = "Number of Orders by Product and Delivery Status"
	if f.Empty() {
		return emptyFigure(title)
	}
	products, statuses, z := CrossTab(f, "Product name", "Delivery status", "", false)
	x := make([]any, len(products))
	for i, p := range products {
		x[i] = p
	}
	traces := make([]Trace, 0, len(statuses))
	for j, status := range statuses {
		y := make([]float64, len(products))
		for i := range products {
			y[i] = z[i][j]
		}
		traces = append(traces, Trace{Type: "bar", Name: status, X: x, Y: nums(y)})
	}
	return &Figure{
		Data: traces,
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Product", TickAngle: 45},
			YAxis:    &Axis{Title: "Number of Orders"},
			Barmode:  "group",
			Template: templateWhite,
		},
	}
}

// scatterByCategory builds one marker trace per distinct value of
// catCol with numeric x/y columns.
func scatterByCategory(f *frame.Frame, catCol, xCol, yCol string) []Trace {
	var order []string
	byCat := map[string][]int{}
	for r := 0; r < f.NumRows(); r++ {
		c := f.Value(r, catCol)
		if _, seen := byCat[c]; !seen {
			order = append(order, c)
		}
		byCat[c] = append(byCat[c], r)
	}
	traces := make([]Trace, 0, len(order))
	for _, c := range order {
		rows := byCat[c]
		x := make([]any, 0, len(rows))
		y := make([]any, 0, len(rows))
		for _, r := range rows {
			xv, _ := frame.ParseNumber(f.Value(r, xCol))
			yv, _ := frame.ParseNumber(f.Value(r, yCol))
			x = append(x, xv)
			y = append(y, yv)
		}
		traces = append(traces, Trace{Type: "scatter", Mode: "markers", Name: c, X: x, Y: y})
	}
	return traces
}
