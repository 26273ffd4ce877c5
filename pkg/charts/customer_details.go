package charts

import (
	"sort"

	"github.com/de-tools/report-deck/pkg/frame"
)

// OrdersAndSalesByGroup compares summed orders and sales per customer
// group as paired bars.
func OrdersAndSalesByGroup(f *frame.Frame) *Figure {
	const title = "Comparison of Total Orders and Sales by Customer Group"
	if f.Empty() {
		return emptyFigure(title)
	}
	orders := GroupSum(f, "Group", "Total orders")
	sales := GroupSum(f, "Group", "Total sales")
	show := true
	return &Figure{
		Data: []Trace{
			{
				Type:         "bar",
				Name:         "Total Orders",
				X:            keys(orders),
				Y:            values(orders),
				TextPosition: "outside",
				Marker:       &Marker{Color: "skyblue"},
			},
			{
				Type:         "bar",
				Name:         "Total Sales",
				X:            keys(sales),
				Y:            values(sales),
				TextPosition: "outside",
				Marker:       &Marker{Color: "coral"},
			},
		},
		Layout: Layout{
			Title:      title,
			Barmode:    "group",
			XAxis:      &Axis{Title: "Customer Group", TickAngle: 45},
			YAxis:      &Axis{Title: "Count/Amount"},
			ShowLegend: &show,
			Legend:     &Legend{Title: "Metrics"},
			Height:     550,
		},
	}
}

// ClientsByPaymentTerms counts clients per payment-terms bucket with a
// percentage label.
func ClientsByPaymentTerms(f *frame.Frame) *Figure {
	fig := CategoryDistribution(f, "Payment terms")
	fig.Layout.Title = "Distribution of Clients by Payment terms"
	return fig
}

// AverageSalesHeatmap maps mean total sales over customer group and
// billing state.
func AverageSalesHeatmap(f *frame.Frame) *Figure {
	const title = "Average Total Sales by Customer Group and State"
	if f.Empty() {
		return emptyFigure(title)
	}
	groups, states, z := CrossTab(f, "Group", "Billing state", "Total sales", true)
	x := make([]any, len(states))
	for i, s := range states {
		x[i] = s
	}
	y := make([]any, len(groups))
	for i, g := range groups {
		y[i] = g
	}
	return &Figure{
		Data: []Trace{{
			Type:       "heatmap",
			X:          x,
			Y:          y,
			Z:          z,
			ColorScale: "greens",
		}},
		Layout: Layout{
			Title:  title,
			XAxis:  &Axis{Title: "Billing State"},
			YAxis:  &Axis{Title: "Customer Group"},
			Height: 550,
		},
	}
}

// SalesTrendByGroup plots summed sales per customer group as a line,
// largest group first.
func SalesTrendByGroup(f *frame.Frame) *Figure {
	const title = "Total Sales Trend by Customer Group"
	if f.Empty() {
		return emptyFigure(title)
	}
	groups := GroupSum(f, "Group", "Total sales")
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value > groups[j].Value })
	return &Figure{
		Data: []Trace{{
			Type:   "scatter",
			Mode:   "lines+markers",
			Name:   "Total Sales by Customer Group",
			X:      keys(groups),
			Y:      values(groups),
			Marker: &Marker{Color: "blue"},
			Line:   &Line{Color: "blue"},
		}},
		Layout: Layout{
			Title: title,
			XAxis: &Axis{Title: "Customer Group", TickAngle: -45},
			YAxis: &Axis{Title: "Total Sales"},
		},
	}
}
