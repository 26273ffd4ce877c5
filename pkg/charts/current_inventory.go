package charts

import (
	"github.com/de-tools/report-deck/pkg/frame"
)

// inventoryValue sums available cases times wholesale price per key
// column.
func inventoryValue(f *frame.Frame, keyCol string) []Group {
	sums := map[string]float64{}
	var order []string
	for r := 0; r < f.NumRows(); r++ {
		key := f.Value(r, keyCol)
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		qty, _ := frame.ParseNumber(f.Value(r, "Available cases (QTY)"))
		price, _ := frame.ParseNumber(f.Value(r, "Wholesale price"))
		sums[key] += qty * price
	}
	out := make([]Group, 0, len(order))
	for _, k := range order {
		out = append(out, Group{Key: k, Value: sums[k]})
	}
	return out
}

func inventoryValueBar(f *frame.Frame, keyCol, axisTitle, title string) *Figure {
	if f.Empty() {
		return emptyFigure(title)
	}
	groups := inventoryValue(f, keyCol)
	traces := make([]Trace, 0, len(groups))
	show := true
	for i, g := range groups {
		traces = append(traces, Trace{
			Type:   "bar",
			Name:   g.Key,
			X:      []any{g.Key},
			Y:      []any{g.Value},
			Marker: &Marker{Color: paletteColor(i)},
		})
	}
	return &Figure{
		Data: traces,
		Layout: Layout{
			Title:      title,
			XAxis:      &Axis{Title: axisTitle},
			YAxis:      &Axis{Title: "Inventory Value"},
			ShowLegend: &show,
			Legend:     &Legend{Title: axisTitle},
		},
	}
}

// InventoryValueByCategory totals inventory value per category.
func InventoryValueByCategory(f *frame.Frame) *Figure {
	return inventoryValueBar(f, "Category name", "Category", "Inventory Value Distribution by Category")
}

// InventoryValueByManufacturer totals inventory value per manufacturer.
func InventoryValueByManufacturer(f *frame.Frame) *Figure {
	return inventoryValueBar(f, "Manufacturer name", "Manufacturer", "Inventory Value Distribution by Manufacturer")
}

// InventoryValueByProduct totals inventory value per product.
func InventoryValueByProduct(f *frame.Frame) *Figure {
	return inventoryValueBar(f, "Product name", "Product", "Inventory Value Distribution by Product")
}

// QuantityVsRetailPrice scatters available cases against retail price,
// one trace per category, marker sized by wholesale price.
func QuantityVsRetailPrice(f *frame.Frame) *Figure {
	const title = "Quantity, Price, and Category: A Multi-Factor View"
	if f.Empty() {
		return emptyFigure(title)
	}
	var order []string
	byCat := map[string][]int{}
	for r := 0; r < f.NumRows(); r++ {
		c := f.Value(r, "Category name")
		if _, seen := byCat[c]; !seen {
			order = append(order, c)
		}
		byCat[c] = append(byCat[c], r)
	}
	show := true
	traces := make([]Trace, 0, len(order))
	for i, c := range order {
		rows := byCat[c]
		x := make([]any, 0, len(rows))
		y := make([]any, 0, len(rows))
		for _, r := range rows {
			qty, _ := frame.ParseNumber(f.Value(r, "Available cases (QTY)"))
			price, _ := frame.ParseNumber(f.Value(r, "Retail price"))
			x = append(x, qty)
			y = append(y, price)
		}
		traces = append(traces, Trace{
			Type:   "scatter",
			Mode:   "markers",
			Name:   c,
			X:      x,
			Y:      y,
			Marker: &Marker{Color: paletteColor(i)},
		})
	}
	return &Figure{
		Data: traces,
		Layout: Layout{
			Title:      title,
			XAxis:      &Axis{Title: "Available Cases"},
			YAxis:      &Axis{Title: "Retail Price"},
			Template:   templateWhite,
			ShowLegend: &show,
			Legend:     &Legend{Title: "Category"},
		},
	}
}

// AverageRetailPriceDonut is a donut of mean retail price per category.
func AverageRetailPriceDonut(f *frame.Frame) *Figure {
	const title = "Average Retail Price Distribution by Category"
	if f.Empty() {
		return emptyFigure(title)
	}
	groups := GroupMean(f, "Category name", "Retail price")
	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Key
	}
	show := true
	return &Figure{
		Data: []Trace{{
			Type:     "pie",
			Labels:   labels,
			Values:   values(groups),
			Hole:     0.3,
			TextInfo: "percent+label",
			Marker:   &Marker{Colors: paletteColors(len(groups))},
		}},
		Layout: Layout{Title: title, ShowLegend: &show},
	}
}
