package charts

import (
	"sort"

	"github.com/de-tools/report-deck/pkg/frame"
)

// Column names in this report come capitalized, unlike the other
// inventory exports.

// UnorderedProductsByCategory counts unordered SKUs per category.
func UnorderedProductsByCategory(f *frame.Frame) *Figure {
	fig := CategoryDistribution(f, "Category Name")
	fig.Layout.Title = "Unordered Products: A Category-Based View"
	return fig
}

// StockLevelDistribution plots how many SKUs sit at each stock level.
func StockLevelDistribution(f *frame.Frame) *Figure {
	const title = "Distribution of Products by Stock Level"
	if f.Empty() || !f.HasColumn("Available Cases (QTY)") {
		return emptyFigure(title)
	}
	counts := map[float64]float64{}
	vals, ok := f.Floats("Available Cases (QTY)")
	for i, v := range vals {
		if !ok[i] {
			continue
		}
		counts[v]++
	}
	levels := make([]float64, 0, len(counts))
	for v := range counts {
		levels = append(levels, v)
	}
	if len(levels) == 0 {
		return emptyFigure(title)
	}
	sort.Float64s(levels)
	x := make([]any, len(levels))
	y := make([]any, len(levels))
	for i, v := range levels {
		x[i] = v
		y[i] = counts[v]
	}
	return &Figure{
		Data: []Trace{{
			Type:   "bar",
			X:      x,
			Y:      y,
			Marker: &Marker{Color: paletteColor(0)},
		}},
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Available Cases (QTY)"},
			YAxis:    &Axis{Title: "Number of Products"},
			Template: templateWhite,
		},
	}
}

// RetailPriceVsCasesByCategory scatters retail price against stock per
// category.
func RetailPriceVsCasesByCategory(f *frame.Frame) *Figure {
	const title = "Retail Price vs. Available Cases by Category"
	if f.Empty() {
		return emptyFigure(title)
	}
	traces := scatterByCategory(f, "Category Name", "Available Cases (QTY)", "Retail Price")
	return &Figure{
		Data: traces,
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Available Cases (QTY)"},
			YAxis:    &Axis{Title: "Retail Price"},
			Template: templateWhite,
			Legend:   &Legend{Title: "Category"},
		},
	}
}

// CasesVsProfitMargin scatters available cases against per-unit margin.
func CasesVsProfitMargin(f *frame.Frame) *Figure {
	const title = "Available Cases vs Profit Margin"
	if f.Empty() {
		return emptyFigure(title)
	}
	var x, y []any
	for r := 0; r < f.NumRows(); r++ {
		qty, okQ := frame.ParseNumber(f.Value(r, "Available Cases (QTY)"))
		retail, okR := frame.ParseNumber(f.Value(r, "Retail Price"))
		wholesale, okW := frame.ParseNumber(f.Value(r, "Wholesale Price"))
		if !okQ || !okR || !okW {
			continue
		}
		x = append(x, qty)
		y = append(y, retail-wholesale)
	}
	if len(x) == 0 {
		return emptyFigure(title)
	}
	return &Figure{
		Data: []Trace{{
			Type:   "scatter",
			Mode:   "markers",
			X:      x,
			Y:      y,
			Marker: &Marker{Color: paletteColor(2), Size: 10},
		}},
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Available Cases (QTY)"},
			YAxis:    &Axis{Title: "Profit Margin"},
			Template: templateWhite,
		},
	}
}

// WholesaleVsRetailPrice scatters the two price columns per SKU.
func WholesaleVsRetailPrice(f *frame.Frame) *Figure {
	const title = "Wholesale vs Retail Price"
	if f.Empty() {
		return emptyFigure(title)
	}
	wholesale, okW := f.Floats("Wholesale Price")
	retail, okR := f.Floats("Retail Price")
	var x, y []any
	for i := range wholesale {
		if !okW[i] || !okR[i] {
			continue
		}
		x = append(x, wholesale[i])
		y = append(y, retail[i])
	}
	if len(x) == 0 {
		return emptyFigure(title)
	}
	return &Figure{
		Data: []Trace{{
			Type:   "scatter",
			Mode:   "markers",
			X:      x,
			Y:      y,
			Marker: &Marker{Color: paletteColor(4), Size: 10},
		}},
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Wholesale Price"},
			YAxis:    &Axis{Title: "Retail Price"},
			Template: templateWhite,
		},
	}
}

var priceRanges = []struct {
	label string
	lo    float64
	hi    float64
}{
	{"$0-10", 0, 10},
	{"$10-25", 10, 25},
	{"$25-50", 25, 50},
	{"$50-100", 50, 100},
	{"$100+", 100, -1},
}

// UnorderedByCategoryAndPriceRange groups unordered SKU counts by
// category and retail price band.
func UnorderedByCategoryAndPriceRange(f *frame.Frame) *Figure {
	const title = "Unordered Products: Category and Price View"
	if f.Empty() {
		return emptyFigure(title)
	}
	counts := map[string]map[string]float64{}
	var categories []string
	for r := 0; r < f.NumRows(); r++ {
		cat := f.Value(r, "Category Name")
		price, ok := frame.ParseNumber(f.Value(r, "Retail Price"))
		if !ok {
			continue
		}
		band := priceRanges[len(priceRanges)-1].label
		for _, pr := range priceRanges {
			if pr.hi >= 0 && price >= pr.lo && price < pr.hi {
				band = pr.label
				break
			}
		}
		if counts[cat] == nil {
			counts[cat] = map[string]float64{}
			categories = append(categories, cat)
		}
		counts[cat][band]++
	}
	if len(categories) == 0 {
		return emptyFigure(title)
	}
	sort.Strings(categories)
	x := make([]any, len(categories))
	for i, c := range categories {
		x[i] = c
	}
	traces := make([]Trace, 0, len(priceRanges))
	for i, pr := range priceRanges {
		y := make([]any, len(categories))
		var nonzero bool
		for j, c := range categories {
			v := counts[c][pr.label]
			y[j] = v
			if v > 0 {
				nonzero = true
			}
		}
		if !nonzero {
			continue
		}
		traces = append(traces, Trace{
			Type:   "bar",
			Name:   pr.label,
			X:      x,
			Y:      y,
			Marker: &Marker{Color: paletteColor(i)},
		})
	}
	return &Figure{
		Data: traces,
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Category", TickAngle: 45},
			YAxis:    &Axis{Title: "Number of Products"},
			Barmode:  "group",
			Template: templateWhite,
			Legend:   &Legend{Title: "Retail Price Range"},
		},
	}
}
