package charts

import (
	"fmt"
	"sort"

	"github.com/de-tools/report-deck/pkg/frame"
)

// DirectVsThirdPartySales pairs direct and 3rd party case totals per
// business.
func DirectVsThirdPartySales(f *frame.Frame) *Figure {
	const title = "Direct vs. 3rd Party Sales Performance by Business"
	if f.Empty() {
		return emptyFigure(title)
	}
	direct := GroupSum(f, "Business Name", "Cases sold (Direct)")
	third := GroupSum(f, "Business Name", "Cases sold (3rd party)")
	thirdByKey := map[string]float64{}
	for _, g := range third {
		thirdByKey[g.Key] = g.Value
	}
	x := keys(direct)
	thirdVals := make([]any, len(direct))
	directText := make([]string, len(direct))
	thirdText := make([]string, len(direct))
	for i, g := range direct {
		thirdVals[i] = thirdByKey[g.Key]
		directText[i] = fmt.Sprintf("%.0f", g.Value)
		thirdText[i] = fmt.Sprintf("%.0f", thirdByKey[g.Key])
	}
	return &Figure{
		Data: []Trace{
			{
				Type:         "bar",
				Name:         "Direct Sales",
				X:            x,
				Y:            values(direct),
				Text:         directText,
				TextPosition: "auto",
				Marker:       &Marker{Color: "rgb(55, 83, 109)"},
			},
			{
				Type:         "bar",
				Name:         "3rd Party Sales",
				X:            x,
				Y:            thirdVals,
				Text:         thirdText,
				TextPosition: "auto",
				Marker:       &Marker{Color: "rgb(255, 127, 80)"},
			},
		},
		Layout: Layout{
			Title:   title,
			XAxis:   &Axis{Title: "Business Name", TickAngle: -45},
			YAxis:   &Axis{Title: "Cases Sold"},
			Barmode: "group",
		},
	}
}

// CasesSoldOverTimeByRep lines daily case totals per rep over the
// report's date range.
func CasesSoldOverTimeByRep(f *frame.Frame) *Figure {
	const title = "Total Cases Sold Over Time by Sales Representative"
	if f.Empty() {
		return emptyFigure(title)
	}
	type key struct {
		name string
		date string
	}
	sums := map[key]float64{}
	var names []string
	nameSeen := map[string]bool{}
	for r := 0; r < f.NumRows(); r++ {
		t, ok := ParseDate(f.Value(r, "Date"))
		if !ok {
			continue
		}
		name := f.Value(r, "Name")
		if !nameSeen[name] {
			nameSeen[name] = true
			names = append(names, name)
		}
		v, _ := frame.ParseNumber(f.Value(r, "Cases sold total"))
		sums[key{name, t.Format("2006-01-02")}] += v
	}
	if len(names) == 0 {
		return emptyFigure(title)
	}
	traces := make([]Trace, 0, len(names))
	for i, name := range names {
		var dates []string
		for k := range sums {
			if k.name == name {
				dates = append(dates, k.date)
			}
		}
		sort.Strings(dates)
		x := make([]any, len(dates))
		y := make([]any, len(dates))
		for j, d := range dates {
			x[j] = d
			y[j] = sums[key{name, d}]
		}
		traces = append(traces, Trace{
			Type:   "scatter",
			Mode:   "lines+markers",
			Name:   name,
			X:      x,
			Y:      y,
			Marker: &Marker{Size: 8, Color: paletteColor(i)},
			Line:   &Line{Width: 2},
		})
	}
	return &Figure{
		Data: traces,
		Layout: Layout{
			Title:  title,
			XAxis:  &Axis{Title: "Date"},
			YAxis:  &Axis{Title: "Total Cases Sold"},
			Legend: &Legend{Title: "Sales Representative"},
		},
	}
}
