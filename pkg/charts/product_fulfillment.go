package charts

import (
	"fmt"
	"sort"

	"github.com/de-tools/report-deck/pkg/frame"
)

// DeliveredVsReturnedPerRep pairs fulfilled delivery and return
// quantities per fulfilling rep.
func DeliveredVsReturnedPerRep(f *frame.Frame) *Figure {
	const title = "Quantity Delivered and Returned per Sales Representative"
	fulfilled := f.Filter(func(row int) bool {
		return f.Value(row, "Delivery Status") == "FULFILLED"
	})
	if fulfilled.Empty() {
		return emptyFigure(title)
	}
	delivered := map[string]float64{}
	returned := map[string]float64{}
	var reps []string
	seen := map[string]bool{}
	for r := 0; r < fulfilled.NumRows(); r++ {
		rep := fulfilled.Value(r, "Fulfilled By")
		qty, _ := frame.ParseNumber(fulfilled.Value(r, "QTY"))
		switch fulfilled.Value(r, "Type") {
		case "Delivery":
			delivered[rep] += qty
		case "Return":
			returned[rep] += qty
		default:
			continue
		}
		if !seen[rep] {
			seen[rep] = true
			reps = append(reps, rep)
		}
	}
	if len(reps) == 0 {
		return emptyFigure(title)
	}
	sort.Strings(reps)
	x := make([]any, len(reps))
	dy := make([]any, len(reps))
	ry := make([]any, len(reps))
	dText := make([]string, len(reps))
	rText := make([]string, len(reps))
	for i, rep := range reps {
		x[i] = rep
		dy[i] = delivered[rep]
		ry[i] = returned[rep]
		dText[i] = fmt.Sprintf("%.2f", delivered[rep])
		rText[i] = fmt.Sprintf("%.2f", returned[rep])
	}
	return &Figure{
		Data: []Trace{
			{
				Type:         "bar",
				Name:         "Delivered",
				X:            x,
				Y:            dy,
				Text:         dText,
				TextPosition: "auto",
				Marker:       &Marker{Color: "rgb(55, 83, 109)"},
			},
			{
				Type:         "bar",
				Name:         "Returned",
				X:            x,
				Y:            ry,
				Text:         rText,
				TextPosition: "auto",
				Marker:       &Marker{Color: "rgb(255, 127, 80)"},
			},
		},
		Layout: Layout{
			Title:   title,
			XAxis:   &Axis{Title: "Sales Representative", TickAngle: -45},
			YAxis:   &Axis{Title: "Total Quantity"},
			Barmode: "group",
		},
	}
}

// QuantitySoldOverTime lines monthly fulfilled delivery quantity.
func QuantitySoldOverTime(f *frame.Frame) *Figure {
	const title = "Total Quantity Sold Over Time"
	filtered := f.Filter(func(row int) bool {
		return f.Value(row, "Type") == "Delivery" &&
			f.Value(row, "Delivery Status") == "FULFILLED"
	})
	months := MonthlySum(filtered, "Fulfill Date", "QTY")
	if len(months) == 0 {
		return emptyFigure(title)
	}
	return &Figure{
		Data: []Trace{{
			Type:   "scatter",
			Mode:   "lines+markers",
			Name:   "Quantity Sold",
			X:      keys(months),
			Y:      values(months),
			Line:   &Line{Color: "rgb(55, 83, 109)"},
			Marker: &Marker{Size: 8},
		}},
		Layout: Layout{
			Title: title,
			XAxis: &Axis{Title: "Month", TickAngle: -45},
			YAxis: &Axis{Title: "Total Quantity Sold"},
		},
	}
}
