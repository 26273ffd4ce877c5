package charts

import (
	"fmt"
	"sort"

	"github.com/de-tools/report-deck/pkg/frame"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// monthlyByRole buckets summed revenue by calendar month number and
// role. Months come back sorted.
func monthlyByRole(f *frame.Frame) (months []int, roles []string, z map[string]map[int]float64) {
	z = map[string]map[int]float64{}
	monthSeen := map[int]bool{}
	roleSeen := map[string]bool{}
	for r := 0; r < f.NumRows(); r++ {
		t, ok := ParseDate(f.Value(r, "Date"))
		if !ok {
			continue
		}
		m := int(t.Month())
		role := f.Value(r, "Role")
		if !monthSeen[m] {
			monthSeen[m] = true
			months = append(months, m)
		}
		if !roleSeen[role] {
			roleSeen[role] = true
			roles = append(roles, role)
		}
		if z[role] == nil {
			z[role] = map[int]float64{}
		}
		v, _ := frame.ParseNumber(f.Value(r, "Total revenue"))
		z[role][m] += v
	}
	sort.Ints(months)
	sort.Strings(roles)
	return months, roles, z
}

// RevenueByMonthAndRole stacks monthly revenue per role.
func RevenueByMonthAndRole(f *frame.Frame) *Figure {
	const title = "Revenue Trends: Monthly Performance by Role"
	months, roles, z := monthlyByRole(f)
	if len(months) == 0 {
		return emptyFigure(title)
	}
	x := make([]any, len(months))
	for i, m := range months {
		x[i] = monthNames[m-1]
	}
	traces := make([]Trace, 0, len(roles))
	for i, role := range roles {
		y := make([]any, len(months))
		for j, m := range months {
			y[j] = z[role][m]
		}
		traces = append(traces, Trace{
			Type:   "bar",
			Name:   role,
			X:      x,
			Y:      y,
			Marker: &Marker{Color: paletteColor(i)},
		})
	}
	return &Figure{
		Data: traces,
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Month"},
			YAxis:    &Axis{Title: "Total Revenue"},
			Barmode:  "stack",
			Template: templateWhite,
			Legend:   &Legend{Title: "Role"},
		},
	}
}

// RevenueTrendByMonthAndRole draws the same monthly totals as lines.
func RevenueTrendByMonthAndRole(f *frame.Frame) *Figure {
	const title = "Revenue Trend by Month and Role"
	months, roles, z := monthlyByRole(f)
	if len(months) == 0 {
		return emptyFigure(title)
	}
	x := make([]any, len(months))
	for i, m := range months {
		x[i] = monthNames[m-1][:3]
	}
	traces := make([]Trace, 0, len(roles))
	for i, role := range roles {
		y := make([]any, len(months))
		for j, m := range months {
			y[j] = z[role][m]
		}
		traces = append(traces, Trace{
			Type:   "scatter",
			Mode:   "lines+markers",
			Name:   role,
			X:      x,
			Y:      y,
			Marker: &Marker{Color: paletteColor(i)},
		})
	}
	return &Figure{
		Data: traces,
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Month"},
			YAxis:    &Axis{Title: "Total Revenue"},
			Template: templateWhite,
			Legend:   &Legend{Title: "Role"},
		},
	}
}

// CasesSoldByDayOfWeek counts report rows per weekday of the Date
// column, Monday first.
func CasesSoldByDayOfWeek(f *frame.Frame) *Figure {
	const title = "Cases Sold by Day of the Week"
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	counts := map[int]float64{}
	for r := 0; r < f.NumRows(); r++ {
		t, ok := ParseDate(f.Value(r, "Date"))
		if !ok {
			continue
		}
		// time.Weekday starts at Sunday.
		idx := (int(t.Weekday()) + 6) % 7
		counts[idx]++
	}
	if len(counts) == 0 {
		return emptyFigure(title)
	}
	var x []any
	var y []any
	for i := 0; i < 7; i++ {
		if _, ok := counts[i]; !ok {
			continue
		}
		x = append(x, days[i])
		y = append(y, counts[i])
	}
	return &Figure{
		Data: []Trace{{
			Type:   "scatter",
			Mode:   "lines+markers",
			Name:   "Cases Sold",
			X:      x,
			Y:      y,
			Line:   &Line{Color: "#636EFA", Width: 2},
			Marker: &Marker{Color: "#636EFA", Size: 8},
		}},
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Day of the Week"},
			YAxis:    &Axis{Title: "Cases Sold"},
			Template: templateWhite,
		},
	}
}

// VisitsAndTravelByName pairs summed visits and travel miles per rep.
func VisitsAndTravelByName(f *frame.Frame) *Figure {
	const title = "Individual Performance: Visits and Travel"
	if f.Empty() {
		return emptyFigure(title)
	}
	visitSums := map[string]float64{}
	distSums := map[string]float64{}
	var names []string
	seen := map[string]bool{}
	for r := 0; r < f.NumRows(); r++ {
		name := f.Value(r, "Name")
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		v, _ := frame.ParseNumber(f.Value(r, "Visits"))
		visitSums[name] += v
		distSums[name] += ParseDistance(f.Value(r, "Travel distance"))
	}
	sort.Strings(names)
	x := make([]any, len(names))
	visits := make([]any, len(names))
	dist := make([]any, len(names))
	visitText := make([]string, len(names))
	distText := make([]string, len(names))
	for i, n := range names {
		x[i] = n
		visits[i] = visitSums[n]
		dist[i] = distSums[n]
		visitText[i] = fmt.Sprintf("%.2f", visitSums[n])
		distText[i] = fmt.Sprintf("%.2f", distSums[n])
	}
	return &Figure{
		Data: []Trace{
			{Type: "bar", Name: "Visits", X: x, Y: visits, Text: visitText, TextPosition: "auto"},
			{Type: "bar", Name: "Travel distance", X: x, Y: dist, Text: distText, TextPosition: "auto"},
		},
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Name", TickAngle: 45},
			YAxis:    &Axis{Title: "Count / Distance"},
			Barmode:  "group",
			Template: templateWhite,
			Legend:   &Legend{Title: "Metrics"},
		},
	}
}

// RevenueAndConversionByRep overlays summed revenue bars per rep with
// an orders-per-visit conversion rate line on a secondary axis.
func RevenueAndConversionByRep(f *frame.Frame) *Figure {
	const title = "Total Revenue and Conversion Rate by Representative"
	if f.Empty() {
		return emptyFigure(title)
	}
	revenue := GroupSum(f, "Name", "Total revenue")
	visits := GroupSum(f, "Name", "Visits")
	orders := GroupSum(f, "Name", "Orders total")
	visitByName := map[string]float64{}
	for _, g := range visits {
		visitByName[g.Key] = g.Value
	}
	orderByName := map[string]float64{}
	for _, g := range orders {
		orderByName[g.Key] = g.Value
	}
	x := keys(revenue)
	conv := make([]any, len(revenue))
	revText := make([]string, len(revenue))
	for i, g := range revenue {
		rate := 0.0
		if v := visitByName[g.Key]; v != 0 {
			rate = orderByName[g.Key] / v * 100
		}
		conv[i] = rate
		revText[i] = fmt.Sprintf("%.2f", g.Value)
	}
	return &Figure{
		Data: []Trace{
			{
				Type:         "bar",
				Name:         "Total Revenue",
				X:            x,
				Y:            values(revenue),
				Text:         revText,
				TextPosition: "auto",
				Marker:       &Marker{Color: "rgb(55, 83, 109)"},
			},
			{
				Type:   "scatter",
				Mode:   "lines+markers",
				Name:   "Conversion Rate (%)",
				X:      x,
				Y:      conv,
				YAxis:  "y2",
				Marker: &Marker{Color: "rgb(255, 77, 77)", Size: 8},
				Line:   &Line{Color: "rgb(255, 77, 77)", Width: 2},
			},
		},
		Layout: Layout{
			Title:   title,
			XAxis:   &Axis{Title: "Representative", TickAngle: -45},
			YAxis:   &Axis{Title: "Total Revenue"},
			YAxis2:  &Axis{Title: "Conversion Rate (%)", Overlaying: "y", Side: "right"},
			Barmode: "group",
		},
	}
}

// RevenueAndOrdersByRole overlays summed revenue bars per role with a
// total orders line on a secondary axis.
func RevenueAndOrdersByRole(f *frame.Frame) *Figure {
	const title = "Total Revenue and Orders by Role"
	if f.Empty() {
		return emptyFigure(title)
	}
	revenue := GroupSum(f, "Role", "Total revenue")
	orders := GroupSum(f, "Role", "Orders total")
	orderByRole := map[string]float64{}
	for _, g := range orders {
		orderByRole[g.Key] = g.Value
	}
	x := keys(revenue)
	orderVals := make([]any, len(revenue))
	revText := make([]string, len(revenue))
	for i, g := range revenue {
		orderVals[i] = orderByRole[g.Key]
		revText[i] = fmt.Sprintf("%.2f", g.Value)
	}
	return &Figure{
		Data: []Trace{
			{
				Type:         "bar",
				Name:         "Total Revenue",
				X:            x,
				Y:            values(revenue),
				Text:         revText,
				TextPosition: "auto",
				Marker:       &Marker{Color: "rgb(55, 83, 109)"},
			},
			{
				Type:   "scatter",
				Mode:   "lines+markers",
				Name:   "Total Orders",
				X:      x,
				Y:      orderVals,
				YAxis:  "y2",
				Marker: &Marker{Color: "rgb(255, 127, 80)", Size: 8},
				Line:   &Line{Color: "rgb(255, 127, 80)", Width: 2},
			},
		},
		Layout: Layout{
			Title:   title,
			XAxis:   &Axis{Title: "Role", TickAngle: -45},
			YAxis:   &Axis{Title: "Total Revenue"},
			YAxis2:  &Axis{Title: "Total Orders", Overlaying: "y", Side: "right"},
			Barmode: "group",
		},
	}
}
