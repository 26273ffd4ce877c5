package charts

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/de-tools/report-deck/pkg/frame"
)

var (
	hoursMinutesRe = regexp.MustCompile(`^(\d+)h\s*(\d+)m?`)
	minutesOnlyRe  = regexp.MustCompile(`^(\d+)m`)
	leadingNumRe   = regexp.MustCompile(`(\d+\.?\d*)`)
)

// ParseWorkHours converts "7h 30m" (or "45m") durations to fractional
// hours. Anything else parses as zero.
func ParseWorkHours(s string) float64 {
	if m := hoursMinutesRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		return float64(h) + float64(min)/60
	}
	if m := minutesOnlyRe.FindStringSubmatch(s); m != nil {
		min, _ := strconv.Atoi(m[1])
		return float64(min) / 60
	}
	return 0
}

// ParseDistance pulls the numeric part out of "12.5 mi" style values.
func ParseDistance(s string) float64 {
	if m := leadingNumRe.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return v
	}
	return 0
}

// VisitsByRole is a donut of total visits per rep role.
func VisitsByRole(f *frame.Frame) *Figure {
	const title = "Visit Distribution: Understanding Role Contributions"
	if f.Empty() {
		return emptyFigure(title)
	}
	groups := GroupSum(f, "Role", "Total visits")
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
		Layout: Layout{Title: title},
	}
}

// ActiveCustomersVsVisits scatters active customers against visits for
// reps with the SALES role, one trace per rep.
func ActiveCustomersVsVisits(f *frame.Frame) *Figure {
	const title = "Active Customers vs. Total Visits (Sales Reps)"
	sales := f.Filter(func(row int) bool { return f.Value(row, "Role") == "SALES" })
	if sales.Empty() {
		return emptyFigure(title)
	}
	traces := scatterByCategory(sales, "Name", "Active customers", "Total visits")
	for i := range traces {
		traces[i].Marker = &Marker{Size: 10, Color: paletteColor(i)}
	}
	return &Figure{
		Data: traces,
		Layout: Layout{
			Title:  title,
			XAxis:  &Axis{Title: "Active Customers"},
			YAxis:  &Axis{Title: "Total Visits"},
			Legend: &Legend{Title: "Name"},
		},
	}
}

// TravelDistanceVsVisits scatters travel distance against visits, one
// trace per role.
func TravelDistanceVsVisits(f *frame.Frame) *Figure {
	const title = "Travel Efficiency: Distance vs. Visits"
	if f.Empty() {
		return emptyFigure(title)
	}
	var order []string
	byRole := map[string][]int{}
	for r := 0; r < f.NumRows(); r++ {
		role := f.Value(r, "Role")
		if _, seen := byRole[role]; !seen {
			order = append(order, role)
		}
		byRole[role] = append(byRole[role], r)
	}
	traces := make([]Trace, 0, len(order))
	for i, role := range order {
		rows := byRole[role]
		x := make([]any, 0, len(rows))
		y := make([]any, 0, len(rows))
		for _, r := range rows {
			visits, _ := frame.ParseNumber(f.Value(r, "Total visits"))
			x = append(x, ParseDistance(f.Value(r, "Total travel distance")))
			y = append(y, visits)
		}
		traces = append(traces, Trace{
			Type:   "scatter",
			Mode:   "markers",
			Name:   role,
			X:      x,
			Y:      y,
			Marker: &Marker{Color: paletteColor(i)},
		})
	}
	return &Figure{
		Data: traces,
		Layout: Layout{
			Title:  title,
			XAxis:  &Axis{Title: "Total Travel Distance (miles)"},
			YAxis:  &Axis{Title: "Total Visits"},
			Legend: &Legend{Title: "Role"},
		},
	}
}

// repWorkStats ranks reps by working hours minus break hours.
type repWorkStat struct {
	name     string
	pure     float64
	distance float64
}

func topRepsByPureHours(f *frame.Frame, n int) []repWorkStat {
	stats := make([]repWorkStat, 0, f.NumRows())
	for r := 0; r < f.NumRows(); r++ {
		work := ParseWorkHours(f.Value(r, "Total working hours"))
		brk := ParseWorkHours(f.Value(r, "Total break hours"))
		stats = append(stats, repWorkStat{
			name:     f.Value(r, "Name"),
			pure:     work - brk,
			distance: ParseDistance(f.Value(r, "Total travel distance")),
		})
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].pure > stats[j].pure })
	if len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// TopRepsByWorkHours bars the ten reps with the most net work hours.
func TopRepsByWorkHours(f *frame.Frame) *Figure {
	const title = "Top 10 Employees by Work Hours"
	if f.Empty() {
		return emptyFigure(title)
	}
	stats := topRepsByPureHours(f, 10)
	x := make([]any, len(stats))
	y := make([]any, len(stats))
	text := make([]string, len(stats))
	for i, s := range stats {
		x[i] = s.name
		y[i] = s.pure
		text[i] = fmt.Sprintf("%.1fh", s.pure)
	}
	return &Figure{
		Data: []Trace{{
			Type:         "bar",
			Name:         "Pure Work Hours",
			X:            x,
			Y:            y,
			Text:         text,
			TextPosition: "outside",
			Marker:       &Marker{Colors: paletteColors(len(stats))},
		}},
		Layout: Layout{
			Title:  title,
			XAxis:  &Axis{Title: "Employee", TickAngle: 45},
			YAxis:  &Axis{Title: "Hours"},
			Height: 500,
		},
	}
}

// TopRepsByTravelDistance bars travel distance for the same top-ten
// reps ranked by net work hours.
func TopRepsByTravelDistance(f *frame.Frame) *Figure {
	const title = "Top 10 Employees by Travel Distance"
	if f.Empty() {
		return emptyFigure(title)
	}
	stats := topRepsByPureHours(f, 10)
	x := make([]any, len(stats))
	y := make([]any, len(stats))
	text := make([]string, len(stats))
	for i, s := range stats {
		x[i] = s.name
		y[i] = s.distance
		text[i] = fmt.Sprintf("%.1f mi", s.distance)
	}
	return &Figure{
		Data: []Trace{{
			Type:         "bar",
			Name:         "Total Travel Distance",
			X:            x,
			Y:            y,
			Text:         text,
			TextPosition: "outside",
			Marker:       &Marker{Colors: paletteColors(len(stats))},
		}},
		Layout: Layout{
			Title:  title,
			XAxis:  &Axis{Title: "Employee", TickAngle: 45},
			YAxis:  &Axis{Title: "Miles"},
			Height: 500,
		},
	}
}

// Roles lists the distinct rep roles in first-seen order.
func Roles(f *frame.Frame) []string {
	var order []string
	seen := map[string]bool{}
	for r := 0; r < f.NumRows(); r++ {
		role := f.Value(r, "Role")
		if !seen[role] {
			seen[role] = true
			order = append(order, role)
		}
	}
	return order
}

// VisitsVsPhotosForRole scatters visits against photos for one role.
func VisitsVsPhotosForRole(f *frame.Frame, role string, colorIdx int) *Figure {
	title := fmt.Sprintf("Visits vs. Photos (%s)", role)
	roleData := f.Filter(func(row int) bool { return f.Value(row, "Role") == role })
	if roleData.Empty() {
		return emptyFigure(title)
	}
	visits, okV := roleData.Floats("Total visits")
	photos, okP := roleData.Floats("Total photos")
	var x, y []any
	for i := range visits {
		if !okV[i] || !okP[i] {
			continue
		}
		x = append(x, visits[i])
		y = append(y, photos[i])
	}
	return &Figure{
		Data: []Trace{{
			Type:   "scatter",
			Mode:   "markers",
			X:      x,
			Y:      y,
			Marker: &Marker{Color: paletteColor(colorIdx)},
		}},
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Total Visits"},
			YAxis:    &Axis{Title: "Total Photos"},
			Template: templateWhite,
			Height:   500,
		},
	}
}

// AssignedCustomersPerRep bars assigned customer totals for SALES reps.
func AssignedCustomersPerRep(f *frame.Frame) *Figure {
	const title = "Assigned Customers per Sales Representative"
	sales := f.Filter(func(row int) bool { return f.Value(row, "Role") == "SALES" })
	if sales.Empty() {
		return emptyFigure(title)
	}
	groups := GroupSum(sales, "Name", "Assigned customers")
	text := make([]string, len(groups))
	for i, g := range groups {
		text[i] = fmt.Sprintf("%.0f", g.Value)
	}
	return &Figure{
		Data: []Trace{{
			Type:       "bar",
			X:          keys(groups),
			Y:          values(groups),
			Text:       text,
			ColorScale: "Viridis",
		}},
		Layout: Layout{
			Title:    title,
			XAxis:    &Axis{Title: "Sales Representative", TickAngle: -45},
			YAxis:    &Axis{Title: "Number of Assigned Customers"},
			Template: templateWhite,
		},
	}
}
