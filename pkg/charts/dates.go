package charts

import (
	"sort"
	"time"

	"github.com/de-tools/report-deck/pkg/frame"
)

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"01/02/06",
	"Jan 2, 2006",
}

// ParseDate tries the date layouts the upstream exports use.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthlySum buckets valCol by the calendar month of dateCol. Rows with
// unparsable dates are skipped. Result is sorted chronologically with
// keys formatted as "2006-01".
func MonthlySum(f *frame.Frame, dateCol, valCol string) []Group {
	sums := map[string]float64{}
	for r := 0; r < f.NumRows(); r++ {
		t, ok := ParseDate(f.Value(r, dateCol))
		if !ok {
			continue
		}
		v, _ := frame.ParseNumber(f.Value(r, valCol))
		sums[t.Format("2006-01")] += v
	}
	months := make([]string, 0, len(sums))
	for m := range sums {
		months = append(months, m)
	}
	sort.Strings(months)
	out := make([]Group, 0, len(months))
	for _, m := range months {
		out = append(out, Group{Key: m, Value: sums[m]})
	}
	return out
}

// MonthlyCount counts rows per calendar month of dateCol.
func MonthlyCount(f *frame.Frame, dateCol string) []Group {
	counts := map[string]float64{}
	for r := 0; r < f.NumRows(); r++ {
		t, ok := ParseDate(f.Value(r, dateCol))
		if !ok {
			continue
		}
		counts[t.Format("2006-01")]++
	}
	months := make([]string, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Strings(months)
	out := make([]Group, 0, len(months))
	for _, m := range months {
		out = append(out, Group{Key: m, Value: counts[m]})
	}
	return out
}
