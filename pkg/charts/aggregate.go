package charts

import (
	"sort"

	"github.com/de-tools/report-deck/pkg/frame"
)

// Group is one aggregated bucket of a categorical column.
type Group struct {
	Key   string
	Value float64
}

func keys(groups []Group) []any {
	out := make([]any, len(groups))
	for i, g := range groups {
		out[i] = g.Key
	}
	return out
}

func values(groups []Group) []any {
	out := make([]any, len(groups))
	for i, g := range groups {
		out[i] = g.Value
	}
	return out
}

func sumValues(groups []Group) float64 {
	var total float64
	for _, g := range groups {
		total += g.Value
	}
	return total
}

// groupReduce buckets valCol by keyCol. Unparsable numeric cells count
// as zero. Result is sorted by key ascending.
func groupReduce(f *frame.Frame, keyCol, valCol string, mean bool) []Group {
	sums := map[string]float64{}
	counts := map[string]int{}
	var order []string
	for r := 0; r < f.NumRows(); r++ {
		key := f.Value(r, keyCol)
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		v, _ := frame.ParseNumber(f.Value(r, valCol))
		sums[key] += v
		counts[key]++
	}
	sort.Strings(order)
	out := make([]Group, 0, len(order))
	for _, k := range order {
		v := sums[k]
		if mean && counts[k] > 0 {
			v /= float64(counts[k])
		}
		out = append(out, Group{Key: k, Value: v})
	}
	return out
}

// GroupSum sums valCol per distinct value of keyCol.
func GroupSum(f *frame.Frame, keyCol, valCol string) []Group {
	return groupReduce(f, keyCol, valCol, false)
}

// GroupMean averages valCol per distinct value of keyCol.
func GroupMean(f *frame.Frame, keyCol, valCol string) []Group {
	return groupReduce(f, keyCol, valCol, true)
}

// ValueCounts counts occurrences of each distinct value of col, sorted
// by count descending. Ties keep first-seen order.
func ValueCounts(f *frame.Frame, col string) []Group {
	counts := map[string]float64{}
	var order []string
	for r := 0; r < f.NumRows(); r++ {
		key := f.Value(r, col)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}
	out := make([]Group, 0, len(order))
	for _, k := range order {
		out = append(out, Group{Key: k, Value: counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// TopN returns the n largest groups by value, descending.
func TopN(groups []Group, n int) []Group {
	sorted := make([]Group, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value > sorted[j].Value })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// GroupWithOther folds groups whose share of the total falls below
// threshold into a single "Other" bucket.
func GroupWithOther(groups []Group, threshold float64) []Group {
	total := sumValues(groups)
	if total == 0 {
		return groups
	}
	var main []Group
	var other float64
	var hasOther bool
	for _, g := range groups {
		if g.Value/total >= threshold {
			main = append(main, g)
		} else {
			other += g.Value
			hasOther = true
		}
	}
	if hasOther {
		main = append(main, Group{Key: "Other", Value: other})
	}
	return main
}

// CrossTab buckets rows by (rowCol, colCol) and reduces valCol. With an
// empty valCol it counts rows instead. Row and column keys come back
// sorted ascending; z is indexed [row][col].
func CrossTab(f *frame.Frame, rowCol, colCol, valCol string, mean bool) (rows, cols []string, z [][]float64) {
	type cell struct {
		sum   float64
		count int
	}
	cells := map[string]map[string]*cell{}
	rowSeen := map[string]bool{}
	colSeen := map[string]bool{}
	for r := 0; r < f.NumRows(); r++ {
		rk := f.Value(r, rowCol)
		ck := f.Value(r, colCol)
		if !rowSeen[rk] {
			rowSeen[rk] = true
			rows = append(rows, rk)
		}
		if !colSeen[ck] {
			colSeen[ck] = true
			cols = append(cols, ck)
		}
		if cells[rk] == nil {
			cells[rk] = map[string]*cell{}
		}
		c := cells[rk][ck]
		if c == nil {
			c = &cell{}
			cells[rk][ck] = c
		}
		if valCol == "" {
			c.sum++
		} else {
			v, _ := frame.ParseNumber(f.Value(r, valCol))
			c.sum += v
		}
		c.count++
	}
	sort.Strings(rows)
	sort.Strings(cols)
	z = make([][]float64, len(rows))
	for i, rk := range rows {
		z[i] = make([]float64, len(cols))
		for j, ck := range cols {
			if c := cells[rk][ck]; c != nil {
				v := c.sum
				if mean && valCol != "" && c.count > 0 {
					v /= float64(c.count)
				}
				z[i][j] = v
			}
		}
	}
	return rows, cols, z
}
