package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/de-tools/report-deck/pkg/frame"
)

func salesFrame() *frame.Frame {
	return frame.New(
		[]string{"City", "Product", "Total sales"},
		[][]string{
			{"Austin", "Cola", "$100.00"},
			{"Austin", "Water", "50"},
			{"Boston", "Cola", "200"},
			{"Boston", "Cola", "not a number"},
		},
	)
}

func TestGroupSum(t *testing.T) {
	got := GroupSum(salesFrame(), "City", "Total sales")

	assert.Equal(t, []Group{
		{Key: "Austin", Value: 150},
		{Key: "Boston", Value: 200},
	}, got)
}

func TestGroupMean(t *testing.T) {
	got := GroupMean(salesFrame(), "City", "Total sales")

	assert.Equal(t, []Group{
		{Key: "Austin", Value: 75},
		{Key: "Boston", Value: 100},
	}, got)
}

func TestValueCounts(t *testing.T) {
	got := ValueCounts(salesFrame(), "Product")

	assert.Equal(t, []Group{
		{Key: "Cola", Value: 3},
		{Key: "Water", Value: 1},
	}, got)
}

func TestTopN(t *testing.T) {
	groups := []Group{
		{Key: "a", Value: 1},
		{Key: "b", Value: 5},
		{Key: "c", Value: 3},
	}

	got := TopN(groups, 2)

	assert.Equal(t, []Group{{Key: "b", Value: 5}, {Key: "c", Value: 3}}, got)
	assert.Equal(t, Group{Key: "a", Value: 1}, groups[0], "input order preserved")
}

func TestGroupWithOther(t *testing.T) {
	groups := []Group{
		{Key: "big", Value: 90},
		{Key: "small", Value: 6},
		{Key: "tiny", Value: 4},
	}

	got := GroupWithOther(groups, 0.05)

	assert.Equal(t, []Group{
		{Key: "big", Value: 90},
		{Key: "small", Value: 6},
		{Key: "Other", Value: 4},
	}, got)
}

func TestGroupWithOtherZeroTotal(t *testing.T) {
	groups := []Group{{Key: "a", Value: 0}}
	assert.Equal(t, groups, GroupWithOther(groups, 0.1))
}

func TestCrossTabCounts(t *testing.T) {
	rows, cols, z := CrossTab(salesFrame(), "City", "Product", "", false)

	assert.Equal(t, []string{"Austin", "Boston"}, rows)
	assert.Equal(t, []string{"Cola", "Water"}, cols)
	assert.Equal(t, [][]float64{{1, 1}, {2, 0}}, z)
}

func TestCrossTabMean(t *testing.T) {
	rows, cols, z := CrossTab(salesFrame(), "City", "Product", "Total sales", true)

	assert.Equal(t, []string{"Austin", "Boston"}, rows)
	assert.Equal(t, []string{"Cola", "Water"}, cols)
	assert.Equal(t, [][]float64{{100, 50}, {100, 0}}, z)
}

func TestMonthlySum(t *testing.T) {
	f := frame.New(
		[]string{"Created at", "Grand total"},
		[][]string{
			{"2024-02-15", "10"},
			{"2024-01-03", "5"},
			{"2024-01-20", "7"},
			{"garbage", "100"},
		},
	)

	got := MonthlySum(f, "Created at", "Grand total")

	assert.Equal(t, []Group{
		{Key: "2024-01", Value: 12},
		{Key: "2024-02", Value: 10},
	}, got)
}

func TestParseDate(t *testing.T) {
	for _, s := range []string{"2024-01-02", "01/02/2024", "2024-01-02 13:45:00"} {
		_, ok := ParseDate(s)
		assert.True(t, ok, s)
	}
	_, ok := ParseDate("next tuesday")
	assert.False(t, ok)
}

func TestParseWorkHours(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"7h 30m", 7.5},
		{"45m", 0.75},
		{"2h 0m", 2},
		{"", 0},
		{"n/a", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseWorkHours(tt.in), tt.in)
	}
}

func TestParseDistance(t *testing.T) {
	assert.Equal(t, 12.5, ParseDistance("12.5 mi"))
	assert.Equal(t, 3.0, ParseDistance("3km"))
	assert.Equal(t, 0.0, ParseDistance("unknown"))
}
