package frame

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCSV(t *testing.T) {
	csv := "Name,Total sales\nAcme,\"1,200\"\nGlobex,300\n"

	f, err := FromCSV(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Total sales"}, f.Columns())
	assert.Equal(t, 2, f.NumRows())
	assert.Equal(t, "Acme", f.Value(0, "Name"))
	assert.Equal(t, "1,200", f.Value(0, "Total sales"))
}

func TestFromCSVRaggedRows(t *testing.T) {
	csv := "A,B,C\n1,2\n3,4,5,6\n"

	f, err := FromCSV(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, f.NumRows())
	assert.Equal(t, "", f.Value(0, "C"))
	assert.Equal(t, "5", f.Value(1, "C"))
}

func TestFromCSVHeaderOnly(t *testing.T) {
	f, err := FromCSV(strings.NewReader("A,B\n"))
	require.NoError(t, err)
	assert.True(t, f.Empty())
}

func TestHasColumns(t *testing.T) {
	f := New([]string{"Name", "City", "Total sales"}, nil)

	assert.True(t, f.HasColumns("Name", "City"))
	assert.False(t, f.HasColumns("Name", "Region"))
	assert.Equal(t, []string{"Region"}, f.MissingColumns("Name", "Region"))
	assert.Empty(t, f.MissingColumns("Name", "City"))
}

func TestFloats(t *testing.T) {
	f := New([]string{"Amount"}, [][]string{
		{"$1,250.50"},
		{"not a number"},
		{"42"},
	})

	vals, ok := f.Floats("Amount")
	require.Len(t, vals, 3)
	assert.Equal(t, 1250.50, vals[0])
	assert.True(t, ok[0])
	assert.False(t, ok[1])
	assert.Equal(t, 42.0, vals[2])
	assert.True(t, ok[2])
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1234", 1234, true},
		{"$1,234.56", 1234.56, true},
		{" 42 ", 42, true},
		{"-$5.00", -5, true},
		{"", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseNumber(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	f := New([]string{"N"}, [][]string{{"1"}, {"2"}, {"3"}})

	odd := f.Filter(func(row int) bool { return f.Value(row, "N") != "2" })

	assert.Equal(t, 2, odd.NumRows())
	assert.Equal(t, 3, f.NumRows())
}

func TestCopyIsIndependent(t *testing.T) {
	f := New([]string{"N"}, [][]string{{"1"}})
	c := f.Copy()
	c.SetValue(0, "N", "99")

	assert.Equal(t, "1", f.Value(0, "N"))
	assert.Equal(t, "99", c.Value(0, "N"))
}
