package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/de-tools/report-deck/pkg/frame"
	"github.com/de-tools/report-deck/pkg/models/domain"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12", "$12.00"},
		{"1234.5", "$1234.50"},
		{"1,234.5", "$1234.50"},
		{"$12.00", "$12.00"},
		{"pending", "pending"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.in))
		})
	}
}

func TestFormatCurrencyIdempotent(t *testing.T) {
	once := FormatCurrency("42")
	assert.Equal(t, once, FormatCurrency(once))
}

func TestFormatID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234", "1234"},
		{"1,234", "1234"},
		{"1234.0", "1234"},
		{"$99", "$99"},
		{"ref-7", "ref-7"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatID(tt.in))
		})
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"15125550199", "+1 (512) 555-0199"},
		{"5125550199", "(512) 555-0199"},
		{"(512) 555-0199", "(512) 555-0199"},
		{"5125550199.0", "(512) 555-0199"},
		{"555-0199", "555-0199"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhone(tt.in))
		})
	}
}

func TestFormatForDisplay(t *testing.T) {
	f := frame.New(
		[]string{"Id", "Name", "Total revenue"},
		[][]string{{"1001.0", "Sam", "2,500"}},
	)

	got := FormatForDisplay(domain.RepsSummary, f)

	assert.Equal(t, "1001", got.Value(0, "Id"))
	assert.Equal(t, "$2500.00", got.Value(0, "Total revenue"))
	assert.Equal(t, "Sam", got.Value(0, "Name"))
	assert.Equal(t, "1001.0", f.Value(0, "Id"), "input frame untouched")
}

func TestFormatForDisplayPreservesNumericSum(t *testing.T) {
	f := frame.New(
		[]string{"Id", "Total revenue"},
		[][]string{{"1", "1,200.50"}, {"2", "99.5"}, {"3", "0"}},
	)
	before, ok := f.Floats("Total revenue")
	var wantSum float64
	for i, v := range before {
		if ok[i] {
			wantSum += v
		}
	}

	got := FormatForDisplay(domain.RepsSummary, f)

	after, ok := got.Floats("Total revenue")
	var gotSum float64
	for i, v := range after {
		if ok[i] {
			gotSum += v
		}
	}
	assert.InDelta(t, wantSum, gotSum, 0.01)
}

func TestFormatForDisplaySkipsAbsentColumns(t *testing.T) {
	f := frame.New([]string{"Name"}, [][]string{{"Sam"}})

	got := FormatForDisplay(domain.RepsSummary, f)

	assert.Equal(t, "Sam", got.Value(0, "Name"))
}

func TestFormatForDisplayUnknownType(t *testing.T) {
	f := frame.New([]string{"Id"}, [][]string{{"1,234"}})

	got := FormatForDisplay(domain.ReportTypeUnknown, f)

	assert.Equal(t, "1,234", got.Value(0, "Id"))
}
