package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/de-tools/report-deck/pkg/frame"
	"github.com/de-tools/report-deck/pkg/models/domain"
)

// FormatCurrency renders a numeric string as $X.XX. Values already
// carrying a dollar sign and unparseable values pass through
// unchanged.
func FormatCurrency(s string) string {
	if strings.HasPrefix(strings.TrimSpace(s), "$") {
		return s
	}
	v, ok := frame.ParseNumber(s)
	if !ok {
		return s
	}
	return fmt.Sprintf("$%.2f", v)
}

// FormatID collapses a numeric string to a plain integer string,
// dropping thousands separators and any decimal part. Dollar-prefixed
// and unparseable values pass through unchanged.
func FormatID(s string) string {
	if strings.HasPrefix(strings.TrimSpace(s), "$") {
		return s
	}
	v, ok := frame.ParseNumber(s)
	if !ok {
		return s
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// FormatPhone renders a US phone number: 11 digits starting with 1
// become +1 (XXX) XXX-XXXX, 10 digits become (XXX) XXX-XXXX. When the
// raw digits match neither, a float round-trip is tried (spreadsheet
// exports often store phones as floats). Anything else passes through.
func FormatPhone(s string) string {
	if out, ok := phoneFromDigits(digitsOf(s)); ok {
		return out
	}
	if strings.HasPrefix(strings.TrimSpace(s), "$") {
		return s
	}
	if v, ok := frame.ParseNumber(s); ok {
		if out, ok := phoneFromDigits(digitsOf(strconv.FormatFloat(v, 'f', 0, 64))); ok {
			return out
		}
	}
	return s
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func phoneFromDigits(d string) (string, bool) {
	switch {
	case len(d) == 11 && d[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", d[1:4], d[4:7], d[7:]), true
	case len(d) == 10:
		return fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:]), true
	default:
		return "", false
	}
}

type formatRule struct {
	column string
	apply  func(string) string
}

// formatRules maps a report type to its display formatting. Absent
// columns are skipped at apply time.
var formatRules = map[domain.ReportType][]formatRule{
	domain.RepDetails: {
		{"Id", FormatID},
		{"Phone number", FormatPhone},
	},
	domain.TopCustomers: {
		{"Total sales", FormatCurrency},
	},
	domain.OrderSalesSummary: {
		{"Id", FormatID},
		{"Grand total", FormatCurrency},
		{"Item specific discount", FormatCurrency},
		{"Manufacturer specific discount", FormatCurrency},
		{"Total invoice discount", FormatCurrency},
		{"Customer discount", FormatCurrency},
		{"Balance", FormatCurrency},
	},
	domain.SKUNotOrdered: {
		{"Wholesale price", FormatCurrency},
		{"Retail price", FormatCurrency},
		{"Total revenue", FormatCurrency},
	},
	domain.RepsSummary: {
		{"Id", FormatID},
		{"Total revenue", FormatCurrency},
	},
	domain.LowStockInventory: {
		{"Wholesale price", FormatCurrency},
		{"Retail price", FormatCurrency},
	},
	domain.BestSellers: {
		{"Wholesale price", FormatCurrency},
		{"Retail price", FormatCurrency},
		{"Total revenue", FormatCurrency},
	},
	domain.ThirdPartySalesSummary: {
		{"Id", FormatID},
		{"Grand total", FormatCurrency},
		{"Item specific discount", FormatCurrency},
		{"Manufacturer specific discount", FormatCurrency},
		{"Total invoice discount", FormatCurrency},
		{"Customer discount", FormatCurrency},
	},
	domain.CurrentInventory: {
		{"Wholesale price", FormatCurrency},
		{"Retail price", FormatCurrency},
	},
}

// FormatForDisplay returns a formatted copy of the frame for the
// table view. The original frame stays untouched so numeric columns
// remain usable for aggregation. Types without rules get a plain
// copy.
func FormatForDisplay(t domain.ReportType, f *frame.Frame) *frame.Frame {
	out := f.Copy()
	for _, rule := range formatRules[t] {
		if !out.HasColumn(rule.column) {
			continue
		}
		for i := 0; i < out.NumRows(); i++ {
			out.SetValue(i, rule.column, rule.apply(out.Value(i, rule.column)))
		}
	}
	return out
}
