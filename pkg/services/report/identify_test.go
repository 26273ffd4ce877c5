package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-deck/pkg/frame"
	"github.com/de-tools/report-deck/pkg/models/domain"
)

func TestIdentifyCode(t *testing.T) {
	tests := []struct {
		code string
		want domain.ReportType
	}{
		{"TOP_CUSTOMERS", domain.TopCustomers},
		{"ORDER_SALES_SUMMARY", domain.OrderSalesSummary},
		{"REPS_VISITS", domain.RepsVisits},
		{"SOMETHING_ELSE", domain.ReportTypeUnknown},
		{"", domain.ReportTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, IdentifyCode(tt.code))
		})
	}
}

func TestIdentifyPath(t *testing.T) {
	assert.Equal(t, domain.BestSellers, IdentifyPath("/uploads/u1/best_sellers.csv"))
	assert.Equal(t, domain.ReportTypeUnknown, IdentifyPath("/uploads/u1/custom_export.csv"))
}

func TestIdentifyDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "low_stock_inventory.csv"), []byte("A\n1\n"), 0o644))

	assert.Equal(t, domain.LowStockInventory, IdentifyDir(dir))
	assert.Equal(t, domain.ReportTypeUnknown, IdentifyDir(t.TempDir()))
	assert.Equal(t, domain.ReportTypeUnknown, IdentifyDir(filepath.Join(dir, "missing")))
}

func TestExtractUpstreamName(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://cdn.example.com/reports/TOP_CUSTOMERS-02JAN25.xlsx", "TOP_CUSTOMERS"},
		{"https://cdn.example.com/reports/ORDER_SALES_SUMMARY-02JAN25-09JAN25.xlsx", "ORDER_SALES_SUMMARY"},
		{"reports/BEST_SELLERS.xlsx", "BEST_SELLERS"},
		{"REPS_SUMMARY", "REPS_SUMMARY"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractUpstreamName(tt.url))
		})
	}
}

func TestCheckReport(t *testing.T) {
	f := frame.New([]string{"Product name", "Category name", "Available cases (QTY)",
		"Cases sold", "Total revenue", "Wholesale price", "Retail price", "Custom note"}, nil)

	diff := CheckReport(domain.BestSellers, f)

	assert.Empty(t, diff.Missing)
	assert.Equal(t, []string{"Custom note"}, diff.Extra)
	assert.False(t, diff.Clean())

	assert.True(t, CheckReport(domain.ReportTypeUnknown, f).Clean())
}
