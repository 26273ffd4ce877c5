package report

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/de-tools/report-deck/pkg/frame"
	"github.com/de-tools/report-deck/pkg/models/domain"
)

// IdentifyCode maps an upstream-supplied short code (e.g.
// TOP_CUSTOMERS) to a report type. Unknown codes yield the generic
// type, never an error.
func IdentifyCode(code string) domain.ReportType {
	return domain.ReportTypeFromCode(code)
}

// IdentifyDir inspects a session upload directory and identifies the
// report type from the name of the file it holds. Any I/O failure or
// an empty directory yields the generic type.
func IdentifyDir(dir string) domain.ReportType {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return domain.ReportTypeUnknown
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		return domain.ReportTypeFromFileName(entry.Name())
	}
	return domain.ReportTypeUnknown
}

// IdentifyPath identifies a report type from a single file path.
func IdentifyPath(path string) domain.ReportType {
	return domain.ReportTypeFromFileName(filepath.Base(path))
}

// ColumnDiff is the outcome of comparing a report's header against
// the expected column set of its type. Diagnostic only: it is logged
// and never used for routing.
type ColumnDiff struct {
	Missing []string
	Extra   []string
}

func (d ColumnDiff) Clean() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0
}

// CheckReport compares the frame's columns with the type's expected
// set. Types without a known set report a clean diff.
func CheckReport(t domain.ReportType, f *frame.Frame) ColumnDiff {
	expected, ok := expectedColumns[t]
	if !ok {
		return ColumnDiff{}
	}

	present := make(map[string]bool, len(f.Columns()))
	for _, col := range f.Columns() {
		present[col] = true
	}

	var diff ColumnDiff
	for _, col := range expected {
		if !present[col] {
			diff.Missing = append(diff.Missing, col)
		}
	}
	known := make(map[string]bool, len(expected))
	for _, col := range expected {
		known[col] = true
	}
	for _, col := range f.Columns() {
		if !known[col] {
			diff.Extra = append(diff.Extra, col)
		}
	}
	return diff
}

var dateSuffixRe = regexp.MustCompile(`(-\d{2}[A-Z]{3}\d{2}(-\d{2}[A-Z]{3}\d{2})?)$`)

// ExtractUpstreamName takes a download URL and returns the report
// name embedded in its filename: the extension and any trailing
// date-range suffix (-02JAN25 or -02JAN25-09JAN25) are stripped.
func ExtractUpstreamName(url string) string {
	name := url
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return dateSuffixRe.ReplaceAllString(name, "")
}

// expectedColumns lists, per type, the columns its dashboard relies
// on (chart gates plus formatted table columns).
var expectedColumns = map[domain.ReportType][]string{
	domain.OrderSalesSummary: {
		"Id", "Customer", "Product name", "Created at", "Grand total", "QTY",
		"Discount type", "Total invoice discount", "Item specific discount",
		"Manufacturer specific discount", "Customer discount", "Balance",
		"Delivery status", "Delivery methods", "Payment status",
	},
	domain.ThirdPartySalesSummary: {
		"Id", "Customer", "Product name", "Grand total", "QTY", "Order Id",
		"Discount type", "Total invoice discount", "Item specific discount",
		"Manufacturer specific discount", "Customer discount",
	},
	domain.BestSellers: {
		"Product name", "Category name", "Available cases (QTY)", "Cases sold",
		"Total revenue", "Wholesale price", "Retail price",
	},
	domain.RepDetails: {
		"Id", "Name", "Role", "Phone number", "Total visits", "Total photos",
		"Active customers", "Assigned customers", "Total working hours",
		"Total break hours", "Total travel distance",
	},
	domain.RepsSummary: {
		"Id", "Name", "Date", "Role", "Visits", "Travel distance", "Orders",
		"Orders total", "Cases sold", "Total revenue",
	},
	domain.SKUNotOrdered: {
		"Product Name", "Category Name", "Available Cases (QTY)",
		"Retail Price", "Wholesale Price",
	},
	domain.LowStockInventory: {
		"Product name", "Category name", "Manufacturer name",
		"Available cases (QTY)", "Wholesale price", "Retail price",
	},
	domain.CurrentInventory: {
		"Product name", "Category name", "Manufacturer name",
		"Available cases (QTY)", "Wholesale price", "Retail price",
	},
	domain.TopCustomers: {
		"Name", "Group", "Territory", "Payment terms", "Total sales",
		"Billing city",
	},
	domain.CustomerDetails: {
		"Name", "Group", "Payment terms", "Total orders", "Total sales",
		"Billing state",
	},
	domain.InventoryDepletion: {
		"Business name",
	},
	domain.RepsVisits: {
		"Name", "Date", "Business Name", "Cases sold (Direct)",
		"Cases sold (3rd party)", "Cases sold total",
	},
	domain.ProductFulfillment: {
		"Fulfilled By", "Type", "Delivery Status", "QTY", "Fulfill Date",
	},
}
