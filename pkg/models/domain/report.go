package domain

// ReportType enumerates the fixed business-report schemas the upstream
// service can produce. The zero value stands for anything we do not
// recognize; unknown reports still render as a plain table.
type ReportType int

const (
	ReportTypeUnknown ReportType = iota
	OrderSalesSummary
	ThirdPartySalesSummary
	BestSellers
	RepDetails
	RepsSummary
	SKUNotOrdered
	LowStockInventory
	CurrentInventory
	TopCustomers
	CustomerDetails
	InventoryDepletion
	RepsVisits
	ProductFulfillment
)

// ReportTypes lists every known type in a stable order, unknown excluded.
func ReportTypes() []ReportType {
	return []ReportType{
		OrderSalesSummary,
		ThirdPartySalesSummary,
		BestSellers,
		RepDetails,
		RepsSummary,
		SKUNotOrdered,
		LowStockInventory,
		CurrentInventory,
		TopCustomers,
		CustomerDetails,
		InventoryDepletion,
		RepsVisits,
		ProductFulfillment,
	}
}

// Code is the short identifier the upstream metadata service uses.
func (t ReportType) Code() string {
	switch t {
	case OrderSalesSummary:
		return "ORDER_SALES_SUMMARY"
	case ThirdPartySalesSummary:
		return "THIRD_PARTY_SALES_SUMMARY"
	case BestSellers:
		return "BEST_SELLERS"
	case RepDetails:
		return "REP_DETAILS"
	case RepsSummary:
		return "REPS_SUMMARY"
	case SKUNotOrdered:
		return "SKU_NOT_ORDERED"
	case LowStockInventory:
		return "LOW_STOCK_INVENTORY"
	case CurrentInventory:
		return "CURRENT_INVENTORY"
	case TopCustomers:
		return "TOP_CUSTOMERS"
	case CustomerDetails:
		return "CUSTOMER_DETAILS"
	case InventoryDepletion:
		return "INVENTORY_DEPLETION"
	case RepsVisits:
		return "REPS_VISITS"
	case ProductFulfillment:
		return "PRODUCT_FULFILLMENT"
	default:
		return "UNKNOWN"
	}
}

// DisplayName is the human readable title shown above the rendered table.
func (t ReportType) DisplayName() string {
	switch t {
	case OrderSalesSummary:
		return "Order Sales Summary"
	case ThirdPartySalesSummary:
		return "3rd Party Sales Summary"
	case BestSellers:
		return "Best Sellers"
	case RepDetails:
		return "Representative Details"
	case RepsSummary:
		return "Reps Summary"
	case SKUNotOrdered:
		return "SKU's Not Ordered"
	case LowStockInventory:
		return "Low Stock Inventory"
	case CurrentInventory:
		return "Current Inventory"
	case TopCustomers:
		return "Top Customers"
	case CustomerDetails:
		return "Customer Details"
	case InventoryDepletion:
		return "Inventory Depletion"
	case RepsVisits:
		return "Reps Visits"
	case ProductFulfillment:
		return "Product Fulfillment"
	default:
		return "Generic Report"
	}
}

// FileName is the canonical CSV file name for the type inside a
// session directory. Downloads are stored under this name so repeated
// identifications stay stable.
func (t ReportType) FileName() string {
	switch t {
	case OrderSalesSummary:
		return "order_sales_summary.csv"
	case ThirdPartySalesSummary:
		return "third_party_sales_summary.csv"
	case BestSellers:
		return "best_sellers.csv"
	case RepDetails:
		return "rep_details.csv"
	case RepsSummary:
		return "reps_summary.csv"
	case SKUNotOrdered:
		return "sku_not_ordered.csv"
	case LowStockInventory:
		return "low_stock_inventory.csv"
	case CurrentInventory:
		return "current_inventory.csv"
	case TopCustomers:
		return "top_customers.csv"
	case CustomerDetails:
		return "customer_details.csv"
	case InventoryDepletion:
		return "inventory_depletion.csv"
	case RepsVisits:
		return "reps_visits.csv"
	case ProductFulfillment:
		return "product_fulfillment.csv"
	default:
		return "report.csv"
	}
}

func (t ReportType) String() string { return t.Code() }

var reportTypeByCode = func() map[string]ReportType {
	m := make(map[string]ReportType, len(ReportTypes()))
	for _, t := range ReportTypes() {
		m[t.Code()] = t
	}
	return m
}()

var reportTypeByFileName = func() map[string]ReportType {
	m := make(map[string]ReportType, len(ReportTypes()))
	for _, t := range ReportTypes() {
		m[t.FileName()] = t
	}
	return m
}()

// ReportTypeFromCode resolves an upstream report code. Unrecognized
// codes map to ReportTypeUnknown.
func ReportTypeFromCode(code string) ReportType {
	return reportTypeByCode[code]
}

// ReportTypeFromFileName resolves a canonical CSV file name.
func ReportTypeFromFileName(name string) ReportType {
	return reportTypeByFileName[name]
}
