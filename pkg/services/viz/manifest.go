package viz

import (
	"fmt"

	"github.com/de-tools/report-deck/pkg/charts"
	"github.com/de-tools/report-deck/pkg/frame"
	"github.com/de-tools/report-deck/pkg/models/domain"
)

const customerSalesInfo = "This dashboard provides an overview of customer sales patterns, focusing on your top-performing customers, " +
	"sales distribution across different territories, and a breakdown of sales by payment terms. Use this information to identify " +
	"key customer segments, optimize sales strategies, and improve cash flow management."

// manifest declares, per report type, the ordered panels the dashboard
// shows under the data table. Titles, required columns and notice
// texts mirror the report pages one to one.
var manifest = map[domain.ReportType][]PanelSpec{
	domain.TopCustomers: {
		{
			Title:    "Customer Sales Analysis",
			Info:     customerSalesInfo,
			Required: []string{"Name", "Total sales", "Territory"},
			Notice:   "There is no Name or Total sales or Territory columns, so visualizing can not be ready",
			Build: func(f *frame.Frame) ([]Tab, error) {
				tabs := []Tab{
					{Title: "Top Customers", Figure: charts.TopCustomersBySales(f)},
					{Title: "Territory Analysis", Figure: charts.SalesByTerritory(f)},
				}
				if f.HasColumn("Payment terms") {
					tabs = append(tabs, Tab{Title: "Payment Terms Analysis", Figure: charts.SalesByPaymentTerms(f)})
				}
				return tabs, nil
			},
		},
		{
			Title:    "Distribution by every columns",
			Info:     "Useful to see data distribution of all columns",
			Required: []string{"Payment terms"},
			Notice:   "There is no Payment terms column, so visualizing can not be ready",
			Build: single(func(f *frame.Frame) *charts.Figure {
				return charts.CategoryDistribution(f, "Payment terms")
			}),
		},
		{
			Title: "Distribution of Non-Zero Total Sales",
			Info: "This line chart illustrates the distribution of non-zero total sales values, providing a visual representation " +
				"of sales frequencies. Analyze the shape of the line to identify common sales value ranges, potential outliers " +
				"(sudden spikes or drops), and gain a better understanding of the overall sales distribution.",
			Required: []string{"Total sales"},
			Notice:   "There is no Total sales column, so visualizing can not be ready",
			Build: single(func(f *frame.Frame) *charts.Figure {
				return charts.NonZeroDistribution(f, "Total sales", 500)
			}),
		},
		{
			Title: "Customer Group Distribution",
			Info: "This interactive visualization explores the distribution of customer groups across different cities. Analyze how " +
				"customer groups are concentrated or spread out geographically, identify key markets, and uncover potential " +
				"opportunities for expansion or targeted marketing efforts.",
			Required: []string{"Group", "Billing city"},
			Notice:   "There is no Group or Billing city columns, so visualizing can not be ready",
			Build: func(f *frame.Frame) ([]Tab, error) {
				city := charts.MostFrequentCity(f)
				return []Tab{
					{Title: "All Cities", Figure: charts.CustomerGroupsByCity(f, "Client Group Distribution by City")},
					{Title: fmt.Sprintf("Excluding %s", city), Figure: charts.CustomerGroupsExcludingCity(f, city)},
				}, nil
			},
		},
	},

	domain.OrderSalesSummary: {
		{
			Title:    "Monthly Sales Trend",
			Info:     "This bar chart highlights the top 10 customers by sales amount alongside the monthly sales trend.",
			Required: []string{"Customer", "Product name", "Created at"},
			Notice:   "There is no Customer or Product name or Created at columns, so visualizing can not be ready",
			Build:    pair("Total Sales", charts.TopCustomersBySalesAmount, "Order Distribution", charts.MonthlySalesTrend),
		},
		{
			Title: "Total sales and order distribution by product",
			Info: "This pie chart presents the share of total sales revenue generated by each product, next to the number of orders " +
				"placed for each product.",
			Required: []string{"Product name", "Grand total"},
			Notice:   "There is no Product name or Grand total columns, so visualizing can not be ready",
			Build:    pair("Top Customers", charts.SalesByProduct, "Monthly Trend", charts.OrdersByProduct),
		},
		{
			Title:    "Distribution of Discount Amount",
			Info:     "This chart shows the customers receiving the highest total discounts and the breakdown of discount amounts by type.",
			Required: []string{"Discount type", "Total invoice discount", "Customer"},
			Notice:   "There is no Discount type or Total invoice discount or Customer columns, so visualizing can not be ready",
			Build:    pair("Top Customers", charts.DiscountByCustomer, "By Type", charts.DiscountByType),
		},
		{
			Title: "Delivery analysis",
			Info: "These pie charts present the proportion of orders for each delivery status and each delivery method, helping you " +
				"monitor delivery efficiency and customer preferences.",
			Required: []string{"Delivery status", "Delivery methods"},
			Notice:   "There is no Delivery status or Delivery methods columns, so visualizing can not be ready",
			Build:    pair("By Status", charts.OrdersByDeliveryStatus, "By Method", charts.OrdersByDeliveryMethod),
		},
		{
			Title: "Payment Status Insights",
			Info: "This chart shows the distribution of orders by payment status. Use it to spot anomalies in payment processing, " +
				"track payment trends, and understand how often refunds are processed.",
			Required: []string{"Payment status"},
			Notice:   "There is no Payment status column, so visualizing can not be ready",
			Build:    single(charts.OrdersByPaymentStatus),
		},
		{
			Title: "Quantity vs. Amount Insights. Number of Orders by Product and Delivery Status",
			Info: "This plot reveals how quantity sold relates to sales amount, and compares order volumes across fulfillment " +
				"statuses at the product level.",
			Required: []string{"Product name", "Grand total", "QTY", "Delivery status"},
			Notice:   "There is no Grand total or Product name or Quantity or Delivery status columns, so visualizing can not be ready",
			Build:    pair("Quantity vs. Amount", charts.QuantityVsAmountByProduct, "Orders by Product & Status", charts.OrdersByProductAndStatus),
		},
	},

	domain.ThirdPartySalesSummary: {
		{
			Title: "Inventory Total Revenue by Product",
			Info: "This chart shows how total sales are split across products, next to the number of orders for each product, " +
				"indicating their popularity and helping you manage inventory effectively.",
			Required: []string{"Product name", "Grand total"},
			Notice:   "There is no Grand total or Product name, so visualizing can not be ready",
			Build:    pair("Total Sales", charts.OrderShareByProduct, "Order Distribution", charts.UniqueOrdersByProduct),
		},
		{
			Title: "Top 10 Customers by Sales Amount",
			Info: "This chart highlights your top 10 customers by sales revenue. Prioritize these key relationships to drive future " +
				"sales and consider loyalty programs to encourage repeat business.",
			Required: []string{"Customer", "Product name", "QTY", "Grand total"},
			Notice:   "There is no Customer or Product name or Quantity or Grand total, so visualizing can not be ready",
			Build:    single(charts.TopCustomersByOrderTotals),
		},
		{
			Title:    "Dependence between Quantity and Amount (by Product)",
			Required: []string{"Product name", "QTY", "Grand total"},
			Notice:   "There is no Delivery status or Product name or Quantity or Grand total, so visualizing can not be ready",
			Build:    single(charts.QuantityDistributionByProduct),
		},
		{
			Title:    "Distribution of Discount Types",
			Required: []string{"Discount type"},
			Notice:   "There is no Discount type, so visualizing can not be ready",
			Build:    single(charts.DiscountTypeShare),
		},
		{
			Title: "Sales, Manufacturer, and Customer Discounts Over Time",
			Info: "This area chart displays how the grand total, manufacturer discounts, and customer discounts have fluctuated " +
				"over time. Track how these values change, identifying periods of high discounts and understanding the overall " +
				"impact of discounts on sales revenue.",
			Required: []string{"Grand total", "Manufacturer specific discount", "Customer discount"},
			Notice:   "There is no Grand total or Manufacturer specific discount or Customer discount, so visualizing can not be ready",
			Build:    single(charts.AmountBreakdownOverRows),
		},
	},

	domain.BestSellers: {
		{
			Title: "Total Revenue by Product",
			Info: "This chart visualizes the available inventory for each product. Red dots indicate products with negative " +
				"inventory (potential stockouts). Green dots represent products with positive inventory.",
			Required: []string{"Available cases (QTY)", "Product name"},
			Notice:   "There is no Product name or Available cases (QTY) columns, so visualizing can not be ready",
			Build:    single(charts.AvailableCasesByProduct),
		},
		{
			Title: "Inventory Levels of Products Over Time",
			Info: "This chart breaks down the total revenue generated by each product and the number of cases sold, allowing a " +
				"clear comparison of their individual contributions to overall sales.",
			Required: []string{"Product name", "Total revenue", "Cases sold"},
			Notice:   "There is no Total revenue or Product name or Cases sold columns, so visualizing can not be ready",
			Build:    pair("Total Revenue", charts.RevenueByProduct, "Cases Sold", charts.CasesSoldByProduct),
		},
		{
			Title: "Relationship between Cases Sold and Total Revenue",
			Info: "This chart demonstrates the direct relationship between the number of cases sold and the total revenue " +
				"generated. Products with higher cases sold and larger bubble sizes contribute significantly to overall revenue.",
			Required: []string{"Cases sold", "Total revenue"},
			Notice:   "There is no Total revenue or Cases sold columns, so visualizing can not be ready",
			Build:    single(charts.CasesVsRevenue),
		},
		{
			Title: "Average Price Comparison by Category",
			Info: "These charts compare average wholesale and retail prices across categories, revealing which have higher or " +
				"lower prices and guiding sourcing, pricing and inventory decisions.",
			Required: []string{"Category name", "Wholesale price", "Retail price"},
			Notice:   "There is no Category name or Wholesale price or Retail price columns, so visualizing can not be ready",
			Build:    pair("Wholesale Price", charts.AverageWholesalePriceByCategory, "Retail Price", charts.AverageRetailPriceByCategory),
		},
		{
			Title:    "Revenue Analysis",
			Required: []string{"Total revenue", "Product name"},
			Notice:   "There is no Total revenue or Product name columns, so visualizing can not be ready",
			Build:    pair("Revenue vs. Profit", charts.RevenueVsProfitByProduct, "Revenue Breakdown by Category", charts.RevenueByCategory),
		},
	},

	domain.CurrentInventory: {
		{
			Title: "Inventory Value Distribution by Category",
			Info: "This bar chart illustrates the proportional distribution of inventory value across different product " +
				"categories, allowing you to quickly see which categories hold the most significant value within your inventory.",
			Required: []string{"Available cases (QTY)", "Wholesale price", "Category name"},
			Notice:   "There is no Available cases (QTY) or Wholesale price columns, so visualizing can not be ready",
			Build:    single(charts.InventoryValueByCategory),
		},
		{
			Title: "Quantity, Price, and Category: A Multi-Factor View",
			Info: "This scatter plot provides a visual analysis of the interplay between available quantity, retail price, " +
				"category, and wholesale price. Explore how these factors relate to each other, uncover potential trends within " +
				"categories, and identify outliers that might require further investigation.",
			Required: []string{"Available cases (QTY)", "Retail price", "Category name", "Wholesale price"},
			Notice:   "There is no Available cases (QTY) or Retail price or Category name columns, so visualizing can not be ready",
			Build:    single(charts.QuantityVsRetailPrice),
		},
		{
			Title: "Inventory Value Distribution by Manufacturer",
			Info: "This bar chart illustrates the proportional distribution of inventory value across different manufacturers. " +
				"This allows you to see at a glance which manufacturers contribute the most to your overall inventory value.",
			Required: []string{"Available cases (QTY)", "Wholesale price", "Manufacturer name"},
			Notice:   "There is no Available cases (QTY) or Manufacturer name or Wholesale price columns, so visualizing can not be ready",
			Build:    single(charts.InventoryValueByManufacturer),
		},
		{
			Title: "Inventory Value Distribution by Product",
			Info: "This bar chart breaks down the distribution of inventory value across individual products, providing insights " +
				"into which products contribute the most to the overall inventory value.",
			Required: []string{"Wholesale price", "Available cases (QTY)", "Product name"},
			Notice:   "There is no Product name or Available cases (QTY) or Wholesale price columns, so visualizing can not be ready",
			Build:    single(charts.InventoryValueByProduct),
		},
		{
			Title: "Average Retail Price Distribution by Category",
			Info: "This donut chart provides a visual representation of how average retail prices are distributed across " +
				"different product categories. Easily compare the proportions and identify categories with higher or lower " +
				"average prices.",
			Required: []string{"Retail price", "Category name"},
			Notice:   "There is no Category name or Retail price columns, so visualizing can not be ready",
			Build:    single(charts.AverageRetailPriceDonut),
		},
	},

	domain.CustomerDetails: {
		{
			Title: "Comparison of Total Orders and Sales by Customer Group",
			Info: "These visualizations compare total orders and sales for each customer group, revealing valuable insights " +
				"about your most important customer segments.",
			Required: []string{"Group", "Total orders", "Total sales"},
			Notice:   "There is no Group or Total orders or Total sales columns, so visualizing can not be ready",
			Build:    single(charts.OrdersAndSalesByGroup),
		},
		{
			Title: "Payment Terms: Understanding Client Preferences",
			Info: "This visualization shows how your clients are distributed across different payment terms. Use these insights " +
				"to optimize your cash flow management, tailor your offerings to different customer segments, and make informed " +
				"decisions about credit risk.",
			Required: []string{"Payment terms"},
			Notice:   "There is no Payment terms column, so visualizing can not be ready",
			Build:    single(charts.ClientsByPaymentTerms),
		},
		{
			Title: "Sales Value Distribution: Insights for Growth",
			Info: "This visualization reveals how non-zero total sales values are distributed. Use these insights to refine your " +
				"pricing and promotion strategies, enhance sales forecasting, optimize product development, and effectively " +
				"manage potential risks.",
			Required: []string{"Total sales"},
			Notice:   "There is no Total sales column, so visualizing can not be ready",
			Build: single(func(f *frame.Frame) *charts.Figure {
				return charts.NonZeroDistribution(f, "Total sales", 500)
			}),
		},
		{
			Title: "Average Total Sales by Customer Group and State",
			Info: "This heatmap reveals average total sales across customer groups and states. Use it to pinpoint high-performing " +
				"segments and regions, identify areas for growth, and allocate resources efficiently.",
			Required: []string{"Total sales", "Group", "Billing state"},
			Notice:   "There is no Total sales or Group or Billing state columns, so visualizing can not be ready",
			Build:    single(charts.AverageSalesHeatmap),
		},
		{
			Title: "Total Sales Trend by Customer Group",
			Info: "This chart highlights the sales distribution across different customer groups. By identifying which groups " +
				"contribute the most and least to total sales, businesses can prioritize high-value customers and develop " +
				"targeted strategies for each segment.",
			Required: []string{"Total sales", "Group", "Billing state"},
			Notice:   "There is no Total sales or Group or Billing state columns, so visualizing can not be ready",
			Build:    single(charts.SalesTrendByGroup),
		},
	},

	domain.LowStockInventory: {
		{
			Title: "Low Stock Inventory Analysis",
			Info: "This analysis focuses on products with low stock levels. The first chart breaks down these items by category, " +
				"allowing you to quickly pinpoint areas of concern. The second chart visualizes the relationship between " +
				"wholesale price and available quantity, offering a more granular perspective on inventory levels for each product.",
			Required: []string{"Category name", "Product name", "Available cases (QTY)", "Wholesale price"},
			Notice:   "There is no Available cases (QTY) or Category name or Product name columns, so visualizing can not be ready",
			Build:    pair("Distribution by Category", charts.LowStockByCategory, "Price vs. Quantity", charts.WholesalePriceVsQuantity),
		},
		{
			Title: "Profit Margins: Low Stock Items",
			Info: "This bar chart highlights the profit margins of your low-stock items, sorted from highest to lowest. " +
				"Prioritize replenishing high-margin products to maximize potential revenue and avoid stockouts.",
			Required: []string{"Retail price", "Wholesale price", "Product name"},
			Notice:   "There is no Product name or Retail price or Wholesale price columns, so visualizing can not be ready",
			Build:    single(charts.ProfitMarginByProduct),
		},
		{
			Title: "Low Stock Items by Manufacturer",
			Info: "This bar chart highlights the manufacturers with the highest number of low-stock items, providing insights " +
				"into potential supplier-related challenges or product popularity.",
			Required: []string{"Manufacturer name", "Product name"},
			Notice:   "There is no Manufacturer name or Product name columns, so visualizing can not be ready",
			Build:    single(charts.LowStockByManufacturer),
		},
		{
			Title: "Price vs. Quantity: Low-Stock Items",
			Info: "This scatter plot explores the relationship between wholesale price and available quantity for products " +
				"currently low in stock. The trendline helps you visualize the general association between these factors.",
			Required: []string{"Wholesale price", "Available cases (QTY)"},
			Notice:   "There is no Available cases (QTY) or Wholesale price columns, so visualizing can not be ready",
			Build:    single(charts.PriceVsQuantityTrend),
		},
		{
			Title: "Quantity/Price Ratio: Low-Stock Items",
			Info: "This horizontal bar chart visualizes the ratio of available quantity to retail price for each low-stock item. " +
				"Products with higher ratios might indicate overstocking or potential pricing issues, while those with lower " +
				"ratios could signal high demand or potential stock shortages.",
			Required: []string{"Retail price", "Available cases (QTY)", "Product name"},
			Notice:   "There is no Available cases (QTY) or Retail price columns, so visualizing can not be ready",
			Build:    single(charts.QuantityPriceRatio),
		},
	},

	domain.SKUNotOrdered: {
		{
			Title: "Unordered Products: A Category-Based View",
			Info: "This bar chart displays the number of unordered products in each category. Use this visualization to identify " +
				"potential stock shortages, prioritize reordering, and refine your inventory management strategies.",
			Required: []string{"Category Name"},
			Notice:   "There is no Category Name column, so visualizing can not be ready",
			Build:    single(charts.UnorderedProductsByCategory),
		},
		{
			Title: "Distribution of Products by Stock Level",
			Info: "This donut chart presents a clear picture of how your products are distributed across different stock levels. " +
				"It provides a quick assessment of potential stock shortages (\"Low Stock\"), healthy inventory levels " +
				"(\"Medium Stock\"), and potential overstocking (\"High Stock\").",
			Required: []string{"Available Cases (QTY)"},
			Notice:   "There is no Available cases (QTY) column, so visualizing can not be ready",
			Build:    single(charts.StockLevelDistribution),
		},
		{
			Title:    "Distribution of Products by Stock Level",
			Required: []string{"Category Name", "Retail Price", "Available Cases (QTY)"},
			Notice:   "There is no Category Name or Retail Price or Available Cases (QTY) columns, so visualizing can not be ready",
			Build:    single(charts.RetailPriceVsCasesByCategory),
		},
		{
			Title:    "Profit & Pricing: Analyzing Relationships",
			Required: []string{"Available Cases (QTY)", "Retail Price", "Wholesale Price", "Category Name"},
			Notice:   "There is no Available Cases (QTY) or Retail Price or Wholesale Price columns, so visualizing can not be ready",
			Build:    pair("Available Cases vs Profit Margin", charts.CasesVsProfitMargin, "Wholesale vs Retail Price", charts.WholesaleVsRetailPrice),
		},
		{
			Title: "Unordered Products: Category and Price View",
			Info: "This bar chart displays the average available cases for each product category across different retail price " +
				"ranges. Use this information to identify potential stock imbalances within price ranges and make informed " +
				"decisions about inventory management and pricing strategies.",
			Required: []string{"Category Name", "Retail Price"},
			Notice:   "There is no Category name or Retail price columns, so visualizing can not be ready",
			Build:    single(charts.UnorderedByCategoryAndPriceRange),
		},
	},

	domain.RepDetails: {
		{
			Title: "Visit Distribution: Understanding Role Contributions",
			Info: "This interactive donut chart provides a clear picture of how total visits are distributed among your sales " +
				"roles. By visualizing these proportions, you can gain a better understanding of each role's contribution to " +
				"overall sales efforts.",
			Required: []string{"Total working hours", "Total visits", "Assigned customers", "Role"},
			Notice:   "There is no Total working hours or Total visits or Assigned customers or Role columns, so visualizing can not be ready",
			Build:    single(charts.VisitsByRole),
		},
		{
			Title: "Active Customers vs. Total Visits (Sales Reps)",
			Info: "This scatter plot explores the relationship between the number of active customers a sales representative " +
				"handles and their total number of visits.",
			Required: []string{"Role", "Active customers", "Total visits"},
			Notice:   "There is no Role or Active customers or Total visits columns, so visualizing can not be ready",
			Build:    single(charts.ActiveCustomersVsVisits),
		},
		{
			Title:    "Travel Efficiency: Distance vs. Visits",
			Info:     "Use this plot to identify trends, outliers, and opportunities to optimize travel routes.",
			Required: []string{"Total travel distance", "Total visits", "Role"},
			Notice:   "There is no Total travel distance or Total visits or Role columns, so visualizing can not be ready",
			Build:    single(charts.TravelDistanceVsVisits),
		},
		{
			Title: "Workload and Travel: Insights into Top Performers",
			Info: "These bar charts, separated into tabs for easy navigation, highlight the top 10 employees based on pure work " +
				"hours and total travel distance. Use these visualizations to identify potential workload imbalances, analyze " +
				"travel patterns, and explore ways to optimize efficiency and resource allocation.",
			Required: []string{"Total working hours", "Total break hours", "Total travel distance"},
			Notice:   "There is no Total working hours or Total break hours or Total travel distance columns, so visualizing can not be ready",
			Build:    pair("Pure Work Hours", charts.TopRepsByWorkHours, "Total Travel Distance", charts.TopRepsByTravelDistance),
		},
		{
			Title: "Travel Efficiency: Distance vs. Visits",
			Info: "These scatter plots analyze the relationship between total visits and the number of photos taken by team " +
				"members for each role. This visualization helps to understand engagement levels and photo-taking patterns.",
			Required: []string{"Role", "Total visits", "Total photos"},
			Notice:   "There is no Role or Total visits or Total photos columns, so visualizing can not be ready",
			Build: func(f *frame.Frame) ([]Tab, error) {
				var tabs []Tab
				for i, role := range charts.Roles(f) {
					tabs = append(tabs, Tab{Title: role, Figure: charts.VisitsVsPhotosForRole(f, role, i)})
				}
				return tabs, nil
			},
		},
		{
			Title: "Assigned Customers per Sales Representative",
			Info: "The bar plot above shows the number of assigned customers per sales representative. This visualization helps " +
				"to identify potential imbalances in workload or variations in customer assignments.",
			Required: []string{"Role", "Assigned customers"},
			Notice:   "There is no Role or Assigned customers columns, so visualizing can not be ready",
			Build:    single(charts.AssignedCustomersPerRep),
		},
	},

	domain.RepsSummary: {
		{
			Title: "Revenue Trends: Monthly Performance by Role",
			Info: "This bar chart presents a breakdown of revenue generated each month, categorized by sales role. Analyze these " +
				"trends to identify periods of strong performance, potential seasonal variations, and opportunities for targeted " +
				"improvements in specific months or for particular roles.",
			Required: []string{"Date", "Role", "Total revenue"},
			Notice:   "There is no Date or Role or Total revenue columns, so visualizing can not be ready",
			Build:    single(charts.RevenueByMonthAndRole),
		},
		{
			Title:    "Sales Patterns: Cases Sold by Day of the Week",
			Required: []string{"Date"},
			Notice:   "There is no Date column, so visualizing can not be ready",
			Build:    single(charts.CasesSoldByDayOfWeek),
		},
		{
			Title: "Revenue Trends: Monthly Performance by Role",
			Info: "This line chart tracks the revenue generated by Merchandisers and Sales Representatives each month, allowing " +
				"you to visualize revenue fluctuations and compare performance trends between roles.",
			Required: []string{"Date", "Total revenue", "Role"},
			Notice:   "There is no Date or Total revenue or Role columns, so visualizing can not be ready",
			Build:    single(charts.RevenueTrendByMonthAndRole),
		},
		{
			Title: "Individual Performance: Visits and Travel",
			Info: "This bar chart provides a comparative view of the total visits and travel distance covered by each sales " +
				"representative. By analyzing individual performance metrics, you can identify top performers, potential areas " +
				"for improvement in travel efficiency, and opportunities for optimized resource allocation.",
			Required: []string{"Name", "Visits", "Travel distance"},
			Notice:   "There is no Name or Visits or Travel distance columns, so visualizing can not be ready",
			Build:    single(charts.VisitsAndTravelByName),
		},
		{
			Title:  "Individual Performance: Visits and Travel",
			Notice: "There is no Cases sold or Total revenue or Visits or Travel distance columns, so visualizing can not be ready",
			Build: func(f *frame.Frame) ([]Tab, error) {
				return []Tab{
					{Figure: charts.RevenueAndConversionByRep(f)},
					{Figure: charts.RevenueAndOrdersByRole(f)},
				}, nil
			},
		},
	},

	domain.RepsVisits: {
		{
			Title: "Direct vs. 3rd Party Sales Performance by Business",
			Info: "This grouped bar chart compares the performance of direct sales against 3rd party sales for each business. " +
				"It helps identify which sales channel performs better at different businesses and provides insights into " +
				"potential areas for improvement or expansion.",
			Required: []string{"Business Name", "Cases sold (Direct)", "Cases sold (3rd party)"},
			Notice:   "There is some error with plot, so visualizing can not be ready",
			Build:    single(charts.DirectVsThirdPartySales),
		},
		{
			Title: "Total Cases Sold Over Time by Sales Representative",
			Info: "This line chart visualizes the total cases sold over time by each sales representative. It helps track " +
				"performance trends, identify high-performing representatives, and analyze sales activity on specific dates.",
			Required: []string{"Name", "Date", "Cases sold total"},
			Notice:   "There is some error with plot, so visualizing can not be ready",
			Build:    single(charts.CasesSoldOverTimeByRep),
		},
	},

	domain.InventoryDepletion: {
		{
			Title: "Top 12 Inventory Depletion by Business",
			Info: "This bar chart visualizes the top 12 products with the highest depletion quantities across different " +
				"businesses. The stacked bars represent the contribution of each product to the total inventory depletion for " +
				"each business.",
			Build: single(charts.InventoryDepletionByBusiness),
		},
	},

	domain.ProductFulfillment: {
		{
			Title: "Quantity Delivered and Returned per Sales Representative",
			Info: "Grouped bar chart with two bars per sales representative, one for delivered quantities and one for returned " +
				"quantities. It provides insight into sales rep activity, highlighting potential issues with high return rates.",
			Build: single(charts.DeliveredVsReturnedPerRep),
		},
		{
			Title: "Total Quantity Sold Over Time",
			Info: "This visualization is a line chart showing the total quantity of products sold (delivered) over time, " +
				"aggregated by month. It tracks sales performance trends, helping businesses identify seasonal patterns or " +
				"growth opportunities.",
			Build: single(charts.QuantitySoldOverTime),
		},
	},
}

// Manifest exposes the panel declarations for a report type. The
// second return is false for types with no visualization support.
func Manifest(t domain.ReportType) ([]PanelSpec, bool) {
	specs, ok := manifest[t]
	return specs, ok
}
