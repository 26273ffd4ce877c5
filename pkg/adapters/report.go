package adapters

import (
	"github.com/de-tools/report-deck/pkg/frame"
	"github.com/de-tools/report-deck/pkg/models/api"
	"github.com/de-tools/report-deck/pkg/models/domain"
	"github.com/de-tools/report-deck/pkg/services/assistant"
	"github.com/de-tools/report-deck/pkg/services/viz"
)

const emptyReportNotice = "This data report is empty - try downloading another one to get better visualizations"

// MapReport builds the table-view payload from a formatted frame.
func MapReport(t domain.ReportType, f *frame.Frame) api.Report {
	report := api.Report{
		Type:             t.Code(),
		DisplayName:      t.DisplayName(),
		Empty:            f.Empty(),
		Columns:          f.Columns(),
		Rows:             f.Rows(),
		ChatSuggestions:  assistant.ChatSuggestions,
		ChartSuggestions: assistant.ChartSuggestions,
	}
	if report.Empty {
		report.Notice = emptyReportNotice
	}
	return report
}

// MapPanels converts dispatcher output to the API shape.
func MapPanels(results []viz.PanelResult) []api.Panel {
	panels := make([]api.Panel, 0, len(results))
	for _, r := range results {
		panel := api.Panel{
			Title:  r.Title,
			Info:   r.Info,
			Notice: r.Notice,
		}
		for _, tab := range r.Tabs {
			panel.Tabs = append(panel.Tabs, api.PanelTab{Title: tab.Title, Figure: tab.Figure})
		}
		panels = append(panels, panel)
	}
	return panels
}
