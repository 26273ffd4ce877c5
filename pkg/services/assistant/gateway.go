package assistant

import (
	"context"

	"github.com/de-tools/report-deck/pkg/charts"
	"github.com/de-tools/report-deck/pkg/frame"
	"github.com/de-tools/report-deck/pkg/models/domain"
)

const (
	// ChatFailureNotice is shown when the answer capability fails.
	ChatFailureNotice = "There is some error occurred, try to give more details to your prompt"

	// NoChartNotice is shown when no figure came back for a chart request.
	NoChartNotice = "No visualizations were generated for this query."
)

// Gateway is the external AI collaborator. Both calls are synchronous
// and single-attempt; callers convert any error into the fixed
// user-facing notices.
type Gateway interface {
	// Answer sends a natural-language question about the report file
	// and returns the model's plain-text reply.
	Answer(ctx context.Context, t domain.ReportType, question, csvPath string) (string, error)

	// ChartFromText asks for a chart matching the request. A nil
	// figure with a nil error means the model produced nothing
	// renderable.
	ChartFromText(ctx context.Context, f *frame.Frame, text string) (*charts.Figure, error)
}

// ChatSuggestions are the canned questions the frontend offers for
// the chat box.
var ChatSuggestions = []string{
	"Provide a brief summary of key insights for a business owner",
	"Identify the top 3 critical dependencies in the data",
	"Summarize the most important performance metrics from this CSV",
	"Highlight any significant trends or patterns in the data",
	"Generate a concise report of data anomalies or outliers",
}

// ChartSuggestions are the canned requests offered for the chart box.
var ChartSuggestions = []string{
	"Plot some useful chart with interesting data dependencies",
	"Build a distribution of data from the most useful column",
	"Build a visualization for the columns that can show useful dependencies",
}
