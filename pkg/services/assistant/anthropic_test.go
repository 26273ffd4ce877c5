package assistant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-deck/pkg/frame"
	"github.com/de-tools/report-deck/pkg/models/domain"
)

func TestParseFigure(t *testing.T) {
	reply := "Here is your chart:\n" +
		`{"data":[{"type":"bar","x":["a","b"],"y":[1,2]}],"layout":{"title":"Sales"}}` +
		"\nEnjoy!"

	fig := parseFigure(reply)

	require.NotNil(t, fig)
	require.Len(t, fig.Data, 1)
	assert.Equal(t, "bar", fig.Data[0].Type)
	assert.Equal(t, "Sales", fig.Layout.Title)
}

func TestParseFigureRejects(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"none sentinel", "NONE"},
		{"empty reply", ""},
		{"no traces", `{"data":[],"layout":{"title":"x"}}`},
		{"broken json", `{"data":[`},
		{"plain prose", "I cannot build a chart from this data."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, parseFigure(tt.reply))
		})
	}
}

func TestGrandTotalSummary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "order_sales_summary.csv")
	csv := "Customer,Grand total\nAcme,\"1,200.50\"\nGlobex,99.50\nBad,oops\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	got := grandTotalSummary(domain.OrderSalesSummary, path)
	assert.Contains(t, got, "$1300.00")

	assert.Empty(t, grandTotalSummary(domain.TopCustomers, path))
	assert.Empty(t, grandTotalSummary(domain.OrderSalesSummary, filepath.Join(dir, "missing.csv")))
}

func TestFrameCSVQuotesSpecialCells(t *testing.T) {
	f := frame.New(
		[]string{"Name", "Territory"},
		[][]string{
			{"Acme, Inc.", "North"},
			{`Globex "West"`, "South"},
		},
	)

	got := frameCSV(f, 100)

	assert.Equal(t, "Name,Territory\n\"Acme, Inc.\",North\n\"Globex \"\"West\"\"\",South\n", got)
}

func TestFrameCSVLimitsRows(t *testing.T) {
	f := frame.New(
		[]string{"Name"},
		[][]string{{"a"}, {"b"}, {"c"}},
	)

	assert.Equal(t, "Name\na\n", frameCSV(f, 1))
}

func failingGateway(t *testing.T) *anthropicGateway {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"type":"error","error":{"type":"invalid_request_error","message":"bad request"}}`, http.StatusBadRequest)
	}))
	t.Cleanup(srv.Close)
	return &anthropicGateway{
		client: anthropic.NewClient(option.WithAPIKey("test"), option.WithBaseURL(srv.URL)),
		model:  anthropic.Model(defaultModel),
	}
}

func TestAnswerUnavailableOnUpstreamError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top_customers.csv")
	require.NoError(t, os.WriteFile(path, []byte("Name,Total sales\nAcme,100\n"), 0o644))

	g := failingGateway(t)
	_, err := g.Answer(context.Background(), domain.TopCustomers, "who buys most?", path)

	assert.ErrorIs(t, err, domain.ErrAssistantUnavailable)
}

func TestChartFromTextUnavailableOnUpstreamError(t *testing.T) {
	f := frame.New([]string{"Name", "Total sales"}, [][]string{{"Acme", "100"}})

	g := failingGateway(t)
	_, err := g.ChartFromText(context.Background(), f, "sales by customer")

	assert.ErrorIs(t, err, domain.ErrAssistantUnavailable)
}

func TestSuggestionsAreStable(t *testing.T) {
	assert.Len(t, ChatSuggestions, 5)
	assert.Len(t, ChartSuggestions, 3)
}
