package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-deck/pkg/charts"
	"github.com/de-tools/report-deck/pkg/frame"
	"github.com/de-tools/report-deck/pkg/models/domain"
	"github.com/de-tools/report-deck/pkg/services/viz"
)

func TestMapReport(t *testing.T) {
	f := frame.New([]string{"Name"}, [][]string{{"Acme"}})

	got := MapReport(domain.TopCustomers, f)

	assert.Equal(t, "TOP_CUSTOMERS", got.Type)
	assert.Equal(t, "Top Customers", got.DisplayName)
	assert.False(t, got.Empty)
	assert.Empty(t, got.Notice)
	assert.Equal(t, [][]string{{"Acme"}}, got.Rows)
	assert.NotEmpty(t, got.ChatSuggestions)
	assert.NotEmpty(t, got.ChartSuggestions)
}

func TestMapReportEmptyFrame(t *testing.T) {
	got := MapReport(domain.BestSellers, frame.New([]string{"Name"}, nil))

	assert.True(t, got.Empty)
	assert.Equal(t, emptyReportNotice, got.Notice)
}

func TestMapPanels(t *testing.T) {
	fig := &charts.Figure{Data: []charts.Trace{{Type: "bar"}}}
	results := []viz.PanelResult{
		{Title: "Sales", Info: "about sales", Tabs: []viz.Tab{{Title: "By City", Figure: fig}}},
		{Title: "Broken", Notice: viz.UnavailableNotice},
	}

	got := MapPanels(results)

	require.Len(t, got, 2)
	assert.Equal(t, "Sales", got[0].Title)
	require.Len(t, got[0].Tabs, 1)
	assert.Equal(t, "By City", got[0].Tabs[0].Title)
	assert.Empty(t, got[0].Notice)
	assert.Equal(t, viz.UnavailableNotice, got[1].Notice)
	assert.Empty(t, got[1].Tabs)
}
