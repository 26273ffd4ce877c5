package viz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-deck/pkg/frame"
	"github.com/de-tools/report-deck/pkg/models/domain"
)

func topCustomersFrame(columns []string, row []string) *frame.Frame {
	return frame.New(columns, [][]string{row})
}

func TestRenderUnknownType(t *testing.T) {
	r := NewRenderer()

	got := r.Render(context.Background(), domain.ReportTypeUnknown, frame.New([]string{"A"}, [][]string{{"1"}}))

	require.Len(t, got, 1)
	assert.Equal(t, NonStandardNotice, got[0].Notice)
	assert.Empty(t, got[0].Tabs)
}

func TestRenderAllPanels(t *testing.T) {
	f := topCustomersFrame(
		[]string{"Name", "Total sales", "Territory", "Payment terms", "Group", "Billing city"},
		[]string{"Acme", "1200", "North", "Net 30", "Retail", "Austin"},
	)

	got := NewRenderer().Render(context.Background(), domain.TopCustomers, f)

	require.Len(t, got, 4)
	for _, p := range got {
		assert.Empty(t, p.Notice, p.Title)
		assert.NotEmpty(t, p.Tabs, p.Title)
	}
	assert.Equal(t, "Customer Sales Analysis", got[0].Title)
	assert.Len(t, got[0].Tabs, 3)
}

func TestRenderMissingColumnDegradesOnePanel(t *testing.T) {
	f := topCustomersFrame(
		[]string{"Name", "Total sales", "Territory", "Group", "Billing city"},
		[]string{"Acme", "1200", "North", "Retail", "Austin"},
	)

	got := NewRenderer().Render(context.Background(), domain.TopCustomers, f)

	require.Len(t, got, 4)
	assert.Empty(t, got[0].Notice, "sales analysis panel still renders")
	require.Len(t, got[0].Tabs, 2, "payment terms tab omitted")
	assert.Equal(t, "Top Customers", got[0].Tabs[0].Title)
	assert.Equal(t, "Territory Analysis", got[0].Tabs[1].Title)
	assert.Equal(t,
		"There is no Payment terms column, so visualizing can not be ready",
		got[1].Notice)
	assert.Empty(t, got[2].Notice, "total sales panel still renders")
	assert.NotEmpty(t, got[2].Tabs)
	assert.Empty(t, got[3].Notice)
}

func TestRenderPanelOrderIsStable(t *testing.T) {
	f := topCustomersFrame(
		[]string{"Name", "Total sales", "Territory", "Payment terms", "Group", "Billing city"},
		[]string{"Acme", "1200", "North", "Net 30", "Retail", "Austin"},
	)

	first := NewRenderer().Render(context.Background(), domain.TopCustomers, f)
	second := NewRenderer().Render(context.Background(), domain.TopCustomers, f)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Title, second[i].Title)
	}
}

func TestRenderBuilderPanicDegradesToNotice(t *testing.T) {
	spec := PanelSpec{
		Title: "Broken",
		Build: func(*frame.Frame) ([]Tab, error) {
			panic("boom")
		},
	}

	tabs, err := buildPanel(spec, frame.New([]string{"A"}, nil))

	assert.Nil(t, tabs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
}

func TestExportPanel(t *testing.T) {
	f := topCustomersFrame(
		[]string{"Name", "Total sales", "Territory", "Payment terms"},
		[]string{"Acme", "1200", "North", "Net 30"},
	)
	r := NewRenderer()

	fig, err := r.ExportPanel(context.Background(), domain.TopCustomers, f, 0)
	require.NoError(t, err)
	require.NotNil(t, fig)
	assert.NotEmpty(t, fig.Data)
}

func TestExportPanelOutOfRange(t *testing.T) {
	f := frame.New([]string{"A"}, [][]string{{"1"}})
	r := NewRenderer()

	_, err := r.ExportPanel(context.Background(), domain.TopCustomers, f, 99)
	assert.True(t, errors.Is(err, domain.ErrPanelNotFound))

	_, err = r.ExportPanel(context.Background(), domain.ReportTypeUnknown, f, 0)
	assert.True(t, errors.Is(err, domain.ErrUnknownReportType))
}

func TestExportPanelEmptyReport(t *testing.T) {
	f := frame.New([]string{"Name", "Total sales", "Territory"}, nil)

	_, err := NewRenderer().ExportPanel(context.Background(), domain.TopCustomers, f, 0)
	assert.True(t, errors.Is(err, domain.ErrEmptyReport))
}

func TestManifestCoversEveryKnownType(t *testing.T) {
	for _, rt := range domain.ReportTypes() {
		specs, ok := Manifest(rt)
		assert.True(t, ok, rt.Code())
		assert.NotEmpty(t, specs, rt.Code())
		for _, spec := range specs {
			assert.NotNil(t, spec.Build, "%s: %s", rt.Code(), spec.Title)
			if len(spec.Required) > 0 {
				assert.NotEmpty(t, spec.Notice, "%s: %s", rt.Code(), spec.Title)
			}
		}
	}
}
