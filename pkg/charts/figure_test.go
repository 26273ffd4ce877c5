package charts

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-deck/pkg/frame"
)

func TestCategoryDistribution(t *testing.T) {
	f := frame.New([]string{"Category name"}, [][]string{
		{"Soda"}, {"Soda"}, {"Water"}, {"Soda"},
	})

	fig := CategoryDistribution(f, "Category name")

	require.Len(t, fig.Data, 1)
	assert.Equal(t, "bar", fig.Data[0].Type)
	assert.Equal(t, []any{"Soda", "Water"}, fig.Data[0].X)
	assert.Equal(t, []any{3.0, 1.0}, fig.Data[0].Y)
	assert.Equal(t, []string{"75.0%", "25.0%"}, fig.Data[0].Text)
}

func TestCategoryDistributionMissingColumn(t *testing.T) {
	f := frame.New([]string{"Other"}, [][]string{{"x"}})

	fig := CategoryDistribution(f, "Category name")

	assert.Empty(t, fig.Data)
	assert.Equal(t, "Distribution by Category name", fig.Layout.Title)
}

func TestFigureJSONShape(t *testing.T) {
	fig := CategoryDistribution(frame.New([]string{"C"}, [][]string{{"a"}}), "C")

	raw, err := json.Marshal(fig)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "data")
	assert.Contains(t, decoded, "layout")

	layout := decoded["layout"].(map[string]any)
	assert.Equal(t, "plotly_white", layout["template"])
}

func TestPreprocessFillsBlanks(t *testing.T) {
	f := frame.New([]string{"A", "B"}, [][]string{
		{"1", "  "},
		{"", "x"},
	})

	p := Preprocess(f)

	assert.Equal(t, "0", p.Value(0, "B"))
	assert.Equal(t, "0", p.Value(1, "A"))
	assert.Equal(t, "x", p.Value(1, "B"))
	assert.Equal(t, "", f.Value(1, "A"), "input frame untouched")
}

func TestExportPNGSeries(t *testing.T) {
	fig := &Figure{
		Data: []Trace{{
			Type: "scatter",
			Mode: "lines",
			Name: "revenue",
			X:    []any{"Jan", "Feb", "Mar"},
			Y:    []any{1.0, 2.0, 3.0},
		}},
		Layout: Layout{Title: "Revenue"},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportPNG(fig, &buf))
	assert.Equal(t, []byte("\x89PNG"), buf.Bytes()[:4])
}

func TestExportPNGPie(t *testing.T) {
	fig := &Figure{
		Data: []Trace{{
			Type:   "pie",
			Labels: []string{"a", "b"},
			Values: []any{3.0, 1.0},
		}},
		Layout: Layout{Title: "Share"},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportPNG(fig, &buf))
	assert.Equal(t, []byte("\x89PNG"), buf.Bytes()[:4])
}

func TestExportPNGEmptyFigure(t *testing.T) {
	var buf bytes.Buffer
	err := ExportPNG(emptyFigure("nothing"), &buf)
	assert.Error(t, err)
}
