package viz

import (
	"github.com/de-tools/report-deck/pkg/charts"
	"github.com/de-tools/report-deck/pkg/frame"
)

// Tab is one rendered figure inside a panel. Panels with a single
// figure carry one tab with an empty title.
type Tab struct {
	Title  string
	Figure *charts.Figure
}

// PanelSpec declares one visualization panel of a report type: the
// columns it needs and the builder that produces its tabs. Build
// receives a preprocessed copy of the report frame and may return tab
// titles derived from the data itself.
type PanelSpec struct {
	Title    string
	Info     string
	Required []string
	Notice   string
	Build    func(f *frame.Frame) ([]Tab, error)
}

// PanelResult is the rendered outcome of one panel, in manifest order.
// Exactly one of Tabs or Notice is populated.
type PanelResult struct {
	Title  string
	Info   string
	Tabs   []Tab
	Notice string
}

// single adapts a one-figure builder into the tabbed Build shape.
func single(build func(*frame.Frame) *charts.Figure) func(*frame.Frame) ([]Tab, error) {
	return func(f *frame.Frame) ([]Tab, error) {
		return []Tab{{Figure: build(f)}}, nil
	}
}

// pair adapts two fixed-title figure builders into one tabbed panel.
func pair(t1 string, b1 func(*frame.Frame) *charts.Figure, t2 string, b2 func(*frame.Frame) *charts.Figure) func(*frame.Frame) ([]Tab, error) {
	return func(f *frame.Frame) ([]Tab, error) {
		return []Tab{
			{Title: t1, Figure: b1(f)},
			{Title: t2, Figure: b2(f)},
		}, nil
	}
}
