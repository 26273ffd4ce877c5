package viz

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/de-tools/report-deck/pkg/charts"
	"github.com/de-tools/report-deck/pkg/frame"
	"github.com/de-tools/report-deck/pkg/models/domain"
)

const (
	// NonStandardNotice is the single panel shown for report types
	// without a manifest entry.
	NonStandardNotice = "Your report is not standard, so there are no additional visualizations"

	// UnavailableNotice replaces a panel whose builder failed.
	UnavailableNotice = "This visualization is temporarily unavailable"
)

// Renderer turns a report frame into the ordered list of dashboard
// panels for its type.
type Renderer interface {
	Render(ctx context.Context, t domain.ReportType, f *frame.Frame) []PanelResult
	ExportPanel(ctx context.Context, t domain.ReportType, f *frame.Frame, panel int) (*charts.Figure, error)
}

type renderer struct{}

func NewRenderer() Renderer {
	return &renderer{}
}

// Render evaluates every panel of the type's manifest in declared
// order. A panel with missing columns degrades to its notice, a panel
// whose builder errors or panics degrades to the generic unavailable
// notice, and the remaining panels still render.
func (r *renderer) Render(ctx context.Context, t domain.ReportType, f *frame.Frame) []PanelResult {
	logger := zerolog.Ctx(ctx)

	specs, ok := Manifest(t)
	if !ok {
		return []PanelResult{{Notice: NonStandardNotice}}
	}

	prepared := charts.Preprocess(f)

	results := make([]PanelResult, 0, len(specs))
	for _, spec := range specs {
		if missing := prepared.MissingColumns(spec.Required...); len(missing) > 0 {
			logger.Debug().
				Str("report_type", t.Code()).
				Str("panel", spec.Title).
				Strs("missing_columns", missing).
				Msg("panel skipped")
			results = append(results, PanelResult{Title: spec.Title, Notice: spec.Notice})
			continue
		}

		tabs, err := buildPanel(spec, prepared)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("report_type", t.Code()).
				Str("panel", spec.Title).
				Msg("panel render failed")
			results = append(results, PanelResult{Title: spec.Title, Notice: UnavailableNotice})
			continue
		}
		results = append(results, PanelResult{Title: spec.Title, Info: spec.Info, Tabs: tabs})
	}
	return results
}

// ExportPanel renders the first figure of the indexed panel for the
// static export endpoint.
func (r *renderer) ExportPanel(ctx context.Context, t domain.ReportType, f *frame.Frame, panel int) (*charts.Figure, error) {
	specs, ok := Manifest(t)
	if !ok {
		return nil, domain.ErrUnknownReportType
	}
	if panel < 0 || panel >= len(specs) {
		return nil, domain.ErrPanelNotFound
	}
	if f.Empty() {
		return nil, domain.ErrEmptyReport
	}
	spec := specs[panel]
	if missing := f.MissingColumns(spec.Required...); len(missing) > 0 {
		return nil, fmt.Errorf("panel %q: missing columns %v: %w", spec.Title, missing, domain.ErrPanelNotFound)
	}
	tabs, err := buildPanel(spec, charts.Preprocess(f))
	if err != nil {
		return nil, fmt.Errorf("build panel %q: %w", spec.Title, err)
	}
	if len(tabs) == 0 || tabs[0].Figure == nil {
		return nil, domain.ErrPanelNotFound
	}
	return tabs[0].Figure, nil
}

// buildPanel isolates builder panics so one broken panel cannot take
// down the whole response.
func buildPanel(spec PanelSpec, f *frame.Frame) (tabs []Tab, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panel %q panicked: %v", spec.Title, rec)
		}
	}()
	return spec.Build(f)
}
