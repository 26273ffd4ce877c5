package report

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/report-deck/pkg/adapters"
	"github.com/de-tools/report-deck/pkg/charts"
	"github.com/de-tools/report-deck/pkg/models/api"
	"github.com/de-tools/report-deck/pkg/models/domain"
	"github.com/de-tools/report-deck/pkg/services/assistant"
	reportsvc "github.com/de-tools/report-deck/pkg/services/report"
	"github.com/de-tools/report-deck/pkg/services/viz"
	"github.com/de-tools/report-deck/pkg/store/session"
	"github.com/de-tools/report-deck/pkg/store/upstream"
)

const (
	upstreamNotice   = "This page was reloaded, so you need to run the report again. After running the report, you may close this page."
	downloadNotice   = "Something wrong with data. Try to rerun the report."
	conversionNotice = "Oops, something went wrong. Please try updating the page."
	noReportNotice   = "No file has been uploaded or downloaded yet"
)

type Handler struct {
	sessions session.Store
	upstream upstream.Client
	renderer viz.Renderer
	gateway  assistant.Gateway
}

func NewHandler(sessions session.Store, up upstream.Client, renderer viz.Renderer, gateway assistant.Gateway) *Handler {
	return &Handler{
		sessions: sessions,
		upstream: up,
		renderer: renderer,
		gateway:  gateway,
	}
}

func sessionFrom(r *http.Request) domain.Session {
	if s, ok := domain.SessionFromContext(r.Context()); ok {
		return s
	}
	return domain.Session{ID: chi.URLParam(r, "session")}
}

// FetchReport pulls the latest report from the upstream service into
// the session directory and identifies its type.
func (h *Handler) FetchReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	s := sessionFrom(r)

	info, err := h.upstream.GetFileInfo(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("file info fetch failed")
		writeError(w, http.StatusBadGateway, upstreamNotice)
		return
	}

	code := info.FileName
	if code == "" {
		code = reportsvc.ExtractUpstreamName(info.URL)
	}

	body, err := h.upstream.Download(ctx, info.URL)
	if err != nil {
		logger.Warn().Err(err).Str("url", info.URL).Msg("report download failed")
		writeError(w, http.StatusBadGateway, downloadNotice)
		return
	}
	defer body.Close()

	csvPath, err := h.sessions.SaveReport(ctx, s, code, body)
	if err != nil {
		logger.Error().Err(err).Msg("report save failed")
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrUnsupportedFormat) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, conversionNotice)
		return
	}
	h.sessions.Cleanup(ctx, s)

	t := reportsvc.IdentifyCode(code)
	if f, err := h.sessions.Frame(ctx, s); err == nil {
		if diff := reportsvc.CheckReport(t, f); !diff.Clean() {
			logger.Warn().
				Str("report_type", t.Code()).
				Strs("missing", diff.Missing).
				Strs("extra", diff.Extra).
				Msg("report columns differ from expected set")
		}
	}

	writeJSON(w, http.StatusOK, api.FetchResult{
		Type:        t.Code(),
		DisplayName: t.DisplayName(),
		FileName:    filepath.Base(csvPath),
	})
}

// GetReport returns the table view with per-type display formatting.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s := sessionFrom(r)

	f, err := h.sessions.Frame(ctx, s)
	if err != nil {
		h.reportError(w, r, err)
		return
	}

	path, _ := h.sessions.ReportPath(s)
	t := reportsvc.IdentifyPath(path)
	writeJSON(w, http.StatusOK, adapters.MapReport(t, reportsvc.FormatForDisplay(t, f)))
}

// GetPanels returns the dispatcher output for the session's report.
// An empty report suppresses all panels.
func (h *Handler) GetPanels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s := sessionFrom(r)

	f, err := h.sessions.Frame(ctx, s)
	if err != nil {
		h.reportError(w, r, err)
		return
	}
	if f.Empty() {
		writeJSON(w, http.StatusOK, []api.Panel{})
		return
	}

	path, _ := h.sessions.ReportPath(s)
	t := reportsvc.IdentifyPath(path)
	writeJSON(w, http.StatusOK, adapters.MapPanels(h.renderer.Render(ctx, t, f)))
}

// ExportPanel renders a static PNG of a panel's first figure.
func (h *Handler) ExportPanel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	s := sessionFrom(r)

	panel, err := strconv.Atoi(chi.URLParam(r, "panel"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "panel index must be a number")
		return
	}

	f, err := h.sessions.Frame(ctx, s)
	if err != nil {
		h.reportError(w, r, err)
		return
	}

	path, _ := h.sessions.ReportPath(s)
	t := reportsvc.IdentifyPath(path)

	fig, err := h.renderer.ExportPanel(ctx, t, f, panel)
	if err != nil {
		if errors.Is(err, domain.ErrPanelNotFound) || errors.Is(err, domain.ErrUnknownReportType) {
			writeError(w, http.StatusNotFound, "panel not found")
			return
		}
		if errors.Is(err, domain.ErrEmptyReport) {
			writeError(w, http.StatusNotFound, "report has no data to export")
			return
		}
		logger.Error().Err(err).Int("panel", panel).Msg("panel export failed")
		writeError(w, http.StatusInternalServerError, viz.UnavailableNotice)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := charts.ExportPNG(fig, w); err != nil {
		logger.Error().Err(err).Int("panel", panel).Msg("png render failed")
	}
}

// Chat forwards a free-text question about the report to the AI
// gateway. Gateway failures degrade to the fixed notice, never to an
// error status.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	s := sessionFrom(r)

	var req api.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	path, err := h.sessions.ReportPath(s)
	if err != nil {
		writeError(w, http.StatusNotFound, noReportNotice)
		return
	}
	t := reportsvc.IdentifyPath(path)

	answer, err := h.gateway.Answer(ctx, t, req.Prompt, path)
	if err != nil {
		logger.Warn().Err(err).Msg("chat request failed")
		writeJSON(w, http.StatusOK, api.ChatResponse{Notice: assistant.ChatFailureNotice})
		return
	}
	writeJSON(w, http.StatusOK, api.ChatResponse{Answer: answer})
}

// Visualize asks the AI gateway for a chart matching the prompt.
func (h *Handler) Visualize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	s := sessionFrom(r)

	var req api.ChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	f, err := h.sessions.Frame(ctx, s)
	if err != nil {
		h.reportError(w, r, err)
		return
	}

	fig, err := h.gateway.ChartFromText(ctx, f, req.Prompt)
	if err != nil {
		logger.Warn().Err(err).Msg("chart request failed")
		writeJSON(w, http.StatusOK, api.ChartResponse{Notice: assistant.NoChartNotice})
		return
	}
	if fig == nil {
		writeJSON(w, http.StatusOK, api.ChartResponse{Notice: assistant.NoChartNotice})
		return
	}
	writeJSON(w, http.StatusOK, api.ChartResponse{Figure: fig})
}

func (h *Handler) reportError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())
	if errors.Is(err, domain.ErrReportNotFound) {
		writeError(w, http.StatusNotFound, noReportNotice)
		return
	}
	logger.Error().Err(err).Msg("report read failed")
	writeError(w, http.StatusInternalServerError, conversionNotice)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, api.Error{Message: message})
}
