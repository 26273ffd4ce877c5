package api

import "github.com/de-tools/report-deck/pkg/charts"

// Report is the table view of a session's report: metadata plus the
// display-formatted rows.
type Report struct {
	Type        string     `json:"type"`
	DisplayName string     `json:"display_name"`
	Empty       bool       `json:"empty"`
	Notice      string     `json:"notice,omitempty"`
	Columns     []string   `json:"columns"`
	Rows        [][]string `json:"rows"`

	ChatSuggestions  []string `json:"chat_suggestions"`
	ChartSuggestions []string `json:"chart_suggestions"`
}

// FetchResult is returned after a report has been pulled from the
// upstream service.
type FetchResult struct {
	Type        string `json:"type"`
	DisplayName string `json:"display_name"`
	FileName    string `json:"file_name"`
}

// PanelTab is one figure of a panel.
type PanelTab struct {
	Title  string         `json:"title,omitempty"`
	Figure *charts.Figure `json:"figure"`
}

// Panel is one entry of the visualization dispatcher output: either a
// set of tabs or a notice.
type Panel struct {
	Title  string     `json:"title,omitempty"`
	Info   string     `json:"info,omitempty"`
	Tabs   []PanelTab `json:"tabs,omitempty"`
	Notice string     `json:"notice,omitempty"`
}

type ChatRequest struct {
	Prompt string `json:"prompt"`
}

type ChatResponse struct {
	Answer string `json:"answer,omitempty"`
	Notice string `json:"notice,omitempty"`
}

type ChartRequest struct {
	Prompt string `json:"prompt"`
}

type ChartResponse struct {
	Figure *charts.Figure `json:"figure,omitempty"`
	Notice string         `json:"notice,omitempty"`
}

// Error is the JSON error envelope.
type Error struct {
	Message string `json:"message"`
}
