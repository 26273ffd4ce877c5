package assistant

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog"

	"github.com/de-tools/report-deck/pkg/charts"
	"github.com/de-tools/report-deck/pkg/frame"
	"github.com/de-tools/report-deck/pkg/models/domain"
)

const (
	defaultModel = "claude-sonnet-4-20250514"

	// maxCSVBytes caps how much of the report is inlined into the
	// prompt. Reports are small; this is a safety bound, not a
	// sampling strategy.
	maxCSVBytes = 200 * 1024

	maxAnswerTokens = 1024
	maxChartTokens  = 2048
	maxChartRows    = 100
)

const answerWrapper = "Please do not include any tables, graphs, or code imports in your response, " +
	"just answer to the query and make it attractive: %s ?"

const chartSystem = `You build chart specifications for a reporting dashboard.
Given CSV data and a request, reply with a single JSON object and nothing else.
The object must have a "data" array of plotly-style traces (fields: type, name,
x, y, labels, values, mode) and a "layout" object (fields: title, barmode).
Use only columns present in the data. If no sensible chart exists, reply with
the word NONE.`

type anthropicGateway struct {
	client anthropic.Client
	model  anthropic.Model
}

// Config carries the gateway settings resolved from the environment.
type Config struct {
	APIKey string
	Model  string
}

// NewAnthropicGateway builds the production gateway. The model falls
// back to a fixed default when unset.
func NewAnthropicGateway(cfg Config) Gateway {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &anthropicGateway{
		client: anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  anthropic.Model(model),
	}
}

func (g *anthropicGateway) Answer(ctx context.Context, t domain.ReportType, question, csvPath string) (string, error) {
	data, err := readCapped(csvPath)
	if err != nil {
		return "", fmt.Errorf("read report file: %w", err)
	}

	system := fmt.Sprintf("You answer questions about a %s report. The report data in CSV form:\n\n%s", t.DisplayName(), data)
	if summary := grandTotalSummary(t, csvPath); summary != "" {
		system += "\n\n" + summary
	}

	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     g.model,
		MaxTokens: maxAnswerTokens,
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(fmt.Sprintf(answerWrapper, question))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: answer call: %v", domain.ErrAssistantUnavailable, err)
	}

	reply := messageText(message)
	if reply == "" {
		return "", fmt.Errorf("%w: empty answer reply", domain.ErrAssistantUnavailable)
	}
	return reply, nil
}

func (g *anthropicGateway) ChartFromText(ctx context.Context, f *frame.Frame, text string) (*charts.Figure, error) {
	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     g.model,
		MaxTokens: maxChartTokens,
		System:    []anthropic.TextBlockParam{{Text: chartSystem}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(
				fmt.Sprintf("CSV data:\n%s\nRequest: %s", frameCSV(f, maxChartRows), text),
			)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: chart call: %v", domain.ErrAssistantUnavailable, err)
	}

	fig := parseFigure(messageText(message))
	if fig == nil {
		zerolog.Ctx(ctx).Debug().Str("request", text).Msg("chart reply not parseable")
	}
	return fig, nil
}

// frameCSV serializes the frame head for the prompt. A proper CSV
// writer keeps cells with embedded commas or quotes as single fields.
func frameCSV(f *frame.Frame, limit int) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write(f.Columns())
	for i, row := range f.Rows() {
		if i >= limit {
			break
		}
		_ = w.Write(row)
	}
	w.Flush()
	return b.String()
}

// grandTotalSummary precomputes the authoritative order total so the
// model does not miscount it from raw rows. Only the order sales
// report carries a Grand total column worth anchoring.
func grandTotalSummary(t domain.ReportType, csvPath string) string {
	if t != domain.OrderSalesSummary {
		return ""
	}
	f, err := frame.FromFile(csvPath)
	if err != nil || !f.HasColumn("Grand total") {
		return ""
	}
	vals, oks := f.Floats("Grand total")
	var sum float64
	for i, v := range vals {
		if oks[i] {
			sum += v
		}
	}
	return fmt.Sprintf("The authoritative sum of the Grand total column is $%.2f. Use this value for any overall total.", sum)
}

// parseFigure extracts the JSON object from a model reply. Anything
// that does not decode into a figure with at least one trace yields
// nil.
func parseFigure(reply string) *charts.Figure {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return nil
	}
	var fig charts.Figure
	if err := json.Unmarshal([]byte(reply[start:end+1]), &fig); err != nil {
		return nil
	}
	if len(fig.Data) == 0 {
		return nil
	}
	return &fig
}

func messageText(m *anthropic.Message) string {
	var b strings.Builder
	for _, block := range m.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

func readCapped(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(data) > maxCSVBytes {
		data = data[:maxCSVBytes]
	}
	return string(data), nil
}
