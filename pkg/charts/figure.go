package charts

import "fmt"

// Figure is a plotly-compatible chart description. The dashboard
// frontend hands it straight to Plotly.newPlot, so field names follow
// the plotly JSON schema.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type         string      `json:"type"`
	Name         string      `json:"name,omitempty"`
	X            []any       `json:"x,omitempty"`
	Y            []any       `json:"y,omitempty"`
	Labels       []string    `json:"labels,omitempty"`
	Values       []any       `json:"values,omitempty"`
	Z            [][]float64 `json:"z,omitempty"`
	Mode         string      `json:"mode,omitempty"`
	Text         []string    `json:"text,omitempty"`
	TextPosition string      `json:"textposition,omitempty"`
	TextInfo     string      `json:"textinfo,omitempty"`
	Hole         float64     `json:"hole,omitempty"`
	Orientation  string      `json:"orientation,omitempty"`
	Fill         string      `json:"fill,omitempty"`
	StackGroup   string      `json:"stackgroup,omitempty"`
	YAxis        string      `json:"yaxis,omitempty"`
	ColorScale   string      `json:"colorscale,omitempty"`
	Marker       *Marker     `json:"marker,omitempty"`
	Line         *Line       `json:"line,omitempty"`
}

type Marker struct {
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`
	Size   int      `json:"size,omitempty"`
}

type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Dash  string  `json:"dash,omitempty"`
	Shape string  `json:"shape,omitempty"`
}

type Layout struct {
	Title      string  `json:"title,omitempty"`
	XAxis      *Axis   `json:"xaxis,omitempty"`
	YAxis      *Axis   `json:"yaxis,omitempty"`
	YAxis2     *Axis   `json:"yaxis2,omitempty"`
	Barmode    string  `json:"barmode,omitempty"`
	Template   string  `json:"template,omitempty"`
	Height     int     `json:"height,omitempty"`
	ShowLegend *bool   `json:"showlegend,omitempty"`
	Legend     *Legend `json:"legend,omitempty"`
}

type Axis struct {
	Title      string `json:"title,omitempty"`
	Overlaying string `json:"overlaying,omitempty"`
	Side       string `json:"side,omitempty"`
	TickAngle  int    `json:"tickangle,omitempty"`
}

type Legend struct {
	Title string `json:"title,omitempty"`
}

const templateWhite = "plotly_white"

// Qualitative palette cycled across categorical traces.
var palette = []string{
	"#636efa", "#ef553b", "#00cc96", "#ab63fa", "#ffa15a",
	"#19d3f3", "#ff6692", "#b6e880", "#ff97ff", "#fecb52",
}

// nums widens a float slice for the plotly-facing any-typed axes.
func nums(v []float64) []any {
	out := make([]any, len(v))
	for i, f := range v {
		out[i] = f
	}
	return out
}

func paletteColor(i int) string {
	return palette[i%len(palette)]
}

func paletteColors(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = paletteColor(i)
	}
	return out
}

// emptyFigure is what builders return for degenerate input: a valid
// figure with a single annotation-free layout the frontend renders as
// an empty plot area.
func emptyFigure(title string) *Figure {
	return &Figure{
		Data:   []Trace{},
		Layout: Layout{Title: title, Template: templateWhite},
	}
}

func formatUSD(v float64) string {
	return "$" + withThousands(fmt.Sprintf("%.2f", v))
}

// withThousands inserts comma separators into the integer part of a
// formatted decimal.
func withThousands(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	intPart := s
	frac := ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, frac = s[:i], s[i:]
			break
		}
	}
	if len(intPart) > 3 {
		var b []byte
		for i, c := range []byte(intPart) {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				b = append(b, ',')
			}
			b = append(b, c)
		}
		intPart = string(b)
	}
	if neg {
		return "-" + intPart + frac
	}
	return intPart + frac
}
