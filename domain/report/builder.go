package report

import (
	"fmt"
	"strings"

	"tunnelstats/domain/analysis"
)

// asciiSubstitutions maps typographic characters that break plain-ASCII
// export targets to safe equivalents. Anything not covered here and not
// printable ASCII is replaced with a placeholder, so building a report
// never fails on encoding.
var asciiSubstitutions = map[rune]string{
	'–': "-",   // en dash
	'—': "-",   // em dash
	'°': " deg", // degree sign
	'±': "+/-", // plus-minus
	'×': "x",   // multiplication sign
	'•': "*",   // bullet
	'’': "'",   // right single quote
	'‘': "'",   // left single quote
	'“': `"`,   // left double quote
	'”': `"`,   // right double quote
	'→': "->",  // arrow
}

const placeholder = "?"

// Params carries the selection state and computed statistics a report is
// built from. The builder is a pure function of these inputs.
type Params struct {
	Title     string
	RangeLow  float64
	RangeHigh float64
	HasRange  bool

	XAxis string
	YAxis string
	ZAxis string

	Correlation        float64
	CorrelationDefined bool

	Trend       *analysis.TrendResult
	MeanY       *float64
	MinVelocity *float64

	TopPairs []analysis.CorrelationPair
}

// Builder assembles ASCII-safe summary lines for an external writer.
// It never touches the filesystem or a rendering surface.
type Builder struct {
	subs map[rune]string
}

// NewBuilder creates a builder with the default substitution table.
func NewBuilder() *Builder {
	subs := make(map[rune]string, len(asciiSubstitutions))
	for r, s := range asciiSubstitutions {
		subs[r] = s
	}
	return &Builder{subs: subs}
}

// WithSubstitution registers an extra character mapping and returns the
// builder for chaining.
func (b *Builder) WithSubstitution(r rune, replacement string) *Builder {
	b.subs[r] = replacement
	return b
}

// Build returns the ordered report lines. Correlation, slope and intercept
// are formatted to three decimals, averages to two; this is the only place
// statistical values get rounded.
func (b *Builder) Build(p Params) []string {
	title := p.Title
	if title == "" {
		title = "TBM-TSP Correlation Summary Report"
	}

	var lines []string
	lines = append(lines, title, "")

	if p.HasRange {
		lines = append(lines, fmt.Sprintf("Chainage Range: %.2f - %.2f m", p.RangeLow, p.RangeHigh))
	}

	zAxis := p.ZAxis
	if zAxis == "" {
		zAxis = "None"
	}
	lines = append(lines, fmt.Sprintf("X-axis: %s, Y-axis: %s, Z-axis: %s", p.XAxis, p.YAxis, zAxis))

	if p.CorrelationDefined {
		lines = append(lines, fmt.Sprintf("Correlation (%s vs %s): %.3f", p.XAxis, p.YAxis, p.Correlation))
	} else {
		lines = append(lines, fmt.Sprintf("Correlation (%s vs %s): undefined", p.XAxis, p.YAxis))
	}

	if p.Trend != nil {
		trendLine := fmt.Sprintf("Trend: y = %.3fx + %.3f", p.Trend.Slope, p.Trend.Intercept)
		if p.Trend.CorrelationDefined {
			trendLine += fmt.Sprintf(" (r = %.3f)", p.Trend.Correlation)
		}
		lines = append(lines, trendLine)
	}
	if p.MeanY != nil {
		lines = append(lines, fmt.Sprintf("Average %s: %.2f", p.YAxis, *p.MeanY))
	}
	if p.MinVelocity != nil {
		lines = append(lines, fmt.Sprintf("Minimum velocity: %.2f", *p.MinVelocity))
	}

	if len(p.TopPairs) > 0 {
		lines = append(lines, "", "Top Parameter Correlations:")
		for _, pair := range p.TopPairs {
			lines = append(lines, fmt.Sprintf("%s - %s: %.3f", pair.ColumnA, pair.ColumnB, pair.AbsCorrelation))
		}
	}

	for i, line := range lines {
		lines[i] = b.Sanitize(line)
	}
	return lines
}

// Sanitize maps a line to printable ASCII: known typographic characters are
// substituted, everything else outside 0x20..0x7E becomes a placeholder.
func (b *Builder) Sanitize(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	for _, r := range s {
		if repl, ok := b.subs[r]; ok {
			out.WriteString(repl)
			continue
		}
		if r >= 0x20 && r <= 0x7e {
			out.WriteRune(r)
			continue
		}
		out.WriteString(placeholder)
	}
	return out.String()
}
