package report

import (
	"strings"
	"testing"

	"tunnelstats/domain/analysis"
)

func TestSanitize_SubstitutionTable(t *testing.T) {
	b := NewBuilder()

	tests := []struct {
		in   string
		want string
	}{
		{"100 – 200", "100 - 200"},
		{"±0.5", "+/-0.5"},
		{"45°", "45 deg"},
		{"3×4", "3x4"},
		{"a → b", "a -> b"},
		{"“quoted”", `"quoted"`},
		{"plain ascii", "plain ascii"},
		{"μ-value", "?-value"}, // unmapped characters become placeholders
	}

	for _, tt := range tests {
		if got := b.Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitize_OutputIsASCII(t *testing.T) {
	b := NewBuilder()
	out := b.Sanitize("chainage 1+200 – ±3 m → “ok” • 5°")
	for i := 0; i < len(out); i++ {
		if out[i] < 0x20 || out[i] > 0x7e {
			t.Fatalf("non-ASCII byte %#x at %d in %q", out[i], i, out)
		}
	}
	if !strings.Contains(out, "+/-") || !strings.Contains(out, "->") {
		t.Errorf("expected substitutions in %q", out)
	}
}

func TestBuilder_WithSubstitution(t *testing.T) {
	b := NewBuilder().WithSubstitution('µ', "u")
	if got := b.Sanitize("µm"); got != "um" {
		t.Errorf("Sanitize = %q, want um", got)
	}
}

func TestBuild_Lines(t *testing.T) {
	meanY := 6.75
	minV := 4800.0
	params := Params{
		RangeLow:           100,
		RangeHigh:          160,
		HasRange:           true,
		XAxis:              "penetration rate",
		YAxis:              "p-wave velocity",
		Correlation:        0.8731,
		CorrelationDefined: true,
		Trend:              &analysis.TrendResult{Slope: 2.0004, Intercept: -0.5, Correlation: 0.8731, CorrelationDefined: true},
		MeanY:              &meanY,
		MinVelocity:        &minV,
		TopPairs: []analysis.CorrelationPair{
			{ColumnA: "torque", ColumnB: "thrust", AbsCorrelation: 0.95},
		},
	}

	lines := NewBuilder().Build(params)

	want := []string{
		"TBM-TSP Correlation Summary Report",
		"",
		"Chainage Range: 100.00 - 160.00 m",
		"X-axis: penetration rate, Y-axis: p-wave velocity, Z-axis: None",
		"Correlation (penetration rate vs p-wave velocity): 0.873",
		"Trend: y = 2.000x + -0.500 (r = 0.873)",
		"Average p-wave velocity: 6.75",
		"Minimum velocity: 4800.00",
		"",
		"Top Parameter Correlations:",
		"torque - thrust: 0.950",
	}
	if len(lines) != len(want) {
		t.Fatalf("line count = %d, want %d\n%v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestBuild_TrendWithoutCorrelation(t *testing.T) {
	params := Params{
		XAxis: "chainage",
		YAxis: "thrust",
		Trend: &analysis.TrendResult{Slope: 0, Intercept: 7},
	}

	lines := NewBuilder().Build(params)
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "Trend: y = 0.000x + 7.000") {
		t.Errorf("missing trend line:\n%s", joined)
	}
	if strings.Contains(joined, "(r =") {
		t.Errorf("r clause printed for an undefined coefficient:\n%s", joined)
	}
}

func TestBuild_UndefinedCorrelationAndNoRange(t *testing.T) {
	params := Params{
		XAxis: "a",
		YAxis: "b",
	}

	lines := NewBuilder().Build(params)
	joined := strings.Join(lines, "\n")
	if strings.Contains(joined, "Chainage Range") {
		t.Errorf("unexpected range line without a position column:\n%s", joined)
	}
	if !strings.Contains(joined, "Correlation (a vs b): undefined") {
		t.Errorf("missing undefined correlation line:\n%s", joined)
	}
}
