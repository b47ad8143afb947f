package analysis

import (
	"errors"
	"math"
	"testing"

	"tunnelstats/domain/core"
	"tunnelstats/domain/table"
)

func TestDescribe(t *testing.T) {
	tbl := tableFromColumns(map[string][]table.Value{
		"chainage": nums(100, 120, 140, 160),
		"rock":     {table.Str("III"), table.Str("IV"), table.Str("III"), table.Str("V")},
	}, "chainage", "rock")

	summaries := Describe(tbl)
	if len(summaries) != 1 {
		t.Fatalf("summary count = %d, want 1 (text column skipped)", len(summaries))
	}

	s := summaries[0]
	if s.Column != "chainage" || s.Count != 4 {
		t.Fatalf("summary = %+v", s)
	}
	const tol = 1e-9
	if math.Abs(s.Mean-130) > tol {
		t.Errorf("mean = %v, want 130", s.Mean)
	}
	if s.Min != 100 || s.Max != 160 {
		t.Errorf("min/max = %v/%v, want 100/160", s.Min, s.Max)
	}
	if math.Abs(s.Median-130) > tol {
		t.Errorf("median = %v, want 130", s.Median)
	}
	if s.Q25 >= s.Median || s.Median >= s.Q75 {
		t.Errorf("quartiles not ordered: %v %v %v", s.Q25, s.Median, s.Q75)
	}
}

func TestDescribe_SmallSamples(t *testing.T) {
	tests := []struct {
		name             string
		values           []table.Value
		wantQ25, wantQ75 float64
		wantMedian       float64
	}{
		{name: "two rows", values: nums(120, 140), wantQ25: 120, wantQ75: 140, wantMedian: 130},
		{name: "one row", values: nums(120), wantQ25: 120, wantQ75: 120, wantMedian: 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := tableFromColumns(map[string][]table.Value{"chainage": tt.values}, "chainage")

			summaries := Describe(tbl)
			if len(summaries) != 1 {
				t.Fatalf("summary count = %d, want 1", len(summaries))
			}

			s := summaries[0]
			for name, v := range map[string]float64{
				"mean": s.Mean, "std_dev": s.StdDev, "min": s.Min,
				"q25": s.Q25, "median": s.Median, "q75": s.Q75, "max": s.Max,
			} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("%s = %v, want finite", name, v)
				}
			}
			if s.Q25 != tt.wantQ25 || s.Q75 != tt.wantQ75 {
				t.Errorf("quartiles = %v/%v, want %v/%v", s.Q25, s.Q75, tt.wantQ25, tt.wantQ75)
			}
			if s.Median != tt.wantMedian {
				t.Errorf("median = %v, want %v", s.Median, tt.wantMedian)
			}
		})
	}
}

func TestMinimumValue(t *testing.T) {
	tbl := tableFromColumns(map[string][]table.Value{
		"p-wave velocity": nums(5200, 4800, 5000),
		"s-wave velocity": nums(3100, 2900, 3000),
	}, "p-wave velocity", "s-wave velocity")

	min, err := MinimumValue(tbl, []string{"p-wave velocity", "s-wave velocity"})
	if err != nil {
		t.Fatalf("MinimumValue failed: %v", err)
	}
	if min != 2900 {
		t.Errorf("min = %v, want 2900", min)
	}

	_, err = MinimumValue(tbl, nil)
	if !errors.Is(err, core.ErrInsufficientData) {
		t.Fatalf("err = %v, want ErrInsufficientData", err)
	}
}

func TestMeanValue(t *testing.T) {
	tbl := tableFromColumns(map[string][]table.Value{
		"torque": {table.Num(4), table.Null(), table.Num(6)},
	}, "torque")

	mean, err := MeanValue(tbl, "torque")
	if err != nil {
		t.Fatalf("MeanValue failed: %v", err)
	}
	if mean != 5 {
		t.Errorf("mean = %v, want 5 (null excluded)", mean)
	}

	if _, err := MeanValue(tbl, "missing"); !errors.Is(err, core.ErrColumnNotFound) {
		t.Fatalf("err = %v, want ErrColumnNotFound", err)
	}
}
