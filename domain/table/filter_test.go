package table

import (
	"errors"
	"reflect"
	"testing"

	"tunnelstats/domain/core"
)

func chainageTable(positions ...float64) *Table {
	t := New([]string{"chainage"})
	for _, p := range positions {
		t.Rows = append(t.Rows, Row{"chainage": Num(p)})
	}
	return t
}

func positions(t *Table) []float64 {
	out := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		if v, ok := row["chainage"].Float(); ok {
			out = append(out, v)
		}
	}
	return out
}

func TestFilterRange_InclusiveBounds(t *testing.T) {
	src := chainageTable(100, 110, 150, 151)

	got, err := FilterRange(src, "chainage", 110, 150)
	if err != nil {
		t.Fatalf("FilterRange failed: %v", err)
	}
	if want := []float64{110, 150}; !reflect.DeepEqual(positions(got), want) {
		t.Errorf("positions = %v, want %v", positions(got), want)
	}
	// Purity: the source table keeps all rows.
	if len(src.Rows) != 4 {
		t.Errorf("input table was mutated: %d rows", len(src.Rows))
	}
}

func TestFilterRange_InvertedBoundsRejected(t *testing.T) {
	src := chainageTable(100, 200)

	_, err := FilterRange(src, "chainage", 200, 100)
	if !errors.Is(err, core.ErrInvalidRange) {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
}

func TestFilterRange_UnknownColumn(t *testing.T) {
	src := chainageTable(100)

	_, err := FilterRange(src, "depth", 0, 1)
	if !errors.Is(err, core.ErrColumnNotFound) {
		t.Fatalf("err = %v, want ErrColumnNotFound", err)
	}
}

func TestFilterRange_Idempotent(t *testing.T) {
	src := chainageTable(100, 120, 140, 160)

	once, err := FilterRange(src, "chainage", 110, 150)
	if err != nil {
		t.Fatalf("first filter failed: %v", err)
	}
	twice, err := FilterRange(once, "chainage", 110, 150)
	if err != nil {
		t.Fatalf("second filter failed: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filtering an already-filtered table changed it:\nonce:  %v\ntwice: %v", once, twice)
	}
}

func TestExtent(t *testing.T) {
	src := chainageTable(140, 100, 160)
	min, max, ok := Extent(src, "chainage")
	if !ok {
		t.Fatal("Extent reported no numeric values")
	}
	if min != 100 || max != 160 {
		t.Errorf("extent = [%v, %v], want [100, 160]", min, max)
	}

	empty := New([]string{"chainage"})
	if _, _, ok := Extent(empty, "chainage"); ok {
		t.Error("Extent on empty table should report ok=false")
	}
}
