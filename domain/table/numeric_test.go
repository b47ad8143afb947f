package table

import (
	"reflect"
	"testing"
)

func TestNumericColumns(t *testing.T) {
	tbl := New([]string{"chainage", "rock class", "torque", "notes", "sparse"})
	tbl.Rows = []Row{
		{"chainage": Num(100), "rock class": Str("III"), "torque": Num(5), "notes": Null(), "sparse": Null()},
		{"chainage": Num(120), "rock class": Str("IV"), "torque": Num(6), "notes": Str("wet"), "sparse": Null()},
		{"chainage": Num(140), "rock class": Str("III"), "torque": Null(), "notes": Null(), "sparse": Null()},
	}

	got := NumericColumns(tbl)
	// torque stays numeric despite a null cell; an all-null column does not
	// count as numeric.
	want := []string{"chainage", "torque"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NumericColumns = %v, want %v", got, want)
	}
}

func TestNumericColumns_MixedColumnExcluded(t *testing.T) {
	tbl := New([]string{"reading"})
	tbl.Rows = []Row{
		{"reading": Num(1)},
		{"reading": Str("error")},
	}

	if got := NumericColumns(tbl); len(got) != 0 {
		t.Errorf("NumericColumns = %v, want none for a mixed column", got)
	}
}

func TestClassificationRules(t *testing.T) {
	rules := DefaultRules()
	columns := []string{"chainage", "p-wave velocity", "torque", "thrust force", "advance rate"}

	if got := rules.First(RolePosition, columns); got != "chainage" {
		t.Errorf("First(position) = %q, want chainage", got)
	}
	if got := rules.Select(RoleVelocity, columns); !reflect.DeepEqual(got, []string{"p-wave velocity"}) {
		t.Errorf("Select(velocity) = %v", got)
	}
	if got := rules.Select(RoleMachine, columns); !reflect.DeepEqual(got, []string{"torque", "thrust force"}) {
		t.Errorf("Select(machine) = %v", got)
	}

	// Alternate conventions plug in without code changes.
	custom := Rules{RolePosition: {"station"}}
	if got := custom.First(RolePosition, []string{"station (m)", "torque"}); got != "station (m)" {
		t.Errorf("custom First(position) = %q", got)
	}
}
