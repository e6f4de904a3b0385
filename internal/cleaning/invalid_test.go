package cleaning

import (
	"testing"

	"olymstats/domain/table"
)

// TestDropWhere removes rows failing the predicate
func TestDropWhere(t *testing.T) {
	tbl := ageColumn(num(15), num(200), missing())

	out := DropWhere(table.ColAge, func(v table.Value) bool {
		return v.IsNumeric() && v.AsFloat64() < 100
	}).Apply(tbl)

	if out.Affected != 2 {
		t.Errorf("affected=%d, want 2", out.Affected)
	}
	if tbl.Len() != 1 || tbl.Row(0)[table.ColAge].AsFloat64() != 15 {
		t.Errorf("wrong rows survived")
	}
}

// TestReplaceInvalidCategory distinguishes invalid from absent
func TestReplaceInvalidCategory(t *testing.T) {
	tbl := newTable([]string{table.ColSeason},
		table.Row{table.ColSeason: str("Summer")},
		table.Row{table.ColSeason: str("Spring")},
		table.Row{table.ColSeason: missing()},
		table.Row{table.ColSeason: num(3)},
	)

	out := ReplaceInvalidCategory(table.ColSeason, table.SeasonDomain, table.UnknownCategory).Apply(tbl)
	if out.Affected != 2 {
		t.Errorf("affected=%d, want 2", out.Affected)
	}
	if got := tbl.Row(1)[table.ColSeason].AsString(); got != table.UnknownCategory {
		t.Errorf("invalid category=%q", got)
	}
	if !tbl.Row(2)[table.ColSeason].IsMissing() {
		t.Error("missing should stay missing")
	}
	if got := tbl.Row(3)[table.ColSeason].AsString(); got != table.UnknownCategory {
		t.Errorf("non-string value=%q, want replaced", got)
	}
}

// TestFillMissingValue fills with a fixed replacement
func TestFillMissingValue(t *testing.T) {
	tbl := newTable([]string{table.ColTeam},
		table.Row{table.ColTeam: str("Kenya")},
		table.Row{table.ColTeam: missing()},
	)

	out := FillMissingValue(table.ColTeam, str("Unknown")).Apply(tbl)
	if out.Affected != 1 {
		t.Errorf("affected=%d, want 1", out.Affected)
	}
	if got := tbl.Row(1)[table.ColTeam].AsString(); got != "Unknown" {
		t.Errorf("filled with %q", got)
	}
}
