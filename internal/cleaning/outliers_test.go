package cleaning

import (
	"testing"

	"olymstats/domain/table"
)

// skewedAges yields Q1=20, Q3=30, so the 1.5*IQR bounds are [5, 45]
func skewedAges() []table.Value {
	return []table.Value{
		num(20), num(20), num(20), num(20),
		num(30), num(30), num(30), num(30),
		num(60),
	}
}

// TestClipOutliersIQR saturates values to the IQR bounds
func TestClipOutliersIQR(t *testing.T) {
	tbl := ageColumn(skewedAges()...)

	out := ClipOutliersIQR(table.ColAge, DefaultIQRMultiplier).Apply(tbl)
	if out.Affected != 1 {
		t.Errorf("affected=%d, want 1", out.Affected)
	}
	assertDetailContains(t, out, "[5,45]")
	if got := tbl.Row(8)[table.ColAge].AsFloat64(); got != 45 {
		t.Errorf("outlier clipped to %v, want 45", got)
	}
	if tbl.Len() != 9 {
		t.Errorf("clip changed row count: %d", tbl.Len())
	}
}

// TestClipOutliersIQRPreservesMissing leaves missing values untouched
func TestClipOutliersIQRPreservesMissing(t *testing.T) {
	values := append(skewedAges(), missing())
	tbl := ageColumn(values...)

	ClipOutliersIQR(table.ColAge, DefaultIQRMultiplier).Apply(tbl)
	if !tbl.Row(9)[table.ColAge].IsMissing() {
		t.Error("missing value should survive clipping")
	}
}

// TestDropOutliersIQR removes out-of-bounds rows, and rows without a
// comparable value
func TestDropOutliersIQR(t *testing.T) {
	values := append(skewedAges(), missing())
	tbl := ageColumn(values...)

	out := DropOutliersIQR(table.ColAge, DefaultIQRMultiplier).Apply(tbl)
	if out.Affected != 2 {
		t.Errorf("affected=%d, want 2 (one outlier, one incomparable)", out.Affected)
	}
	if tbl.Len() != 8 {
		t.Errorf("rows=%d, want 8", tbl.Len())
	}
	for _, row := range tbl.Rows() {
		if f := row[table.ColAge].AsFloat64(); f < 5 || f > 45 {
			t.Errorf("row outside bounds survived: %v", f)
		}
	}
}

// TestOutlierStagesOnAbsentColumn logs "not applicable" and changes nothing
func TestOutlierStagesOnAbsentColumn(t *testing.T) {
	tbl := newTable([]string{table.ColName}, table.Row{table.ColName: str("A")})

	for _, stage := range []Stage{
		ClipOutliersIQR(table.ColAge, DefaultIQRMultiplier),
		DropOutliersIQR(table.ColAge, DefaultIQRMultiplier),
		ClipToValidRange(table.ColAge),
	} {
		out := stage.Apply(tbl)
		assertDetailContains(t, out, "not applicable")
		if tbl.Len() != 1 {
			t.Errorf("%s changed row count", stage.Name)
		}
	}
}

// TestOutlierStagesOnEmptyColumn logs a zero-effect no-op
func TestOutlierStagesOnEmptyColumn(t *testing.T) {
	tbl := ageColumn(missing(), missing())

	out := ClipOutliersIQR(table.ColAge, DefaultIQRMultiplier).Apply(tbl)
	assertDetailContains(t, out, "no values")
	if out.Affected != 0 {
		t.Errorf("affected=%d, want 0", out.Affected)
	}
}

// TestClipToValidRange clamps into the fixed domain bounds
func TestClipToValidRange(t *testing.T) {
	tbl := ageColumn(num(150), num(2), num(30), table.NewIntegerValue(120))

	out := ClipToValidRange(table.ColAge).Apply(tbl)
	if out.Affected != 3 {
		t.Errorf("affected=%d, want 3", out.Affected)
	}
	if got := tbl.Row(0)[table.ColAge].AsFloat64(); got != 100 {
		t.Errorf("150 clipped to %v, want 100", got)
	}
	if got := tbl.Row(1)[table.ColAge].AsFloat64(); got != 5 {
		t.Errorf("2 clipped to %v, want 5", got)
	}
	if got := tbl.Row(2)[table.ColAge].AsFloat64(); got != 30 {
		t.Errorf("in-range value changed: %v", got)
	}
	// integer storage survives the clamp
	clamped := tbl.Row(3)[table.ColAge]
	if clamped.Type != table.ValueTypeInteger || clamped.AsFloat64() != 100 {
		t.Errorf("integer clamp: type=%s value=%v", clamped.Type, clamped.AsFloat64())
	}
}

// TestClipIsIdempotent verifies a second clip pass affects nothing
func TestClipIsIdempotent(t *testing.T) {
	tbl := ageColumn(skewedAges()...)
	stage := ClipOutliersIQR(table.ColAge, DefaultIQRMultiplier)

	stage.Apply(tbl)
	// bounds shift after the first pass, but every value already lies inside
	second := stage.Apply(tbl)
	if second.Affected != 0 {
		t.Errorf("second pass affected %d values, want 0", second.Affected)
	}
}
