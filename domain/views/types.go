// Package views defines the immutable result shapes produced by the
// aggregation engine. A view never references the table it was computed from.
package views

// Kind categorizes view shapes
type Kind string

const (
	KindSummary Kind = "summary" // named scalars
	KindSeries  Kind = "series"  // one-dimensional category -> measure
	KindGrid    Kind = "grid"    // two-dimensional category x measure table
)

// View is a named aggregate result
type View interface {
	ViewName() string
	ViewKind() Kind
}

// Field is one named scalar in a summary
type Field struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// Summary is a flat set of named scalars
type Summary struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

func (s Summary) ViewName() string { return s.Name }
func (s Summary) ViewKind() Kind   { return KindSummary }

// Empty reports whether the summary carries no data, the shape used when a
// single-entity query matches no rows.
func (s Summary) Empty() bool { return len(s.Fields) == 0 }

// Get returns a field value by key
func (s Summary) Get(key string) (float64, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return 0, false
}

// Point is one category entry in a series
type Point struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// Series maps an ordered set of categories to one numeric measure
type Series struct {
	Name    string  `json:"name"`
	Measure string  `json:"measure"`
	Points  []Point `json:"points"`
}

func (s Series) ViewName() string { return s.Name }
func (s Series) ViewKind() Kind   { return KindSeries }

// Get returns a point value by key
func (s Series) Get(key string) (float64, bool) {
	for _, p := range s.Points {
		if p.Key == key {
			return p.Value, true
		}
	}
	return 0, false
}

// GridRow is one keyed row of numeric cells
type GridRow struct {
	Key   string             `json:"key"`
	Cells map[string]float64 `json:"cells"`
}

// Cell returns a cell value, defaulting to 0 for absent columns
func (r GridRow) Cell(col string) float64 {
	return r.Cells[col]
}

// Grid is a keyed table of numeric cells with a fixed column order
type Grid struct {
	Name     string    `json:"name"`
	KeyLabel string    `json:"key_label"`
	Columns  []string  `json:"columns"`
	Rows     []GridRow `json:"rows"`
}

func (g Grid) ViewName() string { return g.Name }
func (g Grid) ViewKind() Kind   { return KindGrid }

// Row returns the first row with the given key
func (g Grid) Row(key string) (GridRow, bool) {
	for _, r := range g.Rows {
		if r.Key == key {
			return r, true
		}
	}
	return GridRow{}, false
}
