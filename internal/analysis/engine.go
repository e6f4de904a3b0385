// Package analysis computes the named statistical views over a cleaned
// table. Every view is a deterministic, side-effect-free function of the
// current row set; the engine never mutates the table it was given.
package analysis

import (
	"math"
	"sort"
	"strconv"

	"olymstats/domain/table"
	"olymstats/domain/views"
)

// Engine answers aggregate queries against one immutable table
type Engine struct {
	tbl *table.Table
}

// NewEngine creates an engine over a (cleaned) table. The engine reflects
// whatever filters the caller already applied to the table.
func NewEngine(t *table.Table) *Engine {
	return &Engine{tbl: t}
}

// medalRows returns the medal-bearing rows: medal value exactly Gold, Silver
// or Bronze
func (e *Engine) medalRows() []table.Row {
	var out []table.Row
	for _, row := range e.tbl.Rows() {
		if table.IsMedal(row[table.ColMedal]) {
			out = append(out, row)
		}
	}
	return out
}

// distinctCount counts distinct non-missing values in a column
func (e *Engine) distinctCount(col string) int {
	if !e.tbl.HasColumn(col) {
		return 0
	}
	seen := map[string]bool{}
	for _, row := range e.tbl.Rows() {
		v, ok := row[col]
		if !ok || v.IsMissing() {
			continue
		}
		seen[v.String()] = true
	}
	return len(seen)
}

// counter accumulates counts per category, remembering first-encounter order
// so stable sorts can honor input order on ties
type counter struct {
	counts map[string]float64
	order  []string
}

func newCounter() *counter {
	return &counter{counts: map[string]float64{}}
}

func (c *counter) add(key string, delta float64) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key] += delta
}

func (c *counter) get(key string) float64 { return c.counts[key] }

// keys returns the categories in first-encounter order
func (c *counter) keys() []string { return c.order }

// keysByCountDesc returns the categories sorted by descending count,
// input order preserved on ties
func (c *counter) keysByCountDesc() []string {
	keys := append([]string(nil), c.order...)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	return keys
}

// keysAscending returns the categories in ascending key order, comparing
// numerically when both keys parse as numbers
func (c *counter) keysAscending() []string {
	keys := append([]string(nil), c.order...)
	sort.SliceStable(keys, func(i, j int) bool {
		return keyLess(keys[i], keys[j])
	})
	return keys
}

func keyLess(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return fa < fb
	}
	return a < b
}

// sortGridRowsDesc sorts grid rows by one cell descending, preserving the
// existing order of rows whose cell values are equal
func sortGridRowsDesc(rows []views.GridRow, column string) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Cells[column] > rows[j].Cells[column]
	})
}

// round2 rounds to 2 decimal places
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// round4 rounds to 4 decimal places
func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
