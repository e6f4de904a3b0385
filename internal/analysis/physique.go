package analysis

import (
	"olymstats/domain/table"
	"olymstats/domain/views"
)

// physiqueAccum averages height and weight over rows where both are present
type physiqueAccum struct {
	heightSum float64
	weightSum float64
	n         int
}

func (p *physiqueAccum) add(height, weight float64) {
	p.heightSum += height
	p.weightSum += weight
	p.n++
}

// cells computes the mean height, mean weight and the BMI implied by those
// means: weight in kilograms over squared height in meters
func (p *physiqueAccum) cells() map[string]float64 {
	h := p.heightSum / float64(p.n)
	w := p.weightSum / float64(p.n)
	bmi := w / ((h / 100) * (h / 100))
	return map[string]float64{
		"Height": round2(h),
		"Weight": round2(w),
		"BMI":    round2(bmi),
	}
}

// PhysiqueBySport reports mean height, weight and BMI per sport, heaviest
// sports first. Rows missing either measurement are excluded.
func (e *Engine) PhysiqueBySport() views.View {
	accums := map[string]*physiqueAccum{}
	var order []string
	for _, row := range e.tbl.Rows() {
		height := row[table.ColHeight]
		weight := row[table.ColWeight]
		sport := row[table.ColSport]
		if !height.IsNumeric() || !weight.IsNumeric() || sport.IsMissing() {
			continue
		}
		key := sport.String()
		acc, seen := accums[key]
		if !seen {
			acc = &physiqueAccum{}
			accums[key] = acc
			order = append(order, key)
		}
		acc.add(height.AsFloat64(), weight.AsFloat64())
	}

	grid := views.Grid{
		Name:     "physique_by_sport",
		KeyLabel: "Sport",
		Columns:  []string{"Height", "Weight", "BMI"},
	}
	for _, sport := range order {
		grid.Rows = append(grid.Rows, views.GridRow{Key: sport, Cells: accums[sport].cells()})
	}
	sortGridRowsDesc(grid.Rows, "Weight")
	return grid
}

// MedalistPhysique compares mean height, weight and BMI between medal-bearing
// and non-medal rows
func (e *Engine) MedalistPhysique() views.View {
	groups := map[string]*physiqueAccum{
		"Medalist":     {},
		"Non-Medalist": {},
	}
	for _, row := range e.tbl.Rows() {
		height := row[table.ColHeight]
		weight := row[table.ColWeight]
		if !height.IsNumeric() || !weight.IsNumeric() {
			continue
		}
		key := "Non-Medalist"
		if table.IsMedal(row[table.ColMedal]) {
			key = "Medalist"
		}
		groups[key].add(height.AsFloat64(), weight.AsFloat64())
	}

	grid := views.Grid{
		Name:     "medalist_physique",
		KeyLabel: "Group",
		Columns:  []string{"Height", "Weight", "BMI"},
	}
	for _, key := range []string{"Medalist", "Non-Medalist"} {
		if groups[key].n == 0 {
			continue
		}
		grid.Rows = append(grid.Rows, views.GridRow{Key: key, Cells: groups[key].cells()})
	}
	return grid
}
