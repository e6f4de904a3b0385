package analysis

import (
	"github.com/montanaflynn/stats"

	"olymstats/domain/table"
	"olymstats/domain/views"
)

// ageBuckets are the fixed age-group boundaries. Each bucket is
// left-inclusive, right-exclusive.
var ageBuckets = []struct {
	lo, hi float64
	label  string
}{
	{0, 20, "U20"},
	{20, 30, "20-30"},
	{30, 40, "30-40"},
	{40, 50, "40-50"},
	{50, 100, "Over 50"},
}

// ageBucketLabels lists the bucket labels in boundary order
func ageBucketLabels() []string {
	labels := make([]string, 0, len(ageBuckets))
	for _, b := range ageBuckets {
		labels = append(labels, b.label)
	}
	return labels
}

// ageBucketFor maps an age to its bucket label. Ages outside [0, 100)
// fall in no bucket.
func ageBucketFor(age float64) (string, bool) {
	for _, b := range ageBuckets {
		if age >= b.lo && age < b.hi {
			return b.label, true
		}
	}
	return "", false
}

// AgeSummary reports mean, min and max athlete age, missing ages excluded
func (e *Engine) AgeSummary() views.View {
	ages := e.tbl.NumericValues(table.ColAge)
	s := views.Summary{Name: "age_summary"}
	if len(ages) == 0 {
		return s
	}
	mean, _ := stats.Mean(ages)
	min, _ := stats.Min(ages)
	max, _ := stats.Max(ages)
	s.Fields = []views.Field{
		{Key: "mean_age", Value: round2(mean)},
		{Key: "min_age", Value: min},
		{Key: "max_age", Value: max},
	}
	return s
}

// AgeGroupDistribution counts entries per age bucket, most populated first
func (e *Engine) AgeGroupDistribution() views.View {
	c := newCounter()
	for _, label := range ageBucketLabels() {
		c.add(label, 0)
	}
	for _, row := range e.tbl.Rows() {
		age := row[table.ColAge]
		if !age.IsNumeric() {
			continue
		}
		if label, in := ageBucketFor(age.AsFloat64()); in {
			c.add(label, 1)
		}
	}
	s := views.Series{Name: "age_group_distribution", Measure: "Count"}
	for _, label := range c.keysByCountDesc() {
		s.Points = append(s.Points, views.Point{Key: label, Value: c.get(label)})
	}
	return s
}

// MedalRateByAgeGroup reports, per age bucket, the number of medal-bearing
// rows divided by the number of distinct athletes in that bucket. Buckets
// with no athletes report a rate of zero.
func (e *Engine) MedalRateByAgeGroup() views.View {
	medals := newCounter()
	athletes := map[string]map[string]bool{}
	for _, label := range ageBucketLabels() {
		athletes[label] = map[string]bool{}
	}
	for _, row := range e.tbl.Rows() {
		age := row[table.ColAge]
		if !age.IsNumeric() {
			continue
		}
		label, in := ageBucketFor(age.AsFloat64())
		if !in {
			continue
		}
		if id := row[table.ColID]; !id.IsMissing() {
			athletes[label][id.String()] = true
		}
		if table.IsMedal(row[table.ColMedal]) {
			medals.add(label, 1)
		}
	}
	s := views.Series{Name: "medal_rate_by_age_group", Measure: "MedalRate"}
	for _, label := range ageBucketLabels() {
		rate := 0.0
		if n := len(athletes[label]); n > 0 {
			rate = round4(medals.get(label) / float64(n))
		}
		s.Points = append(s.Points, views.Point{Key: label, Value: rate})
	}
	return s
}

// GoldMedalistAge reports the average age of gold medalists
func (e *Engine) GoldMedalistAge() views.View {
	var ages []float64
	for _, row := range e.tbl.Rows() {
		if m := row[table.ColMedal]; !m.IsString() || m.AsString() != table.MedalGold {
			continue
		}
		if age := row[table.ColAge]; age.IsNumeric() {
			ages = append(ages, age.AsFloat64())
		}
	}
	s := views.Summary{Name: "gold_medalist_age"}
	if len(ages) == 0 {
		return s
	}
	mean, _ := stats.Mean(ages)
	s.Fields = []views.Field{{Key: "average_age_gold", Value: round2(mean)}}
	return s
}
