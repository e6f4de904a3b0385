package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olymstats/domain/views"
)

// TestAgeBucketBoundaries pins the left-inclusive right-exclusive buckets
func TestAgeBucketBoundaries(t *testing.T) {
	cases := []struct {
		age   float64
		label string
		in    bool
	}{
		{5, "U20", true},
		{19.9, "U20", true},
		{20, "20-30", true},
		{29.9, "20-30", true},
		{30, "30-40", true},
		{40, "40-50", true},
		{49.9, "40-50", true},
		{50, "Over 50", true},
		{99, "Over 50", true},
		{100, "", false},
		{-1, "", false},
	}
	for _, tc := range cases {
		label, in := ageBucketFor(tc.age)
		assert.Equal(t, tc.in, in, "age %v membership", tc.age)
		assert.Equal(t, tc.label, label, "age %v label", tc.age)
	}
}

// TestAgeSummary reports rounded mean with min and max
func TestAgeSummary(t *testing.T) {
	e := NewEngine(buildTable(
		entry{ID: 1, Age: 20},
		entry{ID: 2, Age: 25},
		entry{ID: 3, Age: 31},
		entry{ID: 4}, // missing age stays out of the statistics
	))

	s := e.AgeSummary().(views.Summary)
	mean, _ := s.Get("mean_age")
	min, _ := s.Get("min_age")
	max, _ := s.Get("max_age")
	assert.Equal(t, 25.33, mean)
	assert.Equal(t, 20.0, min)
	assert.Equal(t, 31.0, max)
}

// TestAgeSummaryEmpty yields an empty summary, not an error
func TestAgeSummaryEmpty(t *testing.T) {
	e := NewEngine(buildTable())
	s := e.AgeSummary().(views.Summary)
	assert.True(t, s.Empty())
}

// TestAgeGroupDistribution counts entries per bucket
func TestAgeGroupDistribution(t *testing.T) {
	e := NewEngine(buildTable(
		entry{ID: 1, Age: 18},
		entry{ID: 2, Age: 24},
		entry{ID: 3, Age: 26},
		entry{ID: 4, Age: 55},
	))

	s := e.AgeGroupDistribution().(views.Series)
	require.Len(t, s.Points, 5, "every bucket appears, even when empty")
	assert.Equal(t, "20-30", s.Points[0].Key, "fullest bucket first")
	assert.Equal(t, 2.0, s.Points[0].Value)

	v, _ := s.Get("30-40")
	assert.Equal(t, 0.0, v)
}

// TestMedalRateByAgeGroup divides medals by distinct athletes per bucket
func TestMedalRateByAgeGroup(t *testing.T) {
	e := NewEngine(buildTable(
		// three athletes in 20-30, one medal between them
		entry{ID: 1, Age: 23, Medal: "Gold"},
		entry{ID: 2, Age: 25, Medal: "No Medal"},
		entry{ID: 3, Age: 28, Medal: "No Medal"},
		// one athlete in Over 50 with two medal rows
		entry{ID: 4, Age: 55, Medal: "Silver"},
		entry{ID: 4, Age: 55, Medal: "Bronze"},
	))

	s := e.MedalRateByAgeGroup().(views.Series)
	require.Len(t, s.Points, 5)
	// bucket order is fixed regardless of counts
	assert.Equal(t, []string{"U20", "20-30", "30-40", "40-50", "Over 50"},
		[]string{s.Points[0].Key, s.Points[1].Key, s.Points[2].Key, s.Points[3].Key, s.Points[4].Key})

	rate, _ := s.Get("20-30")
	assert.Equal(t, 0.3333, rate, "1 medal over 3 athletes, rounded to 4 places")

	over50, _ := s.Get("Over 50")
	assert.Equal(t, 2.0, over50, "rates are per distinct athlete, so repeat medalists can exceed 1")

	empty, _ := s.Get("U20")
	assert.Equal(t, 0.0, empty, "empty bucket reports zero")
}

// TestGoldMedalistAge averages gold winners only
func TestGoldMedalistAge(t *testing.T) {
	e := NewEngine(buildTable(
		entry{ID: 1, Age: 20, Medal: "Gold"},
		entry{ID: 2, Age: 25, Medal: "Gold"},
		entry{ID: 3, Age: 60, Medal: "Silver"},
	))

	s := e.GoldMedalistAge().(views.Summary)
	avg, ok := s.Get("average_age_gold")
	require.True(t, ok)
	assert.Equal(t, 22.5, avg)
}

// TestGoldMedalistAgeNoGolds yields an empty summary
func TestGoldMedalistAgeNoGolds(t *testing.T) {
	e := NewEngine(buildTable(entry{ID: 1, Age: 30, Medal: "No Medal"}))
	assert.True(t, e.GoldMedalistAge().(views.Summary).Empty())
}
