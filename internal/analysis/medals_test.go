package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olymstats/domain/views"
)

// TestMedalsByCountry counts medal-bearing rows only, descending
func TestMedalsByCountry(t *testing.T) {
	e := NewEngine(buildTable(sampleEntries()...))

	s := e.MedalsByCountry().(views.Series)
	require.Len(t, s.Points, 2, "No Medal rows never count")

	assert.Equal(t, views.Point{Key: "USA", Value: 2}, s.Points[0])
	assert.Equal(t, views.Point{Key: "FRA", Value: 1}, s.Points[1])
	if _, found := s.Get("GER"); found {
		t.Error("country without medals should be absent")
	}
}

// TestMedalCountMatchesOverview ties the two medal totals together
func TestMedalCountMatchesOverview(t *testing.T) {
	e := NewEngine(buildTable(sampleEntries()...))

	counted := 0.0
	for _, p := range e.MedalCount().(views.Series).Points {
		counted += p.Value
	}
	overviewTotal, _ := e.Overview().(views.Summary).Get("total_medals")
	assert.Equal(t, overviewTotal, counted)
}

// TestCountryMostGold only counts gold
func TestCountryMostGold(t *testing.T) {
	e := NewEngine(buildTable(sampleEntries()...))

	s := e.CountryMostGold().(views.Series)
	require.Len(t, s.Points, 1)
	assert.Equal(t, views.Point{Key: "USA", Value: 1}, s.Points[0])
}

// TestMedalsByYear orders chronologically
func TestMedalsByYear(t *testing.T) {
	e := NewEngine(buildTable(
		entry{ID: 1, NOC: "USA", Year: 2012, Medal: "Gold"},
		entry{ID: 2, NOC: "USA", Year: 1996, Medal: "Silver"},
		entry{ID: 3, NOC: "USA", Year: 2008, Medal: "Bronze"},
	))

	s := e.MedalsByYear().(views.Series)
	require.Len(t, s.Points, 3)
	assert.Equal(t, []string{"1996", "2008", "2012"},
		[]string{s.Points[0].Key, s.Points[1].Key, s.Points[2].Key})
}

// TestMedalTally checks the per-country tally with its Total column
func TestMedalTally(t *testing.T) {
	e := NewEngine(buildTable(sampleEntries()...))

	g := e.MedalTally().(views.Grid)
	require.Len(t, g.Rows, 2)

	usa, ok := g.Row("USA")
	require.True(t, ok)
	assert.Equal(t, 1.0, usa.Cell("Gold"))
	assert.Equal(t, 1.0, usa.Cell("Silver"))
	assert.Equal(t, 0.0, usa.Cell("Bronze"))
	assert.Equal(t, 2.0, usa.Cell("Total"))

	for _, row := range g.Rows {
		assert.Equal(t, row.Cell("Gold")+row.Cell("Silver")+row.Cell("Bronze"), row.Cell("Total"))
	}
	// USA leads on gold
	assert.Equal(t, "USA", g.Rows[0].Key)
}

// TestMedalTallyTieBreak keeps input order for equal gold counts
func TestMedalTallyTieBreak(t *testing.T) {
	e := NewEngine(buildTable(
		entry{ID: 1, NOC: "NOR", Year: 2010, Medal: "Gold"},
		entry{ID: 2, NOC: "AUS", Year: 2010, Medal: "Gold"},
		entry{ID: 3, NOC: "CAN", Year: 2010, Medal: "Gold"},
		entry{ID: 4, NOC: "AUS", Year: 2010, Medal: "Gold"},
	))

	g := e.MedalTally().(views.Grid)
	require.Len(t, g.Rows, 3)
	assert.Equal(t, "AUS", g.Rows[0].Key, "two golds sort first")
	// NOR and CAN tie on one gold each and retain input order
	assert.Equal(t, "NOR", g.Rows[1].Key)
	assert.Equal(t, "CAN", g.Rows[2].Key)
}
