package analysis

import (
	"olymstats/domain/table"
	"olymstats/domain/views"
)

// MedalCount reports how many Gold, Silver and Bronze medals the table
// holds, most frequent first.
func (e *Engine) MedalCount() views.View {
	c := newCounter()
	for _, row := range e.medalRows() {
		c.add(row[table.ColMedal].String(), 1)
	}
	s := views.Series{Name: "medal_count", Measure: "Medals"}
	for _, medal := range c.keysByCountDesc() {
		s.Points = append(s.Points, views.Point{Key: medal, Value: c.get(medal)})
	}
	return s
}

// MedalsByCountry counts medal-bearing rows per NOC, descending
func (e *Engine) MedalsByCountry() views.View {
	c := newCounter()
	for _, row := range e.medalRows() {
		if noc := row[table.ColNOC]; !noc.IsMissing() {
			c.add(noc.String(), 1)
		}
	}
	s := views.Series{Name: "medals_by_country", Measure: "Medals"}
	for _, noc := range c.keysByCountDesc() {
		s.Points = append(s.Points, views.Point{Key: noc, Value: c.get(noc)})
	}
	return s
}

// CountryMostGold counts gold medals per NOC, descending
func (e *Engine) CountryMostGold() views.View {
	c := newCounter()
	for _, row := range e.tbl.Rows() {
		if m := row[table.ColMedal]; !m.IsString() || m.AsString() != table.MedalGold {
			continue
		}
		if noc := row[table.ColNOC]; !noc.IsMissing() {
			c.add(noc.String(), 1)
		}
	}
	s := views.Series{Name: "country_most_gold", Measure: "Gold"}
	for _, noc := range c.keysByCountDesc() {
		s.Points = append(s.Points, views.Point{Key: noc, Value: c.get(noc)})
	}
	return s
}

// MedalsByYear counts medal-bearing rows per year, in chronological order
func (e *Engine) MedalsByYear() views.View {
	c := newCounter()
	for _, row := range e.medalRows() {
		if year := row[table.ColYear]; !year.IsMissing() {
			c.add(year.String(), 1)
		}
	}
	s := views.Series{Name: "medals_by_year", Measure: "Medals"}
	for _, year := range c.keysAscending() {
		s.Points = append(s.Points, views.Point{Key: year, Value: c.get(year)})
	}
	return s
}

// MedalsBySport counts medal-bearing rows per sport, descending
func (e *Engine) MedalsBySport() views.View {
	c := newCounter()
	for _, row := range e.medalRows() {
		if sport := row[table.ColSport]; !sport.IsMissing() {
			c.add(sport.String(), 1)
		}
	}
	s := views.Series{Name: "medals_by_sport", Measure: "Medals"}
	for _, sport := range c.keysByCountDesc() {
		s.Points = append(s.Points, views.Point{Key: sport, Value: c.get(sport)})
	}
	return s
}

// MedalTally builds the per-country Gold/Silver/Bronze/Total tally, sorted
// by gold count descending. Countries with equal gold counts keep their
// relative input order.
func (e *Engine) MedalTally() views.View {
	gold := newCounter()
	silver := newCounter()
	bronze := newCounter()
	order := newCounter()
	for _, row := range e.medalRows() {
		noc := row[table.ColNOC]
		if noc.IsMissing() {
			continue
		}
		key := noc.String()
		order.add(key, 1)
		switch row[table.ColMedal].String() {
		case table.MedalGold:
			gold.add(key, 1)
		case table.MedalSilver:
			silver.add(key, 1)
		case table.MedalBronze:
			bronze.add(key, 1)
		}
	}

	grid := views.Grid{
		Name:     "medal_tally",
		KeyLabel: "NOC",
		Columns:  []string{"Gold", "Silver", "Bronze", "Total"},
	}
	for _, noc := range order.keys() {
		g, s, b := gold.get(noc), silver.get(noc), bronze.get(noc)
		grid.Rows = append(grid.Rows, views.GridRow{
			Key: noc,
			Cells: map[string]float64{
				"Gold":   g,
				"Silver": s,
				"Bronze": b,
				"Total":  g + s + b,
			},
		})
	}
	// stable: equal gold counts retain input order
	sortGridRowsDesc(grid.Rows, "Gold")
	return grid
}
