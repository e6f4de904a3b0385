package analysis

import (
	"olymstats/domain/table"
)

// entry describes one athlete-event row for test tables. Zero numeric fields
// and empty strings load as missing.
type entry struct {
	ID     float64
	Sex    string
	Age    float64
	Height float64
	Weight float64
	NOC    string
	Year   float64
	City   string
	Sport  string
	Medal  string
}

func buildTable(entries ...entry) *table.Table {
	t := table.NewOlympic()
	for _, e := range entries {
		row := table.Row{
			table.ColID:     numOrMissing(e.ID),
			table.ColSex:    strOrMissing(e.Sex),
			table.ColAge:    numOrMissing(e.Age),
			table.ColHeight: numOrMissing(e.Height),
			table.ColWeight: numOrMissing(e.Weight),
			table.ColNOC:    strOrMissing(e.NOC),
			table.ColYear:   numOrMissing(e.Year),
			table.ColCity:   strOrMissing(e.City),
			table.ColSport:  strOrMissing(e.Sport),
			table.ColMedal:  strOrMissing(e.Medal),
		}
		t.Append(row)
	}
	return t
}

func numOrMissing(f float64) table.Value {
	if f == 0 {
		return table.NewMissingValue()
	}
	return table.NewNumericValue(f)
}

func strOrMissing(s string) table.Value {
	if s == "" {
		return table.NewMissingValue()
	}
	return table.NewStringValue(s)
}
