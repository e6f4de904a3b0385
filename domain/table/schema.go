package table

// Fixed columns of the Olympic athlete-event schema
const (
	ColID     = "ID"
	ColName   = "Name"
	ColSex    = "Sex"
	ColAge    = "Age"
	ColHeight = "Height"
	ColWeight = "Weight"
	ColTeam   = "Team"
	ColNOC    = "NOC"
	ColGames  = "Games"
	ColYear   = "Year"
	ColSeason = "Season"
	ColCity   = "City"
	ColSport  = "Sport"
	ColEvent  = "Event"
	ColMedal  = "Medal"
)

// Columns lists the schema in canonical order
var Columns = []string{
	ColID, ColName, ColSex, ColAge, ColHeight, ColWeight, ColTeam,
	ColNOC, ColGames, ColYear, ColSeason, ColCity, ColSport, ColEvent, ColMedal,
}

// NumericColumns are the columns loaded as numbers
var NumericColumns = []string{ColID, ColAge, ColHeight, ColWeight, ColYear}

// Canonical medal labels. NoMedal is a real category, not a missing marker.
const (
	MedalGold   = "Gold"
	MedalSilver = "Silver"
	MedalBronze = "Bronze"
	NoMedal     = "No Medal"
)

// MedalRanks are the three medal-bearing labels, best first
var MedalRanks = []string{MedalGold, MedalSilver, MedalBronze}

// IsMedal reports whether a medal value is exactly one of the three canonical
// labels. This is the single medal-bearing predicate used everywhere.
func IsMedal(v Value) bool {
	if !v.IsString() {
		return false
	}
	s := v.AsString()
	return s == MedalGold || s == MedalSilver || s == MedalBronze
}

// UnknownCategory replaces out-of-domain categorical values
const UnknownCategory = "Unknown"

// Fixed categorical domains
var (
	SexDomain    = []string{"M", "F"}
	SeasonDomain = []string{"Summer", "Winter"}
)

// Range is a closed numeric interval
type Range struct {
	Low  float64
	High float64
}

// ValidRanges are the hard domain sanity bounds for numeric columns.
// These clamp final values and are independent of any statistical policy.
var ValidRanges = map[string]Range{
	ColAge:    {5, 100},
	ColHeight: {100, 250},
	ColWeight: {25, 300},
	ColYear:   {1896, 2030},
}
