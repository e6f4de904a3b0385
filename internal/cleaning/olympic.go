package cleaning

import (
	"fmt"
	"regexp"
	"strings"

	"olymstats/domain/table"
)

// teamSuffix matches the trailing "-<digits>" disambiguation marker of split
// national teams, e.g. "China-1" or "Denmark/Sweden-2"
var teamSuffix = regexp.MustCompile(`-\d+$`)

// NormalizeMedals folds the medal column onto its four canonical values.
// Missing values and the placeholder markers NA/nan/"" become the literal
// "No Medal" category; case and whitespace variants of the three medal labels
// fold to canonical casing.
func NormalizeMedals() Stage {
	return Stage{
		Name: "clean_olympic_medal",
		Apply: func(t *table.Table) Outcome {
			if !t.HasColumn(table.ColMedal) {
				return notApplicable(table.ColMedal)
			}
			changed := 0
			for _, row := range t.Rows() {
				v, present := row[table.ColMedal]
				if !present || v.IsMissing() {
					row[table.ColMedal] = table.NewStringValue(table.NoMedal)
					changed++
					continue
				}
				if !v.IsString() {
					continue
				}
				raw := v.AsString()
				canonical := canonicalMedal(raw)
				if canonical != raw {
					row[table.ColMedal] = table.NewStringValue(canonical)
					changed++
				}
			}
			return Outcome{Affected: changed, Detail: fmt.Sprintf("normalized %d medal values", changed)}
		},
	}
}

func canonicalMedal(raw string) string {
	s := strings.TrimSpace(raw)
	switch {
	case s == "" || s == "NA" || s == "nan":
		return table.NoMedal
	case strings.EqualFold(s, table.MedalGold):
		return table.MedalGold
	case strings.EqualFold(s, table.MedalSilver):
		return table.MedalSilver
	case strings.EqualFold(s, table.MedalBronze):
		return table.MedalBronze
	}
	return raw
}

// NormalizeTeamNames strips the trailing "-<digits>" suffix from team names
// so that split national teams aggregate under one name
func NormalizeTeamNames() Stage {
	return Stage{
		Name: "clean_team_name",
		Apply: func(t *table.Table) Outcome {
			if !t.HasColumn(table.ColTeam) {
				return notApplicable(table.ColTeam)
			}
			changed := rewriteText(t, table.ColTeam, func(s string) string {
				return teamSuffix.ReplaceAllString(s, "")
			})
			return Outcome{Affected: changed, Detail: fmt.Sprintf("normalized %d team names", changed)}
		},
	}
}

// NormalizeEventNames strips the sport name from the front of the event text,
// e.g. sport "Basketball" turns event "Basketball Men's Basketball" into
// "Men's Basketball". Events not starting with their sport are unchanged.
func NormalizeEventNames() Stage {
	return Stage{
		Name: "clean_event_name",
		Apply: func(t *table.Table) Outcome {
			if !t.HasColumns(table.ColEvent, table.ColSport) {
				return notApplicable(table.ColEvent, table.ColSport)
			}
			changed := 0
			for _, row := range t.Rows() {
				event, sport := row[table.ColEvent], row[table.ColSport]
				if !event.IsString() || !sport.IsString() || sport.AsString() == "" {
					continue
				}
				ev, sp := event.AsString(), sport.AsString()
				if !strings.HasPrefix(ev, sp) {
					continue
				}
				short := strings.TrimSpace(strings.TrimPrefix(ev, sp))
				if short != ev {
					row[table.ColEvent] = table.NewStringValue(short)
					changed++
				}
			}
			return Outcome{Affected: changed, Detail: fmt.Sprintf("shortened %d event names", changed)}
		},
	}
}

// NormalizeCategoricals forces Sex and Season into their fixed domains,
// replacing out-of-domain values with "Unknown". Missing values stay missing.
func NormalizeCategoricals() Stage {
	return Stage{
		Name: "clean_olympic_categorical",
		Apply: func(t *table.Table) Outcome {
			replaced := 0
			applied := false
			if t.HasColumn(table.ColSex) {
				replaced += replaceInvalidCategory(t, table.ColSex, table.SexDomain, table.UnknownCategory)
				applied = true
			}
			if t.HasColumn(table.ColSeason) {
				replaced += replaceInvalidCategory(t, table.ColSeason, table.SeasonDomain, table.UnknownCategory)
				applied = true
			}
			if !applied {
				return notApplicable(table.ColSex, table.ColSeason)
			}
			return Outcome{Affected: replaced, Detail: fmt.Sprintf("replaced %d out-of-domain values with %q", replaced, table.UnknownCategory)}
		},
	}
}
