package cleaning

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"olymstats/domain/table"
)

// ToNumeric converts a column to floating point. Values that cannot be
// parsed become missing rather than failing the stage.
func ToNumeric(col string) Stage {
	return Stage{
		Name: fmt.Sprintf("convert_to_numeric(%s)", col),
		Apply: func(t *table.Table) Outcome {
			if !t.HasColumn(col) {
				return notApplicable(col)
			}
			converted, unparsable := 0, 0
			for _, row := range t.Rows() {
				v, present := row[col]
				if !present || v.IsMissing() {
					continue
				}
				switch v.Type {
				case table.ValueTypeNumeric:
					// already numeric
				case table.ValueTypeInteger:
					row[col] = table.NewNumericValue(v.AsFloat64())
					converted++
				default:
					if f, ok := parseFloat(v.AsString()); ok {
						row[col] = table.NewNumericValue(f)
						converted++
					} else {
						row[col] = table.NewMissingValue()
						unparsable++
					}
				}
			}
			return Outcome{
				Affected: converted + unparsable,
				Detail:   fmt.Sprintf("converted %d values, %d unparsable set to missing", converted, unparsable),
			}
		},
	}
}

// ToInteger converts a column to an integer representation that tolerates
// missing values. Fractional values truncate toward zero; unparsable values
// become missing.
func ToInteger(col string) Stage {
	return Stage{
		Name: fmt.Sprintf("convert_to_int(%s)", col),
		Apply: func(t *table.Table) Outcome {
			if !t.HasColumn(col) {
				return notApplicable(col)
			}
			converted, unparsable := 0, 0
			for _, row := range t.Rows() {
				v, present := row[col]
				if !present || v.IsMissing() {
					continue
				}
				switch v.Type {
				case table.ValueTypeInteger:
					// already integral
				case table.ValueTypeNumeric:
					row[col] = table.NewIntegerValue(int64(v.AsFloat64()))
					converted++
				default:
					if f, ok := parseFloat(v.AsString()); ok {
						row[col] = table.NewIntegerValue(int64(f))
						converted++
					} else {
						row[col] = table.NewMissingValue()
						unparsable++
					}
				}
			}
			return Outcome{
				Affected: converted + unparsable,
				Detail:   fmt.Sprintf("converted %d values, %d unparsable set to missing", converted, unparsable),
			}
		},
	}
}

// timestampLayouts are tried in order when no explicit layout is given
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"02-Jan-2006",
}

// ToTimestamp converts a column to timestamps. Non-parsable values become
// missing.
func ToTimestamp(col string, layouts ...string) Stage {
	if len(layouts) == 0 {
		layouts = timestampLayouts
	}
	return Stage{
		Name: fmt.Sprintf("convert_to_datetime(%s)", col),
		Apply: func(t *table.Table) Outcome {
			if !t.HasColumn(col) {
				return notApplicable(col)
			}
			converted, unparsable := 0, 0
			for _, row := range t.Rows() {
				v, present := row[col]
				if !present || v.IsMissing() || v.IsTimestamp() {
					continue
				}
				parsed := false
				for _, layout := range layouts {
					if ts, err := time.Parse(layout, strings.TrimSpace(v.String())); err == nil {
						row[col] = table.NewTimestampValue(ts)
						converted++
						parsed = true
						break
					}
				}
				if !parsed {
					row[col] = table.NewMissingValue()
					unparsable++
				}
			}
			return Outcome{
				Affected: converted + unparsable,
				Detail:   fmt.Sprintf("converted %d values, %d unparsable set to missing", converted, unparsable),
			}
		},
	}
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
