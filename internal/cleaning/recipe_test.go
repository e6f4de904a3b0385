package cleaning

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olymstats/domain/table"
	"olymstats/internal/errors"
)

func messyOlympicTable() *table.Table {
	t := table.NewOlympic()
	rows := []table.Row{
		{
			table.ColID: num(1), table.ColName: str(" Michael Phelps "), table.ColSex: str("M"),
			table.ColAge: num(23), table.ColHeight: num(193), table.ColWeight: num(91),
			table.ColTeam: str("United States"), table.ColNOC: str("USA"),
			table.ColYear: num(2008), table.ColSeason: str("Summer"), table.ColCity: str("Beijing"),
			table.ColSport: str("Swimming"), table.ColEvent: str("Swimming Men's 200m Butterfly"),
			table.ColMedal: str("gold"),
		},
		{
			table.ColID: num(2), table.ColName: str("Jane Doe"), table.ColSex: str("F"),
			table.ColAge: missing(), table.ColHeight: num(170), table.ColWeight: missing(),
			table.ColTeam: str("Denmark/Sweden-2"), table.ColNOC: str("DEN"),
			table.ColYear: num(2008), table.ColSeason: str("Summer"), table.ColCity: str("Beijing"),
			table.ColSport: str("Swimming"), table.ColEvent: str("Swimming Women's Relay"),
			table.ColMedal: missing(),
		},
		{
			table.ColID: num(2), table.ColName: str("Jane Doe"), table.ColSex: str("F"),
			table.ColAge: missing(), table.ColHeight: num(170), table.ColWeight: missing(),
			table.ColTeam: str("Denmark/Sweden-2"), table.ColNOC: str("DEN"),
			table.ColYear: num(2008), table.ColSeason: str("Summer"), table.ColCity: str("Beijing"),
			table.ColSport: str("Swimming"), table.ColEvent: str("Swimming Women's Relay"),
			table.ColMedal: missing(),
		},
		{
			table.ColID: num(3), table.ColName: str("Old Timer"), table.ColSex: str("X"),
			table.ColAge: num(190), table.ColHeight: num(175), table.ColWeight: num(70),
			table.ColTeam: str("Norway"), table.ColNOC: str("NOR"),
			table.ColYear: num(1952), table.ColSeason: str("Winter"), table.ColCity: str("Oslo"),
			table.ColSport: str("Curling"), table.ColEvent: str("Curling Men's Curling"),
			table.ColMedal: str("NA"),
		},
	}
	for _, r := range rows {
		t.Append(r)
	}
	return t
}

// TestOptionsValidate rejects unknown option values instead of defaulting
func TestOptionsValidate(t *testing.T) {
	opts := DefaultOptions()
	require.NoError(t, opts.Validate())

	opts.FillNumeric = "max"
	err := opts.Validate()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))

	opts = DefaultOptions()
	opts.HandleOutliers = "shrug"
	err = opts.Validate()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

// TestNewPipelineRejectsInvalidOptions fails at construction, not at run time
func TestNewPipelineRejectsInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.HandleOutliers = "shrug"
	_, err := NewPipeline(opts)
	require.Error(t, err)
}

// TestFullRecipeOrder pins the canonical stage ordering
func TestFullRecipeOrder(t *testing.T) {
	stages, err := FullRecipe(DefaultOptions())
	require.NoError(t, err)

	names := make([]string, 0, len(stages))
	for _, s := range stages {
		names = append(names, s.Name)
	}

	assert.Equal(t, "strip_whitespace", names[0])
	assert.Equal(t, "clean_olympic_medal", names[1])
	assert.Equal(t, "remove_duplicates", names[2])

	// outlier correction precedes imputation, which precedes the domain clamp
	assert.Less(t, indexOf(names, "clip_outliers_iqr(Age)"), indexOf(names, "fill_numeric(Age)"))
	assert.Less(t, indexOf(names, "fill_numeric(Age)"), indexOf(names, "clip_to_valid_range(Age)"))
	// categorical and name normalization run after the numeric stages
	assert.Less(t, indexOf(names, "clip_to_valid_range(Year)"), indexOf(names, "clean_olympic_categorical"))
	assert.Less(t, indexOf(names, "clean_olympic_categorical"), indexOf(names, "convert_to_int(Age)"))
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

// TestPipelineRun exercises the full recipe end to end
func TestPipelineRun(t *testing.T) {
	raw := messyOlympicTable()
	pipeline, err := NewPipeline(DefaultOptions())
	require.NoError(t, err)

	cleaned, report := pipeline.Run(raw)

	// the exact duplicate is gone
	assert.Equal(t, 3, cleaned.Len())

	// every medal value lands in the canonical four
	valid := map[string]bool{
		table.MedalGold: true, table.MedalSilver: true,
		table.MedalBronze: true, table.NoMedal: true,
	}
	for _, row := range cleaned.Rows() {
		assert.True(t, valid[row[table.ColMedal].AsString()],
			"medal %q outside canonical domain", row[table.ColMedal].AsString())
	}

	// filled and clamped numerics respect the valid ranges
	for _, row := range cleaned.Rows() {
		age := row[table.ColAge]
		require.False(t, age.IsMissing(), "age should be imputed")
		assert.GreaterOrEqual(t, age.AsFloat64(), 5.0)
		assert.LessOrEqual(t, age.AsFloat64(), 100.0)
		assert.Equal(t, table.ValueTypeInteger, age.Type)
	}

	// split-team suffix and sport prefix are normalized
	den, _ := findByNOC(cleaned, "DEN")
	assert.Equal(t, "Denmark/Sweden", den[table.ColTeam].AsString())
	usa, _ := findByNOC(cleaned, "USA")
	assert.Equal(t, "Men's 200m Butterfly", usa[table.ColEvent].AsString())
	assert.Equal(t, "Gold", usa[table.ColMedal].AsString())

	// out-of-domain sex is replaced, not dropped
	nor, _ := findByNOC(cleaned, "NOR")
	assert.Equal(t, table.UnknownCategory, nor[table.ColSex].AsString())

	// one log line per stage plus the completion line
	stages, _ := FullRecipe(DefaultOptions())
	assert.Len(t, report.Lines, len(stages)+1)
	assert.True(t, strings.Contains(report.Lines[len(report.Lines)-1], "pipeline complete"))
	assert.False(t, report.RunID.String() == "")
}

// TestPipelineRunLeavesSourceUntouched verifies the raw table survives a run
func TestPipelineRunLeavesSourceUntouched(t *testing.T) {
	raw := messyOlympicTable()
	pipeline, err := NewPipeline(DefaultOptions())
	require.NoError(t, err)

	pipeline.Run(raw)

	assert.Equal(t, 4, raw.Len())
	assert.Equal(t, " Michael Phelps ", raw.Row(0)[table.ColName].AsString())
	assert.Equal(t, "gold", raw.Row(0)[table.ColMedal].AsString())
	assert.True(t, raw.Row(1)[table.ColAge].IsMissing())
	assert.Equal(t, 190.0, raw.Row(3)[table.ColAge].AsFloat64())
}

// TestPipelineRunsAreIndependent verifies a fresh report per run
func TestPipelineRunsAreIndependent(t *testing.T) {
	raw := messyOlympicTable()
	pipeline, err := NewPipeline(DefaultOptions())
	require.NoError(t, err)

	_, first := pipeline.Run(raw)
	_, second := pipeline.Run(raw)

	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Len(t, second.Lines, len(first.Lines))
}

func findByNOC(t *table.Table, noc string) (table.Row, bool) {
	for _, row := range t.Rows() {
		if row[table.ColNOC].AsString() == noc {
			return row, true
		}
	}
	return nil, false
}
