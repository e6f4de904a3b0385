package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olymstats/domain/views"
)

// TestWriterExportsOneFilePerView round-trips views through CSV files
func TestWriterExportsOneFilePerView(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	w := NewWriter(dir)

	vs := []views.View{
		views.Summary{Name: "overview", Fields: []views.Field{
			{Key: "total_athletes", Value: 4},
		}},
		views.Series{Name: "medal_count", Measure: "Medals", Points: []views.Point{
			{Key: "Gold", Value: 2},
			{Key: "Silver", Value: 1},
		}},
		views.Grid{Name: "medal_tally", KeyLabel: "NOC", Columns: []string{"Gold", "Total"},
			Rows: []views.GridRow{
				{Key: "USA", Cells: map[string]float64{"Gold": 1, "Total": 2}},
			}},
	}
	require.NoError(t, w.Export(vs))

	summary := readLines(t, filepath.Join(dir, "overview.csv"))
	assert.Equal(t, "Key,Value", summary[0])
	assert.Equal(t, "total_athletes,4", summary[1])

	series := readLines(t, filepath.Join(dir, "medal_count.csv"))
	assert.Equal(t, "Key,Medals", series[0])
	assert.Equal(t, "Gold,2", series[1])

	grid := readLines(t, filepath.Join(dir, "medal_tally.csv"))
	assert.Equal(t, "NOC,Gold,Total", grid[0])
	assert.Equal(t, "USA,1,2", grid[1])
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}
