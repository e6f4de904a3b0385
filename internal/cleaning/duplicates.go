package cleaning

import (
	"fmt"
	"strings"

	"olymstats/domain/table"
)

// Keep selects which occurrence of a duplicate survives
type Keep string

const (
	KeepFirst Keep = "first"
	KeepLast  Keep = "last"
)

// DropDuplicates removes rows that are duplicates under the given column
// subset (all columns when empty), keeping the first or last occurrence.
// Surviving rows retain their relative order.
func DropDuplicates(subset []string, keep Keep) Stage {
	name := "remove_duplicates"
	if len(subset) > 0 {
		name = fmt.Sprintf("remove_duplicates(%s)", strings.Join(subset, ","))
	}
	return Stage{
		Name: name,
		Apply: func(t *table.Table) Outcome {
			cols := subset
			if len(cols) == 0 {
				cols = t.Columns()
			} else if !t.HasColumns(cols...) {
				return notApplicable(subset...)
			}

			before := t.Len()
			var kept []table.Row
			if keep == KeepLast {
				last := map[string]int{}
				for i, row := range t.Rows() {
					last[rowKey(row, cols)] = i
				}
				for i, row := range t.Rows() {
					if last[rowKey(row, cols)] == i {
						kept = append(kept, row)
					}
				}
			} else {
				seen := map[string]bool{}
				for _, row := range t.Rows() {
					key := rowKey(row, cols)
					if seen[key] {
						continue
					}
					seen[key] = true
					kept = append(kept, row)
				}
			}
			t.SetRows(kept)
			removed := before - t.Len()
			return Outcome{Affected: removed, Detail: fmt.Sprintf("removed %d duplicate rows", removed)}
		},
	}
}

// rowKey serializes the subset values into a duplicate-detection identity.
// Missing equals missing here, so fully identical rows dedupe even when they
// share missing cells.
func rowKey(row table.Row, cols []string) string {
	var b strings.Builder
	for i, col := range cols {
		if i > 0 {
			b.WriteByte(0x1f)
		}
		v := row[col]
		b.WriteString(string(v.Type))
		b.WriteByte(0x1e)
		b.WriteString(v.String())
	}
	return b.String()
}
