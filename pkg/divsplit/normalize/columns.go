// Package normalize maps raw sheet headers onto the canonical report columns.
package normalize

import (
	"strings"

	"github.com/schollz/closestmatch"
	"github.com/ukaji3/divsplit-go/pkg/divsplit/models"
)

// Rename maps a legacy column name to its canonical name.
type Rename struct {
	From string
	To   string
}

// DefaultRenames is applied to every sheet before projection.
var DefaultRenames = []Rename{
	{From: "Disburser Paymode-X Account", To: "Disburser Paymode Account"},
	{From: "Collector Paymode-X Account", To: "Collector Paymode"},
}

// Table trims and renames the header of t, then projects it onto allow. Columns
// absent from the header are skipped with a warning; columns not in allow are
// dropped. The result keeps allow's order.
func Table(t models.Table, allow []string, renames []Rename) (models.Table, []models.Warning) {
	header := make([]string, len(t.Columns))
	for i, name := range t.Columns {
		header[i] = rename(strings.TrimSpace(name), renames)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		// Collisions after trimming keep the first column.
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	var keep []int
	var columns []string
	var missing []string
	for _, name := range allow {
		i, ok := index[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		keep = append(keep, i)
		columns = append(columns, name)
	}

	rows := make([][]interface{}, len(t.Rows))
	for r, row := range t.Rows {
		projected := make([]interface{}, len(keep))
		for j, i := range keep {
			if i < len(row) {
				projected[j] = row[i]
			}
		}
		rows[r] = projected
	}

	out := models.Table{Sheet: t.Sheet, Columns: columns, Rows: rows}
	return out, missingWarnings(t.Sheet, missing, dropped(header, allow))
}

// Sheet normalizes t with the allow-list of spec and the default renames.
func Sheet(t models.Table, spec models.SheetSpec) (models.Table, []models.Warning) {
	if t.Sheet == "" {
		t.Sheet = spec.Name
	}
	return Table(t, spec.Columns, DefaultRenames)
}

func rename(name string, renames []Rename) string {
	for _, r := range renames {
		if r.From == name {
			return r.To
		}
	}
	return name
}

// dropped returns header names that the allow-list does not keep.
func dropped(header, allow []string) []string {
	wanted := make(map[string]bool, len(allow))
	for _, name := range allow {
		wanted[name] = true
	}
	var out []string
	for _, name := range header {
		if !wanted[name] && name != "" {
			out = append(out, name)
		}
	}
	return out
}

func missingWarnings(sheet string, missing, candidates []string) []models.Warning {
	if len(missing) == 0 {
		return nil
	}

	var cm *closestmatch.ClosestMatch
	if len(candidates) > 0 {
		cm = closestmatch.New(candidates, []int{2, 3})
	}

	warnings := make([]models.Warning, 0, len(missing))
	for _, name := range missing {
		w := models.Warning{
			Kind:   models.WarningMissingColumn,
			Sheet:  sheet,
			Column: name,
		}
		if cm != nil {
			w.Suggestion = cm.Closest(name)
		}
		warnings = append(warnings, w)
	}
	return warnings
}
