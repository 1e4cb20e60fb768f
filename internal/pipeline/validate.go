package pipeline

import (
	"strings"

	"github.com/fsun/ski-results/internal/common"
	"github.com/fsun/ski-results/internal/entity"
)

// errNoResults marks a file that parsed cleanly but listed no result rows at
// all. An empty sheet is not a pipeline error, so such files are recorded as
// skipped rather than failed.
var errNoResults = &common.ValidationError{Field: "results", Message: "no result rows"}

// validateEvent gates an event before persistence: the discipline must be
// known, rows with an empty athlete name are dropped (and counted), and an
// event left with zero valid rows is not persisted. A sheet with no rows at
// all yields errNoResults; a sheet whose rows were all dropped here is a
// validation failure.
func validateEvent(ev *entity.EventRecord, rows []entity.ResultRow) ([]entity.ResultRow, int, error) {
	if strings.TrimSpace(ev.Discipline) == "" {
		return nil, 0, &common.ValidationError{Field: "discipline", Message: "must not be empty"}
	}
	if len(rows) == 0 {
		return nil, 0, errNoResults
	}

	valid := rows[:0]
	droppedRows := 0
	for _, r := range rows {
		if strings.TrimSpace(r.Name) == "" {
			droppedRows++
			continue
		}
		valid = append(valid, r)
	}
	if len(valid) == 0 {
		return nil, droppedRows, &common.ValidationError{Field: "results", Message: "all rows dropped for empty names"}
	}
	return valid, droppedRows, nil
}
