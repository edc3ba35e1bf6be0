package models

import "fmt"

// WarningKind classifies non-fatal problems found during a run.
type WarningKind string

const (
	// WarningMissingColumn is raised when an allow-listed column is absent from a sheet.
	WarningMissingColumn WarningKind = "missing_column"
	// WarningNameCollision is raised when two customers map to the same report file.
	WarningNameCollision WarningKind = "name_collision"
)

// Warning is a structured, non-fatal run diagnostic.
type Warning struct {
	Kind WarningKind `json:"kind"`
	// Sheet is the sheet the warning refers to (empty for run-level warnings).
	Sheet string `json:"sheet,omitempty"`
	// Column is the missing column name.
	Column string `json:"column,omitempty"`
	// Suggestion is the closest dropped column name, if any.
	Suggestion string `json:"suggestion,omitempty"`
	// Customer is the customer involved, for name collisions.
	Customer string `json:"customer,omitempty"`
	// Detail carries free-form context.
	Detail string `json:"detail,omitempty"`
}

func (w Warning) String() string {
	switch w.Kind {
	case WarningMissingColumn:
		msg := fmt.Sprintf("column %q was not found in the %q sheet and will be skipped", w.Column, w.Sheet)
		if w.Suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", w.Suggestion)
		}
		return msg
	case WarningNameCollision:
		return fmt.Sprintf("report for customer %q overwrites %s", w.Customer, w.Detail)
	default:
		return w.Detail
	}
}
