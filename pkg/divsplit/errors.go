package divsplit

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound indicates the input workbook does not exist.
var ErrSourceNotFound = errors.New("source workbook not found")

// ErrInvalidFormat indicates the input file could not be opened as a workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrCustomerFailures is returned when ContinueOnError is set and at least one
// customer report could not be written.
var ErrCustomerFailures = errors.New("customer reports failed")

// SheetReadError represents a missing or unreadable input sheet.
type SheetReadError struct {
	SheetName string
	Err       error
}

func (e *SheetReadError) Error() string {
	return fmt.Sprintf("read sheet %q: %v", e.SheetName, e.Err)
}

func (e *SheetReadError) Unwrap() error {
	return e.Err
}

// NewSheetReadError creates a new SheetReadError.
func NewSheetReadError(sheetName string, err error) *SheetReadError {
	return &SheetReadError{
		SheetName: sheetName,
		Err:       err,
	}
}

// CustomerError represents a failure while writing one customer's report.
type CustomerError struct {
	Customer string
	Path     string
	Err      error
}

func (e *CustomerError) Error() string {
	return fmt.Sprintf("report for customer %q (%s): %v", e.Customer, e.Path, e.Err)
}

func (e *CustomerError) Unwrap() error {
	return e.Err
}

// IsInputError reports whether err means the input could not be loaded, in
// which case no report was produced.
func IsInputError(err error) bool {
	var sheetErr *SheetReadError
	return errors.Is(err, ErrSourceNotFound) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.As(err, &sheetErr)
}
