package dataprep

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoObservations is returned when a statistic is requested over a column
// with no non-missing values.
var ErrNoObservations = errors.New("no observed values")

// MissingColumnError reports a column that is not present in the frame.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found", e.Column)
}

// MissingCategoryError reports an expected category that never occurred in
// the input, so its indicator column was not produced.
type MissingCategoryError struct {
	Column   string
	Category string
}

func (e *MissingCategoryError) Error() string {
	return fmt.Sprintf("category %q of column %q not present in input: indicator column %q was not produced",
		e.Category, e.Column, IndicatorName(e.Column, e.Category))
}
