package dataprep

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/pkg/errors"
)

// Titanic passenger columns touched by the cleaning stages.
const (
	ColAge      = "Age"
	ColEmbarked = "Embarked"
	ColSex      = "Sex"
)

// HandleMissingValues fills Age with its median and Embarked with its mode.
// Other columns are left as they are.
func HandleMissingValues(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	df, err := ImputeMedian(df, ColAge)
	if err != nil {
		return df, errors.Wrap(err, "impute age")
	}
	df, err = ImputeMode(df, ColEmbarked)
	if err != nil {
		return df, errors.Wrap(err, "impute embarked")
	}
	return df, nil
}

// MissingCount is the number of missing cells in one column.
type MissingCount struct {
	Column string
	Count  int
}

// MissingCounts returns the missing-value count of every column, in column
// order.
func MissingCounts(df dataframe.DataFrame) []MissingCount {
	names := df.Names()
	out := make([]MissingCount, len(names))
	for i, name := range names {
		out[i] = MissingCount{Column: name, Count: countTrue(df.Col(name).IsNaN())}
	}
	return out
}

// SelectColumns returns a new frame holding exactly cols, in that order.
func SelectColumns(df dataframe.DataFrame, cols ...string) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return df, df.Err
	}
	for _, c := range cols {
		if !hasColumn(df, c) {
			return dataframe.DataFrame{}, &MissingColumnError{Column: c}
		}
	}
	out := df.Select(cols)
	if out.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(out.Err, "select columns")
	}
	return out, nil
}
