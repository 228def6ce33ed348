package dataprep

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"

	"github.com/Ved2151H/Data-Cleanning-ML-internship/pkg/stats"
)

// ImputeMedian replaces missing values in col with the median of its
// observed values. The column becomes Float when anything is filled. A column
// with no observations stays missing.
func ImputeMedian(df dataframe.DataFrame, col string) (dataframe.DataFrame, error) {
	s, err := column(df, col)
	if err != nil {
		return df, err
	}
	missing := s.IsNaN()
	if s.Type() == series.String || s.Type() == series.Bool {
		// An all-missing column loads as String; there is nothing to fill it with.
		if countTrue(missing) == len(missing) {
			return df, nil
		}
		return df, errors.Errorf("median of non-numeric column %q (%s)", col, s.Type())
	}
	if countTrue(missing) == 0 {
		return df, nil
	}

	vals := s.Float()
	median := stats.Median(stats.DropNaN(vals))
	for i, v := range vals {
		if math.IsNaN(v) {
			vals[i] = median
		}
	}
	return mutate(df, series.New(vals, series.Float, col))
}

// ImputeMode replaces missing values in col with its most frequent observed
// value. Ties go to the value that occurs first. The column type is kept.
func ImputeMode(df dataframe.DataFrame, col string) (dataframe.DataFrame, error) {
	s, err := column(df, col)
	if err != nil {
		return df, err
	}
	if !s.HasNaN() {
		return df, nil
	}

	records := s.Records()
	missing := s.IsNaN()
	observed := make([]string, 0, len(records))
	for i, v := range records {
		if !missing[i] {
			observed = append(observed, v)
		}
	}
	mode, ok := stats.Mode(observed)
	if !ok {
		return df, errors.Wrapf(ErrNoObservations, "mode of column %q", col)
	}
	for i := range records {
		if missing[i] {
			records[i] = mode
		}
	}
	return mutate(df, series.New(records, s.Type(), col))
}

func column(df dataframe.DataFrame, col string) (series.Series, error) {
	if df.Err != nil {
		return series.Series{}, df.Err
	}
	if !hasColumn(df, col) {
		return series.Series{}, &MissingColumnError{Column: col}
	}
	s := df.Col(col)
	return s, s.Err
}

func countTrue(b []bool) int {
	n := 0
	for _, v := range b {
		if v {
			n++
		}
	}
	return n
}

func hasColumn(df dataframe.DataFrame, col string) bool {
	for _, name := range df.Names() {
		if name == col {
			return true
		}
	}
	return false
}

func mutate(df dataframe.DataFrame, s series.Series) (dataframe.DataFrame, error) {
	if s.Err != nil {
		return df, errors.Wrapf(s.Err, "build column %q", s.Name)
	}
	out := df.Mutate(s)
	if out.Err != nil {
		return df, errors.Wrapf(out.Err, "replace column %q", s.Name)
	}
	return out, nil
}
