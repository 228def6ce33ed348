package dataprep

import (
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

// SexCodes is the fixed encoding of the Sex column.
var SexCodes = map[string]int{"male": 0, "female": 1}

// IndicatorName is the name of the one-hot column for category of col.
func IndicatorName(col, category string) string {
	return col + "_" + category
}

// MapCategories replaces col with the integer codes from mapping. Values not
// in mapping, and missing values, become missing.
func MapCategories(df dataframe.DataFrame, col string, mapping map[string]int) (dataframe.DataFrame, error) {
	s, err := column(df, col)
	if err != nil {
		return df, err
	}
	missing := s.IsNaN()
	out := make([]interface{}, s.Len())
	for i, v := range s.Records() {
		if code, ok := mapping[v]; ok && !missing[i] {
			out[i] = code
		}
	}
	return mutate(df, series.New(out, series.Int, col))
}

// Categories returns the distinct observed values of col in sorted order.
func Categories(df dataframe.DataFrame, col string) ([]string, error) {
	s, err := column(df, col)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	var cats []string
	missing := s.IsNaN()
	for i, v := range s.Records() {
		if missing[i] {
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			cats = append(cats, v)
		}
	}
	sort.Strings(cats)
	return cats, nil
}

// OneHot replaces col with one Int 0/1 indicator column per category, named
// <col>_<category> and appended after the remaining columns. With dropFirst
// the first category is left out and is represented by all-zero
// indicators. Missing values get zeros everywhere. It returns the names of
// the indicator columns.
func OneHot(df dataframe.DataFrame, col string, dropFirst bool) (dataframe.DataFrame, []string, error) {
	cats, err := Categories(df, col)
	if err != nil {
		return df, nil, err
	}
	if dropFirst && len(cats) > 0 {
		cats = cats[1:]
	}

	s := df.Col(col)
	records := s.Records()
	missing := s.IsNaN()

	var columns []series.Series
	for _, name := range df.Names() {
		if name != col {
			columns = append(columns, df.Col(name))
		}
	}
	names := make([]string, len(cats))
	for j, cat := range cats {
		vec := make([]int, len(records))
		for i, v := range records {
			if !missing[i] && v == cat {
				vec[i] = 1
			}
		}
		names[j] = IndicatorName(col, cat)
		columns = append(columns, series.New(vec, series.Int, names[j]))
	}

	out := dataframe.New(columns...)
	if out.Err != nil {
		return df, nil, errors.Wrapf(out.Err, "one-hot encode %q", col)
	}
	return out, names, nil
}

// RequireIndicators checks that OneHot produced an indicator column for each
// of the expected categories of col.
func RequireIndicators(df dataframe.DataFrame, col string, categories ...string) error {
	for _, cat := range categories {
		if !hasColumn(df, IndicatorName(col, cat)) {
			return &MissingCategoryError{Column: col, Category: cat}
		}
	}
	return nil
}

// EncodeCategorical maps Sex through SexCodes and one-hot encodes Embarked,
// dropping its first category.
func EncodeCategorical(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	df, err := MapCategories(df, ColSex, SexCodes)
	if err != nil {
		return df, errors.Wrap(err, "encode sex")
	}
	df, _, err = OneHot(df, ColEmbarked, true)
	if err != nil {
		return df, errors.Wrap(err, "encode embarked")
	}
	return df, nil
}
