package pipeline

import (
	"github.com/go-gota/gota/dataframe"

	"github.com/Ved2151H/Data-Cleanning-ML-internship/pkg/dataprep"
)

// Schema describes the structure of the cleaned dataset.
type Schema struct {
	FeatureNames []string
	// Indicators lists, per one-hot encoded column, the categories whose
	// indicator columns must exist after encoding.
	Indicators map[string][]string
}

// TitanicSchema is the feature set written by Preprocess.
var TitanicSchema = Schema{
	FeatureNames: []string{"Survived", "Pclass", "Sex", "Age", "SibSp", "Parch", "Fare", "Embarked_Q", "Embarked_S"},
	Indicators:   map[string][]string{dataprep.ColEmbarked: {"Q", "S"}},
}

// CheckIndicators fails with a *dataprep.MissingCategoryError when an
// expected indicator column is absent. df is returned unchanged.
func (s Schema) CheckIndicators(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	for col, cats := range s.Indicators {
		if err := dataprep.RequireIndicators(df, col, cats...); err != nil {
			return df, err
		}
	}
	return df, nil
}

// Select keeps exactly the schema's features, in order.
func (s Schema) Select(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	return dataprep.SelectColumns(df, s.FeatureNames...)
}
