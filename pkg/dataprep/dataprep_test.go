package dataprep

import (
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ved2151H/Data-Cleanning-ML-internship/pkg/data"
)

// Observed ages have median 28 and Embarked has mode S; the last passenger
// is missing both.
const passengers = `Survived,Pclass,Sex,Age,SibSp,Parch,Fare,Embarked
0,3,male,22,1,0,7.25,S
1,1,female,38,1,0,71.2833,C
1,3,female,26,0,0,7.925,S
1,1,female,35,1,0,53.1,S
0,3,male,28,0,0,8.05,Q
0,3,male,30,0,0,8.4583,Q
0,2,male,27,0,0,13,S
1,3,female,,0,0,7.75,
`

func load(t *testing.T, csv string) dataframe.DataFrame {
	t.Helper()
	df, err := data.ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	return df
}

func countNA(s series.Series) int {
	n := 0
	for _, na := range s.IsNaN() {
		if na {
			n++
		}
	}
	return n
}

func TestHandleMissingValues(t *testing.T) {
	df, err := HandleMissingValues(load(t, passengers))
	require.NoError(t, err)

	age := df.Col(ColAge)
	emb := df.Col(ColEmbarked)
	assert.Zero(t, countNA(age))
	assert.Zero(t, countNA(emb))
	assert.Equal(t, series.Float, age.Type())
	assert.Equal(t, 28.0, age.Elem(7).Float())
	assert.Equal(t, "S", emb.Elem(7).String())

	assert.Equal(t, 22.0, age.Elem(0).Float(), "observed values are kept")
	assert.Equal(t, "C", emb.Elem(1).String())
}

func TestHandleMissingValuesNoop(t *testing.T) {
	complete := `Sex,Age,Embarked
male,22,S
female,38,C
`
	in := load(t, complete)
	out, err := HandleMissingValues(in)
	require.NoError(t, err)
	assert.Equal(t, in.Records(), out.Records())
	assert.Equal(t, in.Types(), out.Types())
}

func TestHandleMissingValuesOtherColumnsUntouched(t *testing.T) {
	in := load(t, "Age,Embarked,Cabin\n22,S,\n,,C85\n")
	out, err := HandleMissingValues(in)
	require.NoError(t, err)
	assert.Equal(t, in.Col("Cabin").Records(), out.Col("Cabin").Records())
	assert.Equal(t, 1, countNA(out.Col("Cabin")))
}

func TestImputeAllMissing(t *testing.T) {
	df := load(t, "Age,Embarked,Fare\n,,1\n,,2\n")

	out, err := ImputeMedian(df, ColAge)
	require.NoError(t, err)
	assert.Equal(t, 2, countNA(out.Col(ColAge)), "median of nothing stays undefined")

	_, err = ImputeMode(df, ColEmbarked)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoObservations))
}

func TestImputeModeTieGoesToFirstSeen(t *testing.T) {
	df := load(t, "Id,Embarked\n1,Q\n2,C\n3,\n4,C\n5,Q\n")
	out, err := ImputeMode(df, ColEmbarked)
	require.NoError(t, err)
	assert.Equal(t, "Q", out.Col(ColEmbarked).Elem(2).String())
}

func TestImputeErrors(t *testing.T) {
	df := load(t, passengers)

	_, err := ImputeMedian(df, "Deck")
	var mc *MissingColumnError
	require.True(t, errors.As(err, &mc))
	assert.Equal(t, "Deck", mc.Column)

	_, err = ImputeMedian(df, ColSex)
	assert.Error(t, err)
}

func TestEncodeCategorical(t *testing.T) {
	df, err := HandleMissingValues(load(t, passengers))
	require.NoError(t, err)
	df, err = EncodeCategorical(df)
	require.NoError(t, err)

	assert.NotContains(t, df.Names(), ColEmbarked)
	assert.NotContains(t, df.Names(), "Embarked_C", "first category is dropped")
	names := df.Names()
	assert.Equal(t, []string{"Embarked_Q", "Embarked_S"}, names[len(names)-2:])

	sex := df.Col(ColSex)
	assert.Equal(t, series.Int, sex.Type())
	assert.Equal(t, 1.0, sex.Elem(7).Float())
	assert.Equal(t, 0.0, sex.Elem(0).Float())
	assert.Equal(t, 0.0, df.Col("Embarked_Q").Elem(7).Float())
	assert.Equal(t, 1.0, df.Col("Embarked_S").Elem(7).Float())

	// Row 1 embarked at C: all indicators zero.
	assert.Equal(t, 0.0, df.Col("Embarked_Q").Elem(1).Float())
	assert.Equal(t, 0.0, df.Col("Embarked_S").Elem(1).Float())

	q, s := df.Col("Embarked_Q").Float(), df.Col("Embarked_S").Float()
	allZero := 0
	for i := range q {
		assert.LessOrEqual(t, q[i]+s[i], 1.0)
		if q[i]+s[i] == 0 {
			allZero++
		}
	}
	assert.Equal(t, 1, allZero)
}

func TestMapCategoriesUnknownBecomesMissing(t *testing.T) {
	df := load(t, "Id,Sex\n1,male\n2,female\n3,unknown\n4,\n")
	out, err := MapCategories(df, ColSex, SexCodes)
	require.NoError(t, err)

	sex := out.Col(ColSex)
	assert.Equal(t, []bool{false, false, true, true}, sex.IsNaN())
	assert.Equal(t, []string{"0", "1", "NaN", "NaN"}, sex.Records())
}

func TestOneHot(t *testing.T) {
	df := load(t, "Id,Port\n1,S\n2,C\n3,\n4,Q\n")

	out, names, err := OneHot(df, "Port", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Port_C", "Port_Q", "Port_S"}, names)
	assert.Equal(t, []string{"Id", "Port_C", "Port_Q", "Port_S"}, out.Names())
	assert.Equal(t, []string{"0", "0", "0", "1"}, out.Col("Port_Q").Records())
	assert.Equal(t, []string{"1", "0", "0", "0"}, out.Col("Port_S").Records())

	out, names, err = OneHot(df, "Port", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Port_Q", "Port_S"}, names)
	assert.Equal(t, 4, out.Nrow())
}

func TestRequireIndicators(t *testing.T) {
	df := load(t, "Sex,Embarked\nmale,C\nfemale,S\nmale,S\n")
	df, err := EncodeCategorical(df)
	require.NoError(t, err)

	err = RequireIndicators(df, ColEmbarked, "Q", "S")
	var mc *MissingCategoryError
	require.True(t, errors.As(err, &mc))
	assert.Equal(t, "Q", mc.Category)
	assert.Contains(t, err.Error(), "Embarked_Q")

	assert.NoError(t, RequireIndicators(df, ColEmbarked, "S"))
}

func TestSelectColumns(t *testing.T) {
	df, err := HandleMissingValues(load(t, passengers))
	require.NoError(t, err)
	df, err = EncodeCategorical(df)
	require.NoError(t, err)

	cols := []string{"Survived", "Pclass", "Sex", "Age", "SibSp", "Parch", "Fare", "Embarked_Q", "Embarked_S"}
	out, err := SelectColumns(df, cols...)
	require.NoError(t, err)
	assert.Equal(t, cols, out.Names())
	assert.Equal(t, df.Nrow(), out.Nrow())
}

func TestSelectColumnsMissingCategory(t *testing.T) {
	df := load(t, "Survived,Sex,Embarked\n1,female,C\n0,male,S\n")
	df, err := EncodeCategorical(df)
	require.NoError(t, err)

	_, err = SelectColumns(df, "Survived", "Sex", "Embarked_Q", "Embarked_S")
	var mc *MissingColumnError
	require.True(t, errors.As(err, &mc))
	assert.Equal(t, "Embarked_Q", mc.Column)
}

func TestMissingCounts(t *testing.T) {
	counts := MissingCounts(load(t, passengers))
	require.Len(t, counts, 8)
	assert.Equal(t, MissingCount{Column: "Survived", Count: 0}, counts[0])
	assert.Equal(t, MissingCount{Column: "Age", Count: 1}, counts[3])
	assert.Equal(t, MissingCount{Column: "Embarked", Count: 1}, counts[7])
}
