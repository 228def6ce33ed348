package data

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

// NaNValues are the cell values treated as missing for every column type.
var NaNValues = []string{"", "NA", "NaN", "<nil>"}

// NAToken is written for missing cells.
const NAToken = ""

// LoadCSV reads the CSV file at path into a DataFrame. Column types are
// inferred from the header and contents.
func LoadCSV(path string) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrapf(err, "load %s", path)
	}
	defer file.Close()

	df, err := ReadCSV(bufio.NewReader(file))
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrapf(err, "load %s", path)
	}
	return df, nil
}

// ReadCSV parses CSV from r. The first record is the header.
func ReadCSV(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(NaNValues),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(df.Err, "parse csv")
	}
	return df, nil
}

// WriteCSV writes df to path with a header row and no index column. The
// parent directory is created if needed. Floats are written in their
// shortest exact form and missing cells as NAToken.
func WriteCSV(df dataframe.DataFrame, path string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create output dir for %s", path)
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	w := csv.NewWriter(file)
	if err := w.WriteAll(Records(df)); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// Records renders df as CSV records, header first.
func Records(df dataframe.DataFrame) [][]string {
	rows, cols := df.Dims()
	out := make([][]string, rows+1)
	out[0] = df.Names()
	for i := 1; i <= rows; i++ {
		out[i] = make([]string, cols)
	}
	for j, name := range df.Names() {
		s := df.Col(name)
		for i := 0; i < rows; i++ {
			out[i+1][j] = formatCell(s.Elem(i))
		}
	}
	return out
}

func formatCell(e series.Element) string {
	switch {
	case e.IsNA():
		return NAToken
	case e.Type() == series.Float:
		return strconv.FormatFloat(e.Float(), 'g', -1, 64)
	default:
		return e.String()
	}
}
