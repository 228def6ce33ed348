package pipeline

import (
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"

	"github.com/Ved2151H/Data-Cleanning-ML-internship/pkg/dataprep"
)

// WriteReport prints the shape, column types and per-column missing counts
// of df.
func WriteReport(w io.Writer, df dataframe.DataFrame) {
	rows, cols := df.Dims()
	counts := dataprep.MissingCounts(df)
	types := df.Types()

	fmt.Fprintln(w, "\nDataset Info:")
	fmt.Fprintf(w, "%d entries, %d columns\n", rows, cols)
	fmt.Fprintf(w, " %-4s%-15s%-16s%s\n", "#", "Column", "Non-Null Count", "Dtype")
	for i, c := range counts {
		fmt.Fprintf(w, " %-4d%-15s%-16s%s\n", i, c.Column, fmt.Sprintf("%d non-null", rows-c.Count), types[i])
	}

	fmt.Fprintln(w, "\nMissing Values:")
	for _, c := range counts {
		fmt.Fprintf(w, "%-15s%d\n", c.Column, c.Count)
	}
}
