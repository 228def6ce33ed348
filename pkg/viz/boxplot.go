package viz

import (
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Ved2151H/Data-Cleanning-ML-internship/pkg/stats"
)

// Options controls box plot rendering.
type Options struct {
	// Dir receives <column>_boxplot.png files when Save is set.
	Dir  string
	Save bool
	// Width and Height default to 6x4 inches.
	Width, Height vg.Length
	Log           logr.Logger
}

// FileName is the image name used for column.
func FileName(column string) string {
	return column + "_boxplot.png"
}

// NumericColumns returns the Int and Float columns of df in column order.
func NumericColumns(df dataframe.DataFrame) []string {
	var out []string
	for i, t := range df.Types() {
		if t == series.Int || t == series.Float {
			out = append(out, df.Names()[i])
		}
	}
	return out
}

// BoxPlot builds a box-and-whisker plot of values. Whiskers reach the most
// extreme values within 1.5 IQR of the quartiles; anything beyond is drawn as
// an outlier point.
func BoxPlot(name string, values []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Boxplot of " + name
	p.Y.Label.Text = name

	box, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(values))
	if err != nil {
		return nil, errors.Wrapf(err, "boxplot of %q", name)
	}
	p.Add(box)
	p.NominalX(name)
	return p, nil
}

// BoxPlots renders a box plot for every numeric column of df and, when
// opts.Save is set, writes each one under opts.Dir. It returns the paths
// written. df is not modified. Missing cells are left out; columns with no
// observed values are skipped.
func BoxPlots(df dataframe.DataFrame, opts Options) ([]string, error) {
	log := opts.Log
	w, h := opts.Width, opts.Height
	if w == 0 {
		w = 6 * vg.Inch
	}
	if h == 0 {
		h = 4 * vg.Inch
	}
	if opts.Save {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "create plot dir %s", opts.Dir)
		}
	}

	var paths []string
	for _, name := range NumericColumns(df) {
		values := stats.DropNaN(df.Col(name).Float())
		sum, ok := stats.Summarize(values)
		if !ok {
			log.Info("skipping column with no observed values", "column", name)
			continue
		}
		log.V(1).Info("distribution", "column", name,
			"min", sum.Min, "q1", sum.Q1, "median", sum.Median, "q3", sum.Q3, "max", sum.Max,
			"outliers", sum.Outliers)

		p, err := BoxPlot(name, values)
		if err != nil {
			return paths, err
		}
		if !opts.Save {
			continue
		}
		path := filepath.Join(opts.Dir, FileName(name))
		if err := p.Save(w, h, path); err != nil {
			return paths, errors.Wrapf(err, "save %s", path)
		}
		log.V(1).Info("saved boxplot", "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}
