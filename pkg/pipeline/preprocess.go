package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/Ved2151H/Data-Cleanning-ML-internship/pkg/data"
	"github.com/Ved2151H/Data-Cleanning-ML-internship/pkg/dataprep"
	"github.com/Ved2151H/Data-Cleanning-ML-internship/pkg/viz"
)

// Config holds the inputs of Preprocess.
type Config struct {
	InputPath  string
	OutputPath string
	// PlotDir receives the box plots. Defaults to the directory of OutputPath.
	PlotDir   string
	SavePlots bool
	// Schema defaults to TitanicSchema.
	Schema *Schema
	// Stdout receives the dataset report. Defaults to os.Stdout.
	Stdout io.Writer
	Log    logr.Logger
}

func (c *Config) setDefaults() {
	if c.PlotDir == "" {
		c.PlotDir = filepath.Dir(c.OutputPath)
	}
	if c.Schema == nil {
		c.Schema = &TitanicSchema
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
}

// Steps builds the cleaning pipeline run between load and write: impute,
// encode, indicator check, box plots, select.
func Steps(cfg Config) *Pipeline {
	cfg.setDefaults()
	plots := viz.Options{Dir: cfg.PlotDir, Save: cfg.SavePlots, Log: cfg.Log.WithName("viz")}
	return NewPipeline(cfg.Log,
		NewStep("impute", dataprep.HandleMissingValues),
		NewStep("encode", dataprep.EncodeCategorical),
		NewStep("check indicators", cfg.Schema.CheckIndicators),
		NewStep("visualize", func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
			paths, err := viz.BoxPlots(df, plots)
			if err == nil && len(paths) > 0 {
				cfg.Log.Info("saved boxplots", "dir", cfg.PlotDir, "count", len(paths))
			}
			return df, err
		}),
		NewStep("select", cfg.Schema.Select),
	)
}

// Preprocess loads the passenger CSV at cfg.InputPath, cleans it and writes
// the selected features to cfg.OutputPath. A report of the raw dataset and a
// completion message are printed to cfg.Stdout. The first failure aborts the
// run; files already written are left in place. ctx is checked before
// load, between steps and before the write.
func Preprocess(ctx context.Context, cfg Config) (dataframe.DataFrame, error) {
	cfg.setDefaults()
	log := cfg.Log

	if err := ctx.Err(); err != nil {
		return dataframe.DataFrame{}, errors.Wrap(err, "before load")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.OutputPath), 0o755); err != nil {
		return dataframe.DataFrame{}, errors.Wrap(err, "create output dir")
	}

	df, err := data.LoadCSV(cfg.InputPath)
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrap(err, "load")
	}
	rows, cols := df.Dims()
	log.Info("loaded dataset", "path", cfg.InputPath, "rows", rows, "cols", cols)
	WriteReport(cfg.Stdout, df)

	df, err = Steps(cfg).Run(ctx, df)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	if err := persist(ctx, df, cfg.OutputPath); err != nil {
		return dataframe.DataFrame{}, err
	}
	log.Info("wrote cleaned dataset", "path", cfg.OutputPath, "rows", df.Nrow(), "cols", df.Ncol())
	fmt.Fprintf(cfg.Stdout, "\nPreprocessing completed. Cleaned file saved at: %s\n", cfg.OutputPath)
	return df, nil
}

func persist(ctx context.Context, df dataframe.DataFrame, path string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "before persist")
	}
	return errors.Wrap(data.WriteCSV(df, path), "persist")
}
