package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/Ved2151H/Data-Cleanning-ML-internship/pkg/logging"
	"github.com/Ved2151H/Data-Cleanning-ML-internship/pkg/pipeline"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// --input      : Path to the raw passenger CSV. Default = data/train.csv
// --output     : Path of the cleaned CSV. Default = outputs/cleaned_<input>
// --plots      : Directory for <column>_boxplot.png files. Default = directory of --output
// --save-plots : Write box plots to --plots. Default = true
// --log-level  : debug, info, warn, error
// --log-format : console or json
//
// Example:
//   go run ./cmd/preprocess --input data/train.csv --output outputs/cleaned.csv
//
// ---------------------------------------------------------------------
//

func main() {
	inputPath := flag.String("input", filepath.Join("data", "train.csv"), "Path to input CSV file")
	outputPath := flag.String("output", "", "Path to save the cleaned CSV")
	plotDir := flag.String("plots", "", "Directory for box plot images")
	savePlots := flag.Bool("save-plots", true, "Write box plot images")
	var logOpts logging.Options
	logOpts.BindFlags(flag.CommandLine)
	flag.Parse()

	log, err := logging.New(logOpts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	*outputPath = resolveOutput(*inputPath, *outputPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err = pipeline.Preprocess(ctx, pipeline.Config{
		InputPath:  *inputPath,
		OutputPath: *outputPath,
		PlotDir:    *plotDir,
		SavePlots:  *savePlots,
		Stdout:     os.Stdout,
		Log:        log.WithName("preprocess"),
	})
	if err != nil {
		log.Error(err, "preprocessing failed", "input", *inputPath)
		stop()
		os.Exit(1)
	}
}

// resolveOutput returns output, or outputs/cleaned_<input base name> when it
// is empty.
func resolveOutput(input, output string) string {
	if output != "" {
		return output
	}
	return filepath.Join("outputs", "cleaned_"+filepath.Base(input))
}
