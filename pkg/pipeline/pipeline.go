package pipeline

import (
	"context"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// Step is one stage of a Pipeline.
type Step interface {
	Name() string
	Apply(df dataframe.DataFrame) (dataframe.DataFrame, error)
}

type stepFunc struct {
	name string
	fn   func(dataframe.DataFrame) (dataframe.DataFrame, error)
}

func (s stepFunc) Name() string { return s.name }

func (s stepFunc) Apply(df dataframe.DataFrame) (dataframe.DataFrame, error) { return s.fn(df) }

// NewStep wraps fn as a named Step.
func NewStep(name string, fn func(dataframe.DataFrame) (dataframe.DataFrame, error)) Step {
	return stepFunc{name: name, fn: fn}
}

// Pipeline chains steps; each receives the frame returned by the previous one.
type Pipeline struct {
	steps []Step
	log   logr.Logger
}

func NewPipeline(log logr.Logger, steps ...Step) *Pipeline {
	return &Pipeline{steps: steps, log: log}
}

// Steps returns the step names in run order.
func (p *Pipeline) Steps() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name()
	}
	return names
}

// Run applies every step in order. The first failure stops the run and is
// returned wrapped with the step name. ctx is checked between steps.
func (p *Pipeline) Run(ctx context.Context, df dataframe.DataFrame) (dataframe.DataFrame, error) {
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return df, errors.Wrapf(err, "before %s", step.Name())
		}
		start := time.Now()
		out, err := step.Apply(df)
		if err != nil {
			return df, errors.Wrap(err, step.Name())
		}
		rows, cols := out.Dims()
		p.log.V(1).Info("step done", "step", step.Name(), "rows", rows, "cols", cols, "took", time.Since(start))
		df = out
	}
	return df, nil
}
