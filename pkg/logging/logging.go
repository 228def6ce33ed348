package logging

import (
	"flag"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls how the zap backend is built.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // console or json
}

// BindFlags registers the logging flags on fs.
func (o *Options) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.Level, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&o.Format, "log-format", "console", "Log encoding: console or json")
}

// New builds a logr.Logger backed by zap. Logs go to stderr so stdout stays
// free for the pipeline report.
func New(o Options) (logr.Logger, error) {
	lvl := zapcore.InfoLevel
	if o.Level != "" {
		var err error
		if lvl, err = zapcore.ParseLevel(o.Level); err != nil {
			return logr.Discard(), errors.Wrapf(err, "invalid log level %q", o.Level)
		}
	}

	cfg := zap.NewProductionConfig()
	switch strings.ToLower(o.Format) {
	case "", "console":
		cfg = zap.NewDevelopmentConfig()
	case "json":
	default:
		return logr.Discard(), errors.Errorf("invalid log format %q", o.Format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	z, err := cfg.Build()
	if err != nil {
		return logr.Discard(), errors.Wrap(err, "build zap logger")
	}
	return zapr.NewLogger(z), nil
}
