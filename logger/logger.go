// Package logger builds the zap logger for the library tools
package logger

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a logger with settings from the command line flags:
// --loglevel, --logtime, --logdevelop. Unknown flags of the host
// command are skipped.
func New() (*zap.Logger, error) {

	const (
		FlagLevel       = "loglevel"
		FlagTime        = "logtime"
		FlagDevelopMode = "logdevelop"
	)

	flagSet := flag.NewFlagSet(getCmdName(os.Args), flag.ErrorHandling(-1)) // -1 - skip error 'not found flag'
	flagSet.SetOutput(newNopWriter())                                       // don't print help information about unknown flags
	flagSet.ParseErrorsWhitelist.UnknownFlags = true

	flagSet.StringVarP(new(string), FlagLevel, "", "", "logger level (debug, info, warn, error, dpanic, panic, fatal)")
	flagSet.StringVarP(new(string), FlagTime, "", "", "logger time format (iso8601, millis, nanos)")
	flagSet.BoolVarP(new(bool), FlagDevelopMode, "", false, "logger develop mode")

	if err := flagSet.ParseAll(os.Args, func(f *flag.Flag, v string) error {
		return f.Value.Set(strings.TrimSpace(v))
	}); err != nil {
		return nil, errors.Wrap(err, "failed to parse logger settings")
	}

	var (
		level                           = zapcore.DebugLevel
		timeFormat  zapcore.TimeEncoder = zapcore.EpochTimeEncoder
		developMode bool
	)

	if f := flagSet.Lookup(FlagLevel); f != nil {
		if v := f.Value.String(); v != "" {
			if err := level.Set(v); err != nil {
				return nil, errors.Wrap(err, f.Usage)
			}
		}
	}

	if f := flagSet.Lookup(FlagTime); f != nil {
		if v := f.Value.String(); v != "" {
			if err := timeFormat.UnmarshalText([]byte(v)); err != nil {
				return nil, errors.Wrap(err, f.Usage)
			}
		}
	}

	if f := flagSet.Lookup(FlagDevelopMode); f != nil {
		developMode = f.Value.String() == "true"
	}

	cfg := zap.NewProductionConfig()
	if developMode {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.EncodeTime = timeFormat

	return cfg.Build()
}

func getCmdName(args []string) (cmdName string) {

	if len(args) > 1 {
		if v := args[1]; len(v) > 0 && v[0] != '-' {
			cmdName = v
		}
	}

	return
}
