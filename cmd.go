package aoc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	Day        int
	Part       string
	OnlySample bool
	SkipSample bool
	Debug      bool
	InputFile  string
	InputDir   string
}

// merge fills in the options that were not set on the command line from
// cfg.
func (o *options) merge(cfg *Config, changed func(name string) bool) {
	o.InputDir = cfg.InputDir
	if !changed("debug") {
		o.Debug = cfg.Debug
	}
	// --sample on the command line also beats skip_sample from the file.
	if !changed("skip-sample") && !changed("sample") {
		o.SkipSample = cfg.SkipSample
	}
}

func (o *options) validate() error {
	if o.InputFile != "" && o.Day == -1 {
		return errors.New("--input requires --day")
	}
	if o.OnlySample && o.SkipSample {
		return errors.New("--sample and --skip-sample are mutually exclusive")
	}
	return nil
}

// NewCommand returns the command Run executes. It is exported so that
// callers can supply their own arguments and output streams.
func NewCommand(year int, src fs.FS, slvr any) *cobra.Command {
	var (
		opts    options
		cfgPath string
	)
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("aoc%d", year),
		Short: fmt.Sprintf("Run the %d puzzle solutions", year),
		Args: func(cmd *cobra.Command, args []string) error {
			return reportUsage(cmd, cobra.NoArgs(cmd, args))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
			logger := newLogger(cmd.ErrOrStderr(), level)
			defer logger.Sync()

			err := func() error {
				cfg, err := LoadConfig(cfgPath)
				if err != nil {
					return err
				}
				opts.merge(cfg, cmd.Flags().Changed)
				if err := opts.validate(); err != nil {
					return err
				}
				if opts.Debug {
					level.SetLevel(zapcore.DebugLevel)
				}
				samples, err := extractSamples(src)
				if err != nil {
					return err
				}
				days, err := extractMethods(slvr)
				if err != nil {
					return err
				}
				r := &runner{
					year:    year,
					solver:  slvr,
					days:    days,
					samples: samples,
					opts:    opts,
					out:     cmd.OutOrStdout(),
					log:     logger,
				}
				return r.run()
			}()
			if err != nil {
				logger.Errorw("run failed", "year", year, "err", err)
			}
			return err
		},
	}
	cmd.SetFlagErrorFunc(reportUsage)
	f := cmd.Flags()
	f.IntVar(&opts.Day, "day", -1, "day to run; all days if unset")
	f.StringVar(&opts.Part, "part", "", "part to run")
	f.BoolVar(&opts.OnlySample, "sample", false, "only run sample")
	f.BoolVar(&opts.SkipSample, "skip-sample", false, "skip sample")
	f.BoolVar(&opts.Debug, "debug", false, "debug mode")
	f.StringVar(&opts.InputFile, "input", "", "input file, instead of <input_dir>/<year>/<day>.input")
	f.StringVar(&cfgPath, "config", DefaultConfigFile, "config file")
	return cmd
}

// reportUsage prints err and the usage for errors cobra finds before RunE,
// which would otherwise go unreported with SilenceErrors set.
func reportUsage(cmd *cobra.Command, err error) error {
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n%s", err, cmd.UsageString())
	}
	return err
}

func newLogger(w io.Writer, level zap.AtomicLevel) *zap.SugaredLogger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}
