// Package cli builds the cobra command shared by the three report binaries.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"textreports/internal/config"
	"textreports/internal/logging"
	"textreports/internal/processor"
	"textreports/internal/processor/analysis"
	"textreports/internal/types"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is set at build time with -ldflags "-X textreports/internal/cli.Version=...".
var Version = "1.0.0-dev"

// Exit codes returned by Execute
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Program describes one report binary
type Program struct {
	Name     string
	Analyzer string
	Short    string
}

var (
	StatisticsProgram = Program{
		Name:     "compute_statistics",
		Analyzer: processor.AnalyzerStatistics,
		Short:    "Compute count, mean, median, mode, standard deviation and variance of a file of numbers",
	}
	ConverterProgram = Program{
		Name:     "convert_numbers",
		Analyzer: processor.AnalyzerConverter,
		Short:    "Convert every number of a file to binary and hexadecimal",
	}
	WordCountProgram = Program{
		Name:     "word_count",
		Analyzer: processor.AnalyzerWordCount,
		Short:    "Count the occurrences of every word of a text file",
	}
)

// options holds flag values before they are merged into config.Config
type options struct {
	configFile string
	verbose    bool
	logFile    string
	logFormat  string
}

// exitError carries a non-zero exit code for a failure that was already reported
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// Execute runs program with args and returns the process exit code. start is
// the process start time used for the elapsed-time field of reports.
func Execute(program Program, start time.Time, args []string, stdout, stderr io.Writer) int {
	cmd := NewCommand(program, start, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	fmt.Fprintf(stderr, "%s: %v\n", program.Name, err)
	fmt.Fprint(stderr, cmd.UsageString())

	return ExitUsage
}

// NewCommand returns the root command for program
func NewCommand(program Program, start time.Time, stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           program.Name + " <path>",
		Short:         program.Short,
		Long:          program.Short + ".\nThe report is printed and saved to <path>.results.txt.",
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Flags(), program, start, args[0], &opts, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	bindFlags(cmd.Flags(), &opts)

	return cmd
}

func bindFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVarP(&opts.configFile, "config", "c", "", "TOML configuration file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug details to stderr")
	flags.StringVar(&opts.logFile, "log-file", "", "Also write log records to this file (rotated)")
	flags.StringVar(&opts.logFormat, "log-format", string(config.LogFormatText), "Log record format: text | json")
}

// loadConfig merges defaults, the optional config file and explicitly set flags
func loadConfig(flags *pflag.FlagSet, opts *options) (config.Config, error) {
	cfg := config.DefaultConfig()

	if opts.configFile != "" {
		err := config.LoadFile(opts.configFile, &cfg)
		if err != nil {
			return cfg, err
		}
	}

	cfg.Verbose = opts.verbose

	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}

	if flags.Changed("log-format") {
		cfg.Log.Format = config.LogFormat(opts.logFormat)
	}

	return cfg, cfg.Validate()
}

func run(flags *pflag.FlagSet, program Program, start time.Time, path string, opts *options, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(flags, opts)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", program.Name, err)
		return &exitError{code: ExitFailure, err: err}
	}

	log, err := logging.NewLogger(&cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", program.Name, err)
		return &exitError{code: ExitFailure, err: err}
	}
	defer log.Close()

	log.Install()

	_, err = os.Stat(path)
	if err != nil {
		fmt.Fprintf(stdout, "Error: The path '%s' is invalid.\n", path)
		log.Debug("Input path rejected", "path", path, "error", err)

		return &exitError{code: ExitFailure, err: err}
	}

	request := types.ProcessingRequest{
		Analyzer:     program.Analyzer,
		Start:        start,
		MaxLineBytes: cfg.Input.MaxLineBytes,
	}

	err = processor.ProcessFile(path, request, stdout)
	if err != nil {
		reportFailure(stdout, path, err)
		log.Error("Report failed", "program", program.Name, "path", path, "error", err)

		return &exitError{code: ExitFailure, err: err}
	}

	return nil
}

// reportFailure prints the user-facing message for a failed run
func reportFailure(stdout io.Writer, path string, err error) {
	var writeErr *processor.WriteError

	switch {
	case errors.As(err, &writeErr):
		// the processor already printed "Failed to save file"
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(stdout, "Error: The file '%s' was not found.\n", path)
	case errors.Is(err, analysis.ErrEmptyInput):
		fmt.Fprintf(stdout, "Error: No valid numbers found in '%s'.\n", path)
	default:
		fmt.Fprintf(stdout, "Error: %v\n", err)
	}
}
