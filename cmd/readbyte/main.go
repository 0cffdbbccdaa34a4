package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/raven-betanet/readbyte/internal/bytereader"
	"github.com/raven-betanet/readbyte/internal/output"
	"github.com/raven-betanet/readbyte/internal/utils"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitInvalidArgs = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

var (
	errInvalidConfig = errors.New("failed to load configuration")
	errOutput        = errors.New("failed to output result")
)

func exitCode(err error) int {
	var argErr *bytereader.ArgumentError
	if errors.As(err, &argErr) || errors.Is(err, errInvalidConfig) {
		return exitInvalidArgs
	}
	return exitFailure
}

type rootOptions struct {
	outputFormat string
	configFile   string
	logLevel     string
	logFormat    string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "readbyte <filename> <position>",
		Short: "Read a byte from a binary file at a specified position",
		Long: `readbyte reads the single byte stored at a zero-based offset of a binary file
and prints the offset, the byte literal and its hexadecimal value:

  $ readbyte rom.gb 0
  0: b'A' (Hex: 41)

Offsets at or beyond the end of the file are reported as "no data" and are not
an error. Negative offsets are rejected; pass them after "--" so they are not
taken for flags.

Exit codes:
  0 - Byte printed, or no data at the offset
  1 - File could not be opened or read, or the result could not be written
  2 - Invalid arguments or configuration error`,
		Version:       utils.GetVersionString(),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReadByte(cmd, args, opts)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &bytereader.ArgumentError{Arg: "flags", Err: err}
	})

	cmd.Flags().StringVarP(&opts.outputFormat, "format", "f", "", "Output format (text, json)")
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Configuration file path")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "Log format (text, json)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

// runReadByte validates the arguments, reads the requested byte and prints it.
// Arguments are checked before configuration is loaded or the file is touched.
func runReadByte(cmd *cobra.Command, args []string, opts rootOptions) error {
	req, err := bytereader.ParseRequest(args)
	if err != nil {
		return err
	}

	config, err := utils.LoadConfig(opts.configFile, cmd.ErrOrStderr(), configOverrides(cmd, opts))
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidConfig, err)
	}

	format, err := output.ParseFormat(config.Output.Format)
	if err != nil {
		return err
	}

	loggerConfig := config.Log
	loggerConfig.Output = cmd.ErrOrStderr()
	logger := utils.NewLogger(loggerConfig)

	logger.WithComponent("readbyte").Debugf("Reading %s at position %d", req.Filename, req.Position)

	reader := bytereader.NewByteReader(logger.WithComponent("bytereader"))
	result, err := reader.Read(req)
	if err != nil {
		return err
	}

	if err := output.NewFormatter(format).Write(cmd.OutOrStdout(), result); err != nil {
		return fmt.Errorf("%w: %w", errOutput, err)
	}
	return nil
}

// configOverrides maps the flags set on the command line to config keys
func configOverrides(cmd *cobra.Command, opts rootOptions) map[string]interface{} {
	overrides := make(map[string]interface{})
	if cmd.Flags().Changed("format") {
		overrides["output.format"] = opts.outputFormat
	}
	if cmd.Flags().Changed("log-level") {
		overrides["log.level"] = opts.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		overrides["log.format"] = opts.logFormat
	}
	if opts.verbose {
		overrides["log.level"] = string(utils.LogLevelDebug)
	}
	return overrides
}
