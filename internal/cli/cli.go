package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/vqalaunch/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// pathList collects a repeatable path flag.
type pathList []string

func (p *pathList) String() string {
	return strings.Join(*p, ",")
}

func (p *pathList) Set(value string) error {
	*p = append(*p, value)
	return nil
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("vqalaunch", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
vqalaunch - launch recorded VQA training runs.

Usage:
  vqalaunch [options] CONFIG [-- TRAINER_ARGS...]

Arguments:
  CONFIG
    Name of a launch configuration (see --list).
  TRAINER_ARGS
    Forwarded to the trainer verbatim, after the fixed flags.

Options:
`)
		flagSet.PrintDefaults()
	}

	var configPaths pathList
	flagSet.Var(&configPaths, "configs", "Path to an .hcl configuration file or directory (repeatable).")
	flagSet.Var(&configPaths, "c", "Path to an .hcl configuration file or directory (shorthand).")
	trainerFlag := flagSet.String("trainer", "", "Trainer program path, overriding the configuration's own.")
	listFlag := flagSet.Bool("list", false, "List known launch configurations and exit.")
	printFlag := flagSet.Bool("print", false, "Print the argument vector without launching the trainer.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	rest := flagSet.Args()
	configName := ""
	var passthrough []string
	if len(rest) > 0 {
		configName = rest[0]
		passthrough = rest[1:]
		// A separator between the configuration name and trainer arguments
		// is allowed but not required.
		if len(passthrough) > 0 && passthrough[0] == "--" {
			passthrough = passthrough[1:]
		}
	}

	if configName == "" && !*listFlag {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		ConfigName:  configName,
		ConfigPaths: configPaths,
		Passthrough: passthrough,
		Trainer:     *trainerFlag,
		List:        *listFlag,
		PrintOnly:   *printFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
