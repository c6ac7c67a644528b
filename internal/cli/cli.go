// Package cli parses command-line flags of the directory program and layers
// them over the environment configuration.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/spec-kit/staff-directory/internal/config"
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

// Parse applies args on top of cfg. It returns true when the program should
// exit cleanly without running (for example after -h).
func Parse(args []string, output io.Writer, cfg *config.Config) (bool, error) {
	flagSet := flag.NewFlagSet("directory", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Directory - keep a list of employees per department.

Usage:
  directory [options] [SCRIPT]

Arguments:
  SCRIPT
    Optional text file with one command per line. Reads stdin when omitted.

Commands:
  Add [Name] to [Department]
  List [Department]
  List all
  Quit

Options:
`)
		flagSet.PrintDefaults()
	}

	scriptFlag := flagSet.String("script", cfg.Console.ScriptPath, "Path to a file of commands instead of stdin.")
	promptFlag := flagSet.String("prompt", cfg.Console.Prompt, "Prompt printed before each command in interactive mode.")
	noBannerFlag := flagSet.Bool("no-banner", !cfg.Console.ShowBanner, "Do not print the startup banner.")
	logLevelFlag := flagSet.String("log-level", cfg.Logger.Level, "Logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, &ExitError{Code: 2, Message: err.Error()}
	}

	script := *scriptFlag
	if flagSet.NArg() > 1 {
		return false, &ExitError{Code: 2, Message: "at most one script path may be given"}
	}
	if flagSet.NArg() == 1 {
		script = flagSet.Arg(0)
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg.Console.ScriptPath = script
	cfg.Console.Prompt = *promptFlag
	cfg.Console.ShowBanner = !*noBannerFlag
	cfg.Logger.Level = logLevel
	return false, nil
}
