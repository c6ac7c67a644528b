package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"go.uber.org/zap"

	"github.com/spec-kit/staff-directory/internal/cli"
	"github.com/spec-kit/staff-directory/internal/config"
	"github.com/spec-kit/staff-directory/internal/observability"
	"github.com/spec-kit/staff-directory/internal/stats"
	"github.com/spec-kit/staff-directory/internal/textutil"
)

const usage = `Usage:
  textutil median <int>...
  textutil mode <int>...
  textutil piglatin <word>...
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(os.Stdout, os.Args[1:], logger); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprint(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out io.Writer, args []string, logger *zap.Logger) error {
	if len(args) < 2 {
		return &cli.ExitError{Code: 2, Message: usage}
	}
	command, operands := args[0], args[1:]
	logger.Debug("textutil", zap.String("command", command), zap.Int("operands", len(operands)))

	switch command {
	case "median":
		values, err := parseInts(operands)
		if err != nil {
			return err
		}
		slices.Sort(values)
		median, err := stats.Median(values)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "list of integers: %v\n", values)
		fmt.Fprintf(out, "Median: %.2f\n", median)
	case "mode":
		values, err := parseInts(operands)
		if err != nil {
			return err
		}
		mode, count, err := stats.Mode(values)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Mode: %d (occurs %d times)\n", mode, count)
	case "piglatin":
		for _, word := range operands {
			fmt.Fprintf(out, "pig latin %s: %s\n", word, textutil.PigLatin(word))
		}
	default:
		return &cli.ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q\n%s", command, usage)}
	}
	return nil
}

func parseInts(operands []string) ([]int, error) {
	values := make([]int, 0, len(operands))
	for _, op := range operands {
		v, err := strconv.Atoi(op)
		if err != nil {
			return nil, &cli.ExitError{Code: 2, Message: fmt.Sprintf("not an integer: %q\n", op)}
		}
		values = append(values, v)
	}
	return values, nil
}
