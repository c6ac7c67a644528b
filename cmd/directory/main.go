package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-directory/internal/cli"
	"github.com/spec-kit/staff-directory/internal/config"
	"github.com/spec-kit/staff-directory/internal/console"
	"github.com/spec-kit/staff-directory/internal/events"
	"github.com/spec-kit/staff-directory/internal/observability"
	"github.com/spec-kit/staff-directory/internal/repository"
	"github.com/spec-kit/staff-directory/internal/service"
	"github.com/spec-kit/staff-directory/internal/worker"
)

func main() {
	if err := run(os.Stdin, os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(stdin io.Reader, stdout io.Writer, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	shouldExit, err := cli.Parse(args, stdout, cfg)
	if err != nil || shouldExit {
		return err
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	sessionID := uuid.NewString()
	logger = logger.With(zap.String("app", cfg.App.Name), zap.String("session_id", sessionID))

	input := stdin
	if cfg.Console.ScriptPath != "" {
		script, err := os.Open(cfg.Console.ScriptPath)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer script.Close()
		input = script
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger, metrics))

	directory := service.NewDirectoryService(service.DirectoryDependencies{
		DirectoryRepo: repository.NewDirectoryRepository(),
		Dispatcher:    dispatcher,
		Logger:        logger,
		SessionID:     sessionID,
	})

	session := console.NewSession(cfg.Console, console.SessionDependencies{
		Directory: directory,
		Input:     input,
		Output:    stdout,
		Logger:    logger,
		Metrics:   metrics,
	})

	logger.Info("session started",
		zap.String("env", cfg.App.Env),
		zap.String("version", cfg.App.Version),
		zap.Bool("interactive", cfg.Console.Interactive()))

	if err := session.Run(context.Background()); err != nil {
		logger.Error("session ended with error", zap.Error(err))
		return err
	}
	return nil
}
