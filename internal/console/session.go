// Package console runs the line-oriented directory protocol: it reads one
// command per line, applies it to the directory and writes the result.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/spec-kit/staff-directory/internal/config"
	"github.com/spec-kit/staff-directory/internal/domain"
	"github.com/spec-kit/staff-directory/internal/observability"
	"github.com/spec-kit/staff-directory/internal/parser"
	"github.com/spec-kit/staff-directory/internal/service"
	apperrors "github.com/spec-kit/staff-directory/pkg/util/errorutil"
)

// Session owns one run of the command loop.
type Session struct {
	directory *service.DirectoryService
	in        io.Reader
	out       io.Writer
	cfg       config.ConsoleConfig
	logger    *zap.Logger
	metrics   *observability.Metrics
}

// SessionDependencies bundles the collaborators of a Session.
type SessionDependencies struct {
	Directory *service.DirectoryService
	Input     io.Reader
	Output    io.Writer
	Logger    *zap.Logger
	Metrics   *observability.Metrics
}

// NewSession builds a session. Scripted sessions never print a prompt.
func NewSession(cfg config.ConsoleConfig, deps SessionDependencies) *Session {
	if !cfg.Interactive() {
		cfg.Prompt = ""
	}
	if cfg.MaxLineBytes <= 0 {
		cfg.MaxLineBytes = config.DefaultMaxLineBytes
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		directory: deps.Directory,
		in:        deps.Input,
		out:       deps.Output,
		cfg:       cfg,
		logger:    logger,
		metrics:   deps.Metrics,
	}
}

// Run reads commands until Quit or end of input. End of input behaves like
// Quit. A failing input stream ends the loop and is returned wrapped.
func (s *Session) Run(ctx context.Context) error {
	defer func() {
		s.logger.Info("session finished", zap.Any("counters", s.metrics.Snapshot()))
	}()

	p := &printer{w: s.out}
	if s.cfg.ShowBanner {
		p.banner()
	}

	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, min(4096, s.cfg.MaxLineBytes)), s.cfg.MaxLineBytes)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.cfg.Prompt != "" {
			p.printf("\n%s", s.cfg.Prompt)
		}

		if !scanner.Scan() {
			if s.cfg.Prompt != "" {
				p.println("")
			}
			p.println(msgExiting)
			if err := scanner.Err(); err != nil {
				s.logger.Error("input stream failed", zap.Error(err))
				return fmt.Errorf("read command: %w", err)
			}
			s.logger.Debug("end of input")
			return writeErr(p.err)
		}

		if quit := s.execute(ctx, parser.Parse(scanner.Text()), p); quit {
			return writeErr(p.err)
		}
		if p.err != nil {
			return writeErr(p.err)
		}
	}
}

// execute applies one command and renders its result. It reports whether the
// session should stop.
func (s *Session) execute(ctx context.Context, cmd domain.Command, p *printer) bool {
	kind := domain.CommandInvalid
	if cmd != nil {
		kind = cmd.Kind()
	}
	s.metrics.RecordCommand(string(kind))
	s.logger.Debug("command", zap.String("kind", string(kind)))

	switch c := cmd.(type) {
	case domain.AddEmployee:
		if err := s.directory.AddEmployee(ctx, c.Name, c.Department); err != nil {
			s.reportError(p, err)
			return false
		}
		p.added(c.Name, c.Department)
	case domain.ListDepartment:
		employees, err := s.directory.Department(ctx, c.Department)
		if err != nil {
			s.reportError(p, err)
			if apperrors.IsNotFound(err) {
				p.notFound(c.Department)
			}
			return false
		}
		p.department(c.Department, employees)
	case domain.ListAll:
		departments, err := s.directory.Departments(ctx)
		if err != nil {
			s.reportError(p, err)
			return false
		}
		p.directory(departments)
	case domain.Quit:
		p.println(msgExiting)
		return true
	case domain.Invalid:
		s.metrics.RecordOutcome(observability.OutcomeInvalid)
		p.invalid(c.Reason)
	default:
		s.metrics.RecordOutcome(observability.OutcomeInvalid)
		p.invalid("")
	}
	return false
}

// reportError logs err and, unless it is a lookup miss, shows it to the user.
func (s *Session) reportError(p *printer, err error) {
	domainErr := apperrors.ToDomainError(err)
	switch domainErr.Code {
	case apperrors.CodeNotFound:
		s.metrics.RecordOutcome(observability.OutcomeNotFound)
		s.logger.Debug("lookup miss", zap.Any("details", domainErr.Details))
	case apperrors.CodeValidationFailed:
		s.metrics.RecordOutcome(observability.OutcomeInvalid)
		p.invalid(domainErr.Message)
	default:
		s.logger.Error("command failed", zap.Error(domainErr))
		p.printf("Error: %s\n", domainErr.Message)
	}
}

func writeErr(err error) error {
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
