// Package parser turns one line of console input into a domain.Command.
package parser

import (
	"strings"

	"github.com/spec-kit/staff-directory/internal/domain"
)

const (
	addPrefix     = "Add "
	addSeparator  = " to "
	listAllPrefix = "List all"
	listPrefix    = "List "
	quitWord      = "quit"
)

// Hints attached to domain.Invalid for malformed commands.
const (
	ReasonAddUnparsable = "could not parse Add command."
	ReasonListHint      = "did you mean List [Department]?"
)

// Parse maps line to exactly one command. It never fails: unrecognized or
// malformed input yields domain.Invalid. Rules are checked in order:
// quit, Add, List all, List <department>.
func Parse(line string) domain.Command {
	input := strings.TrimSpace(line)

	switch {
	case strings.EqualFold(input, quitWord):
		return domain.Quit{}
	case strings.HasPrefix(input, addPrefix):
		return parseAdd(strings.TrimPrefix(input, addPrefix))
	case strings.HasPrefix(input, listAllPrefix):
		return domain.ListAll{}
	case strings.HasPrefix(input, listPrefix):
		return parseList(strings.TrimPrefix(input, listPrefix))
	case input == strings.TrimSpace(listPrefix):
		return domain.Invalid{Reason: ReasonListHint}
	default:
		return domain.Invalid{}
	}
}

func parseAdd(rest string) domain.Command {
	name, department, ok := strings.Cut(rest, addSeparator)
	if !ok {
		return domain.Invalid{Reason: ReasonAddUnparsable}
	}
	name = strings.TrimSpace(name)
	department = strings.TrimSpace(department)
	if name == "" || department == "" {
		return domain.Invalid{Reason: ReasonAddUnparsable}
	}
	return domain.AddEmployee{Name: name, Department: department}
}

func parseList(rest string) domain.Command {
	department := strings.TrimSpace(rest)
	if department == "" {
		return domain.Invalid{Reason: ReasonListHint}
	}
	return domain.ListDepartment{Department: department}
}
