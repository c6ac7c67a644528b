package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/staff-directory/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.Command
	}{
		{name: "quit lower", input: "quit", want: domain.Quit{}},
		{name: "quit mixed case", input: "QuIt", want: domain.Quit{}},
		{name: "quit with whitespace", input: "  quit \n", want: domain.Quit{}},
		{name: "add", input: "Add Sally to Engineering", want: domain.AddEmployee{Name: "Sally", Department: "Engineering"}},
		{name: "add multi word", input: "Add Mary Jane to Human Resources", want: domain.AddEmployee{Name: "Mary Jane", Department: "Human Resources"}},
		{name: "add splits on first separator", input: "Add Amir to Sales to Europe", want: domain.AddEmployee{Name: "Amir", Department: "Sales to Europe"}},
		{name: "add trims segments", input: "Add   Omar   to   Ops", want: domain.AddEmployee{Name: "Omar", Department: "Ops"}},
		{name: "add name called to", input: "Add to to Sales", want: domain.AddEmployee{Name: "to", Department: "Sales"}},
		{name: "add unicode", input: "Add Zoë to Ventes", want: domain.AddEmployee{Name: "Zoë", Department: "Ventes"}},
		{name: "add without separator", input: "Add Sally Engineering", want: domain.Invalid{Reason: ReasonAddUnparsable}},
		{name: "add with empty name", input: "Add  to Sales", want: domain.Invalid{Reason: ReasonAddUnparsable}},
		{name: "add with trailing to", input: "Add Sally to", want: domain.Invalid{Reason: ReasonAddUnparsable}},
		{name: "list all", input: "List all", want: domain.ListAll{}},
		{name: "list all prefix wins", input: "List allocations", want: domain.ListAll{}},
		{name: "list department", input: "List Engineering", want: domain.ListDepartment{Department: "Engineering"}},
		{name: "list department trims", input: "List    Sales  ", want: domain.ListDepartment{Department: "Sales"}},
		{name: "list All is a department", input: "List All", want: domain.ListDepartment{Department: "All"}},
		{name: "bare list", input: "List", want: domain.Invalid{Reason: ReasonListHint}},
		{name: "lower case add is invalid", input: "add Sally to Sales", want: domain.Invalid{}},
		{name: "empty line", input: "", want: domain.Invalid{}},
		{name: "whitespace only", input: " \t ", want: domain.Invalid{}},
		{name: "unknown", input: "Remove Sally", want: domain.Invalid{}},
		{name: "quit with suffix", input: "quit now", want: domain.Invalid{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestParseKinds(t *testing.T) {
	assert.Equal(t, domain.CommandAddEmployee, Parse("Add A to B").Kind())
	assert.Equal(t, domain.CommandListDepartment, Parse("List B").Kind())
	assert.Equal(t, domain.CommandListAll, Parse("List all").Kind())
	assert.Equal(t, domain.CommandQuit, Parse("quit").Kind())
	assert.Equal(t, domain.CommandInvalid, Parse("hello").Kind())
}

func TestParseIsTotal(t *testing.T) {
	inputs := []string{"\x00", "\xff\xfe", "Add", "Add ", "List ", "to", "Add to", "日本語", "List\tall"}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			assert.NotNil(t, Parse(input))
		}, "input %q", input)
	}
}
