package domain

// CommandKind names a command variant.
type CommandKind string

const (
	CommandAddEmployee    CommandKind = "add_employee"
	CommandListDepartment CommandKind = "list_department"
	CommandListAll        CommandKind = "list_all"
	CommandQuit           CommandKind = "quit"
	CommandInvalid        CommandKind = "invalid"
)

// Command is one parsed input line. The set of implementations is closed:
// AddEmployee, ListDepartment, ListAll, Quit and Invalid.
type Command interface {
	Kind() CommandKind
	command()
}

// AddEmployee appends Name to Department.
type AddEmployee struct {
	Name       string
	Department string
}

// ListDepartment lists the employees of one department.
type ListDepartment struct {
	Department string
}

// ListAll lists every department.
type ListAll struct{}

// Quit ends the session.
type Quit struct{}

// Invalid is any line that is not a recognized command. Reason is an
// optional hint shown to the user.
type Invalid struct {
	Reason string
}

func (AddEmployee) Kind() CommandKind    { return CommandAddEmployee }
func (ListDepartment) Kind() CommandKind { return CommandListDepartment }
func (ListAll) Kind() CommandKind        { return CommandListAll }
func (Quit) Kind() CommandKind           { return CommandQuit }
func (Invalid) Kind() CommandKind        { return CommandInvalid }

func (AddEmployee) command()    {}
func (ListDepartment) command() {}
func (ListAll) command()        {}
func (Quit) command()           {}
func (Invalid) command()        {}
