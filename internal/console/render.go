package console

import (
	"fmt"
	"io"

	"github.com/spec-kit/staff-directory/internal/domain"
)

const (
	msgExiting        = "Exiting"
	msgInvalid        = "Invalid command."
	msgListingHeader  = "Listing by departments:"
	msgBannerStarting = "Starting Directory Program"
)

var bannerCommands = []string{
	"Add [Name] to [Department]",
	"List [Department]",
	"List all",
	"Quit",
}

// printer writes protocol lines and keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(line string) {
	p.printf("%s\n", line)
}

func (p *printer) banner() {
	p.println(msgBannerStarting)
	p.println("Commands:")
	for _, c := range bannerCommands {
		p.printf("  %s\n", c)
	}
}

func (p *printer) added(name, department string) {
	p.printf("Added %s to %s\n", name, department)
}

func (p *printer) department(name string, employees []string) {
	p.printf("People in %s:\n", name)
	for _, employee := range employees {
		p.println(employee)
	}
}

func (p *printer) directory(departments []domain.Department) {
	p.println(msgListingHeader)
	for _, d := range departments {
		p.department(d.Name, d.Employees)
	}
}

func (p *printer) notFound(department string) {
	p.printf("Department: %s not found\n", department)
}

func (p *printer) invalid(reason string) {
	if reason == "" {
		p.println(msgInvalid)
		return
	}
	p.printf("Invalid command: %s\n", reason)
}
