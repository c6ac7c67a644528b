package domain

// Department is a read view of one directory entry: the department name and
// its employees sorted alphabetically.
type Department struct {
	Name      string
	Employees []string
}
