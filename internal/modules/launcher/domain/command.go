package domain

import "strings"

// RunCommand is the shell command line launching an application.
type RunCommand struct {
	Prefix string
	ID     string
	Args   string
}

// Preview is the part of the command shown before the user types extra arguments.
func (c RunCommand) Preview() string {
	return c.Prefix + " " + c.ID
}

// String joins prefix, identifier and the trimmed user arguments. Empty arguments
// leave a single trailing space.
func (c RunCommand) String() string {
	return c.Preview() + " " + strings.TrimSpace(c.Args)
}
