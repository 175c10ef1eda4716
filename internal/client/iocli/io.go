// Package iocli abstracts terminal input and output for the CLI commands.
package iocli

// IO is the console surface the commands talk to
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}
