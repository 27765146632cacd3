package invoker

import "fmt"

// UnknownFlagError reports a flag on the command line that the command
// doesn't declare, or that is addressed in a form the declaration doesn't
// support (for example "--flag=x" against a boolean flag). Name carries no
// dashes; Short records which form the caller used.
type UnknownFlagError struct {
	Name  string
	Short bool
}

func (e *UnknownFlagError) Error() string {
	if e.Short {
		return fmt.Sprintf("unknown flag: -%s", e.Name)
	}
	return fmt.Sprintf("unknown flag: --%s", e.Name)
}

// MissingFlagValueError reports a short value flag at the end of the
// argument vector with nothing left to consume.
type MissingFlagValueError struct {
	Short rune
}

func (e *MissingFlagValueError) Error() string {
	return fmt.Sprintf("flag -%c requires a value", e.Short)
}

// MissingArgumentError reports a required argument with no bound value.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("required argument %q not provided", e.Name)
}

// ExitError reports a script that ran to completion with a non-zero exit
// status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command failed with exit code %d", e.Code)
}
