package resolver

import "fmt"

// NotFoundError reports that no command's alias list contains the requested
// name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command %q not found", e.Name)
}

// DuplicateArgumentError reports two arguments declared with the same name.
type DuplicateArgumentError struct {
	Command string
	Name    string
}

func (e *DuplicateArgumentError) Error() string {
	return fmt.Sprintf("%s: duplicate argument name %q", e.Command, e.Name)
}

// MultipleVarargsError reports more than one variadic argument.
type MultipleVarargsError struct {
	Command string
}

func (e *MultipleVarargsError) Error() string {
	return fmt.Sprintf("%s: only one variadic argument is allowed", e.Command)
}

// VarargsNotLastError reports a variadic argument declared before the end of
// the argument list.
type VarargsNotLastError struct {
	Command string
	Name    string
}

func (e *VarargsNotLastError) Error() string {
	return fmt.Sprintf("%s: variadic argument %q must be the last argument", e.Command, e.Name)
}

// DuplicateFlagError reports a flag whose long name or short key collides
// with another flag's key.
type DuplicateFlagError struct {
	Command string
	Key     string
}

func (e *DuplicateFlagError) Error() string {
	return fmt.Sprintf("%s: duplicate flag %q", e.Command, e.Key)
}

// EmptyScriptError reports a command with no script body.
type EmptyScriptError struct {
	Command string
}

func (e *EmptyScriptError) Error() string {
	return fmt.Sprintf("command %q has no script body", e.Command)
}
