package invoker

import (
	"fmt"
	"path"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// shellNames are interpreters whose "-c" input is shell syntax that the
// pre-flight parser understands.
var shellNames = map[string]bool{
	"sh":   true,
	"bash": true,
	"dash": true,
	"ash":  true,
	"ksh":  true,
	"mksh": true,
}

// IsShellInterpreter reports whether the interpreter line names a shell
// whose script can be syntax checked before running. Handles both direct
// paths ("/bin/sh") and env shebangs ("/usr/bin/env bash").
func IsShellInterpreter(interpreter string) bool {
	fields := strings.Fields(interpreter)
	if len(fields) == 0 {
		return false
	}
	name := path.Base(fields[0])
	if name == "env" && len(fields) > 1 {
		name = path.Base(fields[1])
	}
	return shellNames[name]
}

// CheckScript parses script as shell source without executing anything.
// Useful as a dry-run pre-flight; a real run reports the same problem
// through the shell's own stderr.
func CheckScript(script string) error {
	if _, err := syntax.NewParser().Parse(strings.NewReader(script), ""); err != nil {
		return fmt.Errorf("script syntax error: %w", err)
	}
	return nil
}
