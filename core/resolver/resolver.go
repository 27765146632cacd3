// Package resolver locates a command in a parsed Runfile and enforces the
// structural invariants the parser is too permissive to check.
package resolver

import (
	"strings"

	"github.com/josephlewis42/run/core/parser"
)

// Resolve finds the command whose alias list contains name and validates
// it. The scan is linear over declaration order and the first match wins;
// alias collisions between commands are not detected here. The resolver
// never mutates the document.
func Resolve(runfile *parser.Runfile, name string) (*parser.Command, error) {
	for i := range runfile.Commands {
		cmd := &runfile.Commands[i]
		for _, alias := range cmd.Names {
			if alias == name {
				if err := validate(cmd); err != nil {
					return nil, err
				}
				return cmd, nil
			}
		}
	}
	return nil, &NotFoundError{Name: name}
}

// validate checks the declared contract: unique argument names, a single
// trailing variadic, unique flag keys, and a non-empty script.
func validate(cmd *parser.Command) error {
	name := cmd.Name()

	argNames := make(map[string]bool)
	variadicCount := 0
	variadicPos := -1
	for i, arg := range cmd.Args {
		if argNames[arg.Name] {
			return &DuplicateArgumentError{Command: name, Name: arg.Name}
		}
		argNames[arg.Name] = true

		if arg.Variadic {
			variadicCount++
			variadicPos = i
		}
	}
	if variadicCount > 1 {
		return &MultipleVarargsError{Command: name}
	}
	if variadicPos >= 0 && variadicPos != len(cmd.Args)-1 {
		return &VarargsNotLastError{Command: name, Name: cmd.Args[variadicPos].Name}
	}

	// Long names and short keys share one namespace: a short key is an
	// alternate way to address a flag, so it must not shadow anything.
	flagKeys := make(map[string]bool)
	for _, flag := range cmd.Flags {
		if flagKeys[flag.Long] {
			return &DuplicateFlagError{Command: name, Key: flag.Long}
		}
		flagKeys[flag.Long] = true

		if flag.Short != 0 && string(flag.Short) != flag.Long {
			key := string(flag.Short)
			if flagKeys[key] {
				return &DuplicateFlagError{Command: name, Key: key}
			}
			flagKeys[key] = true
		}
	}

	if strings.TrimSpace(cmd.Script) == "" {
		return &EmptyScriptError{Command: name}
	}

	return nil
}
