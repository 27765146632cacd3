// Package invoker binds a command line against a resolved command's
// declared contract and dispatches the script to an executor.
//
// Binding is pure: every failure happens before any execution side effect.
package invoker

import (
	"context"
	"strings"

	"github.com/josephlewis42/run/core/parser"
)

// Binding is the result of matching an argument vector against a command's
// declared arguments and flags.
type Binding struct {
	Command *parser.Command

	// Values holds the positional slots in declaration order. If the
	// command declares a variadic argument, its slot holds all trailing
	// positionals joined with single spaces (possibly the empty string).
	Values []string

	// FlagValues maps a value flag's long name to the raw value supplied.
	FlagValues map[string]string

	// BoolFlags maps a matched boolean flag's long name to the literal the
	// caller used, "-x" or "--long".
	BoolFlags map[string]string
}

// Bind scans argv left to right and produces a Binding, or fails on the
// first unknown flag, missing flag value, or missing required argument.
func Bind(cmd *parser.Command, argv []string) (*Binding, error) {
	b := &Binding{
		Command:    cmd,
		FlagValues: make(map[string]string),
		BoolFlags:  make(map[string]string),
	}

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case strings.HasPrefix(arg, "--") && strings.Contains(arg, "="):
			name, value, _ := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
			flag := findFlag(cmd, func(f *parser.Flag) bool { return f.Long == name && f.TakesValue })
			if flag == nil {
				return nil, &UnknownFlagError{Name: name}
			}
			b.FlagValues[flag.Long] = value

		case strings.HasPrefix(arg, "--"):
			name := strings.TrimPrefix(arg, "--")
			flag := findFlag(cmd, func(f *parser.Flag) bool { return f.Long == name && !f.TakesValue })
			if flag == nil {
				return nil, &UnknownFlagError{Name: name}
			}
			b.BoolFlags[flag.Long] = arg

		case strings.HasPrefix(arg, "-") && len(arg) == 2:
			short := rune(arg[1])
			flag := findFlag(cmd, func(f *parser.Flag) bool { return f.Short == short })
			if flag == nil {
				return nil, &UnknownFlagError{Name: string(short), Short: true}
			}
			if flag.TakesValue {
				if i+1 >= len(argv) {
					return nil, &MissingFlagValueError{Short: short}
				}
				i++
				b.FlagValues[flag.Long] = argv[i]
			} else {
				b.BoolFlags[flag.Long] = arg
			}

		default:
			// Anything else is a positional value, "-" and combined
			// "-abc" runs included.
			b.Values = append(b.Values, arg)
		}
	}

	collectVariadic(cmd, b)

	for i, arg := range cmd.Args {
		if !arg.Optional && i >= len(b.Values) {
			return nil, &MissingArgumentError{Name: arg.Name}
		}
	}

	return b, nil
}

// collectVariadic joins everything from the variadic slot onward into one
// value. A variadic with no trailing positionals binds the empty string so
// the script always sees the variable.
func collectVariadic(cmd *parser.Command, b *Binding) {
	pos := -1
	for i, arg := range cmd.Args {
		if arg.Variadic {
			pos = i
			break
		}
	}
	if pos < 0 {
		return
	}

	switch {
	case len(b.Values) > pos:
		joined := strings.Join(b.Values[pos:], " ")
		b.Values = append(b.Values[:pos], joined)
	case len(b.Values) == pos:
		b.Values = append(b.Values, "")
	}
}

// Environ assembles the environment for the script. Every bound argument
// and flag is exported twice: an upper-cased key holding the plain value,
// and the original-case key holding the literal form described in the
// Runfile format (the raw value for arguments, "--long=value" for value
// flags, and the caller's own spelling for boolean flags).
func (b *Binding) Environ() map[string]string {
	env := make(map[string]string)

	for i, arg := range b.Command.Args {
		if i >= len(b.Values) {
			continue
		}
		env[strings.ToUpper(arg.Name)] = b.Values[i]
		env[arg.Name] = b.Values[i]
	}

	for _, flag := range b.Command.Flags {
		if value, ok := b.FlagValues[flag.Long]; ok {
			env[strings.ToUpper(flag.Long)] = value
			env[flag.Long] = "--" + flag.Long + "=" + value
		} else if literal, ok := b.BoolFlags[flag.Long]; ok {
			env[strings.ToUpper(flag.Long)] = "true"
			env[flag.Long] = literal
		}
	}

	return env
}

// Interpreter returns the interpreter line of the command's shebang with
// the "#!" prefix stripped and trimmed, or "sh" if the command carries no
// shebang at all.
func (b *Binding) Interpreter() string {
	return InterpreterFor(b.Command)
}

// InterpreterFor derives the interpreter for a command from its shebang.
func InterpreterFor(cmd *parser.Command) string {
	if strings.HasPrefix(cmd.Shebang, "#!") {
		return strings.TrimSpace(strings.TrimPrefix(cmd.Shebang, "#!"))
	}
	return "sh"
}

// Invoke binds argv against cmd and runs the script through the executor.
// A non-zero exit status is returned as an *ExitError alongside whatever
// output was captured.
func Invoke(ctx context.Context, executor Executor, cmd *parser.Command, argv []string, mode Mode) (*Result, error) {
	binding, err := Bind(cmd, argv)
	if err != nil {
		return nil, err
	}

	result, err := executor.Run(ctx, ExecSpec{
		Interpreter: binding.Interpreter(),
		Script:      cmd.Script,
		Env:         binding.Environ(),
		Mode:        mode,
	})
	if err != nil {
		return nil, err
	}
	if result.ExitCode != 0 {
		return result, &ExitError{Code: result.ExitCode}
	}
	return result, nil
}

func findFlag(cmd *parser.Command, match func(*parser.Flag) bool) *parser.Flag {
	for i := range cmd.Flags {
		if match(&cmd.Flags[i]) {
			return &cmd.Flags[i]
		}
	}
	return nil
}
