package parser

// DefaultShebang selects the interpreter for commands that don't declare
// their own.
const DefaultShebang = "#!/bin/sh"

// Runfile is the parsed document: groups and commands in declaration order.
type Runfile struct {
	Groups   []Group
	Commands []Command
}

// Group is a display label. Membership is recorded on each Command by name;
// the group itself owns nothing.
type Group struct {
	Name string
}

// Command is one invocable unit. Names holds every alias in declaration
// order. Group is the name of the group the command was declared under, or
// empty. Script is the accumulated body text; Shebang is the interpreter
// line, DefaultShebang unless the body declared one.
type Command struct {
	Names       []string
	Description string
	Group       string
	Args        []Argument
	Flags       []Flag
	Script      string
	Shebang     string
}

// Argument is a declared positional parameter. A variadic argument absorbs
// all trailing positional values and is implicitly optional.
type Argument struct {
	Name        string
	Optional    bool
	Variadic    bool
	Description string
}

// Flag is a declared flag. Short is 0 when absent. TypeHint is free form
// display text for value flags.
type Flag struct {
	Short       rune
	Long        string
	TakesValue  bool
	TypeHint    string
	Description string
}

// Name returns the command's first declared alias.
func (c *Command) Name() string {
	if len(c.Names) == 0 {
		return ""
	}
	return c.Names[0]
}
