package lexer

// Token is one lexical element of a Runfile. The set of implementations is
// closed; consumers dispatch with a type switch so a new shape can't slip
// through unhandled.
type Token interface {
	token()
}

// GroupHeader is the three line "# ---- / # Title / # ----" banner that
// starts a named group of commands.
type GroupHeader struct {
	Name string
}

// CommandHeader is a command's declaration line: one or more comma separated
// aliases, optionally followed by inline argument and flag declarations and
// a trailing colon. Comment holds the description collected from the comment
// lines directly above the header, joined with single spaces.
type CommandHeader struct {
	Names   []string
	Args    []Argument
	Flags   []Flag
	Comment string
}

// Argument is a positional parameter declaration, either inline on a command
// header or on its own 2-space indented line. A variadic argument is always
// optional. Comment is the trailing "# ..." text, if any.
type Argument struct {
	Name     string
	Optional bool
	Variadic bool
	Comment  string
}

// Flag is a flag declaration. Short is 0 when the flag has no single
// character form. TypeHint is the text between angle brackets in a
// "--name=<hint>" declaration and is empty otherwise.
type Flag struct {
	Long       string
	Short      rune
	TakesValue bool
	TypeHint   string
	Comment    string
}

// ScriptLine is a line of script body, verbatim including its original
// leading whitespace.
type ScriptLine struct {
	Text string
}

// Comment is a standalone comment line that isn't attached to any command.
type Comment struct {
	Text string
}

func (GroupHeader) token()   {}
func (CommandHeader) token() {}
func (Argument) token()      {}
func (Flag) token()          {}
func (ScriptLine) token()    {}
func (Comment) token()       {}
