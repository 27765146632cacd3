// Package lexer turns Runfile text into an ordered token sequence.
//
// The grammar has no delimiters around script bodies, so every line is
// classified by a set of heuristics evaluated in a fixed precedence order:
// group header banner, command header, indented declaration, comment,
// script line. Classification is purely local plus bounded look-ahead (to
// fold comments into an upcoming header) and look-behind (to collect a
// header's description), so lexing the same text twice always yields the
// same tokens.
package lexer

import (
	"fmt"
	"strings"
)

// Error is a lexical error tied to a 1-based input line.
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

const (
	// blockIndent is the exact prefix of an indented declaration line.
	// Deeper indentation means script text.
	blockIndent = "  "
)

// Lex tokenizes a complete Runfile. It fails only on a malformed command
// header; every other line is classified, never rejected.
func Lex(content string) ([]Token, error) {
	var tokens []Token
	lines := splitLines(content)

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		// Group banner: separator, title, separator.
		if isSeparatorLine(trimmed) && i+2 < len(lines) {
			title := strings.TrimSpace(lines[i+1])
			third := strings.TrimSpace(lines[i+2])
			if strings.HasPrefix(title, "# ") && isSeparatorLine(third) {
				name := strings.TrimSpace(strings.TrimPrefix(title, "# "))
				tokens = append(tokens, GroupHeader{Name: name})
				i += 3
				continue
			}
		}

		if isCommandHeaderLine(line) {
			comment := collectHeaderComment(lines, i)
			tok, err := lexCommandHeader(trimmed, comment, i+1)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i++
			continue
		}

		// A comment that is followed (across blanks and more comments) by a
		// command header belongs to that header's look-behind collection and
		// is not emitted on its own.
		if strings.HasPrefix(trimmed, "#") && !isSeparatorLine(trimmed) && !strings.HasPrefix(trimmed, "#!/") {
			if commentPrecedesHeader(lines, i) {
				i++
				continue
			}
		}

		if tok, ok := lexLine(line); ok {
			tokens = append(tokens, tok)
		}
		i++
	}

	return tokens, nil
}

func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// isSeparatorLine reports whether a trimmed line is a group banner
// separator: "# " followed by nothing but dashes.
func isSeparatorLine(trimmed string) bool {
	if !strings.HasPrefix(trimmed, "# ") || len(trimmed) <= 2 {
		return false
	}
	return strings.Trim(trimmed[2:], "-") == ""
}

// isCommandHeaderLine reports whether a raw line looks like a command
// declaration. Lines starting with "echo" are excluded: top-level script
// text commonly begins with it, and a header shaped "echo something" would
// otherwise be indistinguishable. The trade-off is that a command literally
// named echo can't be declared.
func isCommandHeaderLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "echo") {
		return false
	}
	if strings.HasPrefix(line, blockIndent) {
		return false
	}

	text := strings.TrimSpace(strings.TrimSuffix(trimmed, ":"))
	if text == "" {
		// A bare ":" still counts so the empty alias list can be reported
		// as an error instead of leaking into the script.
		return trimmed != ""
	}

	_, _, consumed := splitHeader(text)
	return consumed > 0
}

// splitHeader splits header text into its alias run and the remaining
// parameter tokens. Aliases are a leading run of comma joined names; the
// first token shaped like a flag or typed argument ends the run. consumed is
// the number of whitespace tokens eaten by the alias run.
func splitHeader(text string) (aliases, params []string, consumed int) {
	parts := strings.Fields(text)

	i := 0
	prevComma := false
	for i < len(parts) {
		p := parts[i]
		if strings.HasPrefix(p, "-") || strings.Contains(p, "?") ||
			strings.Contains(p, "...") || strings.Contains(p, "=") {
			break
		}
		switch {
		case strings.Contains(p, ","):
			for _, alias := range strings.Split(p, ",") {
				if alias = strings.TrimSpace(alias); alias != "" {
					aliases = append(aliases, alias)
				}
			}
			prevComma = true
		case prevComma:
			aliases = append(aliases, p)
			prevComma = false
		case consumed == 0:
			aliases = append(aliases, p)
		default:
			return aliases, parts[i:], consumed
		}
		consumed++
		i++
	}

	return aliases, parts[i:], consumed
}

// collectHeaderComment walks upward from the header at index i over
// contiguous comment lines and joins their text top to bottom. Group banner
// lines (separators, and titles sandwiched between separators) are skipped.
func collectHeaderComment(lines []string, i int) string {
	var collected []string
	for j := i - 1; j >= 0; j-- {
		prev := strings.TrimSpace(lines[j])
		if !strings.HasPrefix(prev, "#") {
			break
		}
		if isSeparatorLine(prev) {
			continue
		}
		if j > 0 && j+1 < len(lines) &&
			isSeparatorLine(strings.TrimSpace(lines[j-1])) &&
			isSeparatorLine(strings.TrimSpace(lines[j+1])) {
			// Group title, not a description.
			continue
		}
		text := strings.TrimSpace(strings.TrimPrefix(prev, "#"))
		collected = append([]string{text}, collected...)
	}
	return strings.Join(collected, " ")
}

// commentPrecedesHeader reports whether the comment at index i is part of a
// run of comments (blank lines allowed) that ends at a command header.
func commentPrecedesHeader(lines []string, i int) bool {
	for j := i + 1; j < len(lines); j++ {
		next := strings.TrimSpace(lines[j])
		switch {
		case next == "":
			continue
		case strings.HasPrefix(next, "#") && !isSeparatorLine(next):
			continue
		case isCommandHeaderLine(next):
			return true
		default:
			return false
		}
	}
	return false
}

// lexCommandHeader parses a header line (already known to be one) into a
// CommandHeader token. lineNo is 1-based, for errors.
func lexCommandHeader(trimmed, comment string, lineNo int) (Token, error) {
	if strings.Contains(trimmed, " # ") {
		return nil, &Error{Line: lineNo, Msg: "command comments must be on the line above the command, not on the same line"}
	}

	text := strings.TrimSpace(strings.TrimSuffix(trimmed, ":"))
	aliases, params, _ := splitHeader(text)
	if len(aliases) == 0 {
		return nil, &Error{Line: lineNo, Msg: "command must have at least one name"}
	}

	args, flags := parseInlineParams(params)
	return CommandHeader{
		Names:   aliases,
		Args:    args,
		Flags:   flags,
		Comment: comment,
	}, nil
}

// parseInlineParams classifies the whitespace tokens after a header's alias
// run. The shapes match the indented block declarations: "name", "name?",
// "...name"/"name...", "--long", "--long=<hint>", "-x" and the two token
// pair "-x, --long".
func parseInlineParams(parts []string) (args []Argument, flags []Flag) {
	i := 0
	for i < len(parts) {
		p := parts[i]
		switch {
		case strings.HasPrefix(p, "...") || strings.HasSuffix(p, "..."):
			name := strings.TrimPrefix(p, "...")
			if name == p {
				name = strings.TrimSuffix(p, "...")
			}
			args = append(args, Argument{Name: name, Optional: true, Variadic: true})
			i++

		case strings.HasPrefix(p, "-"):
			switch {
			case strings.HasSuffix(p, ",") && i+1 < len(parts):
				// Pair form: "-x, --long".
				short := firstRune(strings.TrimPrefix(strings.TrimSuffix(p, ","), "-"))
				long, takesValue, hint := parseFlagName(parts[i+1])
				flags = append(flags, Flag{Long: long, Short: short, TakesValue: takesValue, TypeHint: hint})
				i += 2
			case strings.HasPrefix(p, "--"):
				long, takesValue, hint := parseFlagName(p)
				flags = append(flags, Flag{Long: long, TakesValue: takesValue, TypeHint: hint})
				i++
			case len(p) == 2:
				short := firstRune(p[1:])
				flags = append(flags, Flag{Long: string(short), Short: short})
				i++
			default:
				i++
			}

		default:
			arg := Argument{Name: p}
			if strings.HasSuffix(p, "?") {
				arg.Name = strings.TrimSuffix(p, "?")
				arg.Optional = true
			}
			args = append(args, arg)
			i++
		}
	}
	return args, flags
}

// parseFlagName splits a "--name" or "--name=<hint>" token. The hint is
// only captured when wrapped in angle brackets; a token with more than one
// "=" is treated as a plain boolean flag name.
func parseFlagName(token string) (long string, takesValue bool, hint string) {
	token = strings.TrimPrefix(token, "--")
	if strings.Contains(token, "=") {
		parts := strings.Split(token, "=")
		if len(parts) == 2 {
			rest := parts[1]
			if strings.HasPrefix(rest, "<") && strings.HasSuffix(rest, ">") && len(rest) >= 2 {
				hint = rest[1 : len(rest)-1]
			}
			return parts[0], true, hint
		}
	}
	return token, false, ""
}

// lexLine classifies a single non-header line. ok is false for blank lines,
// which produce no token.
func lexLine(line string) (Token, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, false
	}

	// Indented declarations: exactly the 2-space prefix. Anything deeper is
	// script text. Shebangs stay script lines regardless of indentation.
	if strings.HasPrefix(line, blockIndent) && !strings.HasPrefix(line, blockIndent+" ") &&
		(!strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "#!/")) {
		if tok, ok := lexBlockDeclaration(line, trimmed); ok {
			return tok, true
		}
	}

	if strings.HasPrefix(trimmed, "#") {
		if strings.HasPrefix(trimmed, "#!/") {
			return ScriptLine{Text: line}, true
		}
		return Comment{Text: trimmed}, true
	}
	return ScriptLine{Text: line}, true
}

// lexBlockDeclaration classifies a 2-space indented line as a Flag or
// Argument, capturing a trailing " # ..." description. ok is false when the
// content doesn't match either shape, in which case the line falls back to
// the script/comment rules.
func lexBlockDeclaration(line, trimmed string) (Token, bool) {
	content := trimmed
	comment := ""
	if idx := strings.Index(content, " # "); idx >= 0 {
		comment = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(content[idx:]), "#"))
		content = strings.TrimSpace(content[:idx])
	}

	if strings.HasPrefix(content, "#!/") {
		return ScriptLine{Text: line}, true
	}

	if strings.HasPrefix(content, "-") {
		parts := strings.Split(content, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		switch {
		case len(parts) == 2:
			// "-x, --long" with an optional trailing colon.
			short := firstRune(strings.TrimPrefix(parts[0], "-"))
			long, takesValue, hint := parseFlagName(strings.TrimSuffix(parts[1], ":"))
			return Flag{Long: long, Short: short, TakesValue: takesValue, TypeHint: hint, Comment: comment}, true
		case strings.HasPrefix(content, "--"):
			long, takesValue, hint := parseFlagName(strings.TrimSuffix(content, ":"))
			return Flag{Long: long, TakesValue: takesValue, TypeHint: hint, Comment: comment}, true
		case len(content) == 2:
			short := firstRune(content[1:])
			return Flag{Long: string(short), Short: short, Comment: comment}, true
		}
		return nil, false
	}

	if content == "" || strings.Contains(content, " ") {
		return nil, false
	}

	name := strings.TrimSuffix(content, ":")
	switch {
	case strings.HasPrefix(name, "..."):
		return Argument{Name: strings.TrimPrefix(name, "..."), Optional: true, Variadic: true, Comment: comment}, true
	case strings.HasSuffix(name, "..."):
		return Argument{Name: strings.TrimSuffix(name, "..."), Optional: true, Variadic: true, Comment: comment}, true
	case strings.HasSuffix(name, "?"):
		return Argument{Name: strings.TrimSuffix(name, "?"), Optional: true, Comment: comment}, true
	default:
		return Argument{Name: name, Comment: comment}, true
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
