// Package parser folds a token sequence into the Runfile document model.
//
// Parsing keeps two pieces of running state: the current group name, set by
// each GroupHeader, and the command under construction. Declarations are
// only legal between a command's header and the first line of its script;
// once script text begins, declaration-shaped tokens are literal script
// lines and are rendered back as text.
package parser

import (
	"fmt"
	"strings"

	"github.com/josephlewis42/run/core/lexer"
)

// Parse assembles tokens into a Runfile. It is deliberately permissive:
// tokens that can't attach anywhere (script text before any command header,
// stray declarations) are dropped rather than rejected, because the lexer
// can't always tell script content from structure.
func Parse(tokens []lexer.Token) *Runfile {
	out := &Runfile{}

	var (
		currentGroup string
		cur          *Command
		inScript     bool
	)

	flush := func() {
		if cur != nil {
			out.Commands = append(out.Commands, *cur)
			cur = nil
		}
	}

	for _, tok := range tokens {
		switch t := tok.(type) {
		case lexer.GroupHeader:
			flush()
			currentGroup = t.Name
			out.Groups = append(out.Groups, Group{Name: t.Name})
			inScript = false

		case lexer.CommandHeader:
			flush()
			cur = &Command{
				Names:       t.Names,
				Description: t.Comment,
				Group:       currentGroup,
				Args:        argumentsFromTokens(t.Args),
				Flags:       flagsFromTokens(t.Flags),
				Shebang:     DefaultShebang,
			}
			inScript = false

		case lexer.Argument:
			if cur == nil {
				continue
			}
			if !inScript {
				cur.Args = append(cur.Args, Argument{
					Name:        t.Name,
					Optional:    t.Optional,
					Variadic:    t.Variadic,
					Description: t.Comment,
				})
			} else {
				appendScript(cur, t.Name)
			}

		case lexer.Flag:
			if cur == nil {
				continue
			}
			if !inScript {
				cur.Flags = append(cur.Flags, Flag{
					Short:       t.Short,
					Long:        t.Long,
					TakesValue:  t.TakesValue,
					TypeHint:    t.TypeHint,
					Description: t.Comment,
				})
			} else {
				short := t.Short
				if short == 0 {
					short = ' '
				}
				appendScript(cur, fmt.Sprintf("-%c, --%s", short, t.Long))
			}

		case lexer.ScriptLine:
			if cur == nil {
				continue
			}
			if !inScript {
				if strings.HasPrefix(strings.TrimSpace(t.Text), "#!") {
					cur.Shebang = strings.TrimSpace(t.Text)
				}
				inScript = true
			}
			appendScript(cur, t.Text)

		case lexer.Comment:
			// A comment after the declarations starts (or continues) the
			// script body.
			if cur != nil {
				appendScript(cur, t.Text)
				inScript = true
			}
		}
	}
	flush()

	// The lexer's banner grammar can't produce a nameless group, but the
	// model shouldn't carry one regardless.
	groups := out.Groups[:0]
	for _, g := range out.Groups {
		if g.Name != "" {
			groups = append(groups, g)
		}
	}
	out.Groups = groups

	return out
}

func appendScript(cmd *Command, text string) {
	if cmd.Script != "" {
		cmd.Script += "\n"
	}
	cmd.Script += text
}

func argumentsFromTokens(tokens []lexer.Argument) []Argument {
	var out []Argument
	for _, t := range tokens {
		out = append(out, Argument{
			Name:     t.Name,
			Optional: t.Optional,
			Variadic: t.Variadic,
		})
	}
	return out
}

func flagsFromTokens(tokens []lexer.Flag) []Flag {
	var out []Flag
	for _, t := range tokens {
		out = append(out, Flag{
			Short:      t.Short,
			Long:       t.Long,
			TakesValue: t.TakesValue,
			TypeHint:   t.TypeHint,
		})
	}
	return out
}
