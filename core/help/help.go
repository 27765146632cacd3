// Package help renders a parsed Runfile as the command listing shown when
// run is called with no arguments.
//
// Layout rules: ungrouped commands print first at column zero, then each
// group in declaration order with its name as a header, commands indented
// two spaces and their parameters four. Descriptions align to one global
// column computed from the widest command or parameter and rounded up to an
// even width; elements without descriptions get no trailing padding.
package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/josephlewis42/run/core/parser"
)

// ungroupedKey collects commands declared before any group banner.
const ungroupedKey = "General"

var (
	descColor  = color.New(color.FgHiBlack)
	groupColor = color.New(color.FgWhite, color.Bold)
)

// Render writes the command listing to w. When colors is false the output
// is plain text; when true, descriptions are dimmed and group names bold
// (still subject to the color package's global TTY detection).
func Render(w io.Writer, runfile *parser.Runfile, colors bool) {
	if len(runfile.Commands) == 0 {
		fmt.Fprintln(w)
		return
	}

	describe := func(desc string) string {
		if desc == "" {
			return ""
		}
		if colors {
			return descColor.Sprintf(" # %s", desc)
		}
		return fmt.Sprintf(" # %s", desc)
	}

	grouped := make(map[string][]*parser.Command)
	for i := range runfile.Commands {
		cmd := &runfile.Commands[i]
		key := cmd.Group
		if key == "" {
			key = ungroupedKey
		}
		grouped[key] = append(grouped[key], cmd)
	}

	align := alignPoint(runfile)

	// Ungrouped commands first, flush left.
	for _, cmd := range grouped[ungroupedKey] {
		writeCommand(w, cmd, "", align, describe)
	}

	for _, group := range runfile.Groups {
		cmds, ok := grouped[group.Name]
		if !ok {
			continue
		}
		if colors {
			fmt.Fprintln(w, groupColor.Sprint(group.Name))
		} else {
			fmt.Fprintln(w, group.Name)
		}
		for _, cmd := range cmds {
			writeCommand(w, cmd, "  ", align, describe)
		}
		fmt.Fprintln(w)
	}
}

// alignPoint computes the single description column: the widest element
// including its indent, rounded up to an even width, minus the space the
// description prefix supplies.
func alignPoint(runfile *parser.Runfile) int {
	maxCommand := 0
	maxParam := 0
	for i := range runfile.Commands {
		cmd := &runfile.Commands[i]
		maxCommand = max(maxCommand, len(commandDisplay(cmd)))
		for _, arg := range cmd.Args {
			maxParam = max(maxParam, len(argDisplay(arg)))
		}
		for _, flag := range cmd.Flags {
			maxParam = max(maxParam, len(flagDisplay(flag)))
		}
	}

	widest := max(2+maxCommand, 4+maxParam)
	even := (widest + 1) / 2 * 2
	return even - 1
}

func writeCommand(w io.Writer, cmd *parser.Command, indent string, align int, describe func(string) string) {
	display := commandDisplay(cmd)
	if cmd.Description == "" {
		fmt.Fprintf(w, "%s%s\n", indent, display)
	} else {
		fmt.Fprintf(w, "%s%s%s%s\n", indent, display, padding(align-len(display)), describe(cmd.Description))
	}

	for _, arg := range cmd.Args {
		writeParam(w, indent+"  ", argDisplay(arg), arg.Description, align, describe)
	}
	for _, flag := range cmd.Flags {
		writeParam(w, indent+"  ", flagDisplay(flag), flag.Description, align, describe)
	}
}

func writeParam(w io.Writer, indent, display, desc string, align int, describe func(string) string) {
	if desc == "" {
		fmt.Fprintf(w, "%s%s\n", indent, display)
		return
	}
	fmt.Fprintf(w, "%s%s%s%s\n", indent, display, padding(align-len(display)), describe(desc))
}

func commandDisplay(cmd *parser.Command) string {
	return strings.Join(cmd.Names, ", ")
}

func argDisplay(arg parser.Argument) string {
	switch {
	case arg.Variadic:
		return "..." + arg.Name
	case arg.Optional:
		return arg.Name + "?"
	default:
		return arg.Name
	}
}

func flagDisplay(flag parser.Flag) string {
	if flag.Short != 0 {
		return fmt.Sprintf("-%c, --%s", flag.Short, flag.Long)
	}
	return "--" + flag.Long
}

func padding(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}
