// Package core wires the interpretation pipeline: lex, parse, resolve,
// bind, execute. Each phase is a stateless transformation; the pipeline
// only carries the collaborators the phases hand off to.
package core

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/josephlewis42/run/core/help"
	"github.com/josephlewis42/run/core/invoker"
	"github.com/josephlewis42/run/core/lexer"
	"github.com/josephlewis42/run/core/parser"
	"github.com/josephlewis42/run/core/resolver"
)

// Pipeline bundles the filesystem, logger and executor the phases need.
// The zero value is not usable; construct with New.
type Pipeline struct {
	FS       afero.Fs
	Log      *log.Logger
	Executor invoker.Executor

	// DefaultShell, when set, replaces the interpreter of commands that
	// didn't declare their own shebang.
	DefaultShell string
}

// New returns a pipeline backed by the real filesystem and process
// executor, logging to logger.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		FS:       afero.NewOsFs(),
		Log:      logger,
		Executor: &invoker.SystemExecutor{},
	}
}

// ParseRunfile lexes and parses Runfile text into the document model.
func ParseRunfile(content string) (*parser.Runfile, error) {
	tokens, err := lexer.Lex(content)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens), nil
}

// Load reads and parses the Runfile at path.
func (p *Pipeline) Load(path string) (*parser.Runfile, error) {
	content, err := afero.ReadFile(p.FS, path)
	if err != nil {
		return nil, err
	}

	tokens, err := lexer.Lex(string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	runfile := parser.Parse(tokens)
	p.Log.Debug("parsed runfile", "path", path, "tokens", len(tokens),
		"groups", len(runfile.Groups), "commands", len(runfile.Commands))
	return runfile, nil
}

// Execute resolves name in the Runfile at path and runs it against argv.
// The returned result carries captured output in ModeCapture; a non-zero
// child exit surfaces as an *invoker.ExitError.
func (p *Pipeline) Execute(ctx context.Context, path, name string, argv []string, mode invoker.Mode) (*invoker.Result, error) {
	cmd, err := p.resolve(path, name)
	if err != nil {
		return nil, err
	}

	p.Log.Debug("executing", "command", cmd.Name(), "interpreter", p.interpreterFor(cmd))
	return invoker.Invoke(ctx, p.Executor, cmd, argv, mode)
}

// Help renders the command listing for the Runfile at path.
func (p *Pipeline) Help(w io.Writer, path string, colors bool) error {
	runfile, err := p.Load(path)
	if err != nil {
		return err
	}
	help.Render(w, runfile, colors)
	return nil
}

// DryRun binds argv exactly as Execute would, then prints the interpreter,
// environment and script instead of spawning anything. Shell scripts get a
// syntax pre-flight so obvious mistakes show up without running.
func (p *Pipeline) DryRun(w io.Writer, path, name string, argv []string) error {
	cmd, err := p.resolve(path, name)
	if err != nil {
		return err
	}

	binding, err := invoker.Bind(cmd, argv)
	if err != nil {
		return err
	}

	interpreter := p.interpreterFor(cmd)
	fmt.Fprintf(w, "interpreter: %s\n", interpreter)

	env := binding.Environ()
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "env: %s=%s\n", k, env[k])
	}

	fmt.Fprintln(w, "script:")
	for _, line := range strings.Split(cmd.Script, "\n") {
		fmt.Fprintf(w, "  %s\n", line)
	}

	if invoker.IsShellInterpreter(interpreter) {
		if err := invoker.CheckScript(cmd.Script); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) resolve(path, name string) (*parser.Command, error) {
	runfile, err := p.Load(path)
	if err != nil {
		return nil, err
	}

	cmd, err := resolver.Resolve(runfile, name)
	if err != nil {
		return nil, err
	}

	if p.DefaultShell != "" && cmd.Shebang == parser.DefaultShebang {
		cmd.Shebang = "#!" + p.DefaultShell
	}
	return cmd, nil
}

func (p *Pipeline) interpreterFor(cmd *parser.Command) string {
	return invoker.InterpreterFor(cmd)
}
