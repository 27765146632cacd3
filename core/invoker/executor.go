package invoker

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
)

// Mode selects how the child process's streams are handled.
type Mode int

const (
	// ModeInherit wires the child's stdout/stderr to the executor's own
	// streams; only the exit status is reported back.
	ModeInherit Mode = iota
	// ModeCapture buffers the child's stdout/stderr and returns them.
	ModeCapture
)

// ExecSpec is everything an executor needs to run one script.
type ExecSpec struct {
	// Interpreter is the shebang line without "#!", e.g. "/bin/sh" or
	// "/usr/bin/env python3".
	Interpreter string
	Script      string
	Env         map[string]string
	Mode        Mode
}

// Result reports one finished execution. Stdout/Stderr are only populated
// in ModeCapture.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Executor runs a fully bound script. Implementations report a non-zero
// child exit through Result.ExitCode and reserve the error return for
// failures to run at all.
type Executor interface {
	Run(ctx context.Context, spec ExecSpec) (*Result, error)
}

// SystemExecutor runs scripts as real child processes via the interpreter's
// "-c" form. The zero value inherits the parent process's streams.
type SystemExecutor struct {
	// Stdin/Stdout/Stderr override the parent's streams in ModeInherit.
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
}

// Run executes the spec's script. The interpreter line is split on
// whitespace so "env"-style shebangs spawn correctly; the script rides as
// the single argument after "-c". The child sees the parent environment
// plus the spec's bindings.
func (e *SystemExecutor) Run(ctx context.Context, spec ExecSpec) (*Result, error) {
	fields := strings.Fields(spec.Interpreter)
	if len(fields) == 0 {
		fields = []string{"sh"}
	}
	args := append(fields[1:], "-c", spec.Script)

	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Env = append(os.Environ(), envToSlice(spec.Env)...)

	var stdout, stderr bytes.Buffer
	switch spec.Mode {
	case ModeCapture:
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	default:
		cmd.Stdin = e.Stdin
		cmd.Stdout = e.Stdout
		cmd.Stderr = e.Stderr
		if cmd.Stdin == nil {
			cmd.Stdin = os.Stdin
		}
		if cmd.Stdout == nil {
			cmd.Stdout = os.Stdout
		}
		if cmd.Stderr == nil {
			cmd.Stderr = os.Stderr
		}
	}

	err := cmd.Run()
	result := &Result{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("failed to execute %s: %w", fields[0], err)
	}
	return result, nil
}

// envToSlice flattens an environment map to KEY=value pairs in a stable
// order.
func envToSlice(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+env[k])
	}
	return out
}
