// Package system is the process and terminal boundary: it runs host
// commands and inspects the controlling terminal.
package system

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"sweep/internal/log"
)

// Runner executes host commands. Implementations must report a non-zero
// exit status as an error.
type Runner interface {
	// Output runs the command and returns its standard output.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// Run runs the command with its output forwarded to the user.
	Run(ctx context.Context, name string, args ...string) error
	// LookPath reports where an executable is found on PATH.
	LookPath(name string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner wired to the process's standard streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Output implements Runner
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	log.Debugf("exec: %s", CommandLine(name, args...))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return out, fmt.Errorf("%w: %s", err, msg)
		}
		return out, err
	}
	return out, nil
}

// Run implements Runner
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	log.Debugf("exec: %s", CommandLine(name, args...))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

// LookPath implements Runner
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// CommandLine renders a command for display, quoting arguments with spaces.
func CommandLine(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	for _, s := range append([]string{name}, args...) {
		if s == "" || strings.ContainsAny(s, " \t'\"") {
			s = "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}
