package testutils

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestDirs creates each relative directory under root and returns
// their absolute paths in order.
func CreateTestDirs(t *testing.T, root string, dirs ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(dirs))
	for _, d := range dirs {
		p := filepath.Join(root, d)
		require.NoError(t, os.MkdirAll(p, 0o755))
		paths = append(paths, p)
	}
	return paths
}

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
		require.NoError(t, err)
	}
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}

// Call is one command recorded by FakeRunner
type Call struct {
	Name string
	Args []string
}

// String renders the call as a command line
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// FakeRunner records commands instead of executing them. Responses are keyed
// by the full command line; unknown commands succeed with empty output.
type FakeRunner struct {
	Calls    []Call
	Outputs  map[string]string
	Failures map[string]error
	Missing  map[string]bool // executables LookPath should not find
}

// NewFakeRunner returns an empty FakeRunner
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Outputs:  make(map[string]string),
		Failures: make(map[string]error),
		Missing:  make(map[string]bool),
	}
}

// Output records the call and returns the canned output or failure
func (f *FakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	c := f.record(name, args)
	if err, ok := f.Failures[c.String()]; ok {
		return nil, err
	}
	return []byte(f.Outputs[c.String()]), nil
}

// Run records the call and returns the canned failure, if any
func (f *FakeRunner) Run(_ context.Context, name string, args ...string) error {
	c := f.record(name, args)
	return f.Failures[c.String()]
}

// LookPath finds every executable not marked Missing
func (f *FakeRunner) LookPath(name string) (string, error) {
	if f.Missing[name] {
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
	return "/usr/bin/" + name, nil
}

// CommandLines returns every recorded call as a command line
func (f *FakeRunner) CommandLines() []string {
	out := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		out[i] = c.String()
	}
	return out
}

func (f *FakeRunner) record(name string, args []string) Call {
	c := Call{Name: name, Args: append([]string(nil), args...)}
	f.Calls = append(f.Calls, c)
	return c
}
