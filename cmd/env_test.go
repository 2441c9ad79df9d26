// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> library packages -> history SQLite database.
// Each test environment gets its own HOME so global config and the
// history database never touch the developer's real ones.
//
// The library packages (glob, hexutil, baseconv, ...) carry their own
// unit tests; these tests cover the wiring, flags, and output formats.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the string-fns binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "string-fns-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "string-fns"
		if os.PathSeparator == '\\' {
			binaryName = "string-fns.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string // working directory for the command
	home   string // isolated HOME for config and history
	binary string
}

// newTestEnv creates an isolated environment for running the binary.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}
}

// run executes string-fns with the given args and returns stdout+stderr.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("string-fns %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes string-fns and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	return e.runEnvErr(nil, args...)
}

// runEnvErr executes string-fns with extra environment variables.
func (e *testEnv) runEnvErr(extraEnv []string, args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.home)
	cmd.Env = append(cmd.Env, extraEnv...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
