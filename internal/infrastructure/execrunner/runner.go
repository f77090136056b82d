// Package execrunner wraps subprocess execution for the collaborator
// commands (audio tooling, package manager, runtime bootstrap).
package execrunner

import (
	"bytes"
	"context"
	"os/exec"
)

// Result captures one subprocess invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// OK reports whether the command ran and exited zero.
func (r Result) OK() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Runner executes a named command with arguments. Adapters depend on
// this rather than os/exec directly so tests can script outcomes.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) Result
}

// Local runs commands on the host.
type Local struct{}

// NewLocal builds a host-backed runner.
func NewLocal() Local {
	return Local{}
}

// Run implements Runner.
func (Local) Run(ctx context.Context, name string, args ...string) Result {
	c := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		result.ExitCode = exitErr.ExitCode()
		result.Err = err
		return result
	}
	if err != nil {
		result.ExitCode = -1
		result.Err = err
	}
	return result
}

var _ Runner = Local{}
