package domain

import "strings"

// Process describes one external tool invocation: argv, working directory and
// environment. The working directory is always inside a sandbox owned by the
// current request, so concurrent processes never share mutable state.
type Process struct {
	// Argv is the full argument vector; Argv[0] is the absolute binary path.
	Argv []string

	// Dir is the working directory for the invocation.
	Dir string

	// Env holds additional KEY=VALUE entries appended to the inherited
	// environment.
	Env []string

	// Description names the invocation for progress reporting and logs.
	Description string
}

// ProcessResult is the discriminated outcome of a finished process. A non-zero
// exit code is data, not a Go error; process-level failures (binary missing,
// context cancelled) surface as errors from the executor instead.
type ProcessResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Success reports whether the process exited zero.
func (r *ProcessResult) Success() bool {
	return r.ExitCode == 0
}

// StderrString returns the captured stderr with trailing whitespace trimmed,
// the primary diagnostic surfaced on compile failures.
func (r *ProcessResult) StderrString() string {
	return strings.TrimRight(string(r.Stderr), "\n\t ")
}
