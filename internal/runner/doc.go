// Package runner executes child processes for the setup procedure. Every
// invocation is synchronous: Run blocks until the child exits. A non-zero
// exit status is reported through Output.ExitCode, not as an error, so the
// caller decides whether a failed child aborts the run.
package runner
