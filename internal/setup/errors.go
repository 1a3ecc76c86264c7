package setup

import "fmt"

// Step names, in execution order.
const (
	StepClone     = "clone"
	StepBootstrap = "bootstrap"
	StepManifest  = "manifest"
	StepToolchain = "toolchain"
)

// ExitError reports a child process that exited non-zero in strict mode.
type ExitError struct {
	Step    string
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: %s exited with status %d", e.Step, e.Command, e.Code)
}

// StepError wraps the failure that aborted a step.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return e.Step + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error { return e.Err }
