package doctor

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/svklib/svk-setup/internal/runner"
)

// Tool is an external program the build depends on.
type Tool struct {
	Name       string
	MinVersion string
}

// RequiredTools are checked by CheckTools. git needs `clone` into an
// explicit directory; vcpkg's CMake integration needs CMake 3.14.
var RequiredTools = []Tool{
	{Name: "git", MinVersion: "2.7.0"},
	{Name: "cmake", MinVersion: "3.14.0"},
}

var versionPattern = regexp.MustCompile(`(\d+\.\d+(?:\.\d+)?)`)

// ParseVersion extracts the first dotted version number from a
// `<tool> --version` banner, e.g. "git version 2.43.0" or
// "cmake version 3.28.3".
func ParseVersion(output string) (*semver.Version, error) {
	match := versionPattern.FindString(output)
	if match == "" {
		return nil, fmt.Errorf("no version number in %q", output)
	}
	return semver.NewVersion(match)
}

// SatisfiesMin reports whether version is at least min.
func SatisfiesMin(version *semver.Version, min string) (bool, error) {
	c, err := semver.NewConstraint(">= " + min)
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", min, err)
	}
	return c.Check(version), nil
}

// ToolChecker checks tools on PATH.
type ToolChecker struct {
	Runner runner.Runner
	// LookPath defaults to exec.LookPath.
	LookPath func(string) (string, error)
}

// Check reports every tool in tools to w and returns the number of problems.
func (c *ToolChecker) Check(ctx context.Context, w io.Writer, tools []Tool) int {
	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	fmt.Fprintln(w, "Tools check:")
	problems := 0
	for _, tool := range tools {
		path, err := lookPath(tool.Name)
		if err != nil {
			fmt.Fprintf(w, "  [MISS] %s not found\n", tool.Name)
			problems++
			continue
		}

		out, err := c.Runner.Run(ctx, runner.Command{Name: path, Args: []string{"--version"}})
		if err != nil || !out.Success() {
			fmt.Fprintf(w, "  [WARN] %s found at %s but `--version` failed\n", tool.Name, path)
			problems++
			continue
		}

		version, err := ParseVersion(out.Stdout)
		if err != nil {
			fmt.Fprintf(w, "  [WARN] %s found at %s, version unknown\n", tool.Name, path)
			problems++
			continue
		}

		ok, err := SatisfiesMin(version, tool.MinVersion)
		if err != nil {
			fmt.Fprintf(w, "  [FAIL] %s: %v\n", tool.Name, err)
			problems++
			continue
		}
		if !ok {
			fmt.Fprintf(w, "  [WARN] %s %s is older than required %s\n", tool.Name, version, tool.MinVersion)
			problems++
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s %s (%s)\n", tool.Name, version, path)
	}
	return problems
}
