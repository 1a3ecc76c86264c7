package platform

import (
	"runtime"
	"strings"
)

// Platform identifies the host family the setup procedure targets.
type Platform int

const (
	// Other is any non-Windows host (Linux, macOS, BSD).
	Other Platform = iota
	// Windows hosts run batch scripts through cmd.exe.
	Windows
)

// MetricsFlag is passed to the bootstrap script to opt out of telemetry.
const MetricsFlag = "-disableMetrics"

// Command is a fully resolved process invocation.
type Command struct {
	Name string
	Args []string
}

// Detect returns the Platform of the running host.
func Detect() Platform {
	return FromGOOS(runtime.GOOS)
}

// FromGOOS maps a GOOS value to a Platform.
func FromGOOS(goos string) Platform {
	if goos == "windows" {
		return Windows
	}
	return Other
}

// String returns "windows" or "other".
func (p Platform) String() string {
	if p == Windows {
		return "windows"
	}
	return "other"
}

// Separator returns the path separator used in command strings for p.
func (p Platform) Separator() string {
	if p == Windows {
		return `\`
	}
	return "/"
}

// Join joins path segments with the separator of p. Empty segments are
// dropped. Unlike filepath.Join it does not clean the result, so the
// command strings match what the user would type.
func Join(p Platform, parts ...string) string {
	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, p.Separator())
}

// BootstrapScript returns the path of the bootstrap script inside vcpkgDir.
func BootstrapScript(p Platform, vcpkgDir string) string {
	if p == Windows {
		return Join(p, vcpkgDir, "bootstrap-vcpkg.bat")
	}
	return Join(p, vcpkgDir, "bootstrap-vcpkg.sh")
}

// BootstrapCommand returns the invocation that bootstraps vcpkg on p.
// Non-Windows hosts run the shell script directly; Windows goes through
// `cmd /c` because batch files are not directly executable.
func BootstrapCommand(p Platform, vcpkgDir string, disableMetrics bool) Command {
	script := BootstrapScript(p, vcpkgDir)

	var cmd Command
	if p == Windows {
		cmd = Command{Name: "cmd", Args: []string{"/c", script}}
	} else {
		cmd = Command{Name: script}
	}
	if disableMetrics {
		cmd.Args = append(cmd.Args, MetricsFlag)
	}
	return cmd
}

// VcpkgExecutable returns the path of the vcpkg binary produced by bootstrap.
func VcpkgExecutable(p Platform, vcpkgDir string) string {
	if p == Windows {
		return Join(p, vcpkgDir, "vcpkg.exe")
	}
	return Join(p, vcpkgDir, "vcpkg")
}
