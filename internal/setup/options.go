package setup

import (
	"fmt"

	"github.com/svklib/svk-setup/internal/branding"
	"github.com/svklib/svk-setup/internal/vcpkg"
)

// Mode selects how the required packages are declared.
type Mode string

const (
	// ModeManifest writes vcpkg.json and lets CMake install on configure.
	ModeManifest Mode = "manifest"
	// ModeClassic runs `vcpkg install <pkg>` once per package.
	ModeClassic Mode = "classic"
)

// ParseMode converts a flag or config value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeManifest:
		return ModeManifest, nil
	case ModeClassic:
		return ModeClassic, nil
	default:
		return "", fmt.Errorf("unknown mode %q: supported modes are %q and %q", s, ModeManifest, ModeClassic)
	}
}

// Options tune the procedure. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	// VcpkgDir is the checkout directory relative to the project root.
	VcpkgDir string
	// RepoURL is cloned when VcpkgDir is missing.
	RepoURL string
	// DisableMetrics passes -disableMetrics to the bootstrap script.
	DisableMetrics bool
	Mode           Mode
	// Strict turns a non-zero bootstrap or install exit into an error.
	Strict bool
	// SkipClone never clones, even when VcpkgDir is missing.
	SkipClone bool
	// Packages declared in the manifest or installed in classic mode.
	Packages []string
}

// DefaultOptions returns the canonical behavior: clone if absent, bootstrap
// with metrics disabled, write vcpkg.json, inject the toolchain line.
func DefaultOptions() Options {
	return Options{
		VcpkgDir:       vcpkg.DefaultDir,
		RepoURL:        branding.VcpkgRepoURL(),
		DisableMetrics: true,
		Mode:           ModeManifest,
	}
}
