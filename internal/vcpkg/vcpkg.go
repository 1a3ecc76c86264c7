// Package vcpkg wraps the handful of vcpkg operations the setup procedure
// needs: cloning the upstream repository when it is absent, running the
// platform bootstrap script, and the classic per-package install.
package vcpkg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/svklib/svk-setup/internal/branding"
	"github.com/svklib/svk-setup/internal/config"
	"github.com/svklib/svk-setup/internal/platform"
	"github.com/svklib/svk-setup/internal/runner"
)

// DefaultDir is the vcpkg checkout directory, relative to the project root.
const DefaultDir = "vcpkg"

// RepoURL returns the vcpkg repository URL: the "vcpkg_repo" setting
// (SVK_VCPKG_REPO or SVK_VCPKG_REPO_URL env var, then config file) when
// set, otherwise branding.VcpkgRepoURL(). config.Load must have run for
// the env vars and file to be seen.
func RepoURL() string {
	if v := config.Get(config.KeyVcpkgRepo); v != "" {
		return v
	}
	return branding.VcpkgRepoURL()
}

// Exists reports whether the vcpkg directory is present under projectDir.
func Exists(projectDir, vcpkgDir string) bool {
	info, err := os.Stat(filepath.Join(projectDir, vcpkgDir))
	return err == nil && info.IsDir()
}

// CloneCommand returns the git invocation that clones repoURL into vcpkgDir.
func CloneCommand(projectDir, repoURL, vcpkgDir string) runner.Command {
	return runner.Command{
		Name: "git",
		Args: []string{"clone", repoURL, vcpkgDir},
		Dir:  projectDir,
	}
}

// Clone clones repoURL into projectDir/vcpkgDir. Unlike bootstrap, a failed
// clone is an error: nothing after it can work without the checkout.
func Clone(ctx context.Context, r runner.Runner, projectDir, repoURL, vcpkgDir string) error {
	out, err := r.Run(ctx, CloneCommand(projectDir, repoURL, vcpkgDir))
	if err != nil {
		return fmt.Errorf("cloning %s: %w", repoURL, err)
	}
	if !out.Success() {
		return fmt.Errorf("cloning %s: git exited with status %d\n%s", repoURL, out.ExitCode, strings.TrimSpace(out.Stderr))
	}
	return nil
}

// Bootstrap runs the platform bootstrap script inside projectDir. The exit
// status is returned in the Output and is not inspected here.
func Bootstrap(ctx context.Context, r runner.Runner, p platform.Platform, projectDir, vcpkgDir string, disableMetrics bool) (*runner.Output, error) {
	if p == platform.Other {
		script := filepath.Join(projectDir, vcpkgDir, "bootstrap-vcpkg.sh")
		if err := platform.EnsureExecutable(script); err != nil {
			return nil, err
		}
	}

	bc := platform.BootstrapCommand(p, vcpkgDir, disableMetrics)
	out, err := r.Run(ctx, runner.Command{Name: bc.Name, Args: bc.Args, Dir: projectDir})
	if err != nil {
		return nil, fmt.Errorf("bootstrapping vcpkg: %w", err)
	}
	return out, nil
}

// InstallCommand returns the `vcpkg install <pkg>` invocation for p.
func InstallCommand(p platform.Platform, projectDir, vcpkgDir, pkg string) runner.Command {
	return runner.Command{
		Name: platform.VcpkgExecutable(p, vcpkgDir),
		Args: []string{"install", pkg},
		Dir:  projectDir,
	}
}

// Install runs `vcpkg install <pkg>`. Like Bootstrap, the exit status is
// left to the caller.
func Install(ctx context.Context, r runner.Runner, p platform.Platform, projectDir, vcpkgDir, pkg string) (*runner.Output, error) {
	out, err := r.Run(ctx, InstallCommand(p, projectDir, vcpkgDir, pkg))
	if err != nil {
		return nil, fmt.Errorf("installing %s: %w", pkg, err)
	}
	return out, nil
}
