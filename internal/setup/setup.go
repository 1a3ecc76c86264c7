package setup

import (
	"context"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/svklib/svk-setup/internal/manifest"
	"github.com/svklib/svk-setup/internal/platform"
	"github.com/svklib/svk-setup/internal/runner"
	"github.com/svklib/svk-setup/internal/toolchain"
	"github.com/svklib/svk-setup/internal/vcpkg"
)

// Procedure is one configured setup run.
type Procedure struct {
	// Dir is the project root. Empty means the current directory.
	Dir      string
	Platform platform.Platform
	Runner   runner.Runner
	Logger   *log.Logger
	Options  Options
}

// Report describes what a run did.
type Report struct {
	Steps []string
	// Cloned is true when the vcpkg checkout was created by this run.
	Cloned            bool
	BootstrapExitCode int
	// InstallExitCodes maps package to exit status (classic mode only).
	InstallExitCodes map[string]int
	ManifestPath     string
	ToolchainPath    string
	// ToolchainChanged is false when the build file already had the line.
	ToolchainChanged bool
}

// New returns a Procedure for dir on the host platform, running real
// processes with default options.
func New(dir string, logger *log.Logger) *Procedure {
	return &Procedure{
		Dir:      dir,
		Platform: platform.Detect(),
		Runner:   &runner.ExecRunner{},
		Logger:   logger,
		Options:  DefaultOptions(),
	}
}

// Run executes the procedure. The returned Report is non-nil even on error
// and reflects the steps that completed.
func (p *Procedure) Run(ctx context.Context) (*Report, error) {
	logger := p.logger()
	dir := p.dir()
	opts := p.Options
	if opts.VcpkgDir == "" {
		opts.VcpkgDir = vcpkg.DefaultDir
	}
	decl := manifest.Default()
	if len(opts.Packages) > 0 {
		decl.Dependencies = append([]string(nil), opts.Packages...)
	}

	report := &Report{}
	logger.Debug("starting setup", "dir", dir, "platform", p.Platform, "mode", opts.Mode)

	// Clone?
	if vcpkg.Exists(dir, opts.VcpkgDir) {
		logger.Info("vcpkg already present", "dir", opts.VcpkgDir)
	} else if opts.SkipClone {
		logger.Warn("vcpkg missing and cloning disabled", "dir", opts.VcpkgDir)
	} else {
		logger.Info("cloning vcpkg", "url", opts.RepoURL, "dir", opts.VcpkgDir)
		if err := vcpkg.Clone(ctx, p.Runner, dir, opts.RepoURL, opts.VcpkgDir); err != nil {
			return report, &StepError{Step: StepClone, Err: err}
		}
		report.Cloned = true
		report.Steps = append(report.Steps, StepClone)
	}

	// Bootstrap.
	bc := platform.BootstrapCommand(p.Platform, opts.VcpkgDir, opts.DisableMetrics)
	logger.Info("bootstrapping vcpkg", "command", runner.Command{Name: bc.Name, Args: bc.Args})
	out, err := vcpkg.Bootstrap(ctx, p.Runner, p.Platform, dir, opts.VcpkgDir, opts.DisableMetrics)
	if err != nil {
		return report, &StepError{Step: StepBootstrap, Err: err}
	}
	report.BootstrapExitCode = out.ExitCode
	report.Steps = append(report.Steps, StepBootstrap)
	if err := p.checkExit(StepBootstrap, bc.Name, out); err != nil {
		return report, err
	}

	// Declare manifest.
	switch opts.Mode {
	case ModeClassic:
		report.InstallExitCodes = make(map[string]int, len(decl.Dependencies))
		for _, pkg := range decl.Dependencies {
			logger.Info("installing package", "package", pkg)
			out, err := vcpkg.Install(ctx, p.Runner, p.Platform, dir, opts.VcpkgDir, pkg)
			if err != nil {
				return report, &StepError{Step: StepManifest, Err: err}
			}
			report.InstallExitCodes[pkg] = out.ExitCode
			cmd := vcpkg.InstallCommand(p.Platform, dir, opts.VcpkgDir, pkg)
			if err := p.checkExit(StepManifest, cmd.String(), out); err != nil {
				return report, err
			}
		}
	default:
		path := filepath.Join(dir, manifest.FileName)
		logger.Info("writing manifest", "path", path, "dependencies", decl.Dependencies)
		if err := manifest.Write(path, decl); err != nil {
			return report, &StepError{Step: StepManifest, Err: err}
		}
		report.ManifestPath = path
	}
	report.Steps = append(report.Steps, StepManifest)

	// Inject toolchain.
	path := filepath.Join(dir, toolchain.FileName)
	changed, err := toolchain.Inject(path, toolchain.Line(filepath.ToSlash(opts.VcpkgDir)))
	if err != nil {
		return report, &StepError{Step: StepToolchain, Err: err}
	}
	report.ToolchainPath = path
	report.ToolchainChanged = changed
	report.Steps = append(report.Steps, StepToolchain)
	if changed {
		logger.Info("toolchain line added", "path", path)
	} else {
		logger.Info("toolchain line already present", "path", path)
	}

	logger.Debug("setup finished", "steps", report.Steps)
	return report, nil
}

// checkExit logs a non-zero exit and, in strict mode, turns it into an error.
func (p *Procedure) checkExit(step, command string, out *runner.Output) error {
	if out.Success() {
		return nil
	}
	if p.Options.Strict {
		return &ExitError{Step: step, Command: command, Code: out.ExitCode}
	}
	p.logger().Warn("command failed, continuing", "step", step, "command", command, "status", out.ExitCode)
	return nil
}

func (p *Procedure) dir() string {
	if p.Dir == "" {
		return "."
	}
	return p.Dir
}

func (p *Procedure) logger() *log.Logger {
	if p.Logger == nil {
		return log.NewWithOptions(io.Discard, log.Options{})
	}
	return p.Logger
}
