package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/svklib/svk-setup/internal/branding"
	"github.com/svklib/svk-setup/internal/config"
	"github.com/svklib/svk-setup/internal/runner"
	"github.com/svklib/svk-setup/internal/setup"
	"github.com/svklib/svk-setup/internal/vcpkg"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose          bool
	projectDir       string
	setupMode        string
	strict           bool
	skipClone        bool
	noDisableMetrics bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&projectDir, "dir", ".", "Project root containing CMakeLists.txt")
	rootCmd.Flags().StringVar(&setupMode, "mode", "", "How packages are declared: manifest (write vcpkg.json) or classic (vcpkg install)")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Fail when bootstrap or install exits non-zero")
	rootCmd.Flags().BoolVar(&skipClone, "skip-clone", false, "Never clone vcpkg, even when the directory is missing")
	rootCmd.Flags().BoolVar(&noDisableMetrics, "no-disable-metrics", false, "Do not pass -disableMetrics to the bootstrap script")
}

// newRunner is replaced in tests to avoid spawning git and shell scripts.
var newRunner = func() runner.Runner { return &runner.ExecRunner{} }

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` clones vcpkg next to a CMake project when it is missing, bootstraps it,
declares the glslang and glfw3 packages, and points CMakeLists.txt at the vcpkg
toolchain file. Run it with no arguments from the project root.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := charmlog.InfoLevel
		if verbose {
			level = charmlog.DebugLevel
		}
		cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		config.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := loggerFromContext(cmd.Context())

		opts, err := resolveOptions(cmd)
		if err != nil {
			return err
		}

		p := setup.New(projectDir, logger)
		p.Runner = newRunner()
		p.Options = opts

		start := time.Now()
		report, err := p.Run(cmd.Context())
		if err != nil {
			if report != nil && len(report.Steps) > 0 {
				logger.Error("setup aborted", "completed", report.Steps)
			}
			return fmt.Errorf("setup failed: %w", err)
		}
		elapsed(logger, start, "setup complete")
		return nil
	},
}

// resolveOptions layers config values under explicitly set flags.
func resolveOptions(cmd *cobra.Command) (setup.Options, error) {
	opts := setup.DefaultOptions()
	opts.RepoURL = vcpkg.RepoURL()
	opts.Strict = config.GetBool(config.KeyStrict)
	opts.DisableMetrics = config.GetBool(config.KeyDisableMetrics)

	modeValue := config.Get(config.KeyMode)
	if cmd.Flags().Changed("mode") {
		modeValue = setupMode
	}
	mode, err := setup.ParseMode(modeValue)
	if err != nil {
		return opts, err
	}
	opts.Mode = mode

	if cmd.Flags().Changed("strict") {
		opts.Strict = strict
	}
	if noDisableMetrics {
		opts.DisableMetrics = false
	}
	opts.SkipClone = skipClone
	return opts, nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.ExecuteContext(context.Background())
}
