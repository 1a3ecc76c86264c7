package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/svklib/svk-setup/internal/doctor"
	"github.com/svklib/svk-setup/internal/platform"
	"github.com/svklib/svk-setup/internal/runner"
	"github.com/svklib/svk-setup/internal/vcpkg"
)

var (
	doctorDir     string
	checkTools    bool
	checkProject  bool
	checkManifest string
)

// newToolChecker is replaced in tests so the tools check does not depend on
// what the host has installed.
var newToolChecker = func() *doctor.ToolChecker {
	return &doctor.ToolChecker{Runner: &runner.ExecRunner{Stdout: io.Discard, Stderr: io.Discard}}
}

func init() {
	doctorCmd.Flags().StringVar(&doctorDir, "dir", ".", "Project root to inspect")
	doctorCmd.Flags().BoolVar(&checkTools, "check-tools", false, "Verify git and cmake are installed and recent enough")
	doctorCmd.Flags().BoolVar(&checkProject, "check-project", false, "Verify vcpkg checkout, manifest, and toolchain line")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a manifest file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the project setup",
	Long:  `Run read-only diagnostic checks on the toolchain and the setup outputs.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		anyFlag := checkTools || checkProject || checkManifest != ""
		problems := 0

		if checkTools || !anyFlag {
			problems += newToolChecker().Check(cmd.Context(), out, doctor.RequiredTools)
		}
		if checkProject || !anyFlag {
			problems += doctor.CheckProject(out, doctorDir, platform.Detect(), vcpkg.DefaultDir)
		}
		if checkManifest != "" {
			fmt.Fprintf(out, "Manifest validation: %s\n", checkManifest)
			if err := doctor.CheckManifest(out, checkManifest); err != nil {
				problems++
			}
		}

		if problems > 0 {
			return fmt.Errorf("%d problem(s) found", problems)
		}
		fmt.Fprintln(out, "No problems found.")
		return nil
	},
}
