package doctor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/svklib/svk-setup/internal/manifest"
	"github.com/svklib/svk-setup/internal/platform"
	"github.com/svklib/svk-setup/internal/toolchain"
)

// CheckProject reports the state of the setup outputs in dir and returns
// the number of problems found. It never modifies the project.
func CheckProject(w io.Writer, dir string, p platform.Platform, vcpkgDir string) int {
	fmt.Fprintf(w, "Project check: %s\n", dir)
	problems := 0

	checkoutDir := filepath.Join(dir, vcpkgDir)
	if info, err := os.Stat(checkoutDir); err != nil || !info.IsDir() {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", checkoutDir)
		problems++
	} else {
		fmt.Fprintf(w, "  [ OK ] %s exists\n", checkoutDir)

		exe := filepath.Join(dir, filepath.FromSlash(toSlash(platform.VcpkgExecutable(p, vcpkgDir))))
		if _, err := os.Stat(exe); err != nil {
			fmt.Fprintf(w, "  [MISS] %s not bootstrapped\n", exe)
			problems++
		} else {
			fmt.Fprintf(w, "  [ OK ] %s bootstrapped\n", exe)
		}
	}

	manifestPath := filepath.Join(dir, manifest.FileName)
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", manifestPath)
		problems++
	} else if err := CheckManifest(w, manifestPath); err != nil {
		problems++
	}

	cmakePath := filepath.Join(dir, toolchain.FileName)
	ok, err := toolchain.HasLine(cmakePath, toolchain.Line(toSlash(vcpkgDir)))
	switch {
	case err != nil:
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		problems++
	case !ok:
		fmt.Fprintf(w, "  [MISS] %s does not start with the vcpkg toolchain line\n", cmakePath)
		problems++
	default:
		fmt.Fprintf(w, "  [ OK ] %s uses the vcpkg toolchain\n", cmakePath)
	}

	return problems
}

// CheckManifest validates the manifest at path and reports the outcome.
func CheckManifest(w io.Writer, path string) error {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		// The schema check accepts YAML; vcpkg itself only reads JSON.
		m, err := manifest.Read(path)
		if err != nil {
			fmt.Fprintf(w, "  [FAIL] %v\n", err)
			return fmt.Errorf("manifest validation failed: %w", err)
		}
		fmt.Fprintf(w, "  [ OK ] Valid manifest %s (%d dependencies)\n", path, len(m.Dependencies))
		return nil
	}

	fmt.Fprintf(w, "  [FAIL] %s: %d validation issue(s):\n", path, len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(w, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(w, "    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}

// toSlash converts Windows-style separators in command strings to the
// forward slashes used for disk lookups and in CMake.
func toSlash(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}
