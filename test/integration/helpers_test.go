//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir     string // HOME, so no user config leaks in
	ProjectDir  string // the CMake project being set up
	UpstreamDir string // local git repository standing in for vcpkg upstream
}

// setupTestEnv creates isolated temp directories and a local upstream
// repository whose bootstrap script exits with bootstrapStatus and, on
// success, drops a fake vcpkg executable.
func setupTestEnv(t *testing.T, bootstrapStatus string) *testEnv {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("integration tests drive POSIX shell scripts")
	}
	for _, bin := range []string{"git", "sh"} {
		if _, err := exec.LookPath(bin); err != nil {
			t.Skipf("%s not available, skipping", bin)
		}
	}

	env := &testEnv{
		HomeDir:     t.TempDir(),
		ProjectDir:  t.TempDir(),
		UpstreamDir: t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	t.Setenv("SVK_VCPKG_REPO", "")
	t.Setenv("SVK_VCPKG_REPO_URL", "")

	script := `#!/bin/sh
echo "bootstrap called with: $*" > "$(dirname "$0")/bootstrap.log"
if [ "` + bootstrapStatus + `" = "0" ]; then
  printf '#!/bin/sh\necho vcpkg "$@" >> "$(dirname "$0")/install.log"\n' > "$(dirname "$0")/vcpkg"
  chmod +x "$(dirname "$0")/vcpkg"
fi
exit ` + bootstrapStatus + `
`
	writeFile(t, filepath.Join(env.UpstreamDir, "bootstrap-vcpkg.sh"), script)
	if err := os.Chmod(filepath.Join(env.UpstreamDir, "bootstrap-vcpkg.sh"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(env.UpstreamDir, "scripts", "buildsystems", "vcpkg.cmake"), "# toolchain\n")

	git(t, env.UpstreamDir, "init", "-q")
	git(t, env.UpstreamDir, "add", ".")
	git(t, env.UpstreamDir, "-c", "user.name=test", "-c", "user.email=test@example.com", "commit", "-q", "-m", "init")

	return env
}

func git(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	if content := readFile(t, path); !strings.Contains(content, substr) {
		t.Errorf("file %s does not contain %q\ncontent:\n%s", path, substr, content)
	}
}
