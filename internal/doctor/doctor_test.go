package doctor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/svklib/svk-setup/internal/manifest"
	"github.com/svklib/svk-setup/internal/platform"
	"github.com/svklib/svk-setup/internal/runner"
	"github.com/svklib/svk-setup/internal/toolchain"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		output  string
		want    string
		wantErr bool
	}{
		{"git version 2.43.0\n", "2.43.0", false},
		{"git version 2.39.3 (Apple Git-146)\n", "2.39.3", false},
		{"cmake version 3.28.3\n\nCMake suite maintained and supported by Kitware", "3.28.3", false},
		{"git version 2.45.1.windows.1", "2.45.1", false},
		{"tool 4.1", "4.1.0", false},
		{"no version here", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			v, err := ParseVersion(tt.output)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", v)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.String() != tt.want {
				t.Errorf("ParseVersion() = %s, want %s", v, tt.want)
			}
		})
	}
}

func TestSatisfiesMin(t *testing.T) {
	tests := []struct {
		version string
		min     string
		want    bool
	}{
		{"2.43.0", "2.7.0", true},
		{"2.7.0", "2.7.0", true},
		{"2.6.9", "2.7.0", false},
		{"3.13.5", "3.14.0", false},
		{"3.28.3", "3.14.0", true},
	}

	for _, tt := range tests {
		v, err := ParseVersion(tt.version)
		if err != nil {
			t.Fatal(err)
		}
		got, err := SatisfiesMin(v, tt.min)
		if err != nil {
			t.Fatalf("SatisfiesMin() error: %v", err)
		}
		if got != tt.want {
			t.Errorf("SatisfiesMin(%s, %s) = %v, want %v", tt.version, tt.min, got, tt.want)
		}
	}
}

func TestToolChecker(t *testing.T) {
	fake := &runner.Fake{Handler: func(c runner.Command) (*runner.Output, error) {
		switch c.Name {
		case "/usr/bin/git":
			return &runner.Output{Stdout: "git version 2.43.0\n"}, nil
		case "/usr/bin/cmake":
			return &runner.Output{Stdout: "cmake version 3.10.2\n"}, nil
		}
		return nil, errors.New("unexpected command")
	}}
	lookPath := func(name string) (string, error) {
		switch name {
		case "git", "cmake":
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}

	c := &ToolChecker{Runner: fake, LookPath: lookPath}
	var buf bytes.Buffer
	tools := []Tool{RequiredTools[0], RequiredTools[1], {Name: "ninja", MinVersion: "1.10.0"}}
	problems := c.Check(context.Background(), &buf, tools)

	if problems != 2 {
		t.Errorf("problems = %d, want 2 (old cmake, missing ninja)\n%s", problems, buf.String())
	}
	out := buf.String()
	for _, want := range []string{
		"[ OK ] git 2.43.0",
		"[WARN] cmake 3.10.2 is older than required 3.14.0",
		"[MISS] ninja not found",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func writeProject(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, "vcpkg"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "vcpkg", "vcpkg"), []byte("bin"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := manifest.Write(filepath.Join(dir, manifest.FileName), manifest.Default()); err != nil {
		t.Fatal(err)
	}
	if _, err := toolchain.Inject(filepath.Join(dir, toolchain.FileName), toolchain.Line("vcpkg")); err != nil {
		t.Fatal(err)
	}
}

func TestCheckProject_Healthy(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir)

	var buf bytes.Buffer
	if problems := CheckProject(&buf, dir, platform.Other, "vcpkg"); problems != 0 {
		t.Errorf("problems = %d, want 0\n%s", problems, buf.String())
	}
	if !strings.Contains(buf.String(), "(2 dependencies)") {
		t.Errorf("output missing dependency count:\n%s", buf.String())
	}
}

func TestCheckProject_Empty(t *testing.T) {
	var buf bytes.Buffer
	problems := CheckProject(&buf, t.TempDir(), platform.Other, "vcpkg")
	if problems != 3 {
		t.Errorf("problems = %d, want 3\n%s", problems, buf.String())
	}
}

func TestCheckProject_NotBootstrapped(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir)
	if err := os.Remove(filepath.Join(dir, "vcpkg", "vcpkg")); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if problems := CheckProject(&buf, dir, platform.Other, "vcpkg"); problems != 1 {
		t.Errorf("problems = %d, want 1\n%s", problems, buf.String())
	}
	if !strings.Contains(buf.String(), "not bootstrapped") {
		t.Errorf("output:\n%s", buf.String())
	}
}

func TestCheckProject_DoesNotModify(t *testing.T) {
	dir := t.TempDir()
	cmake := filepath.Join(dir, toolchain.FileName)
	if err := os.WriteFile(cmake, []byte("project(x)\n"), 0644); err != nil {
		t.Fatal(err)
	}

	CheckProject(&bytes.Buffer{}, dir, platform.Other, "vcpkg")

	got, err := os.ReadFile(cmake)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "project(x)\n" {
		t.Errorf("CMakeLists.txt modified: %q", got)
	}
	if _, err := os.Stat(filepath.Join(dir, manifest.FileName)); !os.IsNotExist(err) {
		t.Error("doctor created vcpkg.json")
	}
}

func TestCheckManifest_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), manifest.FileName)
	if err := os.WriteFile(path, []byte(`{"dependencies": ["glfw3", "glfw3"]}`), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := CheckManifest(&buf, path); err == nil {
		t.Fatal("expected error for duplicate dependencies, got nil")
	}
	if !strings.Contains(buf.String(), "[FAIL]") {
		t.Errorf("output:\n%s", buf.String())
	}
}

func TestCheckManifest_YAMLBodyFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), manifest.FileName)
	if err := os.WriteFile(path, []byte("dependencies:\n  - glslang\n  - glfw3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := CheckManifest(&buf, path); err == nil {
		t.Fatal("expected error for a YAML-bodied vcpkg.json, got nil")
	}
	if strings.Contains(buf.String(), "[ OK ]") || !strings.Contains(buf.String(), "[FAIL]") {
		t.Errorf("output:\n%s", buf.String())
	}
}

func TestCheckProject_YAMLManifestIsAProblem(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir)
	if err := os.WriteFile(filepath.Join(dir, manifest.FileName), []byte("dependencies:\n  - glslang\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if problems := CheckProject(&buf, dir, platform.Other, "vcpkg"); problems != 1 {
		t.Errorf("problems = %d, want 1\n%s", problems, buf.String())
	}
}
