// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	VcpkgRepoURL string `yaml:"vcpkg_repo_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "svk-setup",
			DisplayName:  "SVK Setup",
			Description:  "Bootstrap vcpkg and wire it into a CMake project",
			HomeDir:      ".svk-setup",
			EnvPrefix:    "SVK",
			VcpkgRepoURL: "https://github.com/microsoft/vcpkg.git",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "svk-setup").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".svk-setup").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SVK").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// VcpkgRepoURL returns the default upstream URL cloned when the local
// vcpkg directory is missing.
func VcpkgRepoURL() string { load(); return defaults.VcpkgRepoURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("home") → "SVK_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
