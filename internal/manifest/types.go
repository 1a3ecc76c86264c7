package manifest

// FileName is the manifest file vcpkg looks for in the project root.
const FileName = "vcpkg.json"

// Packages the project depends on, in declaration order.
const (
	PackageGlslang = "glslang"
	PackageGLFW    = "glfw3"
)

// DefaultPackages lists the packages declared by every setup run.
var DefaultPackages = []string{PackageGlslang, PackageGLFW}

// Manifest is the subset of the vcpkg manifest format this tool produces.
// Name and Version are accepted when reading a hand-edited manifest but are
// never emitted by Default.
type Manifest struct {
	Name         string   `yaml:"name,omitempty" json:"name,omitempty"`
	Version      string   `yaml:"version,omitempty" json:"version,omitempty"`
	Dependencies []string `yaml:"dependencies" json:"dependencies"`
}

// Default returns a fresh manifest declaring DefaultPackages.
func Default() *Manifest {
	deps := make([]string, len(DefaultPackages))
	copy(deps, DefaultPackages)
	return &Manifest{Dependencies: deps}
}
