// Package toolchain makes a CMake project pick up vcpkg's toolchain file by
// placing a CMAKE_TOOLCHAIN_FILE directive at the very top of the build
// configuration. The file is treated as opaque text: the only check is
// whether it already begins with the directive.
package toolchain

import (
	"bytes"
	"fmt"
	"os"
)

// FileName is the build configuration file that receives the directive.
const FileName = "CMakeLists.txt"

// Line returns the toolchain-reference directive for a vcpkg checkout at
// vcpkgDir, relative to the CMake source directory.
func Line(vcpkgDir string) string {
	return "set(CMAKE_TOOLCHAIN_FILE ${CMAKE_CURRENT_SOURCE_DIR}/" + vcpkgDir + "/scripts/buildsystems/vcpkg.cmake)"
}

// HasLine reports whether the file at path begins with line. A missing
// file reports false with a nil error.
func HasLine(path, line string) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	return bytes.HasPrefix(data, []byte(line)), nil
}

// Inject makes the file at path begin with line and reports whether the
// file changed.
//
//   - missing file: created with exactly line as its content
//   - content already starts with line: untouched
//   - anything else: rewritten as line + "\n" + original content
//
// The whole file is read and rewritten; there is no in-place patching.
func Inject(path, line string) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte(line), 0644); err != nil {
			return false, fmt.Errorf("creating %s: %w", path, err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	if bytes.HasPrefix(data, []byte(line)) {
		return false, nil
	}

	out := make([]byte, 0, len(line)+1+len(data))
	out = append(out, line...)
	out = append(out, '\n')
	out = append(out, data...)

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
