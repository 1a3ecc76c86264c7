package platform

import (
	"fmt"
	"os"
	"runtime"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// EnsureExecutable adds the user/group/other execute bits to path when they
// are missing. Archives and some checkouts drop the bit on bootstrap-vcpkg.sh.
// A missing file is not an error here; running it will report that.
func EnsureExecutable(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	perm := info.Mode().Perm()
	if perm&0111 == 0111 {
		return nil
	}
	if err := Chmod(path, perm|0111); err != nil {
		return fmt.Errorf("marking %s executable: %w", path, err)
	}
	return nil
}
