// Package fileutil implements the inspection and copy commands behind
// `corelab files`. Every path is screened by ValidatePath before and after
// symlink resolution.
package fileutil

import (
	"path/filepath"
	"strings"
)

// MaxPathLength is the exclusive upper bound on path length.
const MaxPathLength = 4096

var dangerousPrefixes = []string{
	"/etc/", "/usr/", "/bin/", "/sbin/", "/boot/",
	"/sys/", "/proc/", "/dev/", "/root/", "/var/",
}

const dangerousNameChars = `<>:"|?*`

// ValidatePath rejects empty paths, control characters other than tab,
// parent-directory traversal, system directories and overlong paths.
func ValidatePath(path string) error {
	if path == "" || len(path) >= MaxPathLength {
		return ErrInvalidPath
	}
	for i := 0; i < len(path); i++ {
		if path[i] < 0x20 && path[i] != '\t' {
			return ErrInvalidPath
		}
	}
	if path == ".." || strings.HasPrefix(path, "../") ||
		strings.Contains(path, "/../") || strings.HasSuffix(path, "/..") {
		return ErrInvalidPath
	}
	for _, p := range dangerousPrefixes {
		if strings.HasPrefix(path, p) {
			return ErrInvalidPath
		}
	}
	return nil
}

// validateName checks the final element of a destination path.
func validateName(path string) error {
	name := filepath.Base(path)
	if name == "" || name == "." || name == "/" || len(name) >= 256 {
		return ErrInvalidName
	}
	if strings.ContainsAny(name, dangerousNameChars) {
		return ErrInvalidName
	}
	return nil
}

// Resolve validates path, follows symlinks to an absolute path and
// validates the result again.
func Resolve(path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", &PathError{Op: "resolve", Path: path, Err: err}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &PathError{Op: "resolve", Path: path, Err: err}
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &PathError{Op: "resolve", Path: path, Err: err}
	}
	if err := ValidatePath(resolved); err != nil {
		return "", &PathError{Op: "resolve", Path: path, Err: ErrUnsafeTarget}
	}
	return resolved, nil
}
