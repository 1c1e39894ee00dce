//go:build darwin

package path

import "path/filepath"

// AfterGetAbsPath resolves symlinks so the working directory compares
// equal to configured paths. On macOS the same temp folder is reachable as
// both /var/folders/... and /private/var/folders/...; this pins it to the
// /private form.
func AfterGetAbsPath(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}
