package pathutil

import (
	"os"
	"strings"
)

// Root returns the display form of a user-supplied walk root. The path is
// kept as typed, "./" prefix and trailing separator included, so child
// paths render under the same prefix. An empty root is ".".
func Root(path string) string {
	if path == "" {
		return "."
	}
	return path
}

// Join appends name to dir without cleaning, so a "./" prefix written
// by the user survives in displayed child paths.
func Join(dir, name string) string {
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}

// Base returns the last element of a displayed path.
func Base(path string) string {
	if i := strings.LastIndexByte(path, os.PathSeparator); i >= 0 && i < len(path)-1 {
		return path[i+1:]
	}
	return path
}
