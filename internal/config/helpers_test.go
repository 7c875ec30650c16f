package config_test

import (
	"os"
	"testing"
)

func mkdirAll(t *testing.T, path string) error {
	t.Helper()
	return os.MkdirAll(path, 0o755)
}

// wrongSeparator returns the separator that must not survive resolution on
// the host platform.
func wrongSeparator() string {
	if os.PathSeparator == '/' {
		return "\\"
	}
	return "/"
}
