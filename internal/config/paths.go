package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CombinePaths joins path segments after translating both forward and
// backward slashes in every segment to the host separator, so fragments
// written with the forward-slash convention work unmodified on any platform.
//
// The join itself follows filepath.Join, which means an absolute segment
// does not reset the result the way some host join primitives do; callers
// should avoid absolute fragments.
func CombinePaths(segments ...string) string {
	cleaned := make([]string, len(segments))
	for i, segment := range segments {
		cleaned[i] = normalizeSeparators(segment)
	}
	return filepath.Join(cleaned...)
}

func normalizeSeparators(fragment string) string {
	fragment = strings.ReplaceAll(fragment, "/", string(os.PathSeparator))
	return strings.ReplaceAll(fragment, "\\", string(os.PathSeparator))
}

// ExpandPlaceholders substitutes {token} placeholders in a path template.
// Tokens without a replacement are left untouched so partially resolved
// templates keep their remaining placeholders for later stages.
func ExpandPlaceholders(template string, repl map[string]string) string {
	out := template
	for token, value := range repl {
		out = strings.ReplaceAll(out, "{"+token+"}", value)
	}
	return out
}

// ExpandPath resolves user shortcuts and returns an absolute, cleaned path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(normalizeSeparators(pathValue))
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
