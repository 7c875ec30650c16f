package config

import (
	"fmt"
	"os"
	"strings"
)

// DetectBaseDir derives the base data directory from a working directory by
// locating the leftmost path segment exactly equal to keyword and returning
// the absolute prefix up to and including that segment.
//
// The leftmost occurrence wins: with nested project folders the outermost
// directory is the share root the relative fragments were written against.
func DetectBaseDir(workingDir, keyword string) (string, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return "", Wrap(ErrConfiguration, "auto-detect", "keyword must not be empty", nil)
	}
	if workingDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", Wrap(ErrConfiguration, "auto-detect", "determine working directory", err)
		}
		workingDir = cwd
	}

	separator := string(os.PathSeparator)
	segments := strings.Split(workingDir, separator)
	for i, segment := range segments {
		if segment == keyword {
			return strings.Join(segments[:i+1], separator), nil
		}
	}
	return "", Wrap(ErrConfiguration, "auto-detect",
		fmt.Sprintf("keyword %q not found in working directory %q", keyword, workingDir), nil)
}
