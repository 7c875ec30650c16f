package config

import (
	"os"
	"regexp"
	"strings"
)

// pathLike matches conservative path strings: letters, digits, underscore,
// dash, space, dot, and separators. Glob patterns fall outside the class and
// are skipped, which also skips legitimate paths containing * or ? (known
// limitation).
var pathLike = regexp.MustCompile(`^[\w\s\-./\\]+$`)

// VerifyPaths reports on-disk existence for every resolved string value that
// contains a path separator and looks like a plain path. Non-string values
// and glob-wildcard strings are omitted from the result entirely.
//
// Called before Initialize it logs a warning and returns an empty map; this
// is an inspection helper and tolerates a best-effort response.
func (r *Resolver) VerifyPaths() map[string]bool {
	snapshot := r.current.Load()
	if snapshot == nil {
		r.logger.Warn("configuration not initialized; nothing to verify",
			"hint", "call Initialize with a base directory or keyword")
		return map[string]bool{}
	}

	results := make(map[string]bool)
	for name, value := range snapshot.values {
		text, ok := value.(string)
		if !ok {
			continue
		}
		if !strings.ContainsAny(text, `/\`) {
			continue
		}
		if !pathLike.MatchString(text) {
			continue
		}
		_, err := os.Stat(text)
		results[name] = err == nil
	}
	return results
}
