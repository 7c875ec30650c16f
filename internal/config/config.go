package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"neuropath/internal/cfgvars"
)

// InitOptions describes one initialization request. Exactly one of BaseDir
// or Keyword must be set.
type InitOptions struct {
	// BaseDir selects explicit mode: the path is resolved to an absolute
	// directory that must exist on disk.
	BaseDir string
	// Keyword selects auto-detect mode: the base directory is the prefix of
	// the working directory up to and including the leftmost segment equal
	// to the keyword.
	Keyword string
	// WorkingDir overrides os.Getwd() for auto-detect mode. Tests inject it
	// so detection does not depend on the process working directory.
	WorkingDir string
	// OverridesPath names a TOML overrides file. Empty means the default
	// lookup (user config dir, then project file); overrides are skipped
	// when no file resolves.
	OverridesPath string
	// Force replaces an existing snapshot wholesale.
	Force bool
	// Verbose emits informational notices through the resolver's logger.
	Verbose bool
}

// Snapshot is the immutable resolved table published by a successful
// initialization. Relative fragments become absolute paths prefixed by
// BaseDir; constants pass through unchanged.
type Snapshot struct {
	// BaseDir is the absolute base data directory.
	BaseDir string
	// Generation identifies this snapshot in logs across forced
	// re-initializations.
	Generation string

	values map[string]any
	kinds  map[string]cfgvars.Kind
}

// Value looks up a resolved entry by name.
func (s *Snapshot) Value(name string) (any, bool) {
	value, ok := s.values[name]
	return value, ok
}

// Names returns every published name in sorted order.
func (s *Snapshot) Names() []string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolver resolves the variable source against a base directory and
// publishes the result as an immutable snapshot. Initialization is guarded
// by a mutex; reads go through an atomic pointer and need no locking.
type Resolver struct {
	mu      sync.Mutex
	current atomic.Pointer[Snapshot]

	source cfgvars.Source
	logger *slog.Logger
}

// New constructs a resolver over the given source. A nil source falls back
// to the built-in variable table; a nil logger discards notices.
func New(source cfgvars.Source, logger *slog.Logger) *Resolver {
	if source == nil {
		source = cfgvars.Default()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Resolver{source: source, logger: logger}
}

// Initialized reports whether a snapshot has been published.
func (r *Resolver) Initialized() bool {
	return r.current.Load() != nil
}

// Snapshot returns the current resolved table.
func (r *Resolver) Snapshot() (*Snapshot, error) {
	snapshot := r.current.Load()
	if snapshot == nil {
		return nil, Wrap(ErrNotInitialized, "snapshot",
			"call Initialize with a base directory or keyword first", nil)
	}
	return snapshot, nil
}

// Get looks up a resolved value by name.
func (r *Resolver) Get(name string) (any, error) {
	snapshot, err := r.Snapshot()
	if err != nil {
		return nil, err
	}
	value, ok := snapshot.Value(name)
	if !ok {
		return nil, Wrap(ErrNotFound, "get",
			fmt.Sprintf("no configuration variable named %q", name), nil)
	}
	return value, nil
}

// GetString looks up a resolved value and requires it to be a string.
func (r *Resolver) GetString(name string) (string, error) {
	value, err := r.Get(name)
	if err != nil {
		return "", err
	}
	text, ok := value.(string)
	if !ok {
		return "", Wrap(ErrNotFound, "get",
			fmt.Sprintf("configuration variable %q is %T, not a string", name, value), nil)
	}
	return text, nil
}

// Initialize resolves the variable source against a base directory and
// publishes the result. Repeat calls without Force leave the existing
// snapshot unchanged and return nil. A failed call never disturbs a
// previously published snapshot.
func (r *Resolver) Initialize(opts InitOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing := r.current.Load(); existing != nil && !opts.Force {
		if opts.Verbose {
			r.logger.Info("configuration already initialized; use Force to reinitialize",
				"base_data_dir", existing.BaseDir,
				"generation", existing.Generation)
		}
		return nil
	}

	baseDir, err := r.resolveBaseDir(opts)
	if err != nil {
		return err
	}

	entries, err := applyOverrides(r.source.Entries(), opts.OverridesPath)
	if err != nil {
		return err
	}

	snapshot := &Snapshot{
		BaseDir:    baseDir,
		Generation: uuid.NewString(),
		values:     make(map[string]any, len(entries)+1),
		kinds:      make(map[string]cfgvars.Kind, len(entries)+1),
	}
	snapshot.values[cfgvars.KeyBaseDataDir] = baseDir
	snapshot.kinds[cfgvars.KeyBaseDataDir] = cfgvars.KindRelativePath
	for _, entry := range entries {
		switch entry.Kind {
		case cfgvars.KindRelativePath:
			fragment, ok := entry.Value.(string)
			if !ok {
				return Wrap(ErrConfiguration, "resolve",
					fmt.Sprintf("relative path entry %q is %T, not a string", entry.Name, entry.Value), nil)
			}
			snapshot.values[entry.Name] = CombinePaths(baseDir, fragment)
		default:
			snapshot.values[entry.Name] = entry.Value
		}
		snapshot.kinds[entry.Name] = entry.Kind
	}

	r.current.Store(snapshot)
	if opts.Verbose {
		r.logger.Info("configuration initialized",
			"base_data_dir", baseDir,
			"generation", snapshot.Generation,
			"variables", len(snapshot.values))
	}
	return nil
}

func (r *Resolver) resolveBaseDir(opts InitOptions) (string, error) {
	baseDir := strings.TrimSpace(opts.BaseDir)
	keyword := strings.TrimSpace(opts.Keyword)
	switch {
	case baseDir != "":
		return checkBaseDir(baseDir)
	case keyword != "":
		detected, err := DetectBaseDir(opts.WorkingDir, keyword)
		if err != nil {
			return "", err
		}
		return checkBaseDir(detected)
	default:
		return "", Wrap(ErrConfiguration, "initialize",
			"provide either a base directory or a keyword", nil)
	}
}

func checkBaseDir(path string) (string, error) {
	absolute, err := ExpandPath(path)
	if err != nil {
		return "", Wrap(ErrConfiguration, "initialize", "resolve base directory", err)
	}
	if _, err := os.Stat(absolute); err != nil {
		return "", Wrap(ErrConfiguration, "initialize",
			fmt.Sprintf("base data directory does not exist: %q", absolute), err)
	}
	return absolute, nil
}
