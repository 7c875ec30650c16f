package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"neuropath/internal/cfgvars"
	"neuropath/internal/config"
)

func TestInitializeAppliesOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	base := t.TempDir()
	overridesPath := filepath.Join(t.TempDir(), "neuropath.toml")
	content := strings.Join([]string{
		`identifier = "PROJECT9"`,
		``,
		`[paths]`,
		`dicom_root = "incoming/dicom"`,
		``,
		`[fmri]`,
		`trs_per_block = 500`,
	}, "\n")
	if err := os.WriteFile(overridesPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}

	resolver := config.New(nil, nil)
	err := resolver.Initialize(config.InitOptions{
		BaseDir:       base,
		OverridesPath: overridesPath,
	})
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	identifier, err := resolver.GetString(cfgvars.KeyIdentifier)
	if err != nil {
		t.Fatalf("GetString(IDENTIFIER): %v", err)
	}
	if identifier != "PROJECT9" {
		t.Fatalf("IDENTIFIER = %q, want PROJECT9", identifier)
	}

	dicomRoot, err := resolver.GetString(cfgvars.KeyDicomRootPath)
	if err != nil {
		t.Fatalf("GetString(DICOM_ROOT_PATH): %v", err)
	}
	if dicomRoot != filepath.Join(base, "incoming", "dicom") {
		t.Fatalf("DICOM_ROOT_PATH = %q, want override under base", dicomRoot)
	}

	trs, err := resolver.Get(cfgvars.KeyNumTRsOneBlock)
	if err != nil {
		t.Fatalf("Get(NUM_TRS_ONE_FMRI_BLOCK): %v", err)
	}
	if trs.(int) != 500 {
		t.Fatalf("NUM_TRS_ONE_FMRI_BLOCK = %v, want 500", trs)
	}

	// Keys absent from the file keep the built-in values.
	threshold, err := resolver.Get(cfgvars.KeyFMRIBlockThreshold)
	if err != nil {
		t.Fatalf("Get(FMRI_BLOCK_THRESHOLD): %v", err)
	}
	if threshold.(float64) != 0.4 {
		t.Fatalf("FMRI_BLOCK_THRESHOLD = %v, want built-in 0.4", threshold)
	}
}

func TestInitializeMissingExplicitOverridesIsSkipped(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	resolver := config.New(nil, nil)
	err := resolver.Initialize(config.InitOptions{
		BaseDir:       t.TempDir(),
		OverridesPath: filepath.Join(t.TempDir(), "absent.toml"),
	})
	if err != nil {
		t.Fatalf("Initialize with absent overrides file: %v", err)
	}
	identifier, err := resolver.GetString(cfgvars.KeyIdentifier)
	if err != nil {
		t.Fatalf("GetString(IDENTIFIER): %v", err)
	}
	if identifier != "PROJECT1" {
		t.Fatalf("IDENTIFIER = %q, want built-in PROJECT1", identifier)
	}
}

func TestInitializeMalformedOverridesFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	overridesPath := filepath.Join(t.TempDir(), "neuropath.toml")
	if err := os.WriteFile(overridesPath, []byte("not = [valid"), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}

	resolver := config.New(nil, nil)
	err := resolver.Initialize(config.InitOptions{
		BaseDir:       t.TempDir(),
		OverridesPath: overridesPath,
	})
	if !errors.Is(err, config.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration for malformed overrides, got %v", err)
	}
}

func TestResolveOverridesPathPrefersUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	userPath := filepath.Join(home, ".config", "neuropath", "neuropath.toml")
	if err := os.MkdirAll(filepath.Dir(userPath), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(userPath, []byte(""), 0o644); err != nil {
		t.Fatalf("write user config: %v", err)
	}

	resolved, exists, err := config.ResolveOverridesPath("")
	if err != nil {
		t.Fatalf("ResolveOverridesPath: %v", err)
	}
	if !exists {
		t.Fatal("expected user overrides file to be found")
	}
	if resolved != userPath {
		t.Fatalf("resolved = %q, want %q", resolved, userPath)
	}
}

func TestCreateSampleDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "{subject}") {
		t.Fatalf("sample missing the subject placeholder: %s", contents)
	}

	var decoded map[string]any
	if err := toml.Unmarshal(contents, &decoded); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if _, ok := decoded["paths"]; !ok {
		t.Fatal("sample missing [paths] table")
	}
}
