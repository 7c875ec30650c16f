package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"neuropath/internal/cfgvars"
)

//go:embed sample_config.toml
var sampleConfig string

// overridesFile mirrors the TOML overrides schema. Initialize decodes the
// file on top of the current entry values, so absent keys keep the built-in
// table's values.
type overridesFile struct {
	Identifier string `toml:"identifier"`
	Paths      struct {
		DicomRoot       string `toml:"dicom_root"`
		SpectroTemplate string `toml:"spectro_template"`
		DcmPattern      string `toml:"dcm_pattern"`
	} `toml:"paths"`
	FMRI struct {
		TRsPerBlock    int     `toml:"trs_per_block"`
		BlockThreshold float64 `toml:"block_threshold"`
	} `toml:"fmri"`
	Dicominfo struct {
		TSVName        string   `toml:"tsv_name"`
		ExcludeScanIDs []string `toml:"exclude_scan_ids"`
	} `toml:"dicominfo"`
}

// DefaultOverridesPath returns the user-level overrides file location.
func DefaultOverridesPath() (string, error) {
	return ExpandPath("~/.config/neuropath/neuropath.toml")
}

// ResolveOverridesPath locates the overrides file. An explicit path wins;
// otherwise the user config file is preferred over a project-local
// neuropath.toml. The boolean reports whether the file exists.
func ResolveOverridesPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat overrides file: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultOverridesPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("neuropath.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// applyOverrides decodes the overrides file, when one resolves, on top of
// the entry values and returns the adjusted list.
func applyOverrides(entries []cfgvars.Entry, path string) ([]cfgvars.Entry, error) {
	resolved, exists, err := ResolveOverridesPath(path)
	if err != nil {
		return nil, Wrap(ErrConfiguration, "overrides", "resolve overrides path", err)
	}
	if !exists {
		return entries, nil
	}

	overrides := overridesFromEntries(entries)
	file, err := os.Open(resolved)
	if err != nil {
		return nil, Wrap(ErrConfiguration, "overrides",
			fmt.Sprintf("open overrides file %q", resolved), err)
	}
	defer file.Close()
	if err := toml.NewDecoder(file).Decode(&overrides); err != nil {
		return nil, Wrap(ErrConfiguration, "overrides",
			fmt.Sprintf("parse overrides file %q", resolved), err)
	}
	return overrides.mergeInto(entries), nil
}

func overridesFromEntries(entries []cfgvars.Entry) overridesFile {
	var out overridesFile
	for _, entry := range entries {
		switch entry.Name {
		case cfgvars.KeyIdentifier:
			out.Identifier, _ = entry.Value.(string)
		case cfgvars.KeyDicomRootPath:
			out.Paths.DicomRoot, _ = entry.Value.(string)
		case cfgvars.KeySpectroTemplate:
			out.Paths.SpectroTemplate, _ = entry.Value.(string)
		case cfgvars.KeyDcmPattern:
			out.Paths.DcmPattern, _ = entry.Value.(string)
		case cfgvars.KeyNumTRsOneBlock:
			out.FMRI.TRsPerBlock, _ = entry.Value.(int)
		case cfgvars.KeyFMRIBlockThreshold:
			out.FMRI.BlockThreshold, _ = entry.Value.(float64)
		case cfgvars.KeyDicominfoTSVName:
			out.Dicominfo.TSVName, _ = entry.Value.(string)
		case cfgvars.KeyExcludeScanIDs:
			out.Dicominfo.ExcludeScanIDs, _ = entry.Value.([]string)
		}
	}
	return out
}

func (o overridesFile) mergeInto(entries []cfgvars.Entry) []cfgvars.Entry {
	out := make([]cfgvars.Entry, len(entries))
	copy(out, entries)
	for i, entry := range out {
		switch entry.Name {
		case cfgvars.KeyIdentifier:
			out[i].Value = o.Identifier
		case cfgvars.KeyDicomRootPath:
			out[i].Value = o.Paths.DicomRoot
		case cfgvars.KeySpectroTemplate:
			out[i].Value = o.Paths.SpectroTemplate
		case cfgvars.KeyDcmPattern:
			out[i].Value = o.Paths.DcmPattern
		case cfgvars.KeyNumTRsOneBlock:
			out[i].Value = o.FMRI.TRsPerBlock
		case cfgvars.KeyFMRIBlockThreshold:
			out[i].Value = o.FMRI.BlockThreshold
		case cfgvars.KeyDicominfoTSVName:
			out[i].Value = o.Dicominfo.TSVName
		case cfgvars.KeyExcludeScanIDs:
			out[i].Value = o.Dicominfo.ExcludeScanIDs
		}
	}
	return out
}

// CreateSample writes the annotated sample overrides file.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create overrides directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample overrides: %w", err)
	}
	return nil
}
