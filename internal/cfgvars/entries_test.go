package cfgvars_test

import (
	"strings"
	"testing"

	"neuropath/internal/cfgvars"
)

func TestDefaultTableShape(t *testing.T) {
	entries := cfgvars.Default().Entries()
	byName := make(map[string]cfgvars.Entry, len(entries))
	for _, entry := range entries {
		if entry.Name == "" {
			t.Fatal("entry with empty name")
		}
		if _, dup := byName[entry.Name]; dup {
			t.Fatalf("duplicate entry %q", entry.Name)
		}
		byName[entry.Name] = entry
	}

	for _, name := range []string{
		cfgvars.KeyDicomRootPath,
		cfgvars.KeySpectroTemplate,
		cfgvars.KeyDcmPattern,
	} {
		entry, ok := byName[name]
		if !ok {
			t.Fatalf("missing entry %q", name)
		}
		if entry.Kind != cfgvars.KindRelativePath {
			t.Fatalf("%s: kind = %v, want relative path", name, entry.Kind)
		}
		fragment, ok := entry.Value.(string)
		if !ok {
			t.Fatalf("%s: fragment is %T, want string", name, entry.Value)
		}
		if strings.Contains(fragment, "\\") {
			t.Fatalf("%s: fragment %q must use forward slashes", name, fragment)
		}
	}

	if entry := byName[cfgvars.KeyNumTRsOneBlock]; entry.Kind != cfgvars.KindConstant {
		t.Fatalf("NUM_TRS_ONE_FMRI_BLOCK kind = %v, want constant", entry.Kind)
	}
	if threshold, ok := byName[cfgvars.KeyFMRIBlockThreshold].Value.(float64); !ok || threshold <= 0 || threshold >= 1 {
		t.Fatalf("unexpected fMRI block threshold: %v", byName[cfgvars.KeyFMRIBlockThreshold].Value)
	}
}

func TestDcmPatternKeepsSubjectPlaceholder(t *testing.T) {
	entries := cfgvars.Default().Entries()
	for _, entry := range entries {
		if entry.Name != cfgvars.KeyDcmPattern {
			continue
		}
		fragment := entry.Value.(string)
		if !strings.Contains(fragment, "{"+cfgvars.PlaceholderSubject+"}") {
			t.Fatalf("DCM_PATTERN %q must keep the {subject} placeholder", fragment)
		}
		return
	}
	t.Fatal("DCM_PATTERN entry missing")
}

func TestStaticEntriesReturnsCopy(t *testing.T) {
	source := cfgvars.Static{cfgvars.Constant("A", 1)}
	first := source.Entries()
	first[0].Name = "mutated"
	if got := source.Entries()[0].Name; got != "A" {
		t.Fatalf("source mutated through Entries copy: %q", got)
	}
}
