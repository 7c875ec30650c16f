package cfgvars

import (
	"strings"

	"golang.org/x/text/cases"
)

// Rule classifies a scan into a modality by inspecting the DICOM series
// description. Rules are mutually exclusive: Classify applies them in
// declaration order and returns the first match.
type Rule struct {
	Modality string
	Match    func(seriesDescription string) bool
}

// containsFold reports whether s contains token ignoring case. Casers are
// stateful, so each call gets its own.
func containsFold(s, token string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(token))
}

// Modalities returns the ordered modality classification rules.
//
// Sequence naming on the scanner is not fully consistent, so most tokens
// match case-insensitively; tokens that disambiguate sequences by exact
// vendor spelling (UNI, SBRef, resolve_COR) stay case-sensitive.
func Modalities() []Rule {
	return []Rule{
		{Modality: "T1w", Match: func(s string) bool {
			return containsFold(s, "t1") && strings.Contains(s, "UNI") && strings.Contains(s, "0.75")
		}},
		{Modality: "T2w", Match: func(s string) bool {
			return containsFold(s, "t2")
		}},
		{Modality: "fMRI", Match: func(s string) bool {
			return containsFold(s, "face") && containsFold(s, "ap") && !strings.Contains(s, "SBRef")
		}},
		{Modality: "DWI", Match: func(s string) bool {
			return strings.Contains(s, "resolve_COR")
		}},
		{Modality: "DTI", Match: func(s string) bool {
			return containsFold(s, "dti")
		}},
	}
}

// Classify returns the modality for a series description, or false when no
// rule matches.
func Classify(seriesDescription string) (string, bool) {
	for _, rule := range Modalities() {
		if rule.Match(seriesDescription) {
			return rule.Modality, true
		}
	}
	return "", false
}
