package config

import (
	"fmt"
	"strconv"

	"neuropath/internal/cfgvars"
)

// VarInfo is one row of the inspection dump.
type VarInfo struct {
	Name  string
	Kind  cfgvars.Kind
	Value any
}

// Describe returns the resolved table as sorted rows, optionally filtered to
// the given names. Unknown names appear with a nil value so a typo is
// visible in the dump instead of silently dropped.
//
// Called before Initialize it logs a warning and returns no rows.
func (r *Resolver) Describe(names ...string) []VarInfo {
	snapshot := r.current.Load()
	if snapshot == nil {
		r.logger.Warn("configuration not initialized; nothing to describe",
			"hint", "call Initialize with a base directory or keyword")
		return nil
	}

	if len(names) == 0 {
		names = snapshot.Names()
	}
	rows := make([]VarInfo, 0, len(names))
	for _, name := range names {
		value, ok := snapshot.Value(name)
		if !ok {
			rows = append(rows, VarInfo{Name: name})
			continue
		}
		rows = append(rows, VarInfo{Name: name, Kind: snapshot.kinds[name], Value: value})
	}
	return rows
}

// FormatValue renders an inspection value for display.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "<not found>"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []cfgvars.Rule:
		return fmt.Sprintf("%d modality rules", len(v))
	case []string:
		if len(v) == 0 {
			return "[]"
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
