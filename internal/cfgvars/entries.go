package cfgvars

// Kind distinguishes relative path fragments from passthrough constants.
type Kind uint8

const (
	// KindRelativePath marks a fragment that is joined onto the base data
	// directory during initialization.
	KindRelativePath Kind = iota + 1
	// KindConstant marks a value that is published unchanged.
	KindConstant
)

// String returns the human-readable kind label used in inspection output.
func (k Kind) String() string {
	switch k {
	case KindRelativePath:
		return "relative path"
	case KindConstant:
		return "constant"
	default:
		return "unknown"
	}
}

// Entry is a single named configuration variable.
type Entry struct {
	Name  string
	Kind  Kind
	Value any
}

// RelPath declares a relative path fragment entry.
func RelPath(name, fragment string) Entry {
	return Entry{Name: name, Kind: KindRelativePath, Value: fragment}
}

// Constant declares a passthrough constant entry.
func Constant(name string, value any) Entry {
	return Entry{Name: name, Kind: KindConstant, Value: value}
}

// Source enumerates configuration entries for the resolver.
type Source interface {
	Entries() []Entry
}

// Static is a fixed entry list satisfying Source.
type Static []Entry

// Entries returns a copy of the list so callers cannot mutate the source.
func (s Static) Entries() []Entry {
	out := make([]Entry, len(s))
	copy(out, s)
	return out
}
