package scalar

import "sort"

// TypeSpec is an ordered mapping from parameter keys to type tags.
//
// A tag is either nil (skip the key) or a string naming a kind. Tags are kept
// in their raw form so that a misused spec is reported at validation time.
type TypeSpec struct {
	entries []specEntry
	index   map[Key]int
}

type specEntry struct {
	key Key
	tag any
}

// NewTypeSpec returns an empty spec.
func NewTypeSpec() *TypeSpec {
	return &TypeSpec{index: make(map[Key]int)}
}

// Set assigns tag to key. An existing key keeps its position.
func (s *TypeSpec) Set(key Key, tag any) *TypeSpec {
	if s.index == nil {
		s.index = make(map[Key]int)
	}
	if i, ok := s.index[key]; ok {
		s.entries[i].tag = tag
		return s
	}
	s.index[key] = len(s.entries)
	s.entries = append(s.entries, specEntry{key: key, tag: tag})
	return s
}

// Field is shorthand for Set(Name(name), tag).
func (s *TypeSpec) Field(name string, tag any) *TypeSpec {
	return s.Set(Name(name), tag)
}

// Tag returns the raw tag for key and whether the key is declared.
func (s *TypeSpec) Tag(key Key) (any, bool) {
	if s == nil {
		return nil, false
	}
	i, ok := s.index[key]
	if !ok {
		return nil, false
	}
	return s.entries[i].tag, true
}

// Keys returns the declared keys in order.
func (s *TypeSpec) Keys() []Key {
	if s == nil {
		return nil
	}
	keys := make([]Key, len(s.entries))
	for i, e := range s.entries {
		keys[i] = e.key
	}
	return keys
}

// Len returns the number of declared keys.
func (s *TypeSpec) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Positional builds a spec over argument indexes, matching Args.
func Positional(tags ...any) *TypeSpec {
	s := NewTypeSpec()
	for i, tag := range tags {
		s.Set(Index(i), tag)
	}
	return s
}

// SpecFromMap builds a spec from a name-keyed map. Keys are sorted so the
// evaluation order is stable.
func SpecFromMap(m map[string]any) *TypeSpec {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	s := NewTypeSpec()
	for _, name := range names {
		s.Set(Name(name), m[name])
	}
	return s
}
