package internal

import (
	"collection-sandbox/util"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// MirrorMap maps strings to strings. Entries added through Add or Reset are
// keyed by the reversal of their value; UppercaseKeys deliberately breaks that
// relationship and nothing restores it.
//
// Operations that depend on iteration order (RemoveValue, UpperKeys and
// UppercaseKeys on colliding keys) follow Go's map order, which is not
// deterministic.
//
// A MirrorMap is not safe for concurrent use.
type MirrorMap struct {
	entries map[string]string
}

func NewMirrorMap() *MirrorMap {
	return &MirrorMap{entries: map[string]string{}}
}

func (m *MirrorMap) Len() int {
	return len(m.entries)
}

func (m *MirrorMap) Get(key string) (string, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Entries returns a copy of the underlying map.
func (m *MirrorMap) Entries() map[string]string {
	return maps.Clone(m.entries)
}

func (m *MirrorMap) SortedValues() []string {
	values := make([]string, 0, len(m.entries))
	for _, v := range m.entries {
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}

func (m *MirrorMap) KeysDescending() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int { return strings.Compare(b, a) })
	return keys
}

// SmallestKey returns the lexicographically smallest key. ok is false when
// the map is empty.
func (m *MirrorMap) SmallestKey() (key string, ok bool) {
	for k := range m.entries {
		if !ok || k < key {
			key, ok = k, true
		}
	}
	return key, ok
}

// LargestValue returns the lexicographically largest value. ok is false when
// the map is empty.
func (m *MirrorMap) LargestValue() (value string, ok bool) {
	for _, v := range m.entries {
		if !ok || v > value {
			value, ok = v, true
		}
	}
	return value, ok
}

// UpperKeys returns every key in upper case, in map iteration order. The map
// itself is not changed.
func (m *MirrorMap) UpperKeys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, strings.ToUpper(k))
	}
	return keys
}

func (m *MirrorMap) DistinctValues() int {
	seen := make(map[string]struct{}, len(m.entries))
	for _, v := range m.entries {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// Add stores s under its reversal, replacing any entry already there.
func (m *MirrorMap) Add(s string) {
	m.entries[util.Reverse(s)] = s
}

func (m *MirrorMap) RemoveKey(key string) {
	delete(m.entries, key)
}

// RemoveValue deletes the first entry found holding value. Other entries with
// the same value are kept.
func (m *MirrorMap) RemoveValue(value string) {
	for k, v := range m.entries {
		if v == value {
			delete(m.entries, k)
			return
		}
	}
}

// Reset replaces every entry with the mirror entries of values, in order, so
// later values win when two share a reversal. Nothing changes on error.
func (m *MirrorMap) Reset(values []any) error {
	texts, err := util.MapErr(values, Stringify)
	if err != nil {
		return fmt.Errorf("failed to reset mirror map: %w", err)
	}

	next := make(map[string]string, len(texts))
	for _, s := range texts {
		next[util.Reverse(s)] = s
	}
	m.entries = next
	return nil
}

// UppercaseKeys upper-cases every key. Keys that collide once upper-cased keep
// whichever value was written last, which depends on map iteration order.
func (m *MirrorMap) UppercaseKeys() {
	next := make(map[string]string, len(m.entries))
	for k, v := range m.entries {
		next[strings.ToUpper(k)] = v
	}
	m.entries = next
}

// ContainsValues reports whether every candidate is one of the values. An
// empty candidate list is always contained.
func (m *MirrorMap) ContainsValues(candidates []string) bool {
	values := make(map[string]struct{}, len(m.entries))
	for _, v := range m.entries {
		values[v] = struct{}{}
	}
	for _, c := range candidates {
		if _, ok := values[c]; !ok {
			return false
		}
	}
	return true
}
