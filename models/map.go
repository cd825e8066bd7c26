package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MapEntry is a single key/value pair of a [Map].
type MapEntry struct {
	Key   string
	Value any
}

// Map is an ordered mapping from string keys to configuration values.
//
// Values are plain scalars (string, bool, int, float64, nil), [Symbol],
// [Date], time.Time, nested *Map or []any. A Map is never modified after
// construction: every operation that changes content returns a new Map.
// The nil *Map behaves like an empty one.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{values: map[string]any{}}
}

// NewMapFromEntries builds a Map preserving the order of entries. A repeated
// key keeps its first position and takes the last value.
func NewMapFromEntries(entries []MapEntry) *Map {
	m := &Map{
		keys:   make([]string, 0, len(entries)),
		values: make(map[string]any, len(entries)),
	}
	for _, e := range entries {
		m.set(e.Key, e.Value)
	}
	return m
}

// MapOf builds a Map from alternating keys and values:
//
//	models.MapOf("title", "Mine", "author", "Team")
//
// It panics on an odd number of arguments or a non-string key.
func MapOf(pairs ...any) *Map {
	if len(pairs)%2 != 0 {
		panic("models.MapOf: odd number of arguments")
	}

	entries := make([]MapEntry, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("models.MapOf: key %v is not a string", pairs[i]))
		}
		entries = append(entries, MapEntry{Key: key, Value: pairs[i+1]})
	}
	return NewMapFromEntries(entries)
}

func (m *Map) set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Entries returns the key/value pairs in order.
func (m *Map) Entries() []MapEntry {
	entries := make([]MapEntry, 0, m.Len())
	for _, k := range m.Keys() {
		entries = append(entries, MapEntry{Key: k, Value: m.values[k]})
	}
	return entries
}

// Without returns a copy of m with the given keys removed.
func (m *Map) Without(keys ...string) *Map {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}

	entries := make([]MapEntry, 0, m.Len())
	for _, e := range m.Entries() {
		if _, ok := drop[e.Key]; ok {
			continue
		}
		entries = append(entries, e)
	}
	return NewMapFromEntries(entries)
}

// Merge returns a new Map holding every key of m and of other. Values from
// other win for keys present in both. Keys of m keep their position; keys
// only present in other are appended in other's order.
//
// The merge is shallow: a nested *Map in other replaces the one in m.
func (m *Map) Merge(other *Map) *Map {
	merged := NewMapFromEntries(m.Entries())
	for _, e := range other.Entries() {
		merged.set(e.Key, e.Value)
	}
	return merged
}

// ToPlain converts m into a map[string]any, recursively converting nested
// maps and sequences. Key order is lost.
func (m *Map) ToPlain() map[string]any {
	out := make(map[string]any, m.Len())
	for _, e := range m.Entries() {
		out[e.Key] = plainValue(e.Value)
	}
	return out
}

func plainValue(v any) any {
	switch val := v.(type) {
	case *Map:
		return val.ToPlain()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = plainValue(item)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON encodes m as a JSON object preserving key order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("error encoding value of key %q: %w", e.Key, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes m as a YAML mapping preserving key order.
func (m *Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range m.Entries() {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}

		valueNode := &yaml.Node{}
		if err := valueNode.Encode(e.Value); err != nil {
			return nil, fmt.Errorf("error encoding value of key %q: %w", e.Key, err)
		}

		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}
