// SPDX-License-Identifier: MIT
package vars

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Var is one generated variable
type Var struct {
	Key   string
	Value string
}

// Map is a flat, insertion-ordered map of generated keys to values
type Map struct {
	keys   []string
	values map[string]string
}

// NewMap creates an empty map
func NewMap() *Map {
	return &Map{values: make(map[string]string)}
}

// Set stores a value. Re-setting a key keeps its original position.
func (m *Map) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key
func (m *Map) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[key]
	return v, ok
}

// Keys returns keys in insertion order
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Vars returns the entries in order
func (m *Map) Vars() []Var {
	out := make([]Var, 0, m.Len())
	for _, k := range m.Keys() {
		out = append(out, Var{Key: k, Value: m.values[k]})
	}
	return out
}

// Merge returns a new map with other's entries overlaid on m
func (m *Map) Merge(other *Map) *Map {
	merged := NewMap()
	for _, v := range m.Vars() {
		merged.Set(v.Key, v.Value)
	}
	for _, v := range other.Vars() {
		merged.Set(v.Key, v.Value)
	}
	return merged
}

// MarshalJSON writes the map as an ordered JSON object without HTML escaping
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, v := range m.Vars() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(v.Key); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
		buf.WriteByte(':')
		if err := enc.Encode(v.Value); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalIndent is MarshalJSON with one entry per line
func (m *Map) MarshalIndent(prefix, indent string) ([]byte, error) {
	raw, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, prefix, indent); err != nil {
		return nil, fmt.Errorf("failed to indent variables: %w", err)
	}
	return buf.Bytes(), nil
}
