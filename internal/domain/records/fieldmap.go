package records

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
)

// Value is an entry in a FieldMap: a string leaf, a nested *FieldMap,
// or a []Value for repeated elements.
type Value any

// TextKey holds the character content of an element that also carries
// attributes or children.
const TextKey = "#text"

// AttrPrefix marks attribute keys inside a FieldMap.
const AttrPrefix = "@"

// FieldMap is an insertion-ordered key/value mapping used to carry decoded
// wire payloads without a fixed schema. Unknown fields pass through the
// store and the persistence layer untouched.
type FieldMap struct {
	keys   []string
	values map[string]Value
}

// NewFieldMap creates an empty FieldMap.
func NewFieldMap() *FieldMap {
	return &FieldMap{values: make(map[string]Value)}
}

// Len returns the number of entries. Safe on a nil map.
func (m *FieldMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *FieldMap) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the value stored under key.
func (m *FieldMap) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Set stores a value. New keys are appended; existing keys keep their
// position.
func (m *FieldMap) Set(key string, v Value) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// String returns the string stored under key, or "" when the key is absent
// or holds a non-string value.
func (m *FieldMap) String(key string) string {
	return m.StringOr(key, "")
}

// StringOr returns the string stored under key, or fallback when the key is
// absent or holds a non-string value.
func (m *FieldMap) StringOr(key, fallback string) string {
	v, ok := m.Get(key)
	if !ok {
		return fallback
	}
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	return s
}

// Map returns the nested FieldMap stored under key, or nil when the key is
// absent or holds a non-map value. Safe to chain on a nil receiver.
func (m *FieldMap) Map(key string) *FieldMap {
	v, ok := m.Get(key)
	if !ok {
		return nil
	}
	nested, _ := v.(*FieldMap)
	return nested
}

// List returns the repeated values stored under key, or nil when the key is
// absent or holds a single value.
func (m *FieldMap) List(key string) []Value {
	v, ok := m.Get(key)
	if !ok {
		return nil
	}
	list, _ := v.([]Value)
	return list
}

// Text returns the character content stored under key: the value itself for
// a string leaf, or the "#text" entry for an element that also carries
// attributes.
func (m *FieldMap) Text(key string) string {
	v, ok := m.Get(key)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case *FieldMap:
		return t.String(TextKey)
	default:
		return ""
	}
}

// All iterates entries in insertion order.
func (m *FieldMap) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// MarshalJSON serializes the map as a JSON object preserving key order.
func (m *FieldMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		if err := marshalValue(&buf, m.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalValue(buf *bytes.Buffer, v Value) error {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case string:
		b, err := json.Marshal(t)
		if err != nil {
			return err
		}
		buf.Write(b)
	case *FieldMap:
		b, err := t.MarshalJSON()
		if err != nil {
			return err
		}
		buf.Write(b)
	case []Value:
		buf.WriteByte('[')
		for i, item := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := marshalValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return fmt.Errorf("unsupported field value type %T", v)
	}
	return nil
}

// UnmarshalJSON rebuilds the map from a JSON object, keeping the document's
// key order.
func (m *FieldMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = FieldMap{values: make(map[string]Value)}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	parsed, err := decodeObject(dec)
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}

func decodeObject(dec *json.Decoder) (*FieldMap, error) {
	out := NewFieldMap()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		out.Set(key, val)
	}
	// consume closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			var list []Value
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				list = append(list, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return list, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return fmt.Sprintf("%t", t), nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}
