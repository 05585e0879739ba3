package models

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Object is a mapping that remembers key insertion order. Entries hold
// either a Value, a nested *Object or a Record.
type Object struct {
	keys   []string
	values map[string]interface{}
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{values: make(map[string]interface{})}
}

// Set stores val under key. Overwriting keeps the key's original position.
func (o *Object) Set(key string, val interface{}) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = val
}

// Get returns the entry stored under key.
func (o *Object) Get(key string) (interface{}, bool) {
	val, ok := o.values[key]
	return val, ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// SetPath writes val at the nested location described by path, creating
// intermediate objects as needed. A non-object found on the way is replaced
// by a fresh object, and the final segment always takes val.
func (o *Object) SetPath(path []string, val interface{}) {
	if len(path) == 0 {
		return
	}
	node := o
	for _, seg := range path[:len(path)-1] {
		child, ok := node.values[seg].(*Object)
		if !ok {
			child = NewObject()
			node.Set(seg, child)
		}
		node = child
	}
	node.Set(path[len(path)-1], val)
}

// MarshalJSON implements json.Marshaler, preserving key order. Entries
// holding an absent Value are left out.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, key := range o.keys {
		if v, ok := o.values[key].(Value); ok && v.IsAbsent() {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
