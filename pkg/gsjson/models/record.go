package models

import (
	json "github.com/goccy/go-json"
)

// Record is one output row: a named object, or a positional list in
// list-only mode. Exactly one of the two is set.
type Record struct {
	Object *Object
	List   []Value
}

// Field returns the top-level entry stored under name (absent for lists).
func (r Record) Field(name string) interface{} {
	if r.Object == nil {
		return Value{}
	}
	val, ok := r.Object.Get(name)
	if !ok {
		return Value{}
	}
	return val
}

// MarshalJSON implements json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.Object != nil {
		return r.Object.MarshalJSON()
	}
	if r.List == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.List)
}

// Result is the converted content of one worksheet: either an ordered list of
// records or, when hashed, an object keyed by a chosen field.
type Result struct {
	Records []Record
	Hash    *Object
}

// Len returns the number of records in the result.
func (r Result) Len() int {
	if r.Hash != nil {
		return r.Hash.Len()
	}
	return len(r.Records)
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Hash != nil {
		return r.Hash.MarshalJSON()
	}
	if r.Records == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.Records)
}
