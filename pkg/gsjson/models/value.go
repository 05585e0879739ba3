package models

import (
	"math"
	"strconv"

	json "github.com/goccy/go-json"
)

// Kind is the type tag of a Value.
type Kind int

const (
	// Absent marks a cell that carries no value.
	Absent Kind = iota
	// NumberKind marks a numeric value.
	NumberKind
	// BoolKind marks a boolean value.
	BoolKind
	// StringKind marks a text value.
	StringKind
)

// Value is a typed cell value.
type Value struct {
	Kind Kind
	Num  float64
	Bool bool
	Str  string
}

// NumberValue returns a numeric Value.
func NumberValue(f float64) Value { return Value{Kind: NumberKind, Num: f} }

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value { return Value{Kind: BoolKind, Bool: b} }

// StringValue returns a text Value.
func StringValue(s string) Value { return Value{Kind: StringKind, Str: s} }

// ValueOf infers the typed value of a cell: numbers first, then the
// TRUE/FALSE literals, then any non-empty text.
func ValueOf(c Cell) Value {
	switch {
	case c.NumericValue != nil:
		return NumberValue(*c.NumericValue)
	case c.Value == "TRUE":
		return BoolValue(true)
	case c.Value == "FALSE":
		return BoolValue(false)
	case c.Value != "":
		return StringValue(c.Value)
	}
	return Value{}
}

// IsAbsent reports whether v carries no value.
func (v Value) IsAbsent() bool {
	return v.Kind == Absent
}

// Key renders v as a mapping key.
func (v Value) Key() string {
	switch v.Kind {
	case NumberKind:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case BoolKind:
		return strconv.FormatBool(v.Bool)
	case StringKind:
		return v.Str
	}
	return "undefined"
}

// Interface returns v as a plain Go value (nil when absent).
func (v Value) Interface() interface{} {
	switch v.Kind {
	case NumberKind:
		return v.Num
	case BoolKind:
		return v.Bool
	case StringKind:
		return v.Str
	}
	return nil
}

// MarshalJSON implements json.Marshaler. Absent values and non-finite
// numbers encode as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == NumberKind && (math.IsNaN(v.Num) || math.IsInf(v.Num, 0)) {
		return []byte("null"), nil
	}
	return json.Marshal(v.Interface())
}
