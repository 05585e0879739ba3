package models

import (
	"math"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf(t *testing.T) {
	tests := []struct {
		cell     Cell
		expected Value
	}{
		{Cell{Value: "1994", NumericValue: Number(1994)}, NumberValue(1994)},
		{Cell{Value: "TRUE"}, BoolValue(true)},
		{Cell{Value: "FALSE"}, BoolValue(false)},
		{Cell{Value: "True"}, StringValue("True")},
		{Cell{Value: "text"}, StringValue("text")},
		{Cell{}, Value{}},
	}

	for _, tt := range tests {
		result := ValueOf(tt.cell)
		if result != tt.expected {
			t.Errorf("ValueOf(%+v) = %+v, expected %+v", tt.cell, result, tt.expected)
		}
	}
}

func TestValueKey(t *testing.T) {
	assert.Equal(t, "1994", NumberValue(1994).Key())
	assert.Equal(t, "0.5", NumberValue(0.5).Key())
	assert.Equal(t, "true", BoolValue(true).Key())
	assert.Equal(t, "x", StringValue("x").Key())
	assert.Equal(t, "undefined", Value{}.Key())
}

func TestValueMarshalJSON(t *testing.T) {
	b, err := json.Marshal([]Value{NumberValue(1.5), BoolValue(false), StringValue("a"), {}, NumberValue(math.NaN())})
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5,false,"a",null,null]`, string(b))
}

func TestObjectKeepsInsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("zeta", StringValue("z"))
	obj.Set("alpha", StringValue("a"))
	obj.Set("zeta", StringValue("z2"))

	b, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"z2","alpha":"a"}`, string(b))
	assert.Equal(t, []string{"zeta", "alpha"}, obj.Keys())
}

func TestObjectSetPath(t *testing.T) {
	obj := NewObject()
	obj.SetPath([]string{"address", "city"}, StringValue("Lisbon"))
	obj.SetPath([]string{"address", "zip"}, NumberValue(1000))
	obj.SetPath([]string{"name"}, Value{})
	obj.SetPath(nil, StringValue("ignored"))

	b, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"address":{"city":"Lisbon","zip":1000}}`, string(b))
	assert.Equal(t, 2, obj.Len(), "absent leaves are kept but not encoded")
}

func TestResultMarshalJSON(t *testing.T) {
	b, err := json.Marshal(Result{})
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(b))

	b, err = json.Marshal(Result{Records: []Record{{List: []Value{StringValue("a")}}, {List: []Value{}}}})
	require.NoError(t, err)
	assert.Equal(t, `[["a"],[]]`, string(b))
}
