package jsonprov

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExcludedType_ScalarIdentities(t *testing.T) {
	excluded := []any{
		string(""), new(string),
		bool(false), new(bool),
		int(0), new(int),
		int16(0), new(int16),
		int32(0), new(int32),
		int64(0), new(int64),
		uint8(0), new(uint8),
		float32(0), new(float32),
		float64(0), new(float64),
	}

	for _, v := range excluded {
		typ := reflect.TypeOf(v)
		assert.True(t, IsExcludedType(typ), "expected %v to be excluded", typ)
	}
}

func TestIsExcludedType_AliasesShareIdentity(t *testing.T) {
	// byte and rune are aliases, not distinct types
	assert.True(t, IsExcludedType(reflect.TypeOf(byte(0))))
	assert.True(t, IsExcludedType(reflect.TypeOf(rune(0))))
}

type celsius float64

type label string

func TestIsExcludedType_UserDefinedTypesNotExcluded(t *testing.T) {
	// Identity comparison, not underlying-type comparison: a named type
	// whose underlying type is a built-in scalar is still handled.
	assert.False(t, IsExcludedType(reflect.TypeOf(celsius(0))))
	assert.False(t, IsExcludedType(reflect.TypeOf(label(""))))
	assert.False(t, IsExcludedType(reflect.TypeOf(new(celsius))))
}

func TestIsExcludedType_StructuredTypesNotExcluded(t *testing.T) {
	type record struct {
		Name string
	}

	assert.False(t, IsExcludedType(reflect.TypeOf(record{})))
	assert.False(t, IsExcludedType(reflect.TypeOf(&record{})))
	assert.False(t, IsExcludedType(reflect.TypeOf([]string{})))
	assert.False(t, IsExcludedType(reflect.TypeOf(map[string]any{})))
	assert.False(t, IsExcludedType(reflect.TypeOf(uint(0))))
	assert.False(t, IsExcludedType(nil))
}
