package jsonprov

import "reflect"

// excludedTypes holds the closed set of scalar identities the provider
// declines: the wire format encodes these as bare JSON values rather than
// objects, so they are left to other handlers. Matching is by exact type
// identity; a named type with one of these as its underlying type is not
// excluded.
var excludedTypes = buildExcludedTypes()

func buildExcludedTypes() map[reflect.Type]struct{} {
	set := make(map[reflect.Type]struct{})
	for _, v := range []any{
		string(""), new(string),
		bool(false), new(bool),
		int(0), new(int),
		int16(0), new(int16),
		int32(0), new(int32), // covers rune
		int64(0), new(int64),
		uint8(0), new(uint8), // covers byte
		float32(0), new(float32),
		float64(0), new(float64),
	} {
		set[reflect.TypeOf(v)] = struct{}{}
	}
	return set
}

// IsExcludedType reports whether t is one of the fixed scalar identities
// this provider never handles. Nil types are not excluded; the engine's own
// predicates deal with them.
func IsExcludedType(t reflect.Type) bool {
	if t == nil {
		return false
	}
	_, ok := excludedTypes[t]
	return ok
}
