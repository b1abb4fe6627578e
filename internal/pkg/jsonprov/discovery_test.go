package jsonprov

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// failingConstant always fails to read
type failingConstant struct{}

func (failingConstant) Value() (string, error) {
	return "", errors.New("unreadable constant")
}

// mixedSource enumerates a fixed list of constants, readable or not
type mixedSource []Constant

func (s mixedSource) Constants() []Constant {
	return s
}

func TestDiscoverPropertyNames_Static(t *testing.T) {
	names := DiscoverPropertyNames(StaticSource{"compact-json", "indent"})

	assert.Len(t, names, 2)
	assert.True(t, names.Has("compact-json"))
	assert.True(t, names.Has("indent"))
	assert.False(t, names.Has("other"))
}

func TestDiscoverPropertyNames_SkipsUnreadableConstant(t *testing.T) {
	src := mixedSource{
		staticConstant("first"),
		failingConstant{},
		staticConstant("third"),
	}

	names := DiscoverPropertyNames(src)

	// The unreadable constant is skipped; the other two are still discovered
	assert.Len(t, names, 2)
	assert.True(t, names.Has("first"))
	assert.True(t, names.Has("third"))
}

func TestDiscoverPropertyNames_NilSource(t *testing.T) {
	names := DiscoverPropertyNames(nil)
	assert.Empty(t, names)
}

func TestDiscoverPropertyNames_ExactValueEquality(t *testing.T) {
	names := DiscoverPropertyNames(StaticSource{"Indent"})

	// No normalization: equality is by exact string value
	assert.True(t, names.Has("Indent"))
	assert.False(t, names.Has("indent"))
}
