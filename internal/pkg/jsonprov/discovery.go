package jsonprov

// Constant is a single named string constant exposed by a property
// definition source. Reading its value may fail.
type Constant interface {
	Value() (string, error)
}

// PropertySource enumerates the option-name constants one side of the
// engine understands
type PropertySource interface {
	Constants() []Constant
}

// staticConstant is a constant whose value never fails to read
type staticConstant string

func (c staticConstant) Value() (string, error) {
	return string(c), nil
}

// StaticSource is a property source declared as a plain list of names
type StaticSource []string

// Constants implements PropertySource
func (s StaticSource) Constants() []Constant {
	out := make([]Constant, 0, len(s))
	for _, name := range s {
		out = append(out, staticConstant(name))
	}
	return out
}

// DiscoverPropertyNames builds the set of recognized property names from a
// definition source. A constant that fails to read is skipped; the name is
// simply not recognized, which keeps the option out of the defaults rather
// than aborting discovery of the rest.
func DiscoverPropertyNames(src PropertySource) NameSet {
	names := make(NameSet)
	if src == nil {
		return names
	}
	for _, c := range src.Constants() {
		value, err := c.Value()
		if err != nil {
			continue
		}
		names[value] = struct{}{}
	}
	return names
}
