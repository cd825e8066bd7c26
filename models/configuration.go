package models

// Configuration is the content of a site configuration file together with
// the directory it belongs to. Relative paths found in the content are
// resolved against Dir.
//
// Configuration is a value type; none of its methods modify the receiver.
type Configuration struct {
	values *Map
	dir    string
}

// NewConfiguration pairs values with their base directory. A nil values map
// is treated as empty.
func NewConfiguration(values *Map, dir string) Configuration {
	if values == nil {
		values = NewMap()
	}
	return Configuration{values: values, dir: dir}
}

// Dir returns the base directory.
func (c Configuration) Dir() string {
	return c.dir
}

// Values returns the underlying ordered mapping.
func (c Configuration) Values() *Map {
	if c.values == nil {
		return NewMap()
	}
	return c.values
}

// Get returns the top-level value stored under key.
func (c Configuration) Get(key string) (any, bool) {
	return c.values.Get(key)
}

// Without returns a copy of c without the given top-level key.
func (c Configuration) Without(key string) Configuration {
	return NewConfiguration(c.values.Without(key), c.dir)
}

// Merge returns c overlaid with other: other's keys win, keys only present in
// c are preserved. The result keeps c's base directory.
func (c Configuration) Merge(other Configuration) Configuration {
	return NewConfiguration(c.values.Merge(other.values), c.dir)
}
