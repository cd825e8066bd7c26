package models

import "gopkg.in/yaml.v3"

// SymbolTag is the YAML tag used when a Symbol is written back out.
const SymbolTag = "!symbol"

// Symbol is an atomic symbolic name read from a configuration file, written
// either as a plain `:name` scalar or with an explicit symbol tag.
type Symbol string

// String returns the symbol name.
func (s Symbol) String() string {
	return string(s)
}

// MarshalText encodes the symbol as its bare name.
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

// MarshalYAML keeps the symbol tag so the value reads back as a Symbol.
func (s Symbol) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: SymbolTag, Value: string(s)}, nil
}
