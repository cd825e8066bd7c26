package siteconfig

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-site-config/models"
)

// YAML tags accepted in configuration files. Every node of a parsed file must
// carry one of these tags; anything else is rejected with [ErrDisallowedType]
// instead of being handed to a generic decoder.
const (
	tagNull      = "!!null"
	tagBool      = "!!bool"
	tagInt       = "!!int"
	tagFloat     = "!!float"
	tagStr       = "!!str"
	tagTimestamp = "!!timestamp"
	tagMap       = "!!map"
	tagSeq       = "!!seq"
	tagMerge     = "!!merge"
)

var symbolTags = map[string]struct{}{
	models.SymbolTag: {},
	"!ruby/symbol":   {},
	"!ruby/sym":      {},
}

type yamlFileReader struct{}

// NewFileReader returns a [FileReader] for YAML configuration files.
func NewFileReader() FileReader {
	return &yamlFileReader{}
}

func (r *yamlFileReader) ReadFile(path string) (*models.Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newConfigFileError(path, fmt.Errorf("error reading configuration file: %w", err))
	}

	values, err := Parse(data)
	if err != nil {
		return nil, newConfigFileError(path, err)
	}

	return values, nil
}

// Parse decodes YAML content into an ordered mapping, accepting only plain
// scalars, dates, timestamps, symbols, mappings and sequences. An empty
// document yields an empty mapping.
func Parse(data []byte) (*models.Map, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return models.NewMap(), nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.ShortTag() == tagNull {
		return models.NewMap(), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top-level value must be a mapping", ErrParse, root.Line)
	}

	value, err := decodeNode(root)
	if err != nil {
		return nil, err
	}

	return value.(*models.Map), nil
}

func decodeNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return nil, fmt.Errorf("%w: line %d: aliases are not allowed", ErrParse, n.Line)
	case yaml.MappingNode:
		if tag := n.ShortTag(); tag != tagMap {
			return nil, disallowed(n, tag)
		}
		return decodeMapping(n)
	case yaml.SequenceNode:
		if tag := n.ShortTag(); tag != tagSeq {
			return nil, disallowed(n, tag)
		}
		return decodeSequence(n)
	case yaml.ScalarNode:
		return decodeScalar(n)
	default:
		return nil, fmt.Errorf("%w: line %d: unexpected node", ErrParse, n.Line)
	}
}

func decodeMapping(n *yaml.Node) (*models.Map, error) {
	entries := make([]models.MapEntry, 0, len(n.Content)/2)
	seen := make(map[string]struct{}, len(n.Content)/2)

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valueNode := n.Content[i], n.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: mapping keys must be scalars", ErrParse, keyNode.Line)
		}
		if tag := keyNode.ShortTag(); tag == tagMerge {
			return nil, disallowed(keyNode, tag)
		}

		// Keys become strings, so `1` and "1" name the same entry.
		key := keyNode.Value
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: line %d: mapping key %q already defined", ErrParse, keyNode.Line, key)
		}
		seen[key] = struct{}{}

		value, err := decodeNode(valueNode)
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.MapEntry{Key: key, Value: value})
	}

	return models.NewMapFromEntries(entries), nil
}

func decodeSequence(n *yaml.Node) ([]any, error) {
	items := make([]any, 0, len(n.Content))
	for _, item := range n.Content {
		value, err := decodeNode(item)
		if err != nil {
			return nil, err
		}
		items = append(items, value)
	}
	return items, nil
}

func decodeScalar(n *yaml.Node) (any, error) {
	tag := n.ShortTag()
	if _, ok := symbolTags[tag]; ok {
		return models.Symbol(strings.TrimPrefix(n.Value, ":")), nil
	}

	switch tag {
	case tagNull:
		return nil, nil
	case tagStr:
		if n.Style == 0 && isSymbolLiteral(n.Value) {
			return models.Symbol(unquote(n.Value[1:])), nil
		}
		return n.Value, nil
	case tagBool, tagInt, tagFloat:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrParse, n.Line, err)
		}
		if f, ok := v.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
			return nil, fmt.Errorf("%w: line %d: non-finite float %s", ErrDisallowedType, n.Line, n.Value)
		}
		return v, nil
	case tagTimestamp:
		return decodeTimestamp(n)
	default:
		return nil, disallowed(n, tag)
	}
}

func decodeTimestamp(n *yaml.Node) (any, error) {
	if d, err := models.ParseDate(n.Value); err == nil {
		return d, nil
	}

	var t time.Time
	if err := n.Decode(&t); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrParse, n.Line, err)
	}
	return t, nil
}

// isSymbolLiteral reports whether a plain scalar is written as `:name`.
func isSymbolLiteral(s string) bool {
	return len(s) > 1 && s[0] == ':'
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func disallowed(n *yaml.Node, tag string) error {
	return fmt.Errorf("%w: line %d: tag %s is not permitted", ErrDisallowedType, n.Line, tag)
}
