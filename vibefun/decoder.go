package vibefun

import (
	"fmt"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"strconv"
)

// decoder turns a YAML tree into surface nodes.
//
// Every node is a mapping with a `kind` key, and an optional `loc` key
// (`{line: 3, column: 5, offset: 40}`). Nodes without a loc take the
// location of their parent.
// Scalars are shorthands: in expression position numbers and booleans are
// literals and strings are variables, in pattern position `_` is a wildcard
type decoder struct {
	file string
}

// node is a YAML node together with where it sits in the document
type node struct {
	*yaml.Node
	path string
	loc  ast.Location
}

type yamlLocation struct {
	Line   int `yaml:"line"`
	Column int `yaml:"column"`
	Offset int `yaml:"offset"`
}

func (d *decoder) enter(raw *yaml.Node, path string, inherited ast.Location) (node, error) {
	for raw.Kind == yaml.AliasNode {
		raw = raw.Alias
	}
	n := node{Node: raw, path: path, loc: inherited}
	locNode, ok := n.get("loc")
	if !ok {
		return n, nil
	}
	var loc yamlLocation
	if err := locNode.Decode(&loc); err != nil {
		return n, errors.Wrapf(err, "%s.loc", path)
	}
	n.loc = ast.Location{File: d.file, Line: loc.Line, Column: loc.Column, Offset: loc.Offset}
	return n, nil
}

func (n node) get(key string) (*yaml.Node, bool) {
	if n.Kind != yaml.MappingNode {
		return nil, false
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1], true
		}
	}
	return nil, false
}

func (n node) errorf(format string, args ...any) error {
	return errors.Errorf("%s: %s", n.path, fmt.Sprintf(format, args...))
}

func (n node) isScalar() bool {
	return n.Kind == yaml.ScalarNode
}

func (n node) kind() (string, error) {
	if n.Kind != yaml.MappingNode {
		return "", n.errorf("expected a mapping with a kind, found %s", n.ShortTag())
	}
	kind, ok := n.get("kind")
	if !ok {
		return "", n.errorf("missing kind")
	}
	return kind.Value, nil
}

// str returns the required string under key
func (n node) str(key string) (string, error) {
	value, ok := n.get(key)
	if !ok {
		return "", n.errorf("missing %q", key)
	}
	if value.Kind != yaml.ScalarNode {
		return "", n.errorf("%q must be a string", key)
	}
	return value.Value, nil
}

// optStr returns the string under key, or "" when there is none
func (n node) optStr(key string) string {
	value, ok := n.get(key)
	if !ok {
		return ""
	}
	return value.Value
}

// flag returns the boolean under key, false when there is none
func (n node) flag(key string) (bool, error) {
	value, ok := n.get(key)
	if !ok {
		return false, nil
	}
	var b bool
	if err := value.Decode(&b); err != nil {
		return false, errors.Wrapf(err, "%s.%s", n.path, key)
	}
	return b, nil
}

func (n node) strings(key string) ([]string, error) {
	value, ok := n.get(key)
	if !ok {
		return nil, nil
	}
	var strs []string
	if err := value.Decode(&strs); err != nil {
		return nil, errors.Wrapf(err, "%s.%s", n.path, key)
	}
	return strs, nil
}

func (d *decoder) required(parent node, key string) (node, error) {
	raw, ok := parent.get(key)
	if !ok {
		return node{}, parent.errorf("missing %q", key)
	}
	return d.enter(raw, parent.path+"."+key, parent.loc)
}

func (d *decoder) optional(parent node, key string) (node, bool, error) {
	raw, ok := parent.get(key)
	if !ok || raw.Tag == "!!null" {
		return node{}, false, nil
	}
	n, err := d.enter(raw, parent.path+"."+key, parent.loc)
	return n, true, err
}

// decodeList decodes every item of the sequence under key. A missing key is an empty list
func decodeList[T any](d *decoder, parent node, key string, decode func(node) (T, error)) ([]T, error) {
	raw, ok := parent.get(key)
	if !ok {
		return nil, nil
	}
	if raw.Kind != yaml.SequenceNode {
		return nil, parent.errorf("%q must be a list", key)
	}
	decoded := make([]T, len(raw.Content))
	for i, item := range raw.Content {
		child, err := d.enter(item, parent.path+"."+key+"["+strconv.Itoa(i)+"]", parent.loc)
		if err != nil {
			return nil, err
		}
		if decoded[i], err = decode(child); err != nil {
			return nil, err
		}
	}
	return decoded, nil
}

// literal decodes the scalar n as a literal of the given kind, or guesses the kind from its tag
func literal(n node, kind string) (ast.LitValue, error) {
	if kind == "" {
		switch n.ShortTag() {
		case "!!int":
			kind = "int"
		case "!!float":
			kind = "float"
		case "!!bool":
			kind = "bool"
		case "!!str":
			kind = "string"
		default:
			return nil, n.errorf("cannot decode %s as a literal", n.ShortTag())
		}
	}
	var err error
	var value ast.LitValue
	switch kind {
	case "int":
		var i int64
		err = n.Decode(&i)
		value = ast.IntValue(i)
	case "float":
		var f float64
		err = n.Decode(&f)
		value = ast.FloatValue(f)
	case "string":
		value = ast.StringValue(n.Value)
	case "bool":
		var b bool
		err = n.Decode(&b)
		value = ast.BoolValue(b)
	case "unit":
		value = ast.UnitValue{}
	default:
		return nil, n.errorf("unknown literal kind %q", kind)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s", n.path)
	}
	return value, nil
}

// literalOf decodes the literal of the kind-tagged node n, whose payload is under `value`
func (d *decoder) literalOf(n node, kind string) (ast.LitValue, error) {
	if kind == "unit" {
		return ast.UnitValue{}, nil
	}
	value, err := d.required(n, "value")
	if err != nil {
		return nil, err
	}
	return literal(value, kind)
}

func isLiteralKind(kind string) bool {
	switch kind {
	case "int", "float", "string", "bool", "unit":
		return true
	default:
		return false
	}
}
