package scalar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalJSON serializes the type spec as an object of keys to tags in spec order,
// or as an array when every key is positional and dense from 0.
func (s *TypeSpec) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	if s.dense() {
		buf.WriteByte('[')
		for i, e := range s.entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := json.Marshal(e.tag)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	}

	buf.WriteByte('{')
	for i, e := range s.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(e.key.Label())
		v, err := json.Marshal(e.tag)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", e.key.Label(), err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON deserializes the type spec keeping the document's key order.
// JSON is parsed as YAML, which preserves mapping order.
func (s *TypeSpec) UnmarshalJSON(data []byte) error {
	if s == nil {
		return fmt.Errorf("scalar: UnmarshalJSON on nil pointer")
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	return s.UnmarshalYAML(&node)
}

// MarshalYAML serializes the type spec as an ordered mapping, or a sequence for
// dense positional specs.
func (s *TypeSpec) MarshalYAML() (any, error) {
	if s == nil {
		return nil, nil
	}

	if s.dense() {
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, e := range s.entries {
			v, err := tagNode(e.tag)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, v)
		}
		return node, nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range s.entries {
		k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.key.Label()}
		if e.key.positional {
			k.Tag = "!!int"
		}
		v, err := tagNode(e.tag)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, k, v)
	}
	return node, nil
}

// UnmarshalYAML accepts a mapping of names to tags or a sequence of
// positional tags. Tags that are not strings are kept as decoded so that the
// validator can report them.
func (s *TypeSpec) UnmarshalYAML(node *yaml.Node) error {
	*s = TypeSpec{index: make(map[Key]int)}

	switch node.Kind {
	case 0:
		return nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil
		}
		return s.UnmarshalYAML(node.Content[0])
	case yaml.AliasNode:
		return s.UnmarshalYAML(node.Alias)
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
		return fmt.Errorf("line %d: type spec must be a mapping or a sequence", node.Line)
	case yaml.SequenceNode:
		for i, item := range node.Content {
			tag, err := decodeTag(item)
			if err != nil {
				return err
			}
			s.Set(Index(i), tag)
		}
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			k, v := node.Content[i], node.Content[i+1]
			tag, err := decodeTag(v)
			if err != nil {
				return err
			}
			s.Set(keyFromNode(k), tag)
		}
		return nil
	default:
		return fmt.Errorf("line %d: unsupported type spec node", node.Line)
	}
}

// dense reports whether the type spec is non-empty and keyed 0..n-1 in order.
func (s *TypeSpec) dense() bool {
	if len(s.entries) == 0 {
		return false
	}
	for i, e := range s.entries {
		if !e.key.positional || e.key.index != i {
			return false
		}
	}
	return true
}

func keyFromNode(n *yaml.Node) Key {
	if n.Tag == "!!int" {
		if i, err := strconv.Atoi(n.Value); err == nil {
			return Index(i)
		}
	}
	return Name(n.Value)
}

func decodeTag(n *yaml.Node) (any, error) {
	if n.Kind == yaml.ScalarNode {
		switch n.Tag {
		case "!!null":
			return nil, nil
		case "!!str":
			return n.Value, nil
		}
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}
	return v, nil
}

func tagNode(tag any) (*yaml.Node, error) {
	var n yaml.Node
	if err := n.Encode(tag); err != nil {
		return nil, err
	}
	return &n, nil
}
