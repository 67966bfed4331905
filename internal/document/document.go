package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/aretw0/scalarguard/pkg/scalar"
	"gopkg.in/yaml.v3"
)

// Document is a self-contained validation request: the values, their
// declared types and the options to check them with.
type Document struct {
	Name    string
	Options *scalar.Overrides
	Types   *scalar.TypeSpec
	Values  scalar.Params
}

type rawDocument struct {
	Options map[string]any  `yaml:"options"`
	Types   scalar.TypeSpec `yaml:"types"`
	Values  yaml.Node       `yaml:"values"`
}

// Load reads a document from a YAML or JSON file. JSON is read by the YAML
// parser, so integers stay integers and key order is preserved in both.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Name = path
	return doc, nil
}

// Parse decodes a document. Unknown top-level keys are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var raw rawDocument
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document")
		}
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	opts, err := scalar.DecodeOverrides(raw.Options)
	if err != nil {
		return nil, err
	}

	values, err := decodeValues(&raw.Values)
	if err != nil {
		return nil, err
	}

	types := raw.Types
	return &Document{
		Options: opts,
		Types:   &types,
		Values:  values,
	}, nil
}

// Check validates the document with v. The document's options are merged
// over v's defaults, then extra (typically command-line flags) on top.
// Without an explicit site the document name is used.
func (d *Document) Check(v *scalar.Validator, extra *scalar.Overrides) (bool, error) {
	res, err := d.Inspect(v, extra)
	if err != nil {
		return false, err
	}
	return res.OK(), nil
}

// Inspect is Check returning the full Result.
func (d *Document) Inspect(v *scalar.Validator, extra *scalar.Overrides) (scalar.Result, error) {
	opts := scalar.MergeDefaults(d.Options, v.Defaults())
	opts = scalar.MergeDefaults(extra, opts)
	if opts.Site == "" {
		opts.Site = d.Name
	}
	return v.Inspect(d.Values, d.Types, opts.Overrides())
}

func decodeValues(n *yaml.Node) (scalar.Params, error) {
	params := scalar.Params{}

	switch n.Kind {
	case 0:
		return params, nil
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return params, nil
		}
		return nil, fmt.Errorf("line %d: values must be a mapping or a sequence", n.Line)
	case yaml.AliasNode:
		return decodeValues(n.Alias)
	case yaml.SequenceNode:
		for i, item := range n.Content {
			v, err := decodeValue(item)
			if err != nil {
				return nil, err
			}
			params[scalar.Index(i)] = v
		}
		return params, nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := decodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			params[keyOf(n.Content[i])] = v
		}
		return params, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported values node", n.Line)
	}
}

func decodeValue(n *yaml.Node) (any, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}
	return v, nil
}

func keyOf(n *yaml.Node) scalar.Key {
	if n.Tag == "!!int" {
		if i, err := strconv.Atoi(n.Value); err == nil {
			return scalar.Index(i)
		}
	}
	return scalar.Name(n.Value)
}
