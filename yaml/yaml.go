// Package yaml provides a YAML codec implementation.
package yaml

import (
	"github.com/zoobzio/oidpath"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements oidpath.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
//
// YAML has no identifier type, so ObjectIDs marshal as their hex string.
// bson.D documents marshal as mappings in their original key order.
//
// Unquoted scalars that spell a canonical identifier unmarshal as strings,
// so an id made only of digits is not read back as a number.
func New() oidpath.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	out, err := toYAML(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(out)
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	if _, ok := v.(*any); !ok {
		return yaml.Unmarshal(data, v)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return err
	}
	keepIdentifiers(&root)
	return root.Decode(v)
}

// keepIdentifiers retags plain scalars that parse as identifiers as strings.
func keepIdentifiers(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode {
		if n.Style == 0 && n.Tag != "!!str" {
			if _, err := oidpath.ObjectIDs().Parse(n.Value); err == nil {
				n.Tag = "!!str"
			}
		}
		return
	}
	for _, child := range n.Content {
		keepIdentifiers(child)
	}
}

// toYAML rewrites the document types yaml.v3 cannot represent faithfully.
func toYAML(v any) (any, error) {
	switch node := v.(type) {
	case primitive.ObjectID:
		return node.Hex(), nil
	case bson.D:
		return orderedNode(node)
	case map[string]any:
		return mapToYAML(node)
	case bson.M:
		return mapToYAML(node)
	case []any:
		return sliceToYAML(node)
	case bson.A:
		return sliceToYAML(node)
	case []bson.D:
		if node == nil {
			return node, nil
		}
		out := make([]any, len(node))
		for i, d := range node {
			n, err := orderedNode(d)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case []bson.M:
		if node == nil {
			return node, nil
		}
		out := make([]any, len(node))
		for i, m := range node {
			conv, err := mapToYAML(m)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case []map[string]any:
		if node == nil {
			return node, nil
		}
		out := make([]any, len(node))
		for i, m := range node {
			conv, err := mapToYAML(m)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case []primitive.ObjectID:
		out := make([]string, len(node))
		for i, id := range node {
			out[i] = id.Hex()
		}
		return out, nil
	default:
		return v, nil
	}
}

func orderedNode(d bson.D) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range d {
		val, err := toYAML(e.Value)
		if err != nil {
			return nil, err
		}
		vn, ok := val.(*yaml.Node)
		if !ok {
			vn = &yaml.Node{}
			if err := vn.Encode(val); err != nil {
				return nil, err
			}
		}
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}, vn)
	}
	return n, nil
}

func mapToYAML(m map[string]any) (map[string]any, error) {
	if m == nil {
		return nil, nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		conv, err := toYAML(v)
		if err != nil {
			return nil, err
		}
		out[k] = conv
	}
	return out, nil
}

func sliceToYAML(s []any) ([]any, error) {
	if s == nil {
		return nil, nil
	}
	out := make([]any, len(s))
	for i, v := range s {
		conv, err := toYAML(v)
		if err != nil {
			return nil, err
		}
		out[i] = conv
	}
	return out, nil
}
