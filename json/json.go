// Package json provides a JSON codec implementation.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/zoobzio/oidpath"
	"go.mongodb.org/mongo-driver/bson"
)

// jsonCodec implements oidpath.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
//
// ObjectIDs marshal as their hex string and bson.D documents as objects in
// their original key order. Unmarshaling into *any keeps
// numbers as json.Number so untouched fields survive a round trip exactly.
func New() oidpath.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(toJSON(v))
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	if _, ok := v.(*any); !ok {
		return json.Unmarshal(data, v)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	// Reject trailing data the way json.Unmarshal does.
	if dec.More() {
		return fmt.Errorf("json: invalid data after top-level value at offset %d", dec.InputOffset())
	}
	return nil
}

// object writes a bson.D as a JSON object, keeping key order.
type object bson.D

func (o object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// toJSON replaces every bson.D in a document with an object. Other values
// are left to encoding/json.
func toJSON(v any) any {
	switch node := v.(type) {
	case bson.D:
		if node == nil {
			return object(nil)
		}
		out := make(object, len(node))
		for i, e := range node {
			out[i] = bson.E{Key: e.Key, Value: toJSON(e.Value)}
		}
		return out
	case map[string]any:
		return mapToJSON(node)
	case bson.M:
		return mapToJSON(node)
	case []any:
		return sliceToJSON(node)
	case bson.A:
		return sliceToJSON(node)
	case []bson.D:
		if node == nil {
			return node
		}
		out := make([]any, len(node))
		for i, d := range node {
			out[i] = toJSON(d)
		}
		return out
	case []bson.M:
		if node == nil {
			return node
		}
		out := make([]any, len(node))
		for i, m := range node {
			out[i] = mapToJSON(m)
		}
		return out
	case []map[string]any:
		if node == nil {
			return node
		}
		out := make([]any, len(node))
		for i, m := range node {
			out[i] = mapToJSON(m)
		}
		return out
	default:
		return v
	}
}

func mapToJSON(m map[string]any) any {
	if m == nil {
		return m
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = toJSON(v)
	}
	return out
}

func sliceToJSON(s []any) any {
	if s == nil {
		return s
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = toJSON(v)
	}
	return out
}
