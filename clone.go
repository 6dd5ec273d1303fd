package oidpath

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Clone returns a deep copy of a document value.
//
// Maps, ordered documents and slices are copied recursively so that the
// result shares no mutable state with v. Strings, numbers, booleans and
// ObjectIDs are immutable and returned as-is. Values of any other type are
// treated as opaque scalars and returned unchanged, except []byte which is
// copied.
//
// Nil containers stay nil.
func Clone(v any) any {
	switch node := v.(type) {
	case map[string]any:
		return cloneMap(node)
	case bson.M:
		if node == nil {
			return bson.M(nil)
		}
		return bson.M(cloneMap(node))
	case bson.D:
		return cloneD(node)
	case map[string]string:
		if node == nil {
			return map[string]string(nil)
		}
		out := make(map[string]string, len(node))
		for k, s := range node {
			out[k] = s
		}
		return out
	case []any:
		return cloneSlice(node)
	case bson.A:
		if node == nil {
			return bson.A(nil)
		}
		return bson.A(cloneSlice(node))
	case []map[string]any:
		if node == nil {
			return []map[string]any(nil)
		}
		out := make([]map[string]any, len(node))
		for i, m := range node {
			out[i] = cloneMap(m)
		}
		return out
	case []bson.M:
		if node == nil {
			return []bson.M(nil)
		}
		out := make([]bson.M, len(node))
		for i, m := range node {
			if m != nil {
				out[i] = bson.M(cloneMap(m))
			}
		}
		return out
	case []bson.D:
		if node == nil {
			return []bson.D(nil)
		}
		out := make([]bson.D, len(node))
		for i, d := range node {
			out[i] = cloneD(d)
		}
		return out
	case []string:
		if node == nil {
			return []string(nil)
		}
		return append([]string(nil), node...)
	case []primitive.ObjectID:
		if node == nil {
			return []primitive.ObjectID(nil)
		}
		return append([]primitive.ObjectID(nil), node...)
	case []byte:
		if node == nil {
			return []byte(nil)
		}
		return append([]byte(nil), node...)
	default:
		return v
	}
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Clone(v)
	}
	return out
}

func cloneD(d bson.D) bson.D {
	if d == nil {
		return nil
	}
	out := make(bson.D, len(d))
	for i, e := range d {
		out[i] = bson.E{Key: e.Key, Value: Clone(e.Value)}
	}
	return out
}

func cloneSlice(s []any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = Clone(v)
	}
	return out
}
