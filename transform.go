package oidpath

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Direction selects which way identifiers are converted.
type Direction int

const (
	// DirectionEncode converts canonical strings to ObjectIDs.
	DirectionEncode Direction = iota

	// DirectionDecode converts ObjectIDs to canonical strings.
	DirectionDecode
)

func (d Direction) String() string {
	switch d {
	case DirectionEncode:
		return "encode"
	case DirectionDecode:
		return "decode"
	default:
		return "direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// walker carries the per-call state of a single transform.
type walker struct {
	ids       IDCodec
	dir       Direction
	maxDepth  int
	converted int
}

// walk returns a transformed copy of v. spec is the path set narrowed to
// this position; at is the location of v for error reporting.
func (w *walker) walk(v any, spec PathSpec, at string, depth int) (any, error) {
	switch node := v.(type) {
	case string:
		if !spec.IsLeaf() || w.dir != DirectionEncode {
			return node, nil
		}
		id, err := w.ids.Parse(node)
		if err != nil {
			return nil, newPathError(ErrInvalidIdentifier, w.dir, at, node, err)
		}
		w.converted++
		return id, nil

	case primitive.ObjectID:
		if !spec.IsLeaf() || w.dir != DirectionDecode {
			return node, nil
		}
		w.converted++
		return w.ids.Render(node), nil

	case map[string]any, bson.M, bson.D, []any, bson.A, []map[string]any, []bson.M, []bson.D:
		if w.maxDepth > 0 && depth >= w.maxDepth {
			return nil, newPathError(ErrMaxDepth, w.dir, at, nil, nil)
		}
		return w.walkContainer(node, spec, at, depth+1)

	case map[string]string:
		if node == nil || w.dir != DirectionEncode {
			return Clone(node), nil
		}
		if w.maxDepth > 0 && depth >= w.maxDepth {
			return nil, newPathError(ErrMaxDepth, w.dir, at, nil, nil)
		}
		return w.walkStringMap(node, spec, at)

	case []string:
		if node == nil || !spec.IsLeaf() || w.dir != DirectionEncode {
			return Clone(node), nil
		}
		out := make([]primitive.ObjectID, len(node))
		for i, s := range node {
			id, err := w.ids.Parse(s)
			if err != nil {
				return nil, newPathError(ErrInvalidIdentifier, w.dir, index(at, i), s, err)
			}
			out[i] = id
		}
		w.converted += len(node)
		return out, nil

	case []primitive.ObjectID:
		if node == nil || !spec.IsLeaf() || w.dir != DirectionDecode {
			return Clone(node), nil
		}
		out := make([]string, len(node))
		for i, id := range node {
			out[i] = w.ids.Render(id)
		}
		w.converted += len(node)
		return out, nil

	default:
		return Clone(v), nil
	}
}

// walkContainer handles mappings and arrays. Result containers keep the
// concrete type of the input.
func (w *walker) walkContainer(v any, spec PathSpec, at string, depth int) (any, error) {
	switch node := v.(type) {
	case map[string]any:
		return w.walkMap(node, spec, at, depth)
	case bson.M:
		m, err := w.walkMap(node, spec, at, depth)
		if err != nil || m == nil {
			return bson.M(nil), err
		}
		return bson.M(m), nil
	case bson.D:
		return w.walkD(node, spec, at, depth)
	case []any:
		return w.walkSlice(node, spec, at, depth)
	case bson.A:
		s, err := w.walkSlice(node, spec, at, depth)
		if err != nil || s == nil {
			return bson.A(nil), err
		}
		return bson.A(s), nil
	case []map[string]any:
		if node == nil {
			return node, nil
		}
		out := make([]map[string]any, len(node))
		for i, m := range node {
			conv, err := w.walkMap(m, spec, index(at, i), depth)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case []bson.M:
		if node == nil {
			return node, nil
		}
		out := make([]bson.M, len(node))
		for i, m := range node {
			conv, err := w.walkMap(m, spec, index(at, i), depth)
			if err != nil {
				return nil, err
			}
			if conv != nil {
				out[i] = bson.M(conv)
			}
		}
		return out, nil
	case []bson.D:
		if node == nil {
			return node, nil
		}
		out := make([]bson.D, len(node))
		for i, d := range node {
			conv, err := w.walkD(d, spec, index(at, i), depth)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	}
	return Clone(v), nil
}

// walkMap narrows spec per key. Keys no path reaches are cloned without
// being scanned.
func (w *walker) walkMap(m map[string]any, spec PathSpec, at string, depth int) (map[string]any, error) {
	if m == nil {
		return nil, nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		sub := spec.Match(k)
		if sub.Empty() {
			out[k] = Clone(v)
			continue
		}
		conv, err := w.walk(v, sub, field(at, k), depth)
		if err != nil {
			return nil, err
		}
		out[k] = conv
	}
	return out, nil
}

func (w *walker) walkD(d bson.D, spec PathSpec, at string, depth int) (bson.D, error) {
	if d == nil {
		return nil, nil
	}
	out := make(bson.D, len(d))
	for i, e := range d {
		sub := spec.Match(e.Key)
		if sub.Empty() {
			out[i] = bson.E{Key: e.Key, Value: Clone(e.Value)}
			continue
		}
		conv, err := w.walk(e.Value, sub, field(at, e.Key), depth)
		if err != nil {
			return nil, err
		}
		out[i] = bson.E{Key: e.Key, Value: conv}
	}
	return out, nil
}

// walkStringMap encodes the values of a string mapping at target keys.
// The result is a map[string]any when any key is a target, since its
// values then mix strings and ObjectIDs.
func (w *walker) walkStringMap(m map[string]string, spec PathSpec, at string) (any, error) {
	targeted := false
	for k := range m {
		if spec.Match(k).IsLeaf() {
			targeted = true
			break
		}
	}
	if !targeted {
		return Clone(m), nil
	}

	out := make(map[string]any, len(m))
	for k, s := range m {
		if !spec.Match(k).IsLeaf() {
			out[k] = s
			continue
		}
		id, err := w.ids.Parse(s)
		if err != nil {
			return nil, newPathError(ErrInvalidIdentifier, w.dir, field(at, k), s, err)
		}
		w.converted++
		out[k] = id
	}
	return out, nil
}

// walkSlice passes spec unchanged to every element; indices are not part
// of the path vocabulary.
func (w *walker) walkSlice(s []any, spec PathSpec, at string, depth int) ([]any, error) {
	if s == nil {
		return nil, nil
	}
	out := make([]any, len(s))
	for i, v := range s {
		conv, err := w.walk(v, spec, index(at, i), depth)
		if err != nil {
			return nil, err
		}
		out[i] = conv
	}
	return out, nil
}

func field(at, key string) string {
	if at == "" {
		return key
	}
	return at + "." + key
}

func index(at string, i int) string {
	return at + "[" + strconv.Itoa(i) + "]"
}
