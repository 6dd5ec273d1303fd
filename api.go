// Package oidpath converts identifier fields of documents between their
// canonical string form and MongoDB ObjectIDs.
//
// Conversion is path-directed: only fields named by a dot-separated path
// are touched. Everything else is deep-copied unchanged, even values that
// happen to look like identifiers.
//
// # Paths
//
// A path names a field relative to the document root:
//
//	_id                          - top-level _id
//	base.type                    - type inside the base object
//	types.basetwo.subtypes._id   - arrays are walked transparently
//
// Arrays do not consume a path segment: every element of an array is
// matched against the same paths as the array itself. When no paths are
// given, DefaultPath ("_id") is used.
//
// # Documents
//
// Documents are plain Go values as produced by encoding/json, yaml.v3,
// msgpack or the mongo driver:
//
//   - map[string]any, bson.M and bson.D (key order preserved)
//   - []any, bson.A, and slices of the map types above
//   - string, numbers, bool, nil and primitive.ObjectID
//
// []string and []primitive.ObjectID are converted element-wise when they
// sit at a target path. Other types are copied as opaque values.
//
// # Basic Usage
//
//	doc := map[string]any{
//	    "_id":  "55af3dabd69361923fc86804",
//	    "base": map[string]any{"type": "55af3dabd69361923fc86805"},
//	}
//
//	stored, err := oidpath.Encode(doc, "_id", "base.type")
//	// stored["_id"] is a primitive.ObjectID
//
//	api, err := oidpath.Decode(stored, "_id", "base.type")
//	// api["_id"] is "55af3dabd69361923fc86804" again
//
// A bare string is converted directly:
//
//	id, err := oidpath.Encode("55af3dabd69361923fc86801")
//
// # Boundaries
//
// Processor pairs a Transformer with a content Codec and converts at the
// four boundary crossings:
//
//   - Receive: API payload in, strings become ObjectIDs
//   - Store: document out to storage, strings become ObjectIDs
//   - Load: storage bytes in, ObjectIDs become strings
//   - Send: document out to an API, ObjectIDs become strings
//
// The following codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// # Struct Tags
//
// PathsFor derives paths from a model type. Fields tagged oid:"true" are
// returned under their bson (or json) name:
//
//	type Post struct {
//	    ID     string `bson:"_id" oid:"true"`
//	    Author string `bson:"author_id" oid:"true"`
//	}
//
//	paths, _ := oidpath.PathsFor[Post]() // [_id author_id]
//
// # Errors
//
// Invalid paths fail with ErrInvalidPathSpec before any traversal. A
// malformed identifier at a target path fails the whole call with a
// *PathError wrapping ErrInvalidIdentifier; no partial document is
// returned.
package oidpath

import "context"

// Transform converts doc in the given direction at paths, or at
// DefaultPath when no paths are given. The Transformer for paths comes
// from the bounded cache behind Use.
func Transform(doc any, dir Direction, paths ...string) (any, error) {
	t, err := Use(paths...)
	if err != nil {
		return nil, err
	}
	return t.Transform(context.Background(), doc, dir)
}

// Encode replaces canonical identifier strings at paths with ObjectIDs.
func Encode(doc any, paths ...string) (any, error) {
	return Transform(doc, DirectionEncode, paths...)
}

// Decode replaces ObjectIDs at paths with canonical identifier strings.
func Decode(doc any, paths ...string) (any, error) {
	return Transform(doc, DirectionDecode, paths...)
}
