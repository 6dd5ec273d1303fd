// Package oidtest provides test utilities for oidpath.
package oidtest

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Canonical identifiers used across tests.
const (
	ID1 = "55af3dabd69361923fc86801"
	ID2 = "55af3dabd69361923fc86802"
	ID3 = "55af3dabd69361923fc86803"
	ID4 = "55af3dabd69361923fc86804"
	ID5 = "55af3dabd69361923fc86805"
)

// NestedPaths are the paths matching NestedDocument's identifiers.
var NestedPaths = []string{"_id", "types.baseone._id", "types.basetwo.subtypes.base._id"}

// MustObjectID parses hex or fails the test.
func MustObjectID(tb testing.TB, hex string) primitive.ObjectID {
	tb.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		tb.Fatalf("ObjectIDFromHex(%q): %v", hex, err)
	}
	return id
}

// NestedDocument returns a document with identifiers at NestedPaths, inside
// arrays of objects with divergent shapes, plus untouched siblings.
func NestedDocument() map[string]any {
	return map[string]any{
		"_id":  ID4,
		"name": "TestName",
		"arr":  []any{"TestItem", ID1},
		"types": []any{
			map[string]any{
				"baseone": map[string]any{"_id": ID5},
			},
			map[string]any{
				"basetwo": map[string]any{
					"subtypes": []any{
						map[string]any{
							"base": map[string]any{"_id": ID3},
						},
					},
				},
			},
		},
		"spec": map[string]any{
			"size": 5,
			"items": []any{
				map[string]any{"name": "item1", "_id": ID2},
			},
		},
	}
}

// OrderedDocument returns a bson.D with identifiers at "_id" and "base.type".
func OrderedDocument() bson.D {
	return bson.D{
		{Key: "_id", Value: ID4},
		{Key: "name", Value: "TestName"},
		{Key: "base", Value: bson.D{
			{Key: "description", Value: "TestDescription"},
			{Key: "type", Value: ID5},
		}},
		{Key: "tags", Value: bson.A{"a", "b"}},
	}
}

// Post is a model type with oid-tagged fields.
type Post struct {
	ID       string    `bson:"_id" json:"id" oid:"true"`
	Author   string    `bson:"author_id" oid:"true"`
	Title    string    `bson:"title"`
	Comments []Comment `bson:"comments"`
	Meta     *Meta     `json:"meta"`
	Audit    Audit     `bson:",inline"`
	Secret   string    `bson:"-" oid:"true"`
}

// Comment is nested in Post.
type Comment struct {
	ID   string `bson:"_id" oid:"true"`
	Body string `bson:"body"`
}

// Meta is referenced by pointer from Post.
type Meta struct {
	Owner string `oid:"true"`
	Draft bool   `oid:"false"`
}

// Audit is inlined into Post.
type Audit struct {
	EditedBy string `bson:"edited_by" oid:"true"`
}
