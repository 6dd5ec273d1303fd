package yaml

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/yaml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/yaml")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	type TestStruct struct {
		Name  string `yaml:"name"`
		Value int    `yaml:"value"`
	}

	original := TestStruct{Name: "test", Value: 42}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored TestStruct
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored.Name != original.Name || restored.Value != original.Value {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestMarshalNil(t *testing.T) {
	c := New()

	data, err := c.Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal(nil) error: %v", err)
	}

	// YAML represents nil as "null\n"
	if string(data) != "null\n" {
		t.Errorf("Marshal(nil) = %q, want %q", data, "null\n")
	}
}

func TestMarshalObjectID(t *testing.T) {
	c := New()
	id, _ := primitive.ObjectIDFromHex("55af3dabd69361923fc86801")

	data, err := c.Marshal(map[string]any{"_id": id, "refs": []any{id}})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := "_id: 55af3dabd69361923fc86801\nrefs:\n    - 55af3dabd69361923fc86801\n"
	if string(data) != want {
		t.Errorf("Marshal() = %q, want %q", data, want)
	}
}

func TestMarshalOrderedDocument(t *testing.T) {
	c := New()

	data, err := c.Marshal(bson.D{
		{Key: "zeta", Value: 1},
		{Key: "alpha", Value: bson.D{{Key: "y", Value: "b"}, {Key: "x", Value: "a"}}},
	})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := "zeta: 1\nalpha:\n    y: b\n    x: a\n"
	if string(data) != want {
		t.Errorf("Marshal() = %q, want %q", data, want)
	}
}

func TestUnmarshalGenericDocument(t *testing.T) {
	c := New()

	var v any
	if err := c.Unmarshal([]byte("_id: 55af3dabd69361923fc86801\nspec:\n  size: 5\n"), &v); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	doc, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("Unmarshal(*any) = %T, want map[string]any", v)
	}
	if doc["_id"] != "55af3dabd69361923fc86801" {
		t.Errorf("_id = %#v", doc["_id"])
	}
	if doc["spec"].(map[string]any)["size"] != 5 {
		t.Errorf("spec.size = %#v", doc["spec"])
	}
}

func TestMarshalTypedDocumentSlices(t *testing.T) {
	c := New()
	id, _ := primitive.ObjectIDFromHex("55af3dabd69361923fc86801")

	data, err := c.Marshal(bson.D{
		{Key: "_id", Value: id},
		{Key: "refs", Value: []bson.D{{{Key: "ref", Value: id}}}},
		{Key: "tags", Value: []map[string]any{{"owner": id}}},
		{Key: "meta", Value: []bson.M{{"by": id}}},
	})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := "_id: 55af3dabd69361923fc86801\n" +
		"refs:\n    - ref: 55af3dabd69361923fc86801\n" +
		"tags:\n    - owner: 55af3dabd69361923fc86801\n" +
		"meta:\n    - by: 55af3dabd69361923fc86801\n"
	if string(data) != want {
		t.Errorf("Marshal() = %q, want %q", data, want)
	}
}

func TestUnmarshalNumericIdentifier(t *testing.T) {
	c := New()

	var v any
	input := "_id: 000000000000000000000001\nexp: 00000000000000000000e123\nn: 7\nq: '5'\n"
	if err := c.Unmarshal([]byte(input), &v); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	doc := v.(map[string]any)
	if doc["_id"] != "000000000000000000000001" {
		t.Errorf("_id = %#v, want identifier string", doc["_id"])
	}
	if doc["exp"] != "00000000000000000000e123" {
		t.Errorf("exp = %#v, want identifier string", doc["exp"])
	}
	if doc["n"] != 7 {
		t.Errorf("n = %#v, want 7", doc["n"])
	}
	if doc["q"] != "5" {
		t.Errorf("q = %#v, want \"5\"", doc["q"])
	}
}

func TestUnmarshalEmpty(t *testing.T) {
	c := New()

	var v any
	if err := c.Unmarshal(nil, &v); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if v != nil {
		t.Errorf("Unmarshal(empty) = %#v, want nil", v)
	}
}

func TestUnmarshal_TypeMismatch(t *testing.T) {
	c := New()

	type TestStruct struct {
		Value int `yaml:"value"`
	}

	testCases := []struct {
		name  string
		input string
	}{
		{"string for int", "value: not_a_number"},
		{"array for int", "value:\n  - 1\n  - 2"},
		{"map for int", "value:\n  nested: true"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var v TestStruct
			err := c.Unmarshal([]byte(tc.input), &v)
			if err == nil {
				t.Errorf("Unmarshal(%q) should return error for type mismatch", tc.input)
			}
		})
	}
}
