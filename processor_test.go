package oidpath

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	oidtest "github.com/zoobzio/oidpath/testing"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// testCodec is a simple JSON codec for testing.
type testCodec struct{}

func (c *testCodec) ContentType() string { return "application/json" }

func (c *testCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (c *testCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// failingCodec fails every marshal and unmarshal.
type failingCodec struct{ testCodec }

func (c *failingCodec) Marshal(any) ([]byte, error) { return nil, errors.New("boom") }

func (c *failingCodec) Unmarshal([]byte, any) error { return errors.New("boom") }

func TestNewProcessor(t *testing.T) {
	proc, err := NewProcessor(&testCodec{})
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}
	if proc == nil {
		t.Fatal("NewProcessor() returned nil")
	}
	if got := proc.Transformer().Paths(); len(got) != 1 || got[0] != DefaultPath {
		t.Errorf("Paths() = %v, want [_id]", got)
	}
}

func TestNewProcessor_InvalidPaths(t *testing.T) {
	_, err := NewProcessor(&testCodec{}, WithPaths("a."))
	if !errors.Is(err, ErrInvalidPathSpec) {
		t.Errorf("NewProcessor() error = %v, want ErrInvalidPathSpec", err)
	}
}

func TestProcessor_Receive(t *testing.T) {
	proc, err := NewProcessor(&testCodec{}, WithPaths("_id", "base.type"))
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}

	body := []byte(`{"_id":"` + oidtest.ID4 + `","name":"n","base":{"type":"` + oidtest.ID5 + `"}}`)
	out, err := proc.Receive(context.Background(), body)
	if err != nil {
		t.Fatalf("Receive() error: %v", err)
	}
	doc := out.(map[string]any)

	if id, ok := doc["_id"].(primitive.ObjectID); !ok || id.Hex() != oidtest.ID4 {
		t.Errorf("_id = %#v", doc["_id"])
	}
	if id, ok := doc["base"].(map[string]any)["type"].(primitive.ObjectID); !ok || id.Hex() != oidtest.ID5 {
		t.Errorf("base.type = %#v", doc["base"])
	}
	if doc["name"] != "n" {
		t.Errorf("name = %v", doc["name"])
	}
}

func TestProcessor_ReceiveInvalidIdentifier(t *testing.T) {
	proc, _ := NewProcessor(&testCodec{})

	_, err := proc.Receive(context.Background(), []byte(`{"_id":"nope"}`))
	if !errors.Is(err, ErrInvalidIdentifier) {
		t.Errorf("Receive() error = %v, want ErrInvalidIdentifier", err)
	}
}

func TestProcessor_ReceiveUnmarshalError(t *testing.T) {
	proc, _ := NewProcessor(&testCodec{})

	_, err := proc.Receive(context.Background(), []byte(`{`))
	if !errors.Is(err, ErrUnmarshal) {
		t.Errorf("Receive() error = %v, want ErrUnmarshal", err)
	}
	var codecErr *CodecError
	if !errors.As(err, &codecErr) {
		t.Errorf("error should be *CodecError, got %T", err)
	}
}

func TestProcessor_Send(t *testing.T) {
	proc, _ := NewProcessor(&testCodec{})
	doc := map[string]any{"_id": oidtest.MustObjectID(t, oidtest.ID1), "n": 1}

	data, err := proc.Send(context.Background(), doc)
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}

	want := `{"_id":"` + oidtest.ID1 + `","n":1}`
	if string(data) != want {
		t.Errorf("Send() = %s, want %s", data, want)
	}
}

func TestProcessor_StoreLoad(t *testing.T) {
	proc, _ := NewProcessor(&testCodec{})
	doc := map[string]any{"_id": oidtest.ID2, "name": "n"}

	data, err := proc.Store(context.Background(), doc)
	if err != nil {
		t.Fatalf("Store() error: %v", err)
	}

	// JSON has no ObjectID type; the id comes back as its hex string.
	restored, err := proc.Load(context.Background(), data)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if restored.(map[string]any)["_id"] != oidtest.ID2 {
		t.Errorf("_id = %#v", restored.(map[string]any)["_id"])
	}
}

func TestProcessor_StoreInvalidIdentifier(t *testing.T) {
	proc, _ := NewProcessor(&testCodec{})

	data, err := proc.Store(context.Background(), map[string]any{"_id": "nope"})
	if data != nil {
		t.Error("Store() should not return data on error")
	}
	if !errors.Is(err, ErrInvalidIdentifier) {
		t.Errorf("Store() error = %v, want ErrInvalidIdentifier", err)
	}
}

func TestProcessor_CodecErrors(t *testing.T) {
	proc, _ := NewProcessor(&failingCodec{})
	ctx := context.Background()

	if _, err := proc.Send(ctx, map[string]any{}); !errors.Is(err, ErrMarshal) {
		t.Errorf("Send() error = %v, want ErrMarshal", err)
	}
	if _, err := proc.Store(ctx, map[string]any{}); !errors.Is(err, ErrMarshal) {
		t.Errorf("Store() error = %v, want ErrMarshal", err)
	}
	if _, err := proc.Load(ctx, []byte(`{}`)); !errors.Is(err, ErrUnmarshal) {
		t.Errorf("Load() error = %v, want ErrUnmarshal", err)
	}
	if _, err := proc.Receive(ctx, []byte(`{}`)); !errors.Is(err, ErrUnmarshal) {
		t.Errorf("Receive() error = %v, want ErrUnmarshal", err)
	}
}
