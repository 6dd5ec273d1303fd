// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/oidpath"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectIDExt is the MessagePack extension type used for ObjectIDs.
const ObjectIDExt int8 = 7

func init() {
	msgpack.RegisterExtEncoder(ObjectIDExt, primitive.ObjectID{}, encodeObjectID)
	msgpack.RegisterExtDecoder(ObjectIDExt, primitive.ObjectID{}, decodeObjectID)
}

// encodeObjectID writes the ObjectID as a 12-byte bin value inside the
// extension payload.
func encodeObjectID(_ *msgpack.Encoder, v reflect.Value) ([]byte, error) {
	id := v.Interface().(primitive.ObjectID)
	return msgpack.Marshal(id[:])
}

func decodeObjectID(dec *msgpack.Decoder, v reflect.Value, _ int) error {
	b, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	if len(b) != len(primitive.NilObjectID) {
		return fmt.Errorf("msgpack: objectid payload length %d, want %d", len(b), len(primitive.NilObjectID))
	}
	var id primitive.ObjectID
	copy(id[:], b)
	v.Set(reflect.ValueOf(id))
	return nil
}

// msgpackCodec implements oidpath.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
//
// ObjectIDs are written as extension type ObjectIDExt and decode back to
// primitive.ObjectID, so Store and Load round-trip through MessagePack.
// bson.D documents are written as maps in their original key order.
func New() oidpath.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(toMsgpack(v))
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// object writes a bson.D as a MessagePack map, keeping key order.
type object bson.D

func (o object) EncodeMsgpack(enc *msgpack.Encoder) error {
	if o == nil {
		return enc.EncodeNil()
	}
	if err := enc.EncodeMapLen(len(o)); err != nil {
		return err
	}
	for _, e := range o {
		if err := enc.EncodeString(e.Key); err != nil {
			return err
		}
		if err := enc.Encode(e.Value); err != nil {
			return err
		}
	}
	return nil
}

// toMsgpack replaces every bson.D in a document with an object.
func toMsgpack(v any) any {
	switch node := v.(type) {
	case bson.D:
		if node == nil {
			return object(nil)
		}
		out := make(object, len(node))
		for i, e := range node {
			out[i] = bson.E{Key: e.Key, Value: toMsgpack(e.Value)}
		}
		return out
	case map[string]any:
		return mapToMsgpack(node)
	case bson.M:
		return mapToMsgpack(node)
	case []any:
		return sliceToMsgpack(node)
	case bson.A:
		return sliceToMsgpack(node)
	case []bson.D:
		if node == nil {
			return node
		}
		out := make([]any, len(node))
		for i, d := range node {
			out[i] = toMsgpack(d)
		}
		return out
	case []bson.M:
		if node == nil {
			return node
		}
		out := make([]any, len(node))
		for i, m := range node {
			out[i] = mapToMsgpack(m)
		}
		return out
	case []map[string]any:
		if node == nil {
			return node
		}
		out := make([]any, len(node))
		for i, m := range node {
			out[i] = mapToMsgpack(m)
		}
		return out
	default:
		return v
	}
}

func mapToMsgpack(m map[string]any) any {
	if m == nil {
		return m
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = toMsgpack(v)
	}
	return out
}

func sliceToMsgpack(s []any) any {
	if s == nil {
		return s
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = toMsgpack(v)
	}
	return out
}
