// Package bson provides a BSON codec implementation.
package bson

import (
	"github.com/zoobzio/oidpath"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements oidpath.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
//
// ObjectIDs are written as native BSON ObjectIDs. Unmarshaling into *any
// yields a bson.D so field order is preserved.
func New() oidpath.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON. v must be a document (map, bson.D or struct).
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	target, ok := v.(*any)
	if !ok {
		return bson.Unmarshal(data, v)
	}
	var doc bson.D
	if err := bson.Unmarshal(data, &doc); err != nil {
		return err
	}
	*target = doc
	return nil
}
