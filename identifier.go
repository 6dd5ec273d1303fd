package oidpath

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// hexLen is the length of a canonical ObjectID string.
const hexLen = 24

// IDCodec converts between the canonical string form of an identifier
// and its binary form. Implementations must be side-effect free.
type IDCodec interface {
	// Parse converts a canonical identifier string into an ObjectID.
	// Returns an error wrapping ErrInvalidIdentifier for malformed input.
	Parse(text string) (primitive.ObjectID, error)

	// Render returns the canonical string form of id.
	Render(id primitive.ObjectID) string
}

// objectIDCodec implements IDCodec for MongoDB ObjectIDs.
type objectIDCodec struct{}

// ObjectIDs returns the default IDCodec: 24 lowercase hex characters
// to and from a 12-byte primitive.ObjectID.
func ObjectIDs() IDCodec {
	return objectIDCodec{}
}

// Parse accepts only lowercase hex so that Render(Parse(s)) == s.
func (objectIDCodec) Parse(text string) (primitive.ObjectID, error) {
	if len(text) != hexLen {
		return primitive.NilObjectID, fmt.Errorf("%w: length %d, want %d", ErrInvalidIdentifier, len(text), hexLen)
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return primitive.NilObjectID, fmt.Errorf("%w: invalid character %q at offset %d", ErrInvalidIdentifier, c, i)
		}
	}

	id, err := primitive.ObjectIDFromHex(text)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %v", ErrInvalidIdentifier, err)
	}
	return id, nil
}

func (objectIDCodec) Render(id primitive.ObjectID) string {
	return id.Hex()
}
