package oidpath

import (
	"context"
	"time"
)

// Option configures a Transformer.
type Option func(*config)

type config struct {
	paths    []string
	ids      IDCodec
	maxDepth int
}

// WithPaths sets the dot-separated field paths to convert.
// Without this option the Transformer converts DefaultPath only.
func WithPaths(paths ...string) Option {
	return func(c *config) {
		c.paths = append(c.paths[:0:0], paths...)
	}
}

// WithIDCodec replaces the identifier codec. Defaults to ObjectIDs().
func WithIDCodec(ids IDCodec) Option {
	return func(c *config) {
		c.ids = ids
	}
}

// WithMaxDepth limits how deeply nested containers on a target path may
// be. Zero means unlimited. Substructure no path reaches is copied without
// counting towards the limit.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

// Transformer converts identifier fields of documents at a fixed set of
// paths. It is immutable after construction and safe for concurrent use.
type Transformer struct {
	spec     PathSpec
	ids      IDCodec
	maxDepth int
}

// NewTransformer creates a Transformer. Invalid paths fail with
// ErrInvalidPathSpec before any document is seen.
func NewTransformer(opts ...Option) (*Transformer, error) {
	cfg := config{ids: ObjectIDs()}
	for _, opt := range opts {
		opt(&cfg)
	}

	spec, err := ParsePaths(cfg.paths...)
	if err != nil {
		return nil, err
	}
	if cfg.ids == nil {
		cfg.ids = ObjectIDs()
	}

	return &Transformer{
		spec:     spec,
		ids:      cfg.ids,
		maxDepth: cfg.maxDepth,
	}, nil
}

// Paths returns the configured paths in dotted form, sorted.
func (t *Transformer) Paths() []string {
	return t.spec.Strings()
}

// Encode returns a copy of doc with the canonical identifier strings at
// the configured paths replaced by ObjectIDs. A bare string doc is parsed
// directly.
func (t *Transformer) Encode(ctx context.Context, doc any) (any, error) {
	return t.Transform(ctx, doc, DirectionEncode)
}

// Decode returns a copy of doc with the ObjectIDs at the configured paths
// replaced by their canonical strings. A bare ObjectID doc is rendered
// directly.
func (t *Transformer) Decode(ctx context.Context, doc any) (any, error) {
	return t.Transform(ctx, doc, DirectionDecode)
}

// Transform converts doc in the given direction. The input is never
// modified and the result shares no mutable state with it. On error no
// document is returned.
func (t *Transformer) Transform(ctx context.Context, doc any, dir Direction) (any, error) {
	start := time.Now()
	emitTransformStart(ctx, dir, t.spec.Len())

	w := &walker{ids: t.ids, dir: dir, maxDepth: t.maxDepth}
	out, err := w.walk(doc, t.spec.asRoot(), "", 0)

	emitTransformComplete(ctx, dir, t.spec.Len(), w.converted, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}
