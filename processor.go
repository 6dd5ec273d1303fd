package oidpath

import (
	"context"
	"time"
)

// Processor converts identifiers where documents cross a boundary.
// Use Receive/Load for ingress and Store/Send for egress.
//
// Receive and Store produce ObjectIDs, Load and Send produce canonical
// strings. Documents are generic values; see the package documentation.
//
// Processors are immutable and safe for concurrent use.
type Processor struct {
	codec       Codec
	transformer *Transformer
}

// NewProcessor creates a Processor for codec. Options configure the
// underlying Transformer.
func NewProcessor(codec Codec, opts ...Option) (*Processor, error) {
	t, err := NewTransformer(opts...)
	if err != nil {
		return nil, err
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), t.spec.Len())
	return &Processor{codec: codec, transformer: t}, nil
}

// Transformer returns the Transformer used by the processor.
func (p *Processor) Transformer() *Transformer {
	return p.transformer
}

// Receive unmarshals an external payload and encodes its identifiers.
// Use for data coming from external sources (API requests, events).
func (p *Processor) Receive(ctx context.Context, data []byte) (any, error) {
	start := time.Now()
	emitReceiveStart(ctx, p.codec.ContentType())

	doc, err := p.ingress(ctx, data, DirectionEncode)
	emitReceiveComplete(ctx, p.codec.ContentType(), len(data), time.Since(start), err)
	return doc, err
}

// Load unmarshals stored data and decodes its identifiers.
// Use for data coming from storage (database, cache).
func (p *Processor) Load(ctx context.Context, data []byte) (any, error) {
	start := time.Now()
	emitLoadStart(ctx, p.codec.ContentType())

	doc, err := p.ingress(ctx, data, DirectionDecode)
	emitLoadComplete(ctx, p.codec.ContentType(), len(data), time.Since(start), err)
	return doc, err
}

// Store encodes the identifiers of doc and marshals the result.
// Use for data going to storage.
func (p *Processor) Store(ctx context.Context, doc any) ([]byte, error) {
	start := time.Now()
	emitStoreStart(ctx, p.codec.ContentType())

	data, err := p.egress(ctx, doc, DirectionEncode)
	emitStoreComplete(ctx, p.codec.ContentType(), len(data), time.Since(start), err)
	return data, err
}

// Send decodes the identifiers of doc and marshals the result.
// Use for data going to external destinations (API responses, events).
func (p *Processor) Send(ctx context.Context, doc any) ([]byte, error) {
	start := time.Now()
	emitSendStart(ctx, p.codec.ContentType())

	data, err := p.egress(ctx, doc, DirectionDecode)
	emitSendComplete(ctx, p.codec.ContentType(), len(data), time.Since(start), err)
	return data, err
}

func (p *Processor) ingress(ctx context.Context, data []byte, dir Direction) (any, error) {
	var doc any
	if err := p.codec.Unmarshal(data, &doc); err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	return p.transformer.Transform(ctx, doc, dir)
}

func (p *Processor) egress(ctx context.Context, doc any, dir Direction) ([]byte, error) {
	out, err := p.transformer.Transform(ctx, doc, dir)
	if err != nil {
		return nil, err
	}
	data, err := p.codec.Marshal(out)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}
