package oidpath

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for oidpath events.
var (
	SignalTransformStart    = capitan.NewSignal("oidpath.transform.start", "Transform beginning")
	SignalTransformComplete = capitan.NewSignal("oidpath.transform.complete", "Transform finished")
	SignalProcessorCreated  = capitan.NewSignal("oidpath.processor.created", "Processor instantiated")
	SignalReceiveStart      = capitan.NewSignal("oidpath.receive.start", "Receive operation beginning")
	SignalReceiveComplete   = capitan.NewSignal("oidpath.receive.complete", "Receive operation finished")
	SignalLoadStart         = capitan.NewSignal("oidpath.load.start", "Load operation beginning")
	SignalLoadComplete      = capitan.NewSignal("oidpath.load.complete", "Load operation finished")
	SignalStoreStart        = capitan.NewSignal("oidpath.store.start", "Store operation beginning")
	SignalStoreComplete     = capitan.NewSignal("oidpath.store.complete", "Store operation finished")
	SignalSendStart         = capitan.NewSignal("oidpath.send.start", "Send operation beginning")
	SignalSendComplete      = capitan.NewSignal("oidpath.send.complete", "Send operation finished")
)

// Keys for typed event data.
var (
	KeyDirection      = capitan.NewStringKey("direction")
	KeyContentType    = capitan.NewStringKey("content_type")
	KeyPathCount      = capitan.NewIntKey("path_count")
	KeyConvertedCount = capitan.NewIntKey("converted_count")
	KeySize           = capitan.NewIntKey("size")
	KeyDuration       = capitan.NewDurationKey("duration")
	KeyError          = capitan.NewErrorKey("error")
)

// emitTransformStart emits an event when a transform begins.
func emitTransformStart(ctx context.Context, dir Direction, paths int) {
	capitan.Emit(ctx, SignalTransformStart,
		KeyDirection.Field(dir.String()),
		KeyPathCount.Field(paths),
	)
}

// emitTransformComplete emits an event when a transform finishes.
func emitTransformComplete(ctx context.Context, dir Direction, paths, converted int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyDirection.Field(dir.String()),
		KeyPathCount.Field(paths),
		KeyConvertedCount.Field(converted),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalTransformComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalTransformComplete, fields...)
	}
}

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType string, paths int) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyPathCount.Field(paths),
	)
}

// emitReceiveStart emits an event when receive begins.
func emitReceiveStart(ctx context.Context, contentType string) {
	capitan.Emit(ctx, SignalReceiveStart,
		KeyContentType.Field(contentType),
	)
}

// emitReceiveComplete emits an event when receive finishes.
func emitReceiveComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalReceiveComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalReceiveComplete, fields...)
	}
}

// emitLoadStart emits an event when load begins.
func emitLoadStart(ctx context.Context, contentType string) {
	capitan.Emit(ctx, SignalLoadStart,
		KeyContentType.Field(contentType),
	)
}

// emitLoadComplete emits an event when load finishes.
func emitLoadComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalLoadComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalLoadComplete, fields...)
	}
}

// emitStoreStart emits an event when store begins.
func emitStoreStart(ctx context.Context, contentType string) {
	capitan.Emit(ctx, SignalStoreStart,
		KeyContentType.Field(contentType),
	)
}

// emitStoreComplete emits an event when store finishes.
func emitStoreComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalStoreComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalStoreComplete, fields...)
	}
}

// emitSendStart emits an event when send begins.
func emitSendStart(ctx context.Context, contentType string) {
	capitan.Emit(ctx, SignalSendStart,
		KeyContentType.Field(contentType),
	)
}

// emitSendComplete emits an event when send finishes.
func emitSendComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSendComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSendComplete, fields...)
	}
}
