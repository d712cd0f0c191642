package biject

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events. Core codecs emit only a creation signal; the
// delegated stages (AEAD, FPE) also emit per-operation signals because they
// are the only stages that do real work worth observing.
var (
	SignalCodecCreated  = capitan.NewSignal("biject.codec.created", "Codec constructed")
	SignalStageStart    = capitan.NewSignal("biject.stage.start", "Delegated stage operation beginning")
	SignalStageComplete = capitan.NewSignal("biject.stage.complete", "Delegated stage operation finished")
)

// Keys for typed event data.
var (
	KeyCodec     = capitan.NewStringKey("codec")
	KeyOperation = capitan.NewStringKey("operation")
	KeySize      = capitan.NewIntKey("size")
	KeyDuration  = capitan.NewDurationKey("duration")
	KeyError     = capitan.NewErrorKey("error")
)

// emitCodecCreated emits an event when a codec is constructed. size carries
// whatever scale parameter the codec has (alphabet size, max length, key
// length); zero when there is none.
func emitCodecCreated(codec string, size int) {
	capitan.Emit(context.Background(), SignalCodecCreated,
		KeyCodec.Field(codec),
		KeySize.Field(size),
	)
}

// emitStageStart emits an event when a delegated stage operation begins.
func emitStageStart(ctx context.Context, codec, operation string, size int) {
	capitan.Emit(ctx, SignalStageStart,
		KeyCodec.Field(codec),
		KeyOperation.Field(operation),
		KeySize.Field(size),
	)
}

// emitStageComplete emits an event when a delegated stage operation finishes.
func emitStageComplete(ctx context.Context, codec, operation string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyCodec.Field(codec),
		KeyOperation.Field(operation),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalStageComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalStageComplete, fields...)
	}
}
