package sfdl

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for descriptor events.
var (
	SignalEncryptStart    = capitan.NewSignal("sfdl.encrypt.start", "Descriptor encryption beginning")
	SignalEncryptComplete = capitan.NewSignal("sfdl.encrypt.complete", "Descriptor encryption finished")
	SignalDecryptStart    = capitan.NewSignal("sfdl.decrypt.start", "Descriptor decryption beginning")
	SignalDecryptComplete = capitan.NewSignal("sfdl.decrypt.complete", "Descriptor decryption finished")
	SignalParseComplete   = capitan.NewSignal("sfdl.parse.complete", "Descriptor decoded")
	SignalWriteComplete   = capitan.NewSignal("sfdl.write.complete", "Descriptor encoded")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyPath        = capitan.NewStringKey("path")
	KeySize        = capitan.NewIntKey("size")
	KeyFieldCount  = capitan.NewIntKey("field_count")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitEncryptStart emits an event when encryption begins.
func emitEncryptStart(ctx context.Context, fields int) {
	capitan.Emit(ctx, SignalEncryptStart,
		KeyFieldCount.Field(fields),
	)
}

// emitEncryptComplete emits an event when encryption finishes.
func emitEncryptComplete(ctx context.Context, fields int, duration time.Duration, err error) {
	out := []capitan.Field{
		KeyFieldCount.Field(fields),
		KeyDuration.Field(duration),
	}
	if err != nil {
		out = append(out, KeyError.Field(err))
		capitan.Error(ctx, SignalEncryptComplete, out...)
	} else {
		capitan.Emit(ctx, SignalEncryptComplete, out...)
	}
}

// emitDecryptStart emits an event when decryption begins.
func emitDecryptStart(ctx context.Context, fields int) {
	capitan.Emit(ctx, SignalDecryptStart,
		KeyFieldCount.Field(fields),
	)
}

// emitDecryptComplete emits an event when decryption finishes.
func emitDecryptComplete(ctx context.Context, fields int, duration time.Duration, err error) {
	out := []capitan.Field{
		KeyFieldCount.Field(fields),
		KeyDuration.Field(duration),
	}
	if err != nil {
		out = append(out, KeyError.Field(err))
		capitan.Error(ctx, SignalDecryptComplete, out...)
	} else {
		capitan.Emit(ctx, SignalDecryptComplete, out...)
	}
}

// emitParseComplete emits an event when a descriptor has been decoded.
func emitParseComplete(ctx context.Context, contentType, path string, size int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyPath.Field(path),
		KeySize.Field(size),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalParseComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalParseComplete, fields...)
	}
}

// emitWriteComplete emits an event when a descriptor has been encoded.
func emitWriteComplete(ctx context.Context, contentType, path string, size int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyPath.Field(path),
		KeySize.Field(size),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalWriteComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalWriteComplete, fields...)
	}
}
