// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package frame implements the frame decoding engine: an open registry
// mapping type tags to decode functions over a cursor-bearing buffer, and the
// spec evaluator that walks an ordered field list and assembles a key-value
// result. Custom type tags can be registered alongside the built-ins and are
// dispatched through the same path.
package frame

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/blinklabs-io/bytespec/buffer"
)

// Type is a frame type tag. The built-in tags are defined as constants below;
// custom tags can use any value not already registered.
type Type string

const (
	TypeByte   Type = "byte"
	TypeInt16  Type = "int16"
	TypeInt32  Type = "int32"
	TypeInt64  Type = "int64"
	TypeUByte  Type = "ubyte"
	TypeUint16 Type = "uint16"
	TypeUint32 Type = "uint32"
	TypeUint64 Type = "uint64"

	TypeFloat16 Type = "float16"
	TypeFloat32 Type = "float32"
	TypeFloat64 Type = "float64"

	TypeUvarint Type = "uvarint"
	TypeVarint  Type = "varint"

	TypeString          Type = "string"
	TypeArray           Type = "array"
	TypeCString         Type = "c-string"
	TypePredString      Type = "pred-string"
	TypeDelimitedString Type = "delimited-string"

	TypePrefixed Type = "prefixed"
	TypeSkip     Type = "skip"
	TypeSlice    Type = "slice"
	TypeStruct   Type = "struct"
	TypeSequence Type = "sequence"

	TypeCbor Type = "cbor"
)

var (
	// ErrUnknownType is returned when a type tag has no registered decoder
	ErrUnknownType = errors.New("unknown frame type")

	// ErrInvalidArgument is returned when a decoder receives parameters it
	// cannot use, such as a missing predicate or a negative length
	ErrInvalidArgument = errors.New("invalid argument")
)

// DecodeFunc decodes a single frame from the buffer, advancing its cursor.
// It receives the tag it was dispatched under, which lets one function back
// multiple related tags. Returning Nothing indicates the frame produced no
// value (the spec evaluator omits such fields from its result).
type DecodeFunc func(buf *buffer.Buffer, t Type, params ...any) (any, error)

// Decoder holds a frame type registry. The zero value is not usable; create
// instances with New. Registration is mutex-guarded so decoders may be
// registered from init code, but a single buffer must still only be decoded
// from by one logical reader at a time.
type Decoder struct {
	mutex  sync.RWMutex
	types  map[Type]DecodeFunc
	logger *slog.Logger
}

// New returns a Decoder with all built-in frame types registered
func New(options ...DecoderOptionFunc) *Decoder {
	d := &Decoder{
		types: map[Type]DecodeFunc{},
	}
	d.registerBuiltins()
	for _, option := range options {
		option(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

func (d *Decoder) registerBuiltins() {
	for _, t := range []Type{
		TypeByte, TypeInt16, TypeInt32, TypeInt64,
		TypeUByte, TypeUint16, TypeUint32, TypeUint64,
		TypeFloat16, TypeFloat32, TypeFloat64,
		TypeUvarint, TypeVarint,
	} {
		d.types[t] = decodeNumeric
	}
	d.types[TypeString] = decodeString
	d.types[TypeArray] = decodeArray
	d.types[TypeCString] = decodeCString
	d.types[TypePredString] = decodePredString
	d.types[TypeDelimitedString] = decodeDelimitedString
	d.types[TypePrefixed] = d.decodePrefixed
	d.types[TypeSkip] = decodeSkip
	d.types[TypeSlice] = decodeSlice
	d.types[TypeStruct] = d.decodeStruct
	d.types[TypeSequence] = d.decodeSequence
	d.types[TypeCbor] = decodeCbor
}

// RegisterType adds a decode function for the given type tag, replacing any
// existing entry. Registered tags are dispatched exactly like built-ins.
func (d *Decoder) RegisterType(t Type, fn DecodeFunc) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.types[t] = fn
}

func (d *Decoder) lookup(t Type) (DecodeFunc, bool) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	fn, ok := d.types[t]
	return fn, ok
}

// Decode decodes a single frame of the given type from the buffer, advancing
// its cursor. Params are interpreted per type; see the package documentation
// for the built-in tags.
func (d *Decoder) Decode(
	buf *buffer.Buffer,
	t Type,
	params ...any,
) (any, error) {
	fn, ok := d.lookup(t)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
	d.logger.Debug(
		"decoding frame",
		"component", "bytespec",
		"type", string(t),
		"position", buf.Position(),
	)
	return fn(buf, t, params...)
}

// intParam coerces a length/count parameter of any Go integer kind into an
// int, rejecting negatives and values that do not fit
func intParam(param any) (int, error) {
	switch v := param.(type) {
	case int:
		if v < 0 {
			return 0, fmt.Errorf("%w: negative length %d", ErrInvalidArgument, v)
		}
		return v, nil
	case int8:
		return intParam(int64(v))
	case int16:
		return intParam(int64(v))
	case int32:
		return intParam(int64(v))
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("%w: negative length %d", ErrInvalidArgument, v)
		}
		if v > math.MaxInt {
			return 0, fmt.Errorf("%w: length %d too large", ErrInvalidArgument, v)
		}
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		if v > uint64(math.MaxInt) {
			return 0, fmt.Errorf("%w: length %d too large", ErrInvalidArgument, v)
		}
		return int(v), nil
	case uint:
		return intParam(uint64(v))
	default:
		return 0, fmt.Errorf(
			"%w: expected integer length, got %T",
			ErrInvalidArgument,
			param,
		)
	}
}
