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

// Package bytespec is a declarative binary-buffer decoding toolkit. A caller
// provides a byte buffer and a spec (an ordered list of field-name/type
// pairs) and gets back a map of typed values. Decoding is partial and
// iterative: the buffer's cursor is the sole source of position state, so a
// few fields can be decoded, a sub-region sliced off and handed to a nested
// decode, and decoding of the outer buffer resumed afterwards.
//
// This package is a thin convenience surface over the buffer and frame
// packages, backed by a shared default decoder. Create a dedicated
// frame.Decoder instead when registering custom types that should not be
// visible process-wide.
package bytespec

import (
	"encoding/binary"

	"github.com/blinklabs-io/bytespec/buffer"
	"github.com/blinklabs-io/bytespec/frame"
)

// Re-exported types for convenience
type (
	Buffer     = buffer.Buffer
	Decoder    = frame.Decoder
	Type       = frame.Type
	Spec       = frame.Spec
	Descriptor = frame.Descriptor
	DecodeFunc = frame.DecodeFunc
	Sequence   = frame.Sequence
)

// SkipBytes is the spec field-name sentinel for skip directives
var SkipBytes = frame.SkipBytes

// Nothing is the explicit "no value" decode result
var Nothing = frame.Nothing

// defaultDecoder backs the package-level decode functions
var defaultDecoder = frame.New()

// NewBuffer returns a cursor buffer over data using big-endian byte order
func NewBuffer(data []byte) *Buffer {
	return buffer.New(data)
}

// NewBufferWithOrder returns a cursor buffer over data using the given byte order
func NewBufferWithOrder(data []byte, order binary.ByteOrder) *Buffer {
	return buffer.NewWithOrder(data, order)
}

// D builds a parameterized type descriptor for use in a Spec
func D(t Type, params ...any) Descriptor {
	return frame.D(t, params...)
}

// Decode decodes a single frame of the given type using the default decoder
func Decode(buf *Buffer, t Type, params ...any) (any, error) {
	return defaultDecoder.Decode(buf, t, params...)
}

// DecodeBlob evaluates a spec against the buffer using the default decoder
func DecodeBlob(buf *Buffer, spec Spec) (map[string]any, error) {
	return defaultDecoder.DecodeBlob(buf, spec)
}

// DecodeBlobArray decodes the buffer as a lazy sequence of the given element
// type using the default decoder
func DecodeBlobArray(
	buf *Buffer,
	elem Type,
	params ...any,
) (*Sequence, error) {
	return defaultDecoder.DecodeBlobArray(buf, elem, params...)
}

// RegisterType adds a custom frame type to the default decoder. The
// registered tag is dispatched exactly like the built-ins.
func RegisterType(t Type, fn DecodeFunc) {
	defaultDecoder.RegisterType(t, fn)
}
