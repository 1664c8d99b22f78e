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

package frame_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/blinklabs-io/bytespec/buffer"
	"github.com/blinklabs-io/bytespec/frame"
)

func TestDecodeBlob(t *testing.T) {
	d := frame.New()
	buf := buffer.New([]byte{0x01, 0x01, 0x01, 0x01, 0x02, 0x02})
	result, err := d.DecodeBlob(buf, frame.Spec{
		"a", frame.TypeInt32,
		"b", frame.TypeInt16,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := map[string]any{
		"a": int32(16843009),
		"b": int16(514),
	}
	if !reflect.DeepEqual(result, expected) {
		t.Fatalf(
			"did not decode expected result\n  got:    %#v\n  wanted: %#v",
			result,
			expected,
		)
	}
}

// Fixture shaped like a mux segment header: timestamp, protocol ID, and
// payload length ahead of a length-prefixed payload
func TestDecodeBlobSegmentHeader(t *testing.T) {
	d := frame.New()
	buf := buffer.New([]byte{
		0x12, 0x34, 0x56, 0x78, // timestamp
		0x80, 0x02, // protocol ID (response flag set)
		0x00, 0x03, // payload length
		0xaa, 0xbb, 0xcc, // payload
	})
	result, err := d.DecodeBlob(buf, frame.Spec{
		"timestamp", frame.TypeUint32,
		"protocolId", frame.TypeUint16,
		"payload", frame.D(frame.TypePrefixed, frame.TypeArray, frame.TypeUint16),
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := map[string]any{
		"timestamp":  uint32(0x12345678),
		"protocolId": uint16(0x8002),
		"payload":    []byte{0xaa, 0xbb, 0xcc},
	}
	if !reflect.DeepEqual(result, expected) {
		t.Fatalf(
			"did not decode expected result\n  got:    %#v\n  wanted: %#v",
			result,
			expected,
		)
	}
	if buf.Remaining() != 0 {
		t.Fatalf("expected buffer exhausted, %d bytes remain", buf.Remaining())
	}
}

func TestDecodeBlobOddSpec(t *testing.T) {
	d := frame.New()
	buf := buffer.New([]byte{0x01, 0x02, 0x03, 0x04})
	_, err := d.DecodeBlob(buf, frame.Spec{
		"a", frame.TypeInt16,
		"b",
	})
	if !errors.Is(err, frame.ErrMalformedSpec) {
		t.Fatalf("expected malformed spec error, got %v", err)
	}
	// An odd-length spec fails before any decoding
	if buf.Position() != 0 {
		t.Fatalf("expected zero reads, position is %d", buf.Position())
	}
}

func TestDecodeBlobBogusFieldName(t *testing.T) {
	d := frame.New()
	buf := buffer.New([]byte{0x01, 0x02})
	_, err := d.DecodeBlob(buf, frame.Spec{
		42, frame.TypeInt16,
	})
	if !errors.Is(err, frame.ErrMalformedSpec) {
		t.Fatalf("expected malformed spec error, got %v", err)
	}
}

func TestDecodeBlobBogusDescriptor(t *testing.T) {
	d := frame.New()
	buf := buffer.New([]byte{0x01, 0x02})
	_, err := d.DecodeBlob(buf, frame.Spec{
		"a", 3.14,
	})
	if !errors.Is(err, frame.ErrMalformedSpec) {
		t.Fatalf("expected malformed spec error, got %v", err)
	}
}

func TestDecodeBlobSkipDirective(t *testing.T) {
	d := frame.New()
	buf := buffer.New([]byte{0x01, 0xff, 0xff, 0xff, 0x02, 0x02})
	result, err := d.DecodeBlob(buf, frame.Spec{
		"a", frame.TypeByte,
		frame.SkipBytes, 3,
		"b", frame.TypeInt16,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := map[string]any{
		"a": int8(1),
		"b": int16(514),
	}
	if !reflect.DeepEqual(result, expected) {
		t.Fatalf(
			"did not decode expected result\n  got:    %#v\n  wanted: %#v",
			result,
			expected,
		)
	}
}

// A skip-typed field used as a normal field decodes to Nothing and is
// omitted from the result
func TestDecodeBlobNothingOmitted(t *testing.T) {
	d := frame.New()
	buf := buffer.New([]byte{0xff, 0xff, 0x2a})
	result, err := d.DecodeBlob(buf, frame.Spec{
		"padding", frame.D(frame.TypeSkip, 2),
		"answer", frame.TypeUByte,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, ok := result["padding"]; ok {
		t.Fatalf("expected padding field to be omitted, got %#v", result)
	}
	if result["answer"] != uint8(42) {
		t.Fatalf("expected answer 42, got %#v", result["answer"])
	}
}

// Duplicate field names silently overwrite earlier entries in spec order.
// This pins observed behavior rather than endorsing it.
func TestDecodeBlobDuplicateNames(t *testing.T) {
	d := frame.New()
	buf := buffer.New([]byte{0x01, 0x02})
	result, err := d.DecodeBlob(buf, frame.Spec{
		"a", frame.TypeByte,
		"a", frame.TypeByte,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected single entry, got %#v", result)
	}
	if result["a"] != int8(2) {
		t.Fatalf("expected later field to win, got %#v", result["a"])
	}
	// Both fields still consumed their bytes
	if buf.Remaining() != 0 {
		t.Fatalf("expected buffer exhausted, %d bytes remain", buf.Remaining())
	}
}

func TestDecodeBlobStruct(t *testing.T) {
	d := frame.New()
	buf := buffer.New([]byte{0x2a, 0x00, 0x05, 'M', 'A', 'G', 'I', 'C', 0x01})
	result, err := d.DecodeBlob(buf, frame.Spec{
		"id", frame.TypeUByte,
		"header", frame.D(frame.TypeStruct, frame.Spec{
			"length", frame.TypeUint16,
			"magic", frame.D(frame.TypeString, 5),
		}),
		"version", frame.TypeUByte,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := map[string]any{
		"id": uint8(42),
		"header": map[string]any{
			"length": uint16(5),
			"magic":  "MAGIC",
		},
		"version": uint8(1),
	}
	if !reflect.DeepEqual(result, expected) {
		t.Fatalf(
			"did not decode expected result\n  got:    %#v\n  wanted: %#v",
			result,
			expected,
		)
	}
}

func TestDecodeBlobErrorDiscardsPartialResult(t *testing.T) {
	d := frame.New()
	buf := buffer.New([]byte{0x01, 0x02})
	result, err := d.DecodeBlob(buf, frame.Spec{
		"a", frame.TypeByte,
		"b", frame.TypeInt32,
	})
	if !errors.Is(err, buffer.ErrOutOfBounds) {
		t.Fatalf("expected out of bounds error, got %v", err)
	}
	if result != nil {
		t.Fatalf("expected no partial result, got %#v", result)
	}
}

// Decoding a slice's fields and then the rest of the source must be
// observationally equivalent to decoding all fields from the source directly
func TestDecodeBlobSliceEquivalence(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	spec := frame.Spec{
		"a", frame.TypeInt16,
		"b", frame.TypeInt32,
		"c", frame.TypeInt16,
	}
	d := frame.New()

	direct, err := d.DecodeBlob(buffer.New(data), spec)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	buf := buffer.New(data)
	sub, err := buf.Slice(6)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	viaSlice, err := d.DecodeBlob(sub, frame.Spec{
		"a", frame.TypeInt16,
		"b", frame.TypeInt32,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	rest, err := d.DecodeBlob(buf, frame.Spec{
		"c", frame.TypeInt16,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for k, v := range rest {
		viaSlice[k] = v
	}
	if !reflect.DeepEqual(direct, viaSlice) {
		t.Fatalf(
			"slicing changed the decode\n  direct:    %#v\n  via slice: %#v",
			direct,
			viaSlice,
		)
	}
}

func TestDecodeBlobSliceField(t *testing.T) {
	d := frame.New()
	buf := buffer.New([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	result, err := d.DecodeBlob(buf, frame.Spec{
		"head", frame.TypeByte,
		"body", frame.D(frame.TypeSlice, 3),
		"tail", frame.TypeByte,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	body, ok := result["body"].(*buffer.Buffer)
	if !ok {
		t.Fatalf("expected buffer slice, got %T", result["body"])
	}
	if body.Len() != 3 || body.Position() != 0 {
		t.Fatalf(
			"expected fresh 3-byte slice, got limit %d position %d",
			body.Len(),
			body.Position(),
		)
	}
	if result["tail"] != int8(5) {
		t.Fatalf("expected tail decoded past slice, got %#v", result["tail"])
	}
	// The nested slice decodes independently of the outer buffer
	nested, err := d.DecodeBlob(body, frame.Spec{
		"x", frame.TypeUByte,
		"y", frame.TypeUint16,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := map[string]any{
		"x": uint8(2),
		"y": uint16(0x0304),
	}
	if !reflect.DeepEqual(nested, expected) {
		t.Fatalf(
			"did not decode expected result\n  got:    %#v\n  wanted: %#v",
			nested,
			expected,
		)
	}
}

func TestDecodeBlobDescriptorForms(t *testing.T) {
	d := frame.New()
	buf := buffer.New([]byte{'h', 'i', 0x01, 0x02})
	// Descriptor and []any forms are interchangeable
	result, err := d.DecodeBlob(buf, frame.Spec{
		"greeting", []any{frame.TypeString, 2},
		"a", frame.D(frame.TypeByte),
		"b", "byte",
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := map[string]any{
		"greeting": "hi",
		"a":        int8(1),
		"b":        int8(2),
	}
	if !reflect.DeepEqual(result, expected) {
		t.Fatalf(
			"did not decode expected result\n  got:    %#v\n  wanted: %#v",
			result,
			expected,
		)
	}
}
