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

package frame

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/bytespec/buffer"
)

// ErrSequenceExhausted is returned by Sequence.Next once the underlying
// buffer has no bytes remaining
var ErrSequenceExhausted = errors.New("sequence exhausted")

// Sequence lazily decodes a homogeneous element type until the underlying
// buffer is exhausted. It is single-pass and bound to the buffer's shared
// cursor: position state lives in the cursor, not the sequence, so partially
// consuming a sequence and then reading the buffer directly resumes at the
// next unconsumed byte. For the same reason a partially consumed sequence
// cannot be iterated again; create a new one over a fresh slice instead.
type Sequence struct {
	decoder *Decoder
	buf     *buffer.Buffer
	elem    Type
	params  []any
}

// More reports whether any bytes remain to decode
func (s *Sequence) More() bool {
	return s.buf.Remaining() > 0
}

// Next decodes and returns the next element, advancing the shared cursor.
// Returns ErrSequenceExhausted once the buffer is empty.
func (s *Sequence) Next() (any, error) {
	if !s.More() {
		return nil, ErrSequenceExhausted
	}
	return s.decoder.Decode(s.buf, s.elem, s.params...)
}

// Collect drains the remaining elements into a slice. Elements consumed
// before the call are not included.
func (s *Sequence) Collect() ([]any, error) {
	var ret []any
	for s.More() {
		value, err := s.decoder.Decode(s.buf, s.elem, s.params...)
		if err != nil {
			return nil, err
		}
		ret = append(ret, value)
	}
	return ret, nil
}

func (d *Decoder) decodeSequence(
	buf *buffer.Buffer,
	t Type,
	params ...any,
) (any, error) {
	if len(params) < 1 {
		return nil, fmt.Errorf(
			"%w: type %s requires an element type parameter",
			ErrInvalidArgument,
			t,
		)
	}
	elemType, elemParams, err := resolveDescriptor(params[0])
	if err != nil {
		return nil, err
	}
	elemParams = append(elemParams, params[1:]...)
	return &Sequence{
		decoder: d,
		buf:     buf,
		elem:    elemType,
		params:  elemParams,
	}, nil
}

// DecodeBlobArray decodes the buffer as a lazy sequence of the given element
// type. It is equivalent to decoding a single sequence frame.
func (d *Decoder) DecodeBlobArray(
	buf *buffer.Buffer,
	elem Type,
	params ...any,
) (*Sequence, error) {
	seqParams := append([]any{elem}, params...)
	value, err := d.Decode(buf, TypeSequence, seqParams...)
	if err != nil {
		return nil, err
	}
	seq, ok := value.(*Sequence)
	if !ok {
		return nil, fmt.Errorf(
			"sequence decoder returned unexpected type %T",
			value,
		)
	}
	return seq, nil
}
