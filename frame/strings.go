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
	"bytes"
	"fmt"

	"github.com/blinklabs-io/bytespec/buffer"
)

// BytePredicate reports whether a byte terminates a pred-string read
type BytePredicate func(b byte) bool

func decodeString(buf *buffer.Buffer, t Type, params ...any) (any, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf(
			"%w: type %s requires a length parameter",
			ErrInvalidArgument,
			t,
		)
	}
	length, err := intParam(params[0])
	if err != nil {
		return nil, err
	}
	data, err := buf.ReadBytes(length)
	if err != nil {
		return nil, err
	}
	// No trimming: the string is exactly the bytes read
	return string(data), nil
}

func decodeArray(buf *buffer.Buffer, t Type, params ...any) (any, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf(
			"%w: type %s requires a length parameter",
			ErrInvalidArgument,
			t,
		)
	}
	length, err := intParam(params[0])
	if err != nil {
		return nil, err
	}
	return buf.ReadBytes(length)
}

// readUntil consumes bytes until pred holds on one. The terminating byte is
// consumed but excluded from the returned data; running out of bytes before
// the predicate holds is an out-of-bounds error.
func readUntil(buf *buffer.Buffer, pred BytePredicate) ([]byte, error) {
	var data []byte
	for {
		b, err := buf.GetUint8()
		if err != nil {
			return nil, err
		}
		if pred(b) {
			return data, nil
		}
		data = append(data, b)
	}
}

func decodeCString(buf *buffer.Buffer, t Type, params ...any) (any, error) {
	if len(params) > 0 {
		return nil, fmt.Errorf(
			"%w: type %s takes no parameters",
			ErrInvalidArgument,
			t,
		)
	}
	return decodePredString(buf, TypePredString, BytePredicate(func(b byte) bool {
		return b == 0
	}))
}

func decodePredString(buf *buffer.Buffer, t Type, params ...any) (any, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf(
			"%w: type %s requires a predicate parameter",
			ErrInvalidArgument,
			t,
		)
	}
	var pred BytePredicate
	switch v := params[0].(type) {
	case BytePredicate:
		pred = v
	case func(b byte) bool:
		pred = v
	default:
		return nil, fmt.Errorf(
			"%w: expected byte predicate, got %T",
			ErrInvalidArgument,
			params[0],
		)
	}
	data, err := readUntil(buf, pred)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func decodeDelimitedString(
	buf *buffer.Buffer,
	t Type,
	params ...any,
) (any, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf(
			"%w: type %s requires a delimiter set parameter",
			ErrInvalidArgument,
			t,
		)
	}
	var delimiters []byte
	switch v := params[0].(type) {
	case string:
		delimiters = []byte(v)
	case []byte:
		delimiters = v
	default:
		return nil, fmt.Errorf(
			"%w: expected delimiter string or bytes, got %T",
			ErrInvalidArgument,
			params[0],
		)
	}
	return decodePredString(
		buf,
		TypePredString,
		BytePredicate(func(b byte) bool {
			return bytes.IndexByte(delimiters, b) >= 0
		}),
	)
}
