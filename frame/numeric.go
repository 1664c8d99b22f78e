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
	"encoding/binary"
	"fmt"

	"github.com/blinklabs-io/bytespec/buffer"
	"github.com/x448/float16"
)

// decodeNumeric backs all fixed-width numeric tags plus the varint tags. The
// signed tags return the read value directly; the unsigned tags reinterpret
// the signed read through the typecast helpers, so a custom decoder built on
// the signed reads can reuse the same conversions.
func decodeNumeric(buf *buffer.Buffer, t Type, params ...any) (any, error) {
	if len(params) > 0 {
		return nil, fmt.Errorf(
			"%w: type %s takes no parameters, got %d",
			ErrInvalidArgument,
			t,
			len(params),
		)
	}
	switch t {
	case TypeByte:
		v, err := buf.GetInt8()
		if err != nil {
			return nil, err
		}
		return v, nil
	case TypeInt16:
		v, err := buf.GetInt16()
		if err != nil {
			return nil, err
		}
		return v, nil
	case TypeInt32:
		v, err := buf.GetInt32()
		if err != nil {
			return nil, err
		}
		return v, nil
	case TypeInt64:
		v, err := buf.GetInt64()
		if err != nil {
			return nil, err
		}
		return v, nil
	case TypeUByte:
		v, err := buf.GetInt8()
		if err != nil {
			return nil, err
		}
		return Uint8FromInt8(v), nil
	case TypeUint16:
		v, err := buf.GetInt16()
		if err != nil {
			return nil, err
		}
		return Uint16FromInt16(v), nil
	case TypeUint32:
		v, err := buf.GetInt32()
		if err != nil {
			return nil, err
		}
		return Uint32FromInt32(v), nil
	case TypeUint64:
		v, err := buf.GetInt64()
		if err != nil {
			return nil, err
		}
		return Uint64FromInt64(v), nil
	case TypeFloat16:
		v, err := buf.GetUint16()
		if err != nil {
			return nil, err
		}
		return float16.Frombits(v).Float32(), nil
	case TypeFloat32:
		v, err := buf.GetFloat32()
		if err != nil {
			return nil, err
		}
		return v, nil
	case TypeFloat64:
		v, err := buf.GetFloat64()
		if err != nil {
			return nil, err
		}
		return v, nil
	case TypeUvarint:
		v, n := binary.Uvarint(buf.RemainingBytes())
		if err := checkVarint(buf, n); err != nil {
			return nil, err
		}
		if err := buf.Skip(n); err != nil {
			return nil, err
		}
		return v, nil
	case TypeVarint:
		v, n := binary.Varint(buf.RemainingBytes())
		if err := checkVarint(buf, n); err != nil {
			return nil, err
		}
		if err := buf.Skip(n); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
}

func checkVarint(buf *buffer.Buffer, n int) error {
	if n == 0 {
		return fmt.Errorf(
			"%w: truncated varint at position %d",
			buffer.ErrOutOfBounds,
			buf.Position(),
		)
	}
	if n < 0 {
		return fmt.Errorf(
			"varint at position %d overflows 64 bits",
			buf.Position(),
		)
	}
	return nil
}
