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

// ErrMalformedSpec is returned when a spec does not flatten to an even-length
// field list or a field descriptor has an unusable form
var ErrMalformedSpec = errors.New("malformed spec")

// Spec is an ordered field list: alternating field names and type
// descriptors, flattened into a single even-length slice. A field name is a
// string, or the SkipBytes sentinel paired with a byte count. A descriptor is
// a bare Type, a Descriptor, or a []any of a Type followed by its parameters.
type Spec []any

// Descriptor pairs a type tag with its decode parameters
type Descriptor struct {
	Type   Type
	Params []any
}

// D builds a parameterized type descriptor for use in a Spec
func D(t Type, params ...any) Descriptor {
	return Descriptor{
		Type:   t,
		Params: params,
	}
}

type skipDirective struct{}

// SkipBytes is the field-name sentinel for skip directives in a Spec. Its
// descriptor position holds the byte count to skip; the field contributes no
// entry to the decoded result.
var SkipBytes = skipDirective{}

// NothingType is the type of the Nothing sentinel
type NothingType struct{}

// Nothing is the explicit "no value" result. The skip decoder returns it, and
// custom decoders may return it to have the spec evaluator omit their field
// from the decoded result. It is a distinct value rather than nil so that an
// omitted field cannot be confused with a legitimately decoded zero or empty
// value.
var Nothing = NothingType{}

// IsNothing reports whether a decoded value is the Nothing sentinel
func IsNothing(value any) bool {
	_, ok := value.(NothingType)
	return ok
}

// resolveDescriptor normalizes the accepted descriptor forms into a type tag
// plus positional parameters
func resolveDescriptor(descriptor any) (Type, []any, error) {
	switch v := descriptor.(type) {
	case Type:
		return v, nil, nil
	case string:
		return Type(v), nil, nil
	case Descriptor:
		return v.Type, v.Params, nil
	case []any:
		if len(v) == 0 {
			return "", nil, fmt.Errorf(
				"%w: empty type descriptor",
				ErrMalformedSpec,
			)
		}
		t, params, err := resolveDescriptor(v[0])
		if err != nil {
			return "", nil, err
		}
		if len(params) > 0 {
			return "", nil, fmt.Errorf(
				"%w: nested parameterized descriptor",
				ErrMalformedSpec,
			)
		}
		return t, v[1:], nil
	default:
		return "", nil, fmt.Errorf(
			"%w: unusable type descriptor %T",
			ErrMalformedSpec,
			descriptor,
		)
	}
}

// DecodeBlob evaluates a spec against the buffer, decoding each field in
// order and assembling the results into a map. Fields are decoded strictly
// left to right, since each field's byte offset depends on the bytes consumed
// by the fields before it. Skip directives and fields decoding to Nothing
// contribute no entry. Duplicate field names silently overwrite earlier
// entries. An odd-length spec fails before any bytes are read; any decode
// error aborts the call with no partial result.
func (d *Decoder) DecodeBlob(
	buf *buffer.Buffer,
	spec Spec,
) (map[string]any, error) {
	if len(spec)%2 != 0 {
		return nil, fmt.Errorf(
			"%w: odd-length field list (%d elements)",
			ErrMalformedSpec,
			len(spec),
		)
	}
	ret := map[string]any{}
	for i := 0; i < len(spec); i += 2 {
		if _, ok := spec[i].(skipDirective); ok {
			count, err := intParam(spec[i+1])
			if err != nil {
				return nil, err
			}
			if _, err := d.Decode(buf, TypeSkip, count); err != nil {
				return nil, err
			}
			continue
		}
		key, ok := spec[i].(string)
		if !ok {
			return nil, fmt.Errorf(
				"%w: field name must be a string, got %T",
				ErrMalformedSpec,
				spec[i],
			)
		}
		t, params, err := resolveDescriptor(spec[i+1])
		if err != nil {
			return nil, err
		}
		value, err := d.Decode(buf, t, params...)
		if err != nil {
			return nil, err
		}
		if IsNothing(value) {
			continue
		}
		ret[key] = value
	}
	return ret, nil
}

func decodeSkip(buf *buffer.Buffer, t Type, params ...any) (any, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf(
			"%w: type %s requires a byte count parameter",
			ErrInvalidArgument,
			t,
		)
	}
	count, err := intParam(params[0])
	if err != nil {
		return nil, err
	}
	if err := buf.Skip(count); err != nil {
		return nil, err
	}
	return Nothing, nil
}

func decodeSlice(buf *buffer.Buffer, t Type, params ...any) (any, error) {
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
	return buf.Slice(length)
}

// decodePrefixed reads a length using the prefix type's decoder, then decodes
// the data type with that length as its first parameter. Any extra params are
// passed to the data type after the length.
func (d *Decoder) decodePrefixed(
	buf *buffer.Buffer,
	t Type,
	params ...any,
) (any, error) {
	if len(params) < 2 {
		return nil, fmt.Errorf(
			"%w: type %s requires data and prefix type parameters",
			ErrInvalidArgument,
			t,
		)
	}
	dataType, dataParams, err := resolveDescriptor(params[0])
	if err != nil {
		return nil, err
	}
	if len(dataParams) > 0 {
		return nil, fmt.Errorf(
			"%w: prefixed data type must not carry its own length",
			ErrInvalidArgument,
		)
	}
	prefixType, prefixParams, err := resolveDescriptor(params[1])
	if err != nil {
		return nil, err
	}
	rawLength, err := d.Decode(buf, prefixType, prefixParams...)
	if err != nil {
		return nil, err
	}
	length, err := intParam(rawLength)
	if err != nil {
		return nil, err
	}
	dataParams = append([]any{length}, params[2:]...)
	return d.Decode(buf, dataType, dataParams...)
}

func (d *Decoder) decodeStruct(
	buf *buffer.Buffer,
	t Type,
	params ...any,
) (any, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf(
			"%w: type %s requires a nested spec parameter",
			ErrInvalidArgument,
			t,
		)
	}
	var nested Spec
	switch v := params[0].(type) {
	case Spec:
		nested = v
	case []any:
		nested = Spec(v)
	default:
		return nil, fmt.Errorf(
			"%w: expected nested spec, got %T",
			ErrInvalidArgument,
			params[0],
		)
	}
	return d.DecodeBlob(buf, nested)
}
