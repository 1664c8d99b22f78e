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
	"encoding/hex"
	"reflect"
	"testing"

	"github.com/blinklabs-io/bytespec/buffer"
	"github.com/blinklabs-io/bytespec/frame"
)

type cborTestDefinition struct {
	Name    string
	CborHex string
	Value   any
}

var cborTests = []cborTestDefinition{
	{
		Name:    "List",
		CborHex: "83010203",
		Value:   []any{uint64(1), uint64(2), uint64(3)},
	},
	{
		Name:    "TextString",
		CborHex: "654d41474943",
		Value:   "MAGIC",
	},
	{
		Name:    "Uint",
		CborHex: "1864",
		Value:   uint64(100),
	},
	{
		Name:    "Map",
		CborHex: "a2616101616204",
		Value: map[any]any{
			"a": uint64(1),
			"b": uint64(4),
		},
	},
}

func TestDecodeCborFrame(t *testing.T) {
	d := frame.New()
	for _, test := range cborTests {
		t.Run(test.Name, func(t *testing.T) {
			cborData, err := hex.DecodeString(test.CborHex)
			if err != nil {
				t.Fatalf("failed to decode CBOR hex: %s", err)
			}
			buf := buffer.New(cborData)
			value, err := d.Decode(buf, frame.TypeCbor)
			if err != nil {
				t.Fatalf("failed to decode CBOR: %s", err)
			}
			if !reflect.DeepEqual(value, test.Value) {
				t.Fatalf(
					"CBOR did not decode to expected value\n  got:    %#v\n  wanted: %#v",
					value,
					test.Value,
				)
			}
		})
	}
}

// The cursor advances past exactly one CBOR item, leaving trailing data for
// subsequent frames
func TestDecodeCborFrameTrailingData(t *testing.T) {
	cborData, err := hex.DecodeString("8101" + "0002")
	if err != nil {
		t.Fatalf("failed to decode CBOR hex: %s", err)
	}
	d := frame.New()
	buf := buffer.New(cborData)
	result, err := d.DecodeBlob(buf, frame.Spec{
		"item", frame.TypeCbor,
		"trailer", frame.TypeInt16,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := map[string]any{
		"item":    []any{uint64(1)},
		"trailer": int16(2),
	}
	if !reflect.DeepEqual(result, expected) {
		t.Fatalf(
			"did not decode expected result\n  got:    %#v\n  wanted: %#v",
			result,
			expected,
		)
	}
}
