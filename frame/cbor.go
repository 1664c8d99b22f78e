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
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"

	"github.com/blinklabs-io/bytespec/buffer"
)

var (
	cachedDecMode     _cbor.DecMode
	cachedDecModeErr  error
	cachedDecModeOnce sync.Once
)

// getDecMode returns a cached DecMode, initializing it on first use.
// Uses sync.Once for thread-safe lazy initialization.
func getDecMode() (_cbor.DecMode, error) {
	cachedDecModeOnce.Do(func() {
		decOptions := _cbor.DecOptions{
			// This defaults to 32, but nested frame data in the wild can go deeper
			MaxNestedLevels: 256,
		}
		cachedDecMode, cachedDecModeErr = decOptions.DecMode()
	})
	return cachedDecMode, cachedDecModeErr
}

// decodeCbor decodes a single CBOR item starting at the cursor and advances
// the cursor past exactly the bytes that item occupied, leaving any trailing
// data readable by subsequent frames
func decodeCbor(buf *buffer.Buffer, t Type, params ...any) (any, error) {
	if len(params) > 0 {
		return nil, fmt.Errorf(
			"%w: type %s takes no parameters",
			ErrInvalidArgument,
			t,
		)
	}
	decMode, err := getDecMode()
	if err != nil {
		return nil, err
	}
	dec := decMode.NewDecoder(bytes.NewReader(buf.RemainingBytes()))
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("decode CBOR item: %w", err)
	}
	if err := buf.Skip(dec.NumBytesRead()); err != nil {
		return nil, err
	}
	return value, nil
}
