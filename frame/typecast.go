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

// Conversions from signed fixed-width reads into the unsigned domain. These
// back the ubyte/uint16/uint32/uint64 frame types and are exported for use
// by custom decoders built on the signed buffer reads. Each maps the full
// two's-complement bit pattern, so -1 becomes the maximum unsigned value of
// the width.

// Uint8FromInt8 reinterprets a signed byte as unsigned (0..255)
func Uint8FromInt8(v int8) uint8 {
	return uint8(v)
}

// Uint16FromInt16 reinterprets a signed 16-bit value as unsigned (0..65535)
func Uint16FromInt16(v int16) uint16 {
	return uint16(v)
}

// Uint32FromInt32 reinterprets a signed 32-bit value as unsigned (0..2^32-1)
func Uint32FromInt32(v int32) uint32 {
	return uint32(v)
}

// Uint64FromInt64 reinterprets a signed 64-bit value as unsigned (0..2^64-1)
func Uint64FromInt64(v int64) uint64 {
	return uint64(v)
}
