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
	"log/slog"
)

// DecoderOptionFunc is a type that represents functions that modify the Decoder config
type DecoderOptionFunc func(*Decoder)

// WithLogger specifies the slog logger to use for decode tracing. If none is
// provided, slog.Default() is used
func WithLogger(logger *slog.Logger) DecoderOptionFunc {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// WithType registers a custom frame type at construction time
func WithType(t Type, fn DecodeFunc) DecoderOptionFunc {
	return func(d *Decoder) {
		d.types[t] = fn
	}
}
