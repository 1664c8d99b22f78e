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

// Package buffer provides a cursor-bearing byte buffer for sequential binary
// decoding. A Buffer wraps a fixed byte region with a mutable read position
// and a configured byte order; all reads advance the position and fail once
// fewer bytes remain than requested.
package buffer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOutOfBounds is returned when a read or skip would consume more bytes
	// than remain in the buffer's readable region
	ErrOutOfBounds = errors.New("read out of bounds")

	// ErrInvalidLength is returned when a negative byte count is requested
	ErrInvalidLength = errors.New("invalid length")
)

// Buffer is a byte region with a mutable read cursor. The cursor only moves
// forward via reads, skips, and slices; it is not safe to share a single
// Buffer across concurrent decode operations. Use Slice to hand off an
// independent region to another consumer.
type Buffer struct {
	data  []byte
	pos   int
	limit int
	order binary.ByteOrder
}

// New returns a Buffer over data using big-endian byte order
func New(data []byte) *Buffer {
	return NewWithOrder(data, binary.BigEndian)
}

// NewWithOrder returns a Buffer over data using the given byte order
func NewWithOrder(data []byte, order binary.ByteOrder) *Buffer {
	return &Buffer{
		data:  data,
		limit: len(data),
		order: order,
	}
}

// ByteOrder returns the buffer's configured byte order
func (b *Buffer) ByteOrder() binary.ByteOrder {
	return b.order
}

// Position returns the current read position
func (b *Buffer) Position() int {
	return b.pos
}

// SetPosition moves the read position to an absolute offset within [0, limit]
func (b *Buffer) SetPosition(pos int) error {
	if pos < 0 || pos > b.limit {
		return fmt.Errorf("%w: position %d outside [0, %d]", ErrOutOfBounds, pos, b.limit)
	}
	b.pos = pos
	return nil
}

// Len returns the total length of the readable region
func (b *Buffer) Len() int {
	return b.limit
}

// Remaining returns the number of unread bytes
func (b *Buffer) Remaining() int {
	return b.limit - b.pos
}

// require checks that n more bytes can be consumed from the current position
func (b *Buffer) require(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if b.limit-b.pos < n {
		return fmt.Errorf(
			"%w: need %d bytes, have %d",
			ErrOutOfBounds,
			n,
			b.limit-b.pos,
		)
	}
	return nil
}

// GetUint8 reads a single unsigned byte
func (b *Buffer) GetUint8() (uint8, error) {
	if err := b.require(1); err != nil {
		return 0, err
	}
	v := b.data[b.pos]
	b.pos++
	return v, nil
}

// GetInt8 reads a single signed byte
func (b *Buffer) GetInt8() (int8, error) {
	v, err := b.GetUint8()
	return int8(v), err
}

// GetUint16 reads an unsigned 16-bit value in the buffer's byte order
func (b *Buffer) GetUint16() (uint16, error) {
	if err := b.require(2); err != nil {
		return 0, err
	}
	v := b.order.Uint16(b.data[b.pos:])
	b.pos += 2
	return v, nil
}

// GetInt16 reads a signed 16-bit value in the buffer's byte order
func (b *Buffer) GetInt16() (int16, error) {
	v, err := b.GetUint16()
	return int16(v), err
}

// GetUint32 reads an unsigned 32-bit value in the buffer's byte order
func (b *Buffer) GetUint32() (uint32, error) {
	if err := b.require(4); err != nil {
		return 0, err
	}
	v := b.order.Uint32(b.data[b.pos:])
	b.pos += 4
	return v, nil
}

// GetInt32 reads a signed 32-bit value in the buffer's byte order
func (b *Buffer) GetInt32() (int32, error) {
	v, err := b.GetUint32()
	return int32(v), err
}

// GetUint64 reads an unsigned 64-bit value in the buffer's byte order
func (b *Buffer) GetUint64() (uint64, error) {
	if err := b.require(8); err != nil {
		return 0, err
	}
	v := b.order.Uint64(b.data[b.pos:])
	b.pos += 8
	return v, nil
}

// GetInt64 reads a signed 64-bit value in the buffer's byte order
func (b *Buffer) GetInt64() (int64, error) {
	v, err := b.GetUint64()
	return int64(v), err
}

// GetFloat32 reads an IEEE-754 single-precision value in the buffer's byte order
func (b *Buffer) GetFloat32() (float32, error) {
	v, err := b.GetUint32()
	return math.Float32frombits(v), err
}

// GetFloat64 reads an IEEE-754 double-precision value in the buffer's byte order
func (b *Buffer) GetFloat64() (float64, error) {
	v, err := b.GetUint64()
	return math.Float64frombits(v), err
}

// ReadBytes copies n bytes from the current position into a fresh slice and
// advances the position by n
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	if err := b.require(n); err != nil {
		return nil, err
	}
	ret := make([]byte, n)
	copy(ret, b.data[b.pos:b.pos+n])
	b.pos += n
	return ret, nil
}

// Skip advances the position by n bytes without reading
func (b *Buffer) Skip(n int) error {
	if err := b.require(n); err != nil {
		return err
	}
	b.pos += n
	return nil
}

// Slice returns a new Buffer over the next n bytes, sharing backing storage
// with the source. The returned buffer has an independent cursor starting at
// zero, a limit of n, and the source's byte order. The source's position is
// advanced past the sliced region, so slicing consumes the bytes from the
// source's point of view even though no copy is made.
func (b *Buffer) Slice(n int) (*Buffer, error) {
	if err := b.require(n); err != nil {
		return nil, err
	}
	ret := &Buffer{
		data:  b.data[b.pos : b.pos+n],
		limit: n,
		order: b.order,
	}
	b.pos += n
	return ret, nil
}

// PeekUint8 returns the byte at the current position without advancing
func (b *Buffer) PeekUint8() (uint8, error) {
	if err := b.require(1); err != nil {
		return 0, err
	}
	return b.data[b.pos], nil
}

// RemainingBytes returns the unread region without copying or advancing.
// The returned slice aliases the buffer's backing storage.
func (b *Buffer) RemainingBytes() []byte {
	return b.data[b.pos:b.limit]
}
