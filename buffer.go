// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package faultline

// Buffer is a fixed-capacity byte sink. The backing array is allocated
// once at construction and nothing on the write path allocates, which
// suits targets that must not touch the allocator while dying.
//
// Write never fails: bytes beyond the remaining capacity are dropped.
// The zero Buffer has zero capacity and drops everything.
type Buffer struct {
	buf []byte
}

// NewBuffer creates a buffer that retains at most size bytes.
func NewBuffer(size int) *Buffer {
	return &Buffer{buf: make([]byte, 0, size)}
}

// Write appends p, truncating at the buffer's capacity. It reports the
// full length of p so formatted writes never observe a failure.
func (b *Buffer) Write(p []byte) (int, error) {
	n := copy(b.buf[len(b.buf):cap(b.buf)], p)
	b.buf = b.buf[:len(b.buf)+n]
	return len(p), nil
}

// WriteString appends s, truncating at the buffer's capacity.
func (b *Buffer) WriteString(s string) (int, error) {
	n := copy(b.buf[len(b.buf):cap(b.buf)], s)
	b.buf = b.buf[:len(b.buf)+n]
	return len(s), nil
}

// Bytes returns the retained bytes. The slice aliases the buffer and
// stays valid until the next Reset.
func (b *Buffer) Bytes() []byte { return b.buf }

// String returns the retained bytes as a string.
func (b *Buffer) String() string { return string(b.buf) }

// Len returns the number of retained bytes.
func (b *Buffer) Len() int { return len(b.buf) }

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int { return cap(b.buf) }

// Reset discards the retained bytes, keeping the backing array.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }
