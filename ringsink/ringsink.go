// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringsink provides a bounded in-memory fault sink that keeps
// only the most recent writes.
//
// A program can stream its regular output through a registered handler
// and, when the fault arrives, find the tail of that stream sitting
// next to the report — the software equivalent of reading the last
// lines of a kernel message ring after a crash.
package ringsink

import (
	"sync"

	"github.com/eapache/queue"
)

// Ring is a sink retaining the last depth writes, oldest evicted
// first. It is safe for concurrent use.
type Ring struct {
	mu    sync.Mutex
	q     *queue.Queue
	depth int
	bytes int
}

// New creates a ring retaining the most recent depth writes.
// It panics when depth is not positive.
func New(depth int) *Ring {
	if depth <= 0 {
		panic("ringsink: depth must be positive")
	}
	return &Ring{q: queue.New(), depth: depth}
}

// Write records p as one entry, evicting the oldest entry when the
// ring is full. The bytes are copied, so the caller may reuse p.
func (r *Ring) Write(p []byte) (int, error) {
	entry := make([]byte, len(p))
	copy(entry, p)

	r.mu.Lock()
	if r.q.Length() == r.depth {
		old := r.q.Remove().([]byte)
		r.bytes -= len(old)
	}
	r.q.Add(entry)
	r.bytes += len(entry)
	r.mu.Unlock()
	return len(p), nil
}

// Snapshot returns the retained writes concatenated oldest first.
func (r *Ring) Snapshot() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]byte, 0, r.bytes)
	for i := range r.q.Length() {
		out = append(out, r.q.Get(i).([]byte)...)
	}
	return out
}

// String returns the retained writes as a string, oldest first.
func (r *Ring) String() string { return string(r.Snapshot()) }

// Entries returns the number of retained writes.
func (r *Ring) Entries() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.q.Length()
}

// Reset discards all retained writes.
func (r *Ring) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.q = queue.New()
	r.bytes = 0
}
