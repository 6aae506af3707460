// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package faultline

import (
	"io"
	"runtime"
	"unsafe"
)

// Hook is the reporting callback invoked when a fault reaches a
// registered handler. It receives the handler's sink and the fault
// metadata and writes whatever report the application wants. Hooks must
// swallow write errors; the dispatch path cannot surface them.
//
// A hook runs at most once per process lifetime, in fault context.
// Raising a fault from within a hook is not guarded against.
type Hook[W Sink] func(W, *Info)

// Handler pairs a sink with a reporting [Hook] and connects the pair to
// the process-wide dispatch slot. The handler owns the connection, not
// the sink: [Handler.Detach] hands the sink back, and [Handler.Close]
// drops the reference without closing it.
//
// Handlers are address-sensitive. Construct them with [New] or
// [NewHook], keep the returned pointer, and never copy the pointed-to
// value: the dispatch slot stores the handler's raw address, and every
// method checks that it still runs on the original allocation.
//
// Construction, registration and detachment belong to one goroutine.
// Only the published slot pair itself is safe to read concurrently.
type Handler[W Sink] struct {
	guard   noCopy
	sink    W
	hook    Hook[W]
	retired bool
	entry   *registration
	pin     runtime.Pinner
}

// New creates a handler that reports faults with [DefaultHook]: the
// fault's textual form, written to sink in a single call.
//
// The handler does nothing until [Handler.Register] publishes it. Keep
// it reachable for as long as reports are wanted and close it when they
// are not:
//
//	h := faultline.New(os.Stderr)
//	h.Register()
//	defer h.Close()
func New[W Sink](sink W) *Handler[W] {
	return NewHook(sink, DefaultHook[W])
}

// NewHook creates a handler that reports faults by invoking hook with
// the handler's sink and the fault metadata.
func NewHook[W Sink](sink W, hook Hook[W]) *Handler[W] {
	if hook == nil {
		panic("faultline: nil hook")
	}
	h := &Handler[W]{sink: sink, hook: hook}
	h.guard.init()
	return h
}

// Register publishes the handler into the dispatch slot, pairing its
// erased address with the trampoline instantiated for W. Any previous
// registration is silently replaced; the replaced handler stays valid
// and may register again.
//
// The handler's address is pinned while published, so the raw pointer
// held by the slot stays valid even under a moving collector.
func (h *Handler[W]) Register() {
	h.guard.check()
	if h.retired {
		retiredHandler()
	}
	h.pin.Pin(h)
	e := &registration{ptr: unsafe.Pointer(h), invoke: trampoline[W]}
	h.entry = e
	slot.Store(e)
}

// Detach withdraws the handler and moves its sink out. If the slot
// currently points at this handler, the registration is cleared before
// the sink is handed back, so no fault can reach a sink its owner has
// reclaimed. Detaching a handler that was already replaced by another
// registration leaves the other registration in place.
//
// Detach retires the handler: a second Detach panics, and so do the
// pass-through methods and Register.
func (h *Handler[W]) Detach() W {
	h.guard.check()
	if h.retired {
		retiredHandler()
	}
	if e := h.entry; e != nil {
		slot.CompareAndSwap(e, nil)
		h.entry = nil
	}
	h.pin.Unpin()
	h.retired = true
	sink := h.sink
	var zero W
	h.sink = zero
	h.hook = nil
	return sink
}

// Close retires the handler, clearing its registration if it still
// holds one and dropping the sink reference. The sink itself is not
// closed; it belongs to whoever opened it. Closing an already retired
// handler is a no-op.
//
// Close always returns nil. It implements [io.Closer] so a handler can
// be torn down by defer or by resource frameworks.
func (h *Handler[W]) Close() error {
	h.guard.check()
	if h.retired {
		return nil
	}
	_ = h.Detach()
	return nil
}

// Registered reports whether this handler currently occupies the
// dispatch slot. A retired handler reports false.
func (h *Handler[W]) Registered() bool {
	h.guard.check()
	return !h.retired && h.entry != nil && slot.Load() == h.entry
}

// Write forwards to the sink. While the handler is live, writing
// through it behaves exactly like writing to the sink directly.
func (h *Handler[W]) Write(p []byte) (int, error) {
	h.guard.check()
	if h.retired {
		retiredHandler()
	}
	return h.sink.Write(p)
}

// WriteString forwards to the sink, using its WriteString method when
// it has one.
func (h *Handler[W]) WriteString(s string) (int, error) {
	h.guard.check()
	if h.retired {
		retiredHandler()
	}
	return io.WriteString(h.sink, s)
}

// Sink returns the handler's sink for direct use.
func (h *Handler[W]) Sink() W {
	h.guard.check()
	if h.retired {
		retiredHandler()
	}
	return h.sink
}

// retiredHandler panics with a descriptive message for handlers used
// after Detach or Close. Extracted as a noinline function so that the
// pass-through methods remain inlineable.
//
//go:noinline
func retiredHandler() {
	panic("faultline: handler used after detach")
}
