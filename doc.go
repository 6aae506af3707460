// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package faultline provides runtime-configurable fatal-fault reporting
// through a single fixed entry point.
//
// The package solves a wiring problem: a process has exactly one fault
// entry point with a fixed, non-generic signature ([Fault]), while the
// code that decides where reports go holds a strongly typed sink. A
// [Handler] bridges the two. It pairs a sink with a reporting hook,
// erases its own type behind a matched pointer/trampoline pair, and
// publishes that pair into a process-wide dispatch slot. When the fault
// arrives, [Fault] recovers the concrete types through the stored
// trampoline, lets the hook write its report, and halts the process.
//
// # Handler Lifecycle
//
//   - [New]: handler reporting with [DefaultHook]
//   - [NewHook]: handler reporting with a custom [Hook]
//   - [Handler.Register]: publish into the dispatch slot, silently
//     replacing any previous registration
//   - [Handler.Detach]: withdraw from the slot and move the sink out
//     (one-shot; panics on reuse)
//   - [Handler.Close]: idempotent teardown, for defer
//
// While a handler is live, [Handler.Write], [Handler.WriteString] and
// [Handler.Sink] pass through to the sink, so the handler can stand in
// wherever the sink itself would be used.
//
// The slot walks Empty → Registered → Empty as handlers come and go.
// The first dispatched fault moves it to the terminal Halted state.
// [State] reports the current state.
//
// # Type Erasure
//
// Registration stores two words that only ever travel together: the
// handler's address erased to an untyped pointer, and a trampoline
// function instantiated for the handler's concrete sink type. [Fault]
// calls the stored trampoline with the stored pointer; the trampoline
// casts the pointer back to exactly the type it was erased from. The
// pointer is pinned for as long as it is published, so the slot never
// holds a stale address.
//
// # Faults and Halting
//
//   - [Fault]: dispatch the fault, then halt; does not return
//   - [SetHalt]: substitute the halt primitive for environments that
//     reset or trap instead of exiting
//   - [Guard], [Protect]: adapt recovered Go panics into faults
//   - [NewInfo], [Info]: fault metadata passed through dispatch
//
// Only the first fault is dispatched. Later entries, and entries with
// no registered handler, skip reporting and go straight to the halt.
//
// # Sinks
//
// Any [io.Writer] serves as a sink ([Sink] is an alias). The package
// ships [Buffer], a fixed-capacity sink that never allocates after
// construction. Subpackages adapt further destinations and wiring:
// zapsink (structured crash logs), ringsink (bounded in-memory ring),
// serialsink (raw serial ports), mqttsink (retained broker messages),
// faultcfg (TOML-driven sink assembly), faultfx (fx lifecycle wiring)
// and faultmetrics (Prometheus collectors).
//
// # Misuse
//
// Contract violations panic deterministically instead of corrupting
// dispatch state: registering or writing through a retired handler,
// detaching twice, and calling methods on a by-value copy of a
// constructed handler all panic with a "faultline:" message.
// Registration and detachment are designed for a single goroutine; the
// slot itself is published atomically, so a concurrent [Fault] observes
// either the full pair or nothing.
//
// # Example
//
//	h := faultline.New(os.Stderr)
//	h.Register()
//	defer h.Close()
//	defer faultline.Guard()
package faultline
