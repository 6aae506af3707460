// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package faultline

import (
	"sync/atomic"
	"unsafe"
)

// registration pairs an erased handler address with the trampoline
// instantiated for the handler's concrete sink type. The slot publishes
// and clears the two as one value, so a mismatched or half-written pair
// can never be observed.
type registration struct {
	ptr    unsafe.Pointer
	invoke func(unsafe.Pointer, *Info)
}

// slot is the process-wide dispatch slot: at most one registration.
// Loads and stores are atomic so [Fault] sees the full pair or nothing,
// but register/detach ordering across goroutines is the caller's
// responsibility.
var slot atomic.Pointer[registration]

// faults counts entries into [Fault]. The first entry claims dispatch;
// once nonzero the state machine reports Halted.
var faults atomic.Uintptr

// SlotState enumerates the dispatch slot lifecycle. The slot moves
// Empty → Registered on [Handler.Register], back to Empty on
// [Handler.Detach] or [Handler.Close], and to the terminal Halted on
// the first [Fault].
type SlotState uint8

const (
	// SlotEmpty means no handler is registered; a fault halts without
	// reporting.
	SlotEmpty SlotState = iota
	// SlotRegistered means a handler is registered and will receive the
	// next fault.
	SlotRegistered
	// SlotHalted means a fault has been dispatched. The state is
	// terminal.
	SlotHalted
)

// String returns the state name.
func (s SlotState) String() string {
	switch s {
	case SlotEmpty:
		return "Empty"
	case SlotRegistered:
		return "Registered"
	case SlotHalted:
		return "Halted"
	default:
		return "Unknown"
	}
}

// State reports the dispatch slot's lifecycle state.
func State() SlotState {
	if faults.Load() != 0 {
		return SlotHalted
	}
	if slot.Load() != nil {
		return SlotRegistered
	}
	return SlotEmpty
}
