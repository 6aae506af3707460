// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package faultline

import "os"

// haltFn stops the process after fault dispatch. Swapped by [SetHalt]
// for environments that reset or trap instead of exiting.
var haltFn = func() { os.Exit(2) }

// SetHalt replaces the halt primitive invoked by [Fault] after
// dispatch. The default exits the process with status 2; freestanding
// or embedded environments substitute their own reset, trap or spin.
// SetHalt panics on nil: a fault must always have somewhere to go.
//
// Like registration, SetHalt belongs to startup code on one goroutine.
func SetHalt(halt func()) {
	if halt == nil {
		panic("faultline: nil halt function")
	}
	haltFn = halt
}

// Fault reports an unrecoverable fault and halts the process. It is the
// fixed entry point the environment calls when dying: its signature
// never changes as handlers of different sink types come and go, only
// the slot contents do.
//
// The first call dispatches info to the registered handler, if any,
// through the stored trampoline. Later calls, and calls with an empty
// slot, skip reporting. The halt function runs unconditionally; Fault
// is not expected to return. A nil info dispatches as an empty fault.
func Fault(info *Info) {
	if faults.Add(1) == 1 {
		if info == nil {
			info = new(Info)
		}
		if e := slot.Load(); e != nil {
			e.invoke(e.ptr, info)
		}
	}
	haltFn()
}
