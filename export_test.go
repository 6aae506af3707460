// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package faultline

// ResetDispatch restores the dispatch slot and the fault latch to their
// initial state. Production code has no way back from Halted; tests do.
func ResetDispatch() {
	slot.Store(nil)
	faults.Store(0)
}

// SwapHalt replaces the halt function and returns the previous one, so
// tests can observe Fault returning instead of exiting.
func SwapHalt(halt func()) func() {
	prev := haltFn
	haltFn = halt
	return prev
}
