// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package faultline

import "unsafe"

// trampoline is the type-erasure bridge between the fixed dispatch slot
// and a concrete handler. Each sink type W gets one instantiation; the
// slot stores it next to the erased address it was derived from, and
// [Fault] calls it with that same address. Because the pair never
// splits, the cast below recovers exactly the type the address was
// erased from.
func trampoline[W Sink](p unsafe.Pointer, info *Info) {
	h := (*Handler[W])(p)
	h.hook(h.sink, info)
}

// DefaultHook writes the fault's textual form ([Info.String]) to the
// sink in a single Write call. Write errors are swallowed: fault
// reporting is best-effort and has nowhere to surface a failure.
//
// [New] installs DefaultHook; custom hooks can wrap it to decorate the
// default report.
func DefaultHook[W Sink](sink W, info *Info) {
	text, _ := info.AppendText(nil)
	_, _ = sink.Write(text)
}
