// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package faultline

// noCopy detects by-value copies of a constructed handler at runtime.
// init records the guard's own address; a copy carries the stale
// address and fails check, as does a zero value that skipped the
// constructors. The dispatch slot stores raw addresses, so neither may
// ever reach it.
type noCopy struct {
	addr *noCopy
}

func (c *noCopy) init() { c.addr = c }

func (c *noCopy) check() {
	if c.addr != c {
		invalidHandler()
	}
}

// invalidHandler panics with a descriptive message for handler values
// copied after construction or never constructed. Extracted as a
// noinline function so that check remains inlineable.
//
//go:noinline
func invalidHandler() {
	panic("faultline: copied or zero handler")
}
