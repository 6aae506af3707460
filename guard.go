// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package faultline

import (
	"fmt"
	"runtime"
	"strings"
)

// Guard adapts a Go panic into a fault. Deferred at the top of main or
// of a goroutine, it recovers the panic value, captures the panic site,
// and hands the result to [Fault]:
//
//	func main() {
//		h := faultline.New(os.Stderr)
//		h.Register()
//		defer h.Close()
//		defer faultline.Guard()
//		// ...
//	}
//
// A function that returns without panicking is unaffected. Guard must
// be deferred directly; wrapping it in another closure moves the
// recover out of reach.
func Guard() {
	r := recover()
	if r == nil {
		return
	}
	Fault(infoFromRecovered(r))
}

// Protect runs fn and reports any panic it raises as a fault.
func Protect(fn func()) {
	defer Guard()
	fn()
}

// infoFromRecovered builds fault metadata from a recovered panic value
// and the captured panic site.
func infoFromRecovered(r any) *Info {
	var msg string
	switch v := r.(type) {
	case string:
		msg = v
	case error:
		msg = v.Error()
	default:
		msg = fmt.Sprintf("%v", v)
	}
	file, line := panicSite()
	return NewInfo(msg, file, line)
}

// panicSite walks the stack for the first frame outside the runtime and
// outside this package: the frame that raised the panic.
func panicSite() (string, int) {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if f.File != "" &&
			!strings.HasPrefix(f.Function, "runtime.") &&
			!strings.HasPrefix(f.Function, "code.hybscloud.com/faultline.") {
			return f.File, f.Line
		}
		if !more {
			return "", 0
		}
	}
}
