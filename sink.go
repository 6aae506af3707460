// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package faultline

import "io"

// Sink is the destination capability for fault reports: anything bytes
// can be appended to. It is an alias, not a new interface, so every
// [io.Writer] is a sink without adaptation.
//
// Sink writes on the fault path are best-effort. Hooks swallow write
// errors; a fault report has nowhere to surface a failure.
type Sink = io.Writer
