// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package serialsink provides a raw serial-port fault sink for targets
// whose only way out is a UART: the port is configured 8N1 with no flow
// control, so a fault report drains even when nothing on the other end
// answers.
//
// Only Linux has an implementation; [Open] fails everywhere else with
// [ErrUnsupported].
package serialsink

import "errors"

// ErrUnsupported is returned by [Open] and [Port.Write] on platforms
// without a serial implementation.
var ErrUnsupported = errors.New("serialsink: platform not supported")
