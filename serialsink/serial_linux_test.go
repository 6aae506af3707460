// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package serialsink_test

import (
	"os"
	"strings"
	"testing"

	"code.hybscloud.com/faultline"
	"code.hybscloud.com/faultline/serialsink"
)

func TestOpenRejectsUnsupportedBaud(t *testing.T) {
	_, err := serialsink.Open("/dev/null", 12345)
	if err == nil || !strings.Contains(err.Error(), "unsupported baud rate") {
		t.Fatalf("got %v, want an unsupported baud rate error", err)
	}
}

func TestOpenRejectsNonTerminal(t *testing.T) {
	_, err := serialsink.Open("/dev/null", 115200)
	if err == nil || !strings.Contains(err.Error(), "termios") {
		t.Fatalf("got %v, want a termios error", err)
	}
}

// The pseudo-terminal multiplexer behaves like a serial line for
// termios purposes, so it stands in for hardware here.
func TestFaultReportReachesPseudoTerminal(t *testing.T) {
	if _, err := os.Stat("/dev/ptmx"); err != nil {
		t.Skipf("no pseudo-terminal multiplexer: %v", err)
	}

	port, err := serialsink.Open("/dev/ptmx", 115200)
	if err != nil {
		t.Skipf("cannot configure pseudo-terminal: %v", err)
	}
	defer port.Close()

	faultline.SetHalt(func() {})
	h := faultline.New(port)
	h.Register()
	defer h.Close()

	faultline.Fault(faultline.NewInfo("uart own goal", "tx.go", 5))
	// The master side has no reader; reaching this point means the
	// report drained into the line buffer without an error.
	if state := faultline.State(); state != faultline.SlotHalted {
		t.Fatalf("got state %v, want %v", state, faultline.SlotHalted)
	}
}
