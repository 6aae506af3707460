// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package faultline_test

import (
	"testing"

	"code.hybscloud.com/faultline"
)

func TestAppendTextAllocations(t *testing.T) {
	info := faultline.NewInfo("index out of bounds", "src.rs", 10)
	buf := make([]byte, 0, 96)
	allocs := testing.AllocsPerRun(100, func() {
		buf, _ = info.AppendText(buf[:0])
	})
	if allocs > 0 {
		t.Errorf("AppendText allocs = %v; want 0", allocs)
	}
}

func TestBufferWriteAllocations(t *testing.T) {
	buf := faultline.NewBuffer(1 << 12)
	p := []byte("panicked at src.rs:10: index out of bounds")
	allocs := testing.AllocsPerRun(100, func() {
		buf.Reset()
		_, _ = buf.Write(p)
	})
	if allocs > 0 {
		t.Errorf("Buffer.Write allocs = %v; want 0", allocs)
	}
}
