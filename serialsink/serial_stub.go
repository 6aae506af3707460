// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package serialsink

// Port is a serial-port sink. It is only functional on Linux.
type Port struct{}

// Open fails: raw termios configuration needs Linux.
func Open(device string, baud int) (*Port, error) {
	return nil, ErrUnsupported
}

// Write fails on unsupported platforms.
func (p *Port) Write(b []byte) (int, error) {
	return 0, ErrUnsupported
}

// Close is a no-op on unsupported platforms.
func (p *Port) Close() error {
	return nil
}
