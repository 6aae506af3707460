// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package serialsink

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Port is a serial-port sink.
type Port struct {
	f *os.File
}

// baudSpeeds maps numeric rates to termios speed constants.
var baudSpeeds = map[int]uint32{
	9600:   unix.B9600,
	19200:  unix.B19200,
	38400:  unix.B38400,
	57600:  unix.B57600,
	115200: unix.B115200,
	230400: unix.B230400,
}

// Open opens device raw at the given baud rate: 8 data bits, no
// parity, one stop bit, no flow control, modem control ignored.
func Open(device string, baud int) (*Port, error) {
	speed, ok := baudSpeeds[baud]
	if !ok {
		return nil, fmt.Errorf("serialsink: unsupported baud rate %d", baud)
	}

	// O_NONBLOCK so a line without carrier cannot stall the open;
	// blocking mode is restored once the port is configured.
	f, err := os.OpenFile(device, os.O_RDWR|unix.O_NOCTTY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("serialsink: open %s: %w", device, err)
	}

	t, err := unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("serialsink: read termios from %s: %w", device, err)
	}

	t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cflag &^= unix.CSIZE | unix.PARENB | unix.CSTOPB | unix.CRTSCTS | unix.CBAUD
	t.Cflag |= unix.CS8 | unix.CREAD | unix.CLOCAL | speed
	t.Ispeed = speed
	t.Ospeed = speed
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(int(f.Fd()), unix.TCSETS, t); err != nil {
		f.Close()
		return nil, fmt.Errorf("serialsink: write termios to %s: %w", device, err)
	}
	if _, err := unix.FcntlInt(f.Fd(), unix.F_SETFL, 0); err != nil {
		f.Close()
		return nil, fmt.Errorf("serialsink: restore blocking mode on %s: %w", device, err)
	}
	return &Port{f: f}, nil
}

// Write sends p down the line.
func (p *Port) Write(b []byte) (int, error) {
	return p.f.Write(b)
}

// Close closes the port.
func (p *Port) Close() error {
	return p.f.Close()
}
