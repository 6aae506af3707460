// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package faultline

import "strconv"

// Info describes a single fatal fault: a message and, when known, the
// source location that raised it. Values are immutable after
// construction and travel by pointer through the dispatch path, which
// never retains them beyond the call.
type Info struct {
	msg  string
	file string
	line int
}

// NewInfo creates fault metadata from a message and a source location.
// Pass an empty file and zero line when the location is unknown.
func NewInfo(msg, file string, line int) *Info {
	return &Info{msg: msg, file: file, line: line}
}

// Message returns the fault message.
func (i *Info) Message() string { return i.msg }

// Location returns the source location that raised the fault.
// ok is false when no location was recorded.
func (i *Info) Location() (file string, line int, ok bool) {
	return i.file, i.line, i.file != ""
}

// AppendText appends the textual form of the fault to dst and returns
// the extended slice. The form is "panicked at FILE:LINE: MSG"; the
// location is omitted when unknown and the trailing message when empty.
// It never fails; the error is always nil.
func (i *Info) AppendText(dst []byte) ([]byte, error) {
	dst = append(dst, "panicked"...)
	if i.file != "" {
		dst = append(dst, " at "...)
		dst = append(dst, i.file...)
		dst = append(dst, ':')
		dst = strconv.AppendInt(dst, int64(i.line), 10)
	}
	if i.msg != "" {
		dst = append(dst, ": "...)
		dst = append(dst, i.msg...)
	}
	return dst, nil
}

// String returns the textual form of the fault, as written by
// [DefaultHook].
func (i *Info) String() string {
	text, _ := i.AppendText(nil)
	return string(text)
}
