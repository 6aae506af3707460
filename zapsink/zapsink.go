// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package zapsink adapts zap loggers as fault sinks, so the last words
// of a dying process land in the same structured stream as the rest of
// its logs.
package zapsink

import (
	"bytes"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Sink writes each fault report as one Error-level entry on a zap
// logger.
type Sink struct {
	log *zap.Logger
}

// New wraps an existing logger as a sink.
func New(log *zap.Logger) *Sink {
	return &Sink{log: log}
}

// Write logs p as a single Error entry, without the trailing newline.
func (s *Sink) Write(p []byte) (int, error) {
	s.log.Error(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}

// Sync flushes buffered entries to the underlying cores.
func (s *Sink) Sync() error { return s.log.Sync() }

// Close flushes the sink. A console core's refusal to fsync (stderr
// rejects it on most platforms) must not fail handler teardown, so
// Close always returns nil.
func (s *Sink) Close() error {
	_ = s.log.Sync()
	return nil
}

// NewCrashLog builds the crash-trail logger services keep beside their
// access logs: JSON entries teed to a size-rotated file plus
// human-readable lines on stderr, wrapped as a sink.
func NewCrashLog(path string) *Sink {
	cfg := zap.NewProductionEncoderConfig()

	file := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	})
	console := zapcore.Lock(os.Stderr)

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(cfg), file, zap.ErrorLevel),
		zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), console, zap.ErrorLevel),
	)
	return New(zap.New(core))
}
