// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package faultcfg selects and builds a fault sink from a TOML
// document, so deployments choose where dying words go without a
// rebuild:
//
//	[sink]
//	kind = "crashlog"
//
//	[sink.crashlog]
//	path = "/var/log/app/crash.log"
//
// The zero document is valid and selects stderr.
package faultcfg

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"code.hybscloud.com/faultline"
	"code.hybscloud.com/faultline/mqttsink"
	"code.hybscloud.com/faultline/ringsink"
	"code.hybscloud.com/faultline/serialsink"
	"code.hybscloud.com/faultline/zapsink"
)

// Config is the root of the fault reporting configuration.
type Config struct {
	Sink SinkConfig `toml:"sink"`
}

// SinkConfig names one sink kind and carries the settings for each.
// Only the table matching Kind is consulted.
type SinkConfig struct {
	Kind string `toml:"kind"`

	Buffer   BufferConfig   `toml:"buffer"`
	Ring     RingConfig     `toml:"ring"`
	File     FileConfig     `toml:"file"`
	CrashLog CrashLogConfig `toml:"crashlog"`
	Serial   SerialConfig   `toml:"serial"`
	MQTT     MQTTConfig     `toml:"mqtt"`
}

// BufferConfig sizes the fixed in-memory sink.
type BufferConfig struct {
	Size int `toml:"size"`
}

// RingConfig sizes the bounded write ring.
type RingConfig struct {
	Depth int `toml:"depth"`
}

// FileConfig drives a size-rotated plain file.
type FileConfig struct {
	Path       string `toml:"path"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// CrashLogConfig drives the structured crash trail.
type CrashLogConfig struct {
	Path string `toml:"path"`
}

// SerialConfig drives a raw serial console.
type SerialConfig struct {
	Device string `toml:"device"`
	Baud   int    `toml:"baud"`
}

// MQTTConfig drives retained publishes to a broker.
type MQTTConfig struct {
	Broker    string `toml:"broker"`
	ClientID  string `toml:"client_id"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	Topic     string `toml:"topic"`
	TimeoutMS int    `toml:"timeout_ms"`
}

// Load reads and parses the TOML document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("faultcfg: read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a TOML document, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	c := new(Config)
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("faultcfg: parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate fills in defaults and rejects configurations that name a
// sink without the settings it cannot run without.
func (c *Config) Validate() error {
	s := &c.Sink
	if s.Kind == "" {
		s.Kind = "stderr"
	}
	switch s.Kind {
	case "stderr":
	case "buffer":
		if s.Buffer.Size <= 0 {
			s.Buffer.Size = 4096
		}
	case "ring":
		if s.Ring.Depth <= 0 {
			s.Ring.Depth = 64
		}
	case "file":
		if s.File.Path == "" {
			return errors.New("faultcfg: file sink needs a path")
		}
		if s.File.MaxSizeMB <= 0 {
			s.File.MaxSizeMB = 50
		}
		if s.File.MaxBackups <= 0 {
			s.File.MaxBackups = 3
		}
		if s.File.MaxAgeDays <= 0 {
			s.File.MaxAgeDays = 7
		}
	case "crashlog":
		if s.CrashLog.Path == "" {
			return errors.New("faultcfg: crashlog sink needs a path")
		}
	case "serial":
		if s.Serial.Device == "" {
			return errors.New("faultcfg: serial sink needs a device")
		}
		if s.Serial.Baud <= 0 {
			s.Serial.Baud = 115200
		}
	case "mqtt":
		if s.MQTT.Broker == "" {
			return errors.New("faultcfg: mqtt sink needs a broker")
		}
		if s.MQTT.Topic == "" {
			s.MQTT.Topic = "faults"
		}
		if s.MQTT.TimeoutMS <= 0 {
			s.MQTT.TimeoutMS = 5000
		}
	default:
		return fmt.Errorf("faultcfg: unknown sink kind %q", s.Kind)
	}
	return nil
}

// Build constructs the configured sink. The returned closer tears the
// sink down after the handler detaches; for sinks with nothing to
// release it is a no-op.
func (c *Config) Build() (faultline.Sink, io.Closer, error) {
	s := &c.Sink
	switch s.Kind {
	case "stderr":
		return os.Stderr, nopCloser{}, nil
	case "buffer":
		return faultline.NewBuffer(s.Buffer.Size), nopCloser{}, nil
	case "ring":
		return ringsink.New(s.Ring.Depth), nopCloser{}, nil
	case "file":
		l := &lumberjack.Logger{
			Filename:   s.File.Path,
			MaxSize:    s.File.MaxSizeMB,
			MaxBackups: s.File.MaxBackups,
			MaxAge:     s.File.MaxAgeDays,
		}
		return l, l, nil
	case "crashlog":
		sink := zapsink.NewCrashLog(s.CrashLog.Path)
		return sink, sink, nil
	case "serial":
		port, err := serialsink.Open(s.Serial.Device, s.Serial.Baud)
		if err != nil {
			return nil, nil, err
		}
		return port, port, nil
	case "mqtt":
		pub, err := mqttsink.Connect(mqttsink.Options{
			Broker:   s.MQTT.Broker,
			ClientID: s.MQTT.ClientID,
			Username: s.MQTT.Username,
			Password: s.MQTT.Password,
			Topic:    s.MQTT.Topic,
			Timeout:  time.Duration(s.MQTT.TimeoutMS) * time.Millisecond,
		})
		if err != nil {
			return nil, nil, err
		}
		return pub, pub, nil
	}
	return nil, nil, fmt.Errorf("faultcfg: unknown sink kind %q", s.Kind)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
