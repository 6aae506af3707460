// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package faultfx wires fault reporting into an fx application: the
// handler registers on start, detaches on stop, and the sink comes from
// the TOML config named by FAULTLINE_CONFIG when one exists.
package faultfx

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"code.hybscloud.com/faultline"
	"code.hybscloud.com/faultline/faultcfg"
)

const (
	// DefaultConfigEnv names the environment variable consulted for a
	// config path.
	DefaultConfigEnv = "FAULTLINE_CONFIG"
	// DefaultConfigFile is tried when the variable is unset.
	DefaultConfigFile = "faultline.toml"
)

// SinkCloser tears the sink down after the handler detaches. It is a
// named type so the fx graph can tell it apart from other closers.
type SinkCloser struct{ io.Closer }

// An Option adjusts how the module finds its sink.
type Option func(*settings)

// WithConfigEnv changes the environment variable consulted for a
// config path.
func WithConfigEnv(name string) Option {
	return func(s *settings) { s.configEnv = name }
}

// WithDefaultConfig changes the config path tried when the variable is
// unset.
func WithDefaultConfig(path string) Option {
	return func(s *settings) { s.defaultConfig = path }
}

// WithSink bypasses config loading and reports to sink directly.
func WithSink(sink faultline.Sink) Option {
	return func(s *settings) { s.sink = sink }
}

type settings struct {
	configEnv     string
	defaultConfig string
	sink          faultline.Sink
}

// Module provides a registered-for-the-app's-lifetime fault handler.
// A *zap.Logger in the graph is used when present; without one the
// module stays quiet.
func Module(opts ...Option) fx.Option {
	s := settings{
		configEnv:     DefaultConfigEnv,
		defaultConfig: DefaultConfigFile,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return fx.Module("faultline",
		fx.Provide(func(p sinkParams) (*faultline.Handler[faultline.Sink], SinkCloser, error) {
			log := p.Log
			if log == nil {
				log = zap.NewNop()
			}
			sink, closer, err := s.build(log)
			if err != nil {
				return nil, SinkCloser{}, err
			}
			return faultline.New(sink), SinkCloser{closer}, nil
		}),
		fx.Invoke(registerHooks),
	)
}

type sinkParams struct {
	fx.In

	Log *zap.Logger `optional:"true"`
}

// build resolves the sink. An unset variable plus a missing default
// file is the out-of-the-box case and falls back to stderr; a path the
// operator named explicitly must load or the app must not come up.
func (s *settings) build(log *zap.Logger) (faultline.Sink, io.Closer, error) {
	if s.sink != nil {
		return s.sink, nopCloser{}, nil
	}

	path := os.Getenv(s.configEnv)
	explicit := path != ""
	if !explicit {
		path = s.defaultConfig
	}

	cfg, err := faultcfg.Load(path)
	if err == nil {
		return cfg.Build()
	}
	if explicit || !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, err
	}
	log.Info("no fault config found, reporting to stderr", zap.String("path", path))
	return os.Stderr, nopCloser{}, nil
}

type hookParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Handler   *faultline.Handler[faultline.Sink]
	Closer    SinkCloser
	Log       *zap.Logger `optional:"true"`
}

func registerHooks(p hookParams) {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			p.Handler.Register()
			log.Info("fault handler registered")
			return nil
		},
		OnStop: func(context.Context) error {
			if err := p.Handler.Close(); err != nil {
				return err
			}
			log.Info("fault handler detached")
			return p.Closer.Close()
		},
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
