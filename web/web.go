// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

// Package web serves the saluton HTTP API: one plain text greeting
// endpoint. The greeter capability instance is resolved once on startup
// and passed in. Nil greeter means default greetings only.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/saluton/saluton/core"
	"github.com/saluton/saluton/core/config"
	"github.com/saluton/saluton/lib/errutil"
	"github.com/saluton/saluton/lib/monitoring"
)

type Config struct {
	Server   ServerConfig   `config:"server"`
	Greeting GreetingConfig `config:"greeting"`
}

// ServerConfig can be mapped on http.Server.
// See http.Server for details.
type ServerConfig struct {
	Listen          string        `config:"listen" validate:"endpoint,required" map:"Addr"`
	ReadTimeout     time.Duration `config:"read-timeout" validate:"min-time=1ms"`
	WriteTimeout    time.Duration `config:"write-timeout" validate:"min-time=1ms"`
	ShutdownTimeout time.Duration `config:"shutdown-timeout" validate:"min-time=1ms" map:"-"`
}

type GreetingConfig struct {
	// DefaultFormat greets requests that don't ask for a language.
	DefaultFormat string `config:"default-format" validate:"required,greet-format"`
	// UnknownFormat greets requests for a language that is not
	// supported, or when no greeter capability is available at all.
	UnknownFormat string `config:"unknown-format" validate:"required,greet-format"`
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Listen:          ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Greeting: GreetingConfig{
			DefaultFormat: "Hello %s!",
			UnknownFormat: "Sorry %s, I don't speak that language yet!",
		},
	}
}

type Metrics struct {
	Request    *monitoring.Counter
	Default    *monitoring.Counter
	Localized  *monitoring.Counter
	Fallback   *monitoring.Counter
	BadRequest *monitoring.Counter
}

// New creates a greeting server. Greeter may be nil, meaning no greeter
// capability was loaded, so every localized greeting falls back.
func New(log *zap.Logger, m Metrics, conf Config, greeter core.Greeter) *Server {
	handler := newGreetingHandler(log, m, conf.Greeting, greeter)
	srv := &http.Server{}
	config.Map(srv, conf.Server)
	srv.Handler = newEngine(handler)
	return &Server{log: log, conf: conf.Server, srv: srv}
}

type Server struct {
	log  *zap.Logger
	conf ServerConfig
	srv  *http.Server
}

// Run serves until ctx cancel, then shuts down gracefully, awaiting
// in-flight requests no longer than the configured shutdown timeout.
// Returns ctx.Err() after clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		s.log.Info("Server listening", zap.String("listen", s.conf.Listen))
		serveErr <- s.srv.ListenAndServe()
	}()
	select {
	case err := <-serveErr:
		return errors.WithMessage(err, "server listen failed")
	case <-ctx.Done():
	}
	s.log.Info("Server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.conf.ShutdownTimeout)
	defer cancel()
	err := errors.WithMessage(s.srv.Shutdown(shutdownCtx), "server shutdown failed")
	return errutil.Join(ctx.Err(), err)
}
