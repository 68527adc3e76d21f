// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package loopback implements the per-invocation local HTTP server the
// translated invocation request is dispatched to.
package loopback

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	log "github.com/sirupsen/logrus"
)

// ErrAlreadyShutdown is returned by Shutdown calls after the first one.
var ErrAlreadyShutdown = errors.New("AlreadyShutdown")

// Server hosts one router for the lifetime of one invocation.
type Server struct {
	host     string
	port     int
	server   *http.Server
	listener net.Listener
	exit     chan error

	mu   sync.Mutex
	down bool
}

// NewServer creates a new loopback server for the given handler.
//
// Unlike net/http server's ListenAndServe, we separate Listen()
// and serving, this is done to guarantee order: the call to Listen()
// must complete before the invocation request is dispatched.
//
// When port is 0, OS will dynamically allocate the listening port.
func NewServer(host string, port int, handler http.Handler) *Server {
	exitErrors := make(chan error, 1)

	return &Server{
		host:     host,
		port:     port,
		server:   &http.Server{Handler: handler},
		listener: nil,
		exit:     exitErrors,
	}
}

// Start binds a new server and begins serving in the background. The
// listener is bound by the time Start returns, so the returned address
// can be dialed immediately.
func Start(host string, port int, handler http.Handler) (*Server, error) {
	s := NewServer(host, port, handler)
	if err := s.Listen(); err != nil {
		return nil, err
	}
	s.serveAsync()
	return s, nil
}

// Listen on port
func (s *Server) Listen() error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	s.listener = ln
	if s.port == 0 {
		s.port = ln.Addr().(*net.TCPAddr).Port
		log.WithField("port", s.port).Debug("Listening port was dynamically allocated")
	}

	log.Debugf("Loopback server listening on %s:%d", s.host, s.port)

	return nil
}

func (s *Server) IsListening() bool {
	return s.listener != nil
}

func (s *Server) serveAsync() {
	go func() {
		s.exit <- s.server.Serve(s.listener)
	}()
}

// Host is server's host
func (s *Server) Host() string {
	return s.host
}

// Port is server's port
func (s *Server) Port() int {
	return s.port
}

// Addr is the authority to dial, host:port
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.host, s.port)
}

// URL is full server url for specified endpoint
func (s *Server) URL(endpoint string) string {
	return fmt.Sprintf("http://%s:%d%s", s.host, s.port, endpoint)
}

// Shutdown gracefully shuts down the server: the listener stops accepting,
// in-flight requests run to completion, then the serve goroutine is joined.
// Exactly one call shuts the server down; subsequent calls return
// ErrAlreadyShutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.down {
		s.mu.Unlock()
		return ErrAlreadyShutdown
	}
	s.down = true
	s.mu.Unlock()

	if err := s.server.Shutdown(ctx); err != nil {
		// drain deadline expired, fall back to closing connections
		s.server.Close()
		return err
	}

	if err := <-s.exit; err != nil && err != http.ErrServerClosed {
		return err
	}

	log.Debugf("Loopback server on %s:%d shut down", s.host, s.port)
	return nil
}
