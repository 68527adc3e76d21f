// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package bridge serves harness invocations by standing up a loopback
// router per invocation, dispatching the translated request to it, and
// translating the router's reply back into the harness response shape.
package bridge

import (
	"context"
	"crypto/rand"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"go.amzn.com/routerbridge/app"
	"go.amzn.com/routerbridge/fatalerror"
	"go.amzn.com/routerbridge/logging"
	"go.amzn.com/routerbridge/loopback"
	"go.amzn.com/routerbridge/translate"
)

const (
	// DefaultDispatchTimeout bounds the loopback round trip when no
	// timeout is configured.
	DefaultDispatchTimeout = 10 * time.Second

	// drainTimeout bounds the graceful drain of the loopback server.
	drainTimeout = 5 * time.Second

	defaultHost = "127.0.0.1"
)

// Config selects the loopback bind policy and the dispatch timeout. The
// zero value binds 127.0.0.1 with an OS-assigned port.
type Config struct {
	Host            string
	Port            int
	DispatchTimeout time.Duration
}

// Bridge is the invocation handler. One Bridge serves any number of
// sequential invocations; everything per-invocation (state, router,
// listener) is built inside Handle.
type Bridge struct {
	cfg     Config
	entropy io.Reader
	client  *http.Client
}

// New creates a Bridge. entropy seeds each invocation's demonstration
// state; nil selects crypto/rand.
func New(cfg Config, entropy io.Reader) *Bridge {
	if cfg.Host == "" {
		cfg.Host = defaultHost
	}
	if cfg.DispatchTimeout <= 0 {
		cfg.DispatchTimeout = DefaultDispatchTimeout
	}
	if entropy == nil {
		entropy = rand.Reader
	}

	return &Bridge{
		cfg:     cfg,
		entropy: entropy,
		client:  &http.Client{Timeout: cfg.DispatchTimeout},
	}
}

// Handle serves one invocation end to end: seed state, start the loopback
// server, dispatch the translated request, translate the reply. The server
// is shut down on every exit path once it has started; errors carry a
// fatalerror type for the harness.
func (b *Bridge) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	invokeID := invocationID(ctx)
	logger := log.WithField("invokeID", invokeID)
	logger.Debugf("invoke: -> %s %s", event.HTTPMethod, event.Path)

	state, err := app.NewState(b.entropy)
	if err != nil {
		return events.APIGatewayProxyResponse{}, fatalerror.New(fatalerror.ConfigurationError, err)
	}

	server, err := loopback.Start(b.cfg.Host, b.cfg.Port, app.NewRouter(state))
	if err != nil {
		return events.APIGatewayProxyResponse{}, fatalerror.New(fatalerror.BindError, err)
	}
	defer func() {
		// fresh context: an expired invocation deadline must not skip the drain
		drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
		defer cancel()
		if err := server.Shutdown(drainCtx); err != nil {
			logger.WithError(err).Warn("Loopback server shutdown failed")
		}
	}()

	request, err := translate.Request(ctx, &event, server.Addr())
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	resp, err := b.client.Do(request)
	if err != nil {
		return events.APIGatewayProxyResponse{}, fatalerror.New(fatalerror.DispatchError, err)
	}
	defer resp.Body.Close()

	response, err := translate.Response(resp)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	logger.Debugf("invoke: <- %d (%d bytes)", response.StatusCode, len(response.Body))
	return response, nil
}

// invocationID returns the harness-assigned request id, or generates one
// when the invocation carries none.
func invocationID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.New().String()
}

// SetLogLevel sets the log level for internal logging. Needs to be called
// very early during startup to configure logs emitted during initialization
func SetLogLevel(logLevel string) {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.WithError(err).Fatal("Failed to set log level. Valid log levels are:", log.AllLevels)
	}

	log.SetLevel(level)
	log.SetFormatter(&logging.InternalFormatter{})
}

// SetInternalLogOutput redirects internal logging to w.
func SetInternalLogOutput(w io.Writer) {
	logging.SetOutput(w)
}
