// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"crypto/rand"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"go.amzn.com/routerbridge/bridge"
)

type options struct {
	LogLevel        string        `long:"log-level" env:"BRIDGE_LOG_LEVEL" default:"info" description:"log level"`
	ListenAddr      string        `long:"listen-addr" env:"BRIDGE_LISTEN_ADDR" default:"127.0.0.1:0" description:"loopback bind address, port 0 selects an OS-assigned port"`
	DispatchTimeout time.Duration `long:"dispatch-timeout" env:"BRIDGE_DISPATCH_TIMEOUT" default:"10s" description:"timeout for dispatching a translated request to the loopback router"`
}

func main() {
	opts := getCLIArgs()
	bridge.SetLogLevel(opts.LogLevel)

	host, port, err := parseListenAddr(opts.ListenAddr)
	if err != nil {
		log.WithError(err).Fatal("Invalid listen address:", opts.ListenAddr)
	}

	b := bridge.New(bridge.Config{
		Host:            host,
		Port:            port,
		DispatchTimeout: opts.DispatchTimeout,
	}, rand.Reader)

	lambda.Start(b.Handle)
}

func getCLIArgs() options {
	var opts options
	parser := flags.NewParser(&opts, flags.IgnoreUnknown)
	if _, err := parser.ParseArgs(os.Args); err != nil {
		log.WithError(err).Fatal("Failed to parse command line arguments:", os.Args)
	}

	return opts
}

func parseListenAddr(addr string) (string, int, error) {
	host, portValue, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, err
	}

	port, err := strconv.Atoi(portValue)
	if err != nil {
		return "", 0, err
	}

	return host, port, nil
}
