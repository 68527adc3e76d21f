// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package app is the demonstration application hosted by the loopback
// server: a router with per-invocation state behind it.
package app

import (
	"io"
)

// State is the demonstration state owned by exactly one router for the
// lifetime of one invocation.
type State struct {
	Count uint8
}

// NewState draws a single byte from entropy to seed the demonstration
// count. The entropy source is injected so invocations stay deterministic
// under test.
func NewState(entropy io.Reader) (*State, error) {
	var seed [1]byte
	if _, err := io.ReadFull(entropy, seed[:]); err != nil {
		return nil, err
	}

	return &State{Count: seed[0]}, nil
}
