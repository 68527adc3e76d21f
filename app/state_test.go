// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStateSeedsCountFromEntropy(t *testing.T) {
	for _, seed := range []uint8{0, 42, 255} {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			state, err := NewState(bytes.NewReader([]byte{seed}))
			assert.NoError(t, err)
			assert.Equal(t, seed, state.Count)
		})
	}
}

func TestNewStateExhaustedEntropy(t *testing.T) {
	state, err := NewState(bytes.NewReader(nil))
	assert.Error(t, err)
	assert.Nil(t, state)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("entropy unavailable") }

func TestNewStateFailingEntropy(t *testing.T) {
	state, err := NewState(brokenReader{})
	assert.Error(t, err)
	assert.Nil(t, state)
}
