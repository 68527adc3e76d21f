// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package loopback

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func helloHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	})
}

func TestStartIsDialableImmediately(t *testing.T) {
	s, err := Start("127.0.0.1", 0, helloHandler())
	require.NoError(t, err)
	defer s.Shutdown(context.Background())

	assert.True(t, s.IsListening())

	resp, err := http.Get(s.URL("/"))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", string(body))
}

func TestDynamicPortAllocation(t *testing.T) {
	first, err := Start("127.0.0.1", 0, helloHandler())
	require.NoError(t, err)
	defer first.Shutdown(context.Background())

	second, err := Start("127.0.0.1", 0, helloHandler())
	require.NoError(t, err)
	defer second.Shutdown(context.Background())

	assert.NotZero(t, first.Port())
	assert.NotZero(t, second.Port())
	assert.NotEqual(t, first.Port(), second.Port())
	assert.Equal(t, fmt.Sprintf("127.0.0.1:%d", first.Port()), first.Addr())
}

func TestFixedPortAlreadyBound(t *testing.T) {
	occupant, err := Start("127.0.0.1", 0, helloHandler())
	require.NoError(t, err)
	defer occupant.Shutdown(context.Background())

	_, err = Start("127.0.0.1", occupant.Port(), helloHandler())
	assert.Error(t, err)
}

func TestShutdownExactlyOnce(t *testing.T) {
	s, err := Start("127.0.0.1", 0, helloHandler())
	require.NoError(t, err)

	assert.NoError(t, s.Shutdown(context.Background()))
	assert.Equal(t, ErrAlreadyShutdown, s.Shutdown(context.Background()))
	assert.Equal(t, ErrAlreadyShutdown, s.Shutdown(context.Background()))
}

func TestShutdownDrainsInFlightRequests(t *testing.T) {
	started := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("drained"))
	})

	s, err := Start("127.0.0.1", 0, handler)
	require.NoError(t, err)

	var errg errgroup.Group
	errg.Go(func() error {
		resp, err := http.Get(s.URL("/slow"))
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		body, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if string(body) != "drained" {
			return fmt.Errorf("unexpected body %q", body)
		}
		return nil
	})

	<-started
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, s.Shutdown(ctx))
	assert.NoError(t, errg.Wait())

	_, err = http.Get(s.URL("/slow"))
	assert.Error(t, err)
}
