// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"net/http"
)

// A ReqCtxKey type is used as a key for storing values in the request context.
type ReqCtxKey int

// ReqCtxStateKey is used for injecting the invocation's demonstration state
// into request context.
const ReqCtxStateKey ReqCtxKey = iota

// FromRequest retrieves the demonstration state from the request context.
// The second return is false when no state was injected.
func FromRequest(request *http.Request) (*State, bool) {
	state, ok := request.Context().Value(ReqCtxStateKey).(*State)
	return state, ok
}

// RequestWithState places the demonstration state into request context.
func RequestWithState(request *http.Request, state *State) *http.Request {
	return request.WithContext(context.WithValue(request.Context(), ReqCtxStateKey, state))
}
