// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"net/http"

	"github.com/go-chi/chi"
)

// NewRouter returns a new instance of chi router serving the demonstration
// application. Each router owns the state it is given; routers are built
// fresh for every invocation and never shared.
func NewRouter(state *State) http.Handler {
	router := chi.NewRouter()
	router.Use(StateMiddleware(state))
	router.Use(AccessLogMiddleware())

	router.Get("/data", NewCountHandler().ServeHTTP)

	return router
}
