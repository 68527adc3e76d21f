// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"net/http"

	"github.com/go-chi/chi/middleware"
	log "github.com/sirupsen/logrus"
)

// StateMiddleware injects the demonstration state into request context.
func StateMiddleware(state *State) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			r = RequestWithState(r, state)
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

// AccessLogMiddleware writes router access log.
func AccessLogMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			log.Debugf("router: -> %s %s %v", r.Method, r.URL, r.Header)
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			if status/100 != 2 {
				log.Errorf("router: <- %s %d %v", r.URL, status, w.Header())
			} else {
				log.Debugf("router: <- %s %d %v", r.URL, status, w.Header())
			}
		}
		return http.HandlerFunc(fn)
	}
}
