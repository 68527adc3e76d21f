// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	log "github.com/sirupsen/logrus"
)

const (
	stateMissingErrorType = "Router.InvalidState"
)

type countHandler struct {
	//
}

func (h *countHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	state, ok := FromRequest(request)
	if !ok {
		log.Error("Demonstration state missing from request context")
		render.Status(request, http.StatusInternalServerError)
		render.JSON(writer, request, &ErrorResponse{
			ErrorType:    stateMissingErrorType,
			ErrorMessage: "demonstration state was not injected",
		})
		return
	}

	render.PlainText(writer, request, fmt.Sprintf("Count: %d", state.Count))
}

// NewCountHandler returns a new instance of http handler
// for serving /data.
func NewCountHandler() http.Handler {
	return &countHandler{}
}
