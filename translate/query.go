// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package translate converts between the invocation harness's event shapes
// and the net/http request/response pair served by the loopback router.
package translate

import (
	"net/url"
	"strings"

	"go.amzn.com/routerbridge/fatalerror"
)

// QueryParam is one query-string parameter to restore on the outbound URI.
type QueryParam struct {
	Key   string
	Value string
}

// EncodeQuery renders params as an application/x-www-form-urlencoded query
// string: percent-encoded keys and values joined by '=', pairs joined by '&',
// space encoded as '+'. Pair order is preserved as given, no sorting. The
// result carries no leading '?'.
func EncodeQuery(params []QueryParam) string {
	if len(params) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(params))
	for _, p := range params {
		pairs = append(pairs, url.QueryEscape(p.Key)+"="+url.QueryEscape(p.Value))
	}
	return strings.Join(pairs, "&")
}

// RestoreURI composes the absolute URI for the loopback dispatch, re-attaching
// the query string the harness parsed away. No '?' is appended when params is
// empty. The composed URI is validated before use.
func RestoreURI(authority, path string, params []QueryParam) (string, error) {
	uri := "http://" + authority + path
	if query := EncodeQuery(params); query != "" {
		uri += "?" + query
	}

	if _, err := url.ParseRequestURI(uri); err != nil {
		return "", fatalerror.New(fatalerror.TranslationError, err)
	}

	return uri, nil
}
