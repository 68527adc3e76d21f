// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package translate

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"net/textproto"

	"github.com/aws/aws-lambda-go/events"

	"go.amzn.com/routerbridge/fatalerror"
)

// QueryParams flattens the inbound query mappings into ordered pairs. The
// multi-value mapping wins when populated, the single-value mapping is the
// fallback; the two are alternative encodings of the same query at the
// harness boundary, not independent sources.
func QueryParams(event *events.APIGatewayProxyRequest) []QueryParam {
	if len(event.MultiValueQueryStringParameters) > 0 {
		params := make([]QueryParam, 0, len(event.MultiValueQueryStringParameters))
		for key, values := range event.MultiValueQueryStringParameters {
			for _, value := range values {
				params = append(params, QueryParam{Key: key, Value: value})
			}
		}
		return params
	}

	params := make([]QueryParam, 0, len(event.QueryStringParameters))
	for key, value := range event.QueryStringParameters {
		params = append(params, QueryParam{Key: key, Value: value})
	}
	return params
}

// Request translates the invocation event into the outbound request for the
// loopback router listening on authority. Whatever authority the inbound
// request targeted is discarded; the loopback address is the only valid
// destination. The request carries ctx so the invocation deadline cancels
// the dispatch.
func Request(ctx context.Context, event *events.APIGatewayProxyRequest, authority string) (*http.Request, error) {
	uri, err := RestoreURI(authority, event.Path, QueryParams(event))
	if err != nil {
		return nil, err
	}

	body, err := decodeBody(event)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, event.HTTPMethod, uri, bytes.NewReader(body))
	if err != nil {
		return nil, fatalerror.New(fatalerror.TranslationError, err)
	}

	for name, values := range event.MultiValueHeaders {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	for name, value := range event.Headers {
		if _, present := req.Header[textproto.CanonicalMIMEHeaderKey(name)]; !present {
			req.Header.Set(name, value)
		}
	}

	return req, nil
}

// decodeBody maps the three body variants onto raw bytes: absent, verbatim
// text, or base64-encoded binary.
func decodeBody(event *events.APIGatewayProxyRequest) ([]byte, error) {
	if event.Body == "" {
		return nil, nil
	}

	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fatalerror.New(fatalerror.TranslationError, err)
		}
		return decoded, nil
	}

	return []byte(event.Body), nil
}
