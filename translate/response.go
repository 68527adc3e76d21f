// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package translate

import (
	"io/ioutil"
	"net/http"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"

	"go.amzn.com/routerbridge/fatalerror"
)

// Response drains the loopback response and translates it into the invocation
// response shape. The body is buffered in full before the reply is considered
// complete, so the server may be shut down as soon as Response returns.
//
// Binary payloads are not supported on the response side: a body that is not
// valid UTF-8 fails the invocation.
func Response(resp *http.Response) (events.APIGatewayProxyResponse, error) {
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, fatalerror.New(fatalerror.DispatchError, err)
	}

	if !utf8.Valid(body) {
		return events.APIGatewayProxyResponse{}, fatalerror.Newf(fatalerror.TranslationError, "response body is not valid UTF-8")
	}

	// The single-value map keeps the first value per name, the shape older
	// harness boundaries expect; the multimap carries everything verbatim.
	multi := make(map[string][]string, len(resp.Header))
	single := make(map[string]string, len(resp.Header))
	for name, values := range resp.Header {
		multi[name] = append([]string(nil), values...)
		if len(values) > 0 {
			single[name] = values[0]
		}
	}

	return events.APIGatewayProxyResponse{
		StatusCode:        resp.StatusCode,
		Headers:           single,
		MultiValueHeaders: multi,
		Body:              string(body),
		IsBase64Encoded:   false,
	}, nil
}
