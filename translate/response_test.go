// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package translate

import (
	"errors"
	"io/ioutil"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.amzn.com/routerbridge/fatalerror"
)

type failingBody struct{}

func (failingBody) Read([]byte) (int, error) { return 0, errors.New("connection reset") }
func (failingBody) Close() error             { return nil }

func TestResponseCopiesStatusHeadersAndBody(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Header: http.Header{
			"Content-Type": {"text/plain; charset=utf-8"},
			"Set-Cookie":   {"first=1", "second=2"},
		},
		Body: ioutil.NopCloser(strings.NewReader("Count: 42")),
	}

	translated, err := Response(resp)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, translated.StatusCode)
	assert.Equal(t, "Count: 42", translated.Body)
	assert.False(t, translated.IsBase64Encoded)

	assert.Equal(t, map[string][]string{
		"Content-Type": {"text/plain; charset=utf-8"},
		"Set-Cookie":   {"first=1", "second=2"},
	}, translated.MultiValueHeaders)

	// single-value map folds to the first value per name
	assert.Equal(t, map[string]string{
		"Content-Type": "text/plain; charset=utf-8",
		"Set-Cookie":   "first=1",
	}, translated.Headers)
}

func TestResponseStatusCodeVerbatim(t *testing.T) {
	for _, code := range []int{http.StatusNoContent, http.StatusNotFound, http.StatusInternalServerError} {
		resp := &http.Response{
			StatusCode: code,
			Header:     http.Header{},
			Body:       ioutil.NopCloser(strings.NewReader("")),
		}

		translated, err := Response(resp)
		require.NoError(t, err)
		assert.Equal(t, code, translated.StatusCode)
		assert.Equal(t, "", translated.Body)
	}
}

func TestResponseRejectsNonUTF8Body(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": {"application/octet-stream"}},
		Body:       ioutil.NopCloser(strings.NewReader("\xff\xfe\xfd")),
	}

	_, err := Response(resp)
	assert.Error(t, err)
	assert.Equal(t, fatalerror.TranslationError, fatalerror.GetType(err))
}

func TestResponseReadFailureIsDispatchError(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       failingBody{},
	}

	_, err := Response(resp)
	assert.Error(t, err)
	assert.Equal(t, fatalerror.DispatchError, fatalerror.GetType(err))
}
