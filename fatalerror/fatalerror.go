// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package fatalerror

import (
	"errors"
	"fmt"
)

// This package defines constant error types reported to the invocation harness
// when an invocation fails
// Separate package for namespacing

// ErrorType is reported to the harness inside the invocation error
type ErrorType string

const (
	ConfigurationError ErrorType = "Bridge.ConfigurationError" // invalid bind policy or unusable entropy source
	BindError          ErrorType = "Bridge.BindError"          // loopback listener could not be bound
	TranslationError   ErrorType = "Bridge.TranslationError"   // request or response could not be translated
	DispatchError      ErrorType = "Bridge.DispatchError"      // loopback call failed or timed out
	Unknown            ErrorType = "Bridge.Unknown"
)

var validBridgeErrors = map[ErrorType]struct{}{
	ConfigurationError: {},
	BindError:          {},
	TranslationError:   {},
	DispatchError:      {},
	Unknown:            {},
}

// Error couples an ErrorType with the underlying cause so a failure can be
// classified without losing the error chain.
type Error struct {
	Type  ErrorType
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Type)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New wraps cause with the given ErrorType.
func New(errorType ErrorType, cause error) error {
	return &Error{Type: errorType, Cause: cause}
}

// Newf wraps a formatted message with the given ErrorType.
func Newf(errorType ErrorType, format string, args ...interface{}) error {
	return &Error{Type: errorType, Cause: fmt.Errorf(format, args...)}
}

// GetType walks the wrap chain of err and returns the first bridge ErrorType
// found. Untyped errors classify as Unknown.
func GetType(err error) ErrorType {
	var typed *Error
	if errors.As(err, &typed) {
		if _, ok := validBridgeErrors[typed.Type]; ok {
			return typed.Type
		}
	}
	return Unknown
}
