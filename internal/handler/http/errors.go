// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"fmt"
)

// Sentinel errors raised by the router itself rather than by a handler.
var (
	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// StatusError is an error that already knows its HTTP status and the message
// to show the client.
type StatusError struct {
	Status  int
	Message string
	Err     error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}
