// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Keeping them in one place ensures consistent wording
// throughout the API.
package app

// Values of the "status" field of error responses.
const (
	StatusError           = "Error"
	StatusValidationError = "Validation error"
)

const (
	// MsgInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	MsgInvalidCredentials = "Incorrect Email or Password"

	// MsgTokenRequired is returned when a protected route is called without
	// an "Authorization" header.
	MsgTokenRequired = "Token required"

	// MsgTokenInvalid is returned when the bearer token is malformed,
	// tampered with, or expired.
	MsgTokenInvalid = "Token invalid"

	MsgUserNotFound          = "User not found"
	MsgUserAlreadyRegistered = "User already registered"

	MsgRouteNotFound       = "Route not found"
	MsgMethodNotAllowed    = "Method not allowed"
	MsgRequestBodyTooLarge = "Request body too large"
	MsgServiceUnavailable  = "Service unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs. The cause is logged, never sent to the client.
	MsgInternalServerError = "Internal Server Error"
)
