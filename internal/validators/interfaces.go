// SPDX-License-Identifier: Apache-2.0

// Package validators turns raw request input into typed request models.
//
// Core concepts:
//   - DecodeJSON: strict JSON decoding. Undeclared fields are rejected rather
//     than dropped, and decoding failures are reported as *ValidationError.
//   - Validator: constraint checking over decoded request models, driven by
//     `validate` struct tags.
//   - ValidationError: machine-readable list of per-field issues that the HTTP
//     layer renders as a 400 response.
//
// This package decouples validation logic from transport layers and storage,
// so handlers only see requests that already satisfy their schema.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
