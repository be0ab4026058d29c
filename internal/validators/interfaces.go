// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationError: the per-field outcome, keyed by JSON field name.
//
// Rules are declared as `validate` struct tags on the models and executed by
// go-playground/validator.
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
