// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import "errors"

var (
	ErrNotAuthorized = errors.New("not authorized")
	ErrNotFound      = errors.New("resource not found")
	ErrForbidden     = errors.New("resource belongs to another user")
)
