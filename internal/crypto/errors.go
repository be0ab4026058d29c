// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrInvalidHashFormat   = errors.New("invalid encoded hash format")
	ErrUnsupportedVariant  = errors.New("unsupported hash variant")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
	ErrGeneratingSalt      = errors.New("error generating salt")
)
