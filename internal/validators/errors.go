// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrValidation      = errors.New("validation failed")
)

// ValidationError lists every failed field of a validated value.
// Fields maps the JSON field name to a human-readable message.
// It matches [ErrValidation] with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// Error joins the failed fields in a stable order.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, name := range names {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteString(" ")
		b.WriteString(e.Fields[name])
	}

	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FieldsOf returns the per-field messages carried by err, or nil when err
// is not a validation error.
func FieldsOf(err error) map[string]string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Fields
	}

	return nil
}
