// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassification is the driver independent kind of a failed statement.
type ErrorClassification int

const (
	// Unclassified covers every error without a dedicated mapping.
	Unclassified ErrorClassification = iota
	UniqueViolation
	ForeignKeyViolation
	CheckViolation
)

// ErrorClassificator maps driver specific errors to an
// [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

func (db *DB) classify(err error) ErrorClassification {
	if err == nil || db.errorClassificator == nil {
		return Unclassified
	}

	return db.errorClassificator.Classify(err)
}
