// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

// Field name constants used to restrict validation to a subset of fields.
// They are the JSON names of the validated models.
const (
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldName          = "name"
	FieldStudio        = "studio"
	FieldCoverImageURL = "coverImageUrl"
	FieldPrice         = "price"
	FieldDescription   = "description"
	FieldSteamLink     = "steamLink"
)

// RequestValidator implements the Validator interface for the request
// models of the API: User (registration), LoginRequest, CreateGameRequest
// and GameUpdate. Both value and pointer forms are accepted.
type RequestValidator struct {
	engine *validator.Validate
}

// NewRequestValidator constructs a RequestValidator whose errors are keyed
// by JSON field names and which understands the `notblank` tag.
func NewRequestValidator() Validator {
	engine := validator.New(validator.WithRequiredStructEnabled())
	engine.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// registration only fails for an empty tag or nil func
	_ = engine.RegisterValidation("notblank", nonstandard.NotBlank)

	return &RequestValidator{engine: engine}
}

// Validate dispatches on the dynamic type of obj and runs the struct tag
// rules. When fields are given, only failures of those JSON fields are
// reported.
//
// Returns ErrUnsupportedType if obj is not a known request model and a
// *ValidationError when at least one rule fails.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.User, *models.User,
		models.LoginRequest, *models.LoginRequest,
		models.CreateGameRequest, *models.CreateGameRequest,
		models.GameUpdate, *models.GameUpdate:
	default:
		return ErrUnsupportedType
	}

	if value := reflect.ValueOf(obj); value.Kind() == reflect.Ptr && value.IsNil() {
		return ErrUnsupportedType
	}

	err := v.engine.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating %T: %w", obj, err)
	}

	result := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		if len(fields) > 0 && !contains(fields, fe.Field()) {
			continue
		}
		// first failed rule of a field wins
		if _, seen := result.Fields[fe.Field()]; !seen {
			result.Fields[fe.Field()] = formatFieldError(fe)
		}
	}

	if len(result.Fields) == 0 {
		return nil
	}

	return result
}

func contains(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "min":
		if isNumberKind(fe.Kind()) {
			return "must be at least " + param
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(fe.Kind()) {
			return "must be at most " + param
		}
		return "must be at most " + param + " characters long"
	case "gte":
		return "must be greater than or equal to " + param
	case "lte":
		return "must be less than or equal to " + param
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("validation failed for '%s'", tag)
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
