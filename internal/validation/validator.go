// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError is a single failed field rule.
type ValidationError struct {
	field   string
	tag     string
	param   string
	message string
}

// Field returns the field name, taken from its json or koanf tag when present.
func (e *ValidationError) Field() string { return e.field }

// Tag returns the validation tag that failed.
func (e *ValidationError) Tag() string { return e.tag }

// Param returns the tag parameter, e.g. "1" for "min=1".
func (e *ValidationError) Param() string { return e.param }

func (e *ValidationError) Error() string { return e.message }

// RequestValidationError collects every failed rule of one struct.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the individual field failures.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve.errors))
	for i := range ve.errors {
		messages[i] = ve.errors[i].message
	}
	return strings.Join(messages, "; ")
}

// HasField reports whether the named field failed validation.
func (ve *RequestValidationError) HasField(field string) bool {
	for i := range ve.errors {
		if ve.errors[i].field == field {
			return true
		}
	}
	return false
}

// GetValidator returns the singleton validator. Field names in messages come
// from the json tag, falling back to the koanf tag, so they match what the
// client or operator actually wrote.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, key := range []string{"json", "koanf"} {
				name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	})
	return validate
}

// ValidateStruct validates s and returns nil or a *RequestValidationError.
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    respondFailure(w, http.StatusBadRequest, err.Error())
//	    return
//	}
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{
			errors: []ValidationError{{field: "unknown", tag: "unknown", message: err.Error()}},
		}
	}

	fieldErrors := make([]ValidationError, len(validationErrs))
	for i, fieldErr := range validationErrs {
		fieldErrors[i] = ValidationError{
			field:   fieldPath(fieldErr),
			tag:     fieldErr.Tag(),
			param:   fieldErr.Param(),
			message: translateError(fieldErr),
		}
	}
	return &RequestValidationError{errors: fieldErrors}
}

// fieldPath drops the root struct name from the namespace:
// "Config.server.port" becomes "server.port".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"url":      "%s must be a valid URL",
	"hostname": "%s must be a valid hostname",
	"latitude": "%s must be a valid latitude (-90 to 90)",
}

var errorMessageWithParam = map[string]string{
	"oneof":   "%s must be one of: %s",
	"gte":     "%s must be greater than or equal to %s",
	"lte":     "%s must be less than or equal to %s",
	"gt":      "%s must be greater than %s",
	"lt":      "%s must be less than %s",
	"min":     "%s must be at least %s",
	"max":     "%s must be at most %s",
	"gtfield": "%s must be greater than %s",
}

func translateError(fe validator.FieldError) string {
	field := fieldPath(fe)
	if template, ok := errorMessageTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(template, field)
	}
	if template, ok := errorMessageWithParam[fe.Tag()]; ok {
		return fmt.Sprintf(template, field, fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}
