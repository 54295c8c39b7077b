// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator checks request models against their `validate` tags and
// reports issues under the fields' JSON names.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a Validator backed by go-playground/validator.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonTagName)

	return &RequestValidator{validate: v}
}

// Validate checks obj, which must be a struct or a pointer to one. When fields
// are given (Go field names), only those fields are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalidErr *validator.InvalidValidationError
	if errors.As(err, &invalidErr) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	issues := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := fieldPath(fe)
		issues = append(issues, FieldError{
			Field:   field,
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: validationMessage(field, fe.Tag(), fe.Param()),
		})
	}

	return NewValidationError(issues...)
}

func jsonTagName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return sf.Name
	}

	return name
}

// fieldPath drops the root struct name from the error namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok && rest != "" {
		return rest
	}

	return fe.Field()
}
