package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// Issue rules produced by DecodeJSON. Constraint failures use the
// validator tag name (required, email, min, ...) as their rule.
const (
	RuleUnrecognizedKey = "unrecognized_key"
	RuleInvalidJSON     = "invalid_json"
	RuleType            = "type"
)

// FieldError describes a single failed constraint.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// ValidationError carries every issue found in one request payload.
type ValidationError struct {
	Issues []FieldError
}

// NewValidationError builds a ValidationError from issues.
func NewValidationError(issues ...FieldError) *ValidationError {
	return &ValidationError{Issues: issues}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Field == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, issue.Field+": "+issue.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}
