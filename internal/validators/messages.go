package validators

import (
	"fmt"
	"strings"
)

type fieldRule struct {
	field string
	rule  string
}

var messageOverrides = map[fieldRule]string{
	{field: "password_confirmation", rule: "eqfield"}: "Passwords don't match",
}

func validationMessage(field, rule, param string) string {
	if msg, ok := messageOverrides[fieldRule{field: field, rule: rule}]; ok {
		return msg
	}

	switch rule {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "min":
		return "must be at least " + param + " characters long"
	case "max":
		return "must be at most " + param + " characters long"
	case "len":
		return "must be exactly " + param
	case "oneof":
		return "must be one of " + strings.ReplaceAll(param, " ", ", ")
	case "eqfield":
		return "must match " + strings.ToLower(param)
	default:
		if param != "" {
			return fmt.Sprintf("failed %s validation (%s)", rule, param)
		}
		return "failed " + rule + " validation"
	}
}
