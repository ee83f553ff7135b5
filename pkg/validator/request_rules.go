package validator

import (
	"fmt"
	"strings"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// RequiredQueryParam is RequiredString with a message naming the URL parameter.
func RequiredQueryParam(param, value string) Rule {
	rule := RequiredString(param, value)
	rule.Error.Message = fmt.Sprintf("Parameter %s is missing in URL.", param)
	rule.Error.TranslationKey = "validation.required_query_param"
	return rule
}
