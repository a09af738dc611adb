package domain

import (
	"fmt"
	"strings"
)

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationErrors is returned by request validation and rendered as a 400.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) FieldError {
	return FieldError{Field: field, Rule: "required", Message: fmt.Sprintf("%s is required", field)}
}

func NewInvalidFormatError(field, value string) FieldError {
	return FieldError{Field: field, Rule: "format", Message: fmt.Sprintf("%s has an invalid value %q", field, value)}
}
