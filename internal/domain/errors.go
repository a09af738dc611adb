package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"

	// Pipeline errors
	CodePrerequisiteMissing ErrorCode = "PREREQUISITE_MISSING"
	CodeCapabilityFailure   ErrorCode = "CAPABILITY_FAILURE"
	CodeMalformedResult     ErrorCode = "MALFORMED_RESULT"
	CodeSelectionInvalid    ErrorCode = "SELECTION_INVALID"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsCode reports whether err is, or wraps, a DomainError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// CodeOf returns the code of the first DomainError in err's chain, or
// CodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeInternal
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

// NewPrerequisiteMissingError reports a stage invoked before its upstream
// fields were produced. Callers are expected to gate on CanRun first.
func NewPrerequisiteMissingError(stage string, missing ...string) *DomainError {
	return NewError(CodePrerequisiteMissing,
		fmt.Sprintf("stage %s cannot run: missing %v", stage, missing), nil)
}

// NewCapabilityFailureError reports a capability call that did not succeed.
// The condition is retryable.
func NewCapabilityFailureError(capability string, err error) *DomainError {
	return NewError(CodeCapabilityFailure,
		fmt.Sprintf("capability %s failed", capability), err)
}

// NewMalformedResultError reports a capability call that succeeded but
// returned a payload of the wrong shape.
func NewMalformedResultError(capability string, err error) *DomainError {
	return NewError(CodeMalformedResult,
		fmt.Sprintf("capability %s returned a malformed result", capability), err)
}

func NewSelectionInvalidError(category, subtopic string) *DomainError {
	return NewError(CodeSelectionInvalid,
		fmt.Sprintf("subtopic %q is not listed under category %q", subtopic, category), nil)
}
