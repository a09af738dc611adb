package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"interview-prep/internal/domain"
	"interview-prep/internal/pipeline"

	"github.com/go-playground/validator/v10"
)

// Validator checks request DTOs against their `validate` tags and reports
// failures as domain.ValidationErrors keyed by JSON field name.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Custom tags; registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("question_type", func(fl validator.FieldLevel) bool {
		return IsQuestionType(fl.Field().String())
	})
	_ = v.RegisterValidation("stage", func(fl validator.FieldLevel) bool {
		_, ok := pipeline.ParseStageName(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &Validator{validate: v}
}

// IsQuestionType reports whether s is one of the offered interview types.
func IsQuestionType(s string) bool {
	switch s {
	case domain.QuestionTypeTechnical, domain.QuestionTypeBehavioral, domain.QuestionTypeCaseStudy:
		return true
	}
	return false
}

// Struct validates s. It returns nil or a non-empty domain.ValidationErrors.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewInternalError("request validation failed", err)
	}

	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, toFieldError(fe))
	}
	return out
}

func toFieldError(fe validator.FieldError) domain.FieldError {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return domain.NewMissingFieldError(field)
	case "max":
		return domain.FieldError{
			Field:   field,
			Rule:    "max",
			Message: fmt.Sprintf("%s must be at most %s characters", field, fe.Param()),
		}
	case "question_type":
		return domain.FieldError{
			Field: field,
			Rule:  "question_type",
			Message: fmt.Sprintf("%s must be one of %q, %q, %q", field,
				domain.QuestionTypeTechnical, domain.QuestionTypeBehavioral, domain.QuestionTypeCaseStudy),
		}
	default:
		return domain.NewInvalidFormatError(field, fmt.Sprintf("%v", fe.Value()))
	}
}
