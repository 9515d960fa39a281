package common

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError represents validation failures
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// Validator provides validation utilities
type Validator struct {
	errors []ValidationError
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		errors: make([]ValidationError, 0),
	}
}

// ValidationRule checks a single field value.
type ValidationRule func(fieldName string, value interface{}) *ValidationError

// Field validates a field and collects errors
func (v *Validator) Field(fieldName string, value interface{}, rules ...ValidationRule) *Validator {
	for _, rule := range rules {
		if err := rule(fieldName, value); err != nil {
			v.errors = append(v.errors, *err)
		}
	}
	return v
}

// Err returns the first collected error, or nil if validation passed.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}
	msgs := make([]string, len(v.errors))
	for i, e := range v.errors {
		msgs[i] = e.Error()
	}
	return NewAppError("VALIDATION_ERROR", strings.Join(msgs, "; "), ErrValidation)
}

// Required fails on empty strings.
func Required() ValidationRule {
	return func(fieldName string, value interface{}) *ValidationError {
		s, ok := value.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return &ValidationError{Field: fieldName, Value: value, Message: "is required"}
		}
		return nil
	}
}

// MaxLength fails on strings longer than max (in runes).
func MaxLength(max int) ValidationRule {
	return func(fieldName string, value interface{}) *ValidationError {
		s, ok := value.(string)
		if ok && utf8.RuneCountInString(s) > max {
			return &ValidationError{
				Field:   fieldName,
				Value:   fmt.Sprintf("%d runes", utf8.RuneCountInString(s)),
				Message: fmt.Sprintf("must be at most %d runes", max),
			}
		}
		return nil
	}
}

// OneOf fails on strings outside the allowed set.
func OneOf(allowed ...string) ValidationRule {
	return func(fieldName string, value interface{}) *ValidationError {
		s, _ := value.(string)
		for _, a := range allowed {
			if s == a {
				return nil
			}
		}
		return &ValidationError{
			Field:   fieldName,
			Value:   value,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		}
	}
}
