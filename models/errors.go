package models

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorValidation carries field-scoped messages for a 400 response.
type ErrorValidation struct {
	Fields map[string][]string
}

// NewFieldError builds a validation error for a single field.
func NewFieldError(field, message string) *ErrorValidation {
	return &ErrorValidation{Fields: map[string][]string{field: {message}}}
}

func (e *ErrorValidation) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ErrorValidation) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], "; "))
	}
	return strings.Join(parts, ", ")
}

// ErrorNotFound maps to 404.
type ErrorNotFound struct {
	Resource string
}

func (e *ErrorNotFound) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ErrorPermission maps to 403. No detail about why access was denied.
type ErrorPermission struct{}

func (e *ErrorPermission) Error() string {
	return "you do not have permission to perform this action"
}

// ErrorConflict maps to 400 with a human-readable message.
type ErrorConflict struct {
	Message string
}

func (e *ErrorConflict) Error() string {
	return e.Message
}

// ErrorMethodNotAllowed maps to 405 (deleting /users/me).
type ErrorMethodNotAllowed struct {
	Message string
}

func (e *ErrorMethodNotAllowed) Error() string {
	return e.Message
}
