package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is wrapped by every error caused by the submitted deal.
var ErrInvalidInput = errors.New("invalid deal input")

// FieldError reports a single field that could not be parsed or failed a rule.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}

// ValidationError aggregates every field failure of one submission.
type ValidationError struct {
	Fields []*FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Error())
	}
	return "invalid deal input: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func (e *ValidationError) add(field, value, reason string) {
	e.Fields = append(e.Fields, &FieldError{Field: field, Value: value, Reason: reason})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
