// Package validation defines the single error kind raised by record
// construction and SSR code validation. Extraction never produces these;
// malformed provider data degrades to absent fields instead.
package validation

import (
	"fmt"
	"strings"
	"sync"
)

type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type Errors []Error

func (e Errors) Error() string {
	messages := make([]string, len(e))
	for i, err := range e {
		messages[i] = err.Error()
	}

	return strings.Join(messages, "; ")
}

func NewFieldError(field string, format string, args ...any) Error {
	return Error{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

type errorsBucket struct {
	errors Errors
	sync.Mutex
}

func NewErrorsBucket() errorsBucket {
	return errorsBucket{
		errors: Errors{},
	}
}

func (b *errorsBucket) AddError(err Error) {
	b.Lock()
	b.errors = append(b.errors, err)
	b.Unlock()
}

func (b *errorsBucket) AddErrors(errors Errors) {
	b.Lock()
	b.errors = append(b.errors, errors...)
	b.Unlock()
}

// Err returns the collected errors, or nil when the bucket is empty.
func (b *errorsBucket) Err() error {
	b.Lock()
	defer b.Unlock()

	if len(b.errors) == 0 {
		return nil
	}

	return b.errors
}
