// Package ssr holds the fixed IATA Special Service Request code table used
// across the accessibility integrations. The table is defined once and never
// mutated, so it is safe for concurrent readers without locking.
package ssr

import (
	"sort"
	"strings"

	"bitbucket.org/crgw/accessibility-hub/internal/validation"
)

// Codes are matched exactly as provided, uppercase per IATA convention.
// Callers normalize case before calling.
var descriptions = map[string]string{
	"WCHR": "Wheelchair assistance (passenger provides own wheelchair)",
	"WCHS": "Wheelchair with stowage (wheelchair stowed in cargo hold)",
	"STCR": "Stretcher case (medical requirement for stretcher accommodation)",
	"DEAF": "Deaf passenger (visual alerts, no audio announcements)",
	"BLND": "Blind passenger (audio assistance, guide dog accommodation)",
	"PRMK": "Passenger with mobility disability (priority seating, extra assistance)",
}

// IsValid reports whether code is a member of the registry.
func IsValid(code string) bool {
	_, ok := descriptions[code]
	return ok
}

// Description looks up a single code. The second return value is false when
// the code is not a registry member; the lookup itself never fails.
func Description(code string) (string, bool) {
	description, ok := descriptions[code]
	return description, ok
}

// AllCodes returns a copy of the full code table.
func AllCodes() map[string]string {
	all := make(map[string]string, len(descriptions))
	for code, description := range descriptions {
		all[code] = description
	}

	return all
}

// SortedCodes returns the registry members in lexical order, for
// deterministic display.
func SortedCodes() []string {
	codes := make([]string, 0, len(descriptions))
	for code := range descriptions {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return codes
}

// ValidateCodes returns codes unchanged when every token is a registry
// member, and fails with a validation error naming every unknown token
// otherwise.
func ValidateCodes(codes []string) ([]string, error) {
	errorsBucket := validation.NewErrorsBucket()

	for _, code := range codes {
		if !IsValid(code) {
			errorsBucket.AddError(NewInvalidCodeError(code))
		}
	}

	if err := errorsBucket.Err(); err != nil {
		return nil, err
	}

	return codes, nil
}

func NewInvalidCodeError(code string) validation.Error {
	return validation.NewFieldError(
		"special_service_codes",
		"invalid SSR code '%s', valid codes: %s",
		code,
		strings.Join(SortedCodes(), ", "),
	)
}
