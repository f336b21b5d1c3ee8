package formfuncs

import (
	"context"

	"github.com/goliatone/go-formfuncs/pkg/dates"
	"github.com/goliatone/go-formfuncs/pkg/functions"
	"github.com/goliatone/go-formfuncs/pkg/names"
	"github.com/goliatone/go-formfuncs/pkg/phone"
	"github.com/goliatone/go-formfuncs/pkg/submission"
)

// Globals aliases submission.Globals, the host capabilities used when
// submitting a form.
type Globals = submission.Globals

// Country aliases phone.Country.
type Country = phone.Country

// Registry aliases functions.Registry.
type Registry = functions.Registry

// NewRegistry returns a registry preloaded with the built-in form functions,
// keyed by the names the form runtime uses.
func NewRegistry() *Registry {
	return functions.Default()
}

// FullName joins firstname and lastname for display.
func FullName(firstname, lastname string) string {
	return names.FullName(firstname, lastname)
}

// Days returns the whole days between two date-like values, or 0 when either
// is invalid.
func Days(endDate, startDate any) int {
	return dates.Days(endDate, startDate)
}

// SubmitArraysAsString joins array fields with commas and submits the form
// as JSON through globals.
func SubmitArraysAsString(ctx context.Context, globals Globals) error {
	return submission.SubmitArraysAsString(ctx, globals)
}

// ValidatePhoneNumber reports whether phoneNumber is valid for countryValue.
func ValidatePhoneNumber(countryValue, phoneNumber string) bool {
	return phone.Validate(countryValue, phoneNumber)
}
