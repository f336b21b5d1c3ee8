package functions

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formfuncs/pkg/dates"
	"github.com/goliatone/go-formfuncs/pkg/names"
	"github.com/goliatone/go-formfuncs/pkg/phone"
	"github.com/goliatone/go-formfuncs/pkg/submission"
)

// Names under which the form runtime invokes the built-in functions.
const (
	NameFullName      = "getFullName"
	NameDays          = "days"
	NameSubmitArrays  = "submitFormArrayToString"
	NameValidatePhone = "validatePhoneNumber"
)

// Default returns a registry holding the built-in form functions.
func Default() *Registry {
	reg := NewRegistry()
	for _, def := range Builtins() {
		reg.MustRegister(def)
	}
	return reg
}

// Builtins returns fresh definitions for the built-in form functions.
func Builtins() []Definition {
	return []Definition{
		{
			Name:        NameFullName,
			Description: "Concatenates first name and last name",
			Params:      []string{"firstname", "lastname"},
			Call:        callFullName,
		},
		{
			Name:        NameDays,
			Description: "Number of whole days between two dates",
			Params:      []string{"endDate", "startDate"},
			Call:        callDays,
		},
		{
			Name:        NameSubmitArrays,
			Description: "Joins array fields with commas and submits the form as JSON",
			Params:      []string{"globals"},
			Call:        callSubmitArrays,
		},
		{
			Name:        NameValidatePhone,
			Description: "Validates a phone number for the selected country",
			Params:      []string{"countryValue", "phoneNumber"},
			Call:        callValidatePhone,
		},
	}
}

func callFullName(_ context.Context, args ...any) (any, error) {
	return names.FullName(stringArg(args, 0), stringArg(args, 1)), nil
}

func callDays(_ context.Context, args ...any) (any, error) {
	return dates.Days(arg(args, 0), arg(args, 1)), nil
}

func callSubmitArrays(ctx context.Context, args ...any) (any, error) {
	globals, ok := arg(args, 0).(submission.Globals)
	if !ok {
		return nil, fmt.Errorf("%w: %s expects submission globals, got %T", ErrInvalidArgument, NameSubmitArrays, arg(args, 0))
	}
	return nil, submission.SubmitArraysAsString(ctx, globals)
}

func callValidatePhone(_ context.Context, args ...any) (any, error) {
	number, ok := arg(args, 1).(string)
	if !ok {
		return false, nil
	}
	return phone.Validate(stringArg(args, 0), number), nil
}

func arg(args []any, idx int) any {
	if idx < 0 || idx >= len(args) {
		return nil
	}
	return args[idx]
}

// stringArg coerces an argument to a string; missing and nil values are empty.
func stringArg(args []any, idx int) string {
	switch v := arg(args, idx).(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
