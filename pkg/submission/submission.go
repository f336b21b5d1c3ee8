// Package submission prepares exported form data for JSON submission.
//
// The host form runtime owns both the data snapshot and the transport. This
// package only receives those capabilities through the Globals interface,
// rewrites array-valued fields into comma-joined strings, and hands the record
// back for submission. Errors raised by the host are returned unchanged.
package submission

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ContentTypeJSON is the content type passed to Globals.SubmitForm.
const ContentTypeJSON = "application/json"

// ErrMissingGlobals is returned when SubmitArraysAsString receives a nil Globals.
var ErrMissingGlobals = errors.New("submission: globals are required")

// Globals exposes the host capabilities used during submission.
type Globals interface {
	ExportData(ctx context.Context) (map[string]any, error)
	SubmitForm(ctx context.Context, data map[string]any, useJSON bool, contentType string) error
}

// GlobalsFuncs adapts plain functions into a Globals implementation.
type GlobalsFuncs struct {
	Export func(ctx context.Context) (map[string]any, error)
	Submit func(ctx context.Context, data map[string]any, useJSON bool, contentType string) error
}

// ExportData delegates to Export.
func (g GlobalsFuncs) ExportData(ctx context.Context) (map[string]any, error) {
	if g.Export == nil {
		return nil, fmt.Errorf("submission: export function is not configured")
	}
	return g.Export(ctx)
}

// SubmitForm delegates to Submit.
func (g GlobalsFuncs) SubmitForm(ctx context.Context, data map[string]any, useJSON bool, contentType string) error {
	if g.Submit == nil {
		return fmt.Errorf("submission: submit function is not configured")
	}
	return g.Submit(ctx, data, useJSON, contentType)
}

// SubmitArraysAsString exports the current form data, replaces every
// array-valued field with its elements joined by ",", and submits the record
// as JSON. Failures from either capability are returned as-is.
func SubmitArraysAsString(ctx context.Context, globals Globals) error {
	if globals == nil {
		return ErrMissingGlobals
	}

	data, err := globals.ExportData(ctx)
	if err != nil {
		return err
	}

	FlattenArrays(data)

	return globals.SubmitForm(ctx, data, true, ContentTypeJSON)
}

// FlattenArrays rewrites data in place, joining every slice or array value
// with ",". Other values, including []byte, are left untouched.
func FlattenArrays(data map[string]any) {
	for key, value := range data {
		if joined, ok := JoinValues(value); ok {
			data[key] = joined
		}
	}
}

// JoinValues joins value with "," when it is a slice or array and reports
// whether it did so.
func JoinValues(value any) (string, bool) {
	if value == nil {
		return "", false
	}

	switch v := value.(type) {
	case []byte:
		return "", false
	case []string:
		return strings.Join(v, ","), true
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = elementString(item)
		}
		return strings.Join(parts, ","), true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return "", false
	}

	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = elementString(rv.Index(i).Interface())
	}
	return strings.Join(parts, ","), true
}

func elementString(value any) string {
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return ""
	}

	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatNumber(v)
	case float32:
		f, _ := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'g', -1, 32), 64)
		return formatNumber(f)
	case fmt.Stringer:
		return v.String()
	}

	if joined, ok := JoinValues(value); ok {
		return joined
	}
	return fmt.Sprint(value)
}

// formatNumber renders f the way the browser prints numbers: plain decimals
// between 1e-6 and 1e21, exponent notation outside that range.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
