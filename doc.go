// Package formfuncs bundles the helper functions a form runtime calls while
// rendering and submitting forms: name formatting, date differences, array
// flattening before JSON submission, and per-country phone validation. The
// implementations live under pkg/; this package re-exports them for callers
// that want a single import.
package formfuncs
