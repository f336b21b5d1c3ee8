// Package functions exposes the form helpers through a name-keyed registry so
// a host form runtime can resolve custom functions by the names it uses in
// form definitions (getFullName, days, submitFormArrayToString,
// validatePhoneNumber). Arguments arrive loosely typed and are coerced the way
// the runtime would: missing values become empty strings, and a phone number
// that is not a string is simply invalid.
package functions
