// Package names formats person names for display in form fields.
package names

import "strings"

// FullName joins firstname and lastname with a single space and trims the
// surrounding whitespace of the result. Either part may be empty. Character
// content is returned verbatim.
func FullName(firstname, lastname string) string {
	return strings.TrimSpace(firstname + " " + lastname)
}
