// Package phone validates phone numbers entered in forms against a small,
// fixed table of per-country patterns.
//
// Country values are resolved through ResolveCountry, which accepts two-letter
// codes and a few full country names. Numbers for countries outside the table
// are checked against a loose international shape (optional "+", up to 15
// digits, no leading zero). Validation never fails loudly: malformed input
// simply reports false.
package phone

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

// ErrInvalidPhoneNumber is returned by NormalizeE164 when a number cannot be
// validated or parsed.
var ErrInvalidPhoneNumber = errors.New("phone: invalid phone number")

const (
	patternUS       = `^(?:\+1[\s.-]?)?(?:\(?[2-9]\d{2}\)?[\s.-]?)?[2-9]\d{2}[\s.-]?\d{4}$`
	patternGB       = `^(?:\+44\s?7\d{3}|\(?07\d{3}\)?)\s?\d{6,7}$|^(?:\+44\s?1\d{3}|\(?01\d{3}\)?)\s?\d{6,7}$`
	patternIN       = `^(?:\+91[\-\s]?)?[6-9]\d{9}$`
	patternFallback = `^\+?[1-9]\d{1,14}$`
)

// browser whitespace: ASCII controls, NBSP, Unicode space separators, line
// and paragraph separators, BOM
const spaceClass = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

type entry struct {
	source string
	re     *regexp.Regexp
}

var (
	patterns = map[Country]entry{
		US: compile(patternUS),
		GB: compile(patternGB),
		IN: compile(patternIN),
	}
	fallback = compile(patternFallback)
)

func compile(source string) entry {
	return entry{source: source, re: regexp.MustCompile(expandSpace(source))}
}

func patternFor(c Country) *entry {
	if e, ok := patterns[c]; ok {
		return &e
	}
	return &fallback
}

func (e *entry) String() string { return e.source }

// Validate reports whether phoneNumber is a plausible number for countryValue.
// Empty numbers are rejected. Surrounding whitespace is ignored while inner
// separators are left for the pattern to judge.
func Validate(countryValue, phoneNumber string) bool {
	if phoneNumber == "" {
		return false
	}
	raw := trimSpace(phoneNumber)
	return patternFor(ResolveCountry(countryValue)).re.MatchString(raw)
}

// NormalizeE164 validates phoneNumber with Validate and formats it as E.164,
// using the resolved country as the default region. Numbers for unknown
// countries must carry an international prefix.
func NormalizeE164(countryValue, phoneNumber string) (string, error) {
	if !Validate(countryValue, phoneNumber) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhoneNumber, phoneNumber)
	}

	num, err := phonenumbers.Parse(trimSpace(phoneNumber), ResolveCountry(countryValue).String())
	if err != nil {
		return "", fmt.Errorf("%w: parse %q: %v", ErrInvalidPhoneNumber, phoneNumber, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: %q is not an assigned number", ErrInvalidPhoneNumber, phoneNumber)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// expandSpace rewrites \s into spaceClass so the patterns treat Unicode
// spaces the same way the browser does.
func expandSpace(src string) string {
	var b strings.Builder
	inClass := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c == '\\' && i+1 < len(src) {
			next := src[i+1]
			i++
			if next != 's' {
				b.WriteByte(c)
				b.WriteByte(next)
				continue
			}
			if inClass {
				b.WriteString(spaceClass)
			} else {
				b.WriteString("[" + spaceClass + "]")
			}
			continue
		}
		switch c {
		case '[':
			inClass = true
		case ']':
			inClass = false
		}
		b.WriteByte(c)
	}
	return b.String()
}
