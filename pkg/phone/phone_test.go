package phone

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		country string
		number  string
		want    bool
	}{
		{name: "us dashed", country: "US", number: "212-555-0147", want: true},
		{name: "us area code starts with zero", country: "US", number: "011-555-0147", want: false},
		{name: "us exchange starts with one", country: "US", number: "212-155-0147", want: false},
		{name: "us alias with country code", country: "United States", number: "+1 212 555 0147", want: true},
		{name: "us parenthesised area code", country: "us", number: "(212) 555-0147", want: true},
		{name: "us dotted", country: "US", number: "212.555.0147", want: true},
		{name: "us local seven digits", country: "US", number: "555-0147", want: true},
		{name: "us too short", country: "US", number: "212-555-014", want: false},
		{name: "us unicode spaces", country: "US", number: "212\u00a0555\u00a00147", want: true},
		{name: "us empty", country: "US", number: "", want: false},
		{name: "us whitespace only", country: "US", number: "   ", want: false},
		{name: "us surrounding whitespace", country: " US ", number: "  2125550147\n", want: true},
		{name: "gb mobile national", country: "GB", number: "07911 123456", want: true},
		{name: "gb mobile international", country: "United Kingdom", number: "+44 7911 123456", want: true},
		{name: "gb landline", country: "GB", number: "(01632) 960983", want: true},
		{name: "gb landline international", country: "gb", number: "+441632960983", want: true},
		{name: "gb london not covered", country: "GB", number: "020 7946 0958", want: false},
		{name: "in plain", country: "IN", number: "9876543210", want: true},
		{name: "in must start six to nine", country: "IN", number: "1234567890", want: false},
		{name: "in with prefix and dash", country: "India", number: "+91-9876543210", want: true},
		{name: "in with prefix and space", country: "IN", number: "+91 9876543210", want: true},
		{name: "in eleven digits", country: "IN", number: "98765432101", want: false},
		{name: "fallback e164", country: "ZZ", number: "+12025550147", want: true},
		{name: "fallback single zero", country: "ZZ", number: "0", want: false},
		{name: "fallback two digits", country: "ZZ", number: "12", want: true},
		{name: "fallback single digit", country: "ZZ", number: "7", want: false},
		{name: "fallback sixteen digits", country: "ZZ", number: "+1234567890123456", want: false},
		{name: "fallback rejects separators", country: "ZZ", number: "+1 202 555 0147", want: false},
		{name: "empty country uses fallback", country: "", number: "4915123456789", want: true},
		{name: "canada is not aliased", country: "Canada", number: "+16135550147", want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Validate(tc.country, tc.number); got != tc.want {
				t.Fatalf("Validate(%q, %q) = %v, want %v", tc.country, tc.number, got, tc.want)
			}
		})
	}
}

func TestResolveCountry(t *testing.T) {
	cases := map[string]Country{
		"US":             US,
		" us ":           US,
		"United States":  US,
		"UNITED KINGDOM": GB,
		"gb":             GB,
		"india":          IN,
		"In":             IN,
		"":               Unknown,
		"ZZ":             Unknown,
		"United  States": Unknown,
		"Great Britain":  Unknown,
		"United States ": US,
	}

	for input, want := range cases {
		if got := ResolveCountry(input); got != want {
			t.Fatalf("ResolveCountry(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestCountryMetadata(t *testing.T) {
	codes := make([]string, 0, len(Countries()))
	for _, c := range Countries() {
		codes = append(codes, c.String())
	}
	if diff := cmp.Diff([]string{"US", "GB", "IN"}, codes); diff != "" {
		t.Fatalf("country codes mismatch (-want +got):\n%s", diff)
	}

	if Unknown.String() != "" {
		t.Fatalf("expected empty code for Unknown, got %q", Unknown.String())
	}
	if got := IN.Pattern(); got != `^(?:\+91[\-\s]?)?[6-9]\d{9}$` {
		t.Fatalf("unexpected IN pattern: %q", got)
	}
	if got := Unknown.Pattern(); got != `^\+?[1-9]\d{1,14}$` {
		t.Fatalf("unexpected fallback pattern: %q", got)
	}
}

func TestExpandSpace(t *testing.T) {
	got := expandSpace(`a\s[\s.-]\d\-`)
	want := `a[` + spaceClass + `][` + spaceClass + `.-]\d\-`
	if got != want {
		t.Fatalf("expandSpace mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestNormalizeE164(t *testing.T) {
	cases := []struct {
		country string
		number  string
		want    string
	}{
		{country: "US", number: "(650) 253-0000", want: "+16502530000"},
		{country: "United States", number: "+1 650 253 0000", want: "+16502530000"},
		{country: "GB", number: "07400 123456", want: "+447400123456"},
		{country: "ZZ", number: "+16502530000", want: "+16502530000"},
	}

	for _, tc := range cases {
		got, err := NormalizeE164(tc.country, tc.number)
		if err != nil {
			t.Fatalf("NormalizeE164(%q, %q) unexpected error: %v", tc.country, tc.number, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizeE164(%q, %q) = %q, want %q", tc.country, tc.number, got, tc.want)
		}
	}
}

func TestNormalizeE164_Invalid(t *testing.T) {
	cases := []struct {
		country string
		number  string
	}{
		{country: "US", number: "011-555-0147"},
		{country: "US", number: ""},
		{country: "ZZ", number: "6502530000"},
	}

	for _, tc := range cases {
		if _, err := NormalizeE164(tc.country, tc.number); !errors.Is(err, ErrInvalidPhoneNumber) {
			t.Fatalf("NormalizeE164(%q, %q) expected ErrInvalidPhoneNumber, got %v", tc.country, tc.number, err)
		}
	}
}
