package formfuncs_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	formfuncs "github.com/goliatone/go-formfuncs"
	"github.com/goliatone/go-formfuncs/pkg/submission"
)

func TestFacade(t *testing.T) {
	if got := formfuncs.FullName("Jane", "Doe"); got != "Jane Doe" {
		t.Fatalf("FullName = %q", got)
	}
	if got := formfuncs.Days("2024-01-10", "2024-01-01"); got != 9 {
		t.Fatalf("Days = %d", got)
	}
	if !formfuncs.ValidatePhoneNumber("IN", "9876543210") {
		t.Fatalf("expected IN number to validate")
	}
	if formfuncs.ValidatePhoneNumber("ZZ", "0") {
		t.Fatalf("expected fallback to reject 0")
	}

	var submitted map[string]any
	err := formfuncs.SubmitArraysAsString(context.Background(), submission.GlobalsFuncs{
		Export: func(context.Context) (map[string]any, error) {
			return map[string]any{"ids": []string{"1", "2"}}, nil
		},
		Submit: func(_ context.Context, data map[string]any, _ bool, _ string) error {
			submitted = data
			return nil
		},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"ids": "1,2"}, submitted); diff != "" {
		t.Fatalf("submitted data mismatch (-want +got):\n%s", diff)
	}

	if !formfuncs.NewRegistry().Has("getFullName") {
		t.Fatalf("expected registry to expose getFullName")
	}
}
