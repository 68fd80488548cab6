package search

import (
	"errors"
	"testing"

	"github.com/uteeni/storefront-api/internal/core/domain"
)

func TestSanitize_AcceptsLiterals(t *testing.T) {
	cases := map[string]string{
		"speaker":         "speaker",
		"  Speaker  ":     "speaker",
		"27in Monitor":    "27in monitor",
		"o'brien":         "o'brien",
		`"quoted" name`:   `"quoted" name`,
		"wide-angle v2.0": "wide-angle v2.0",
	}
	for raw, want := range cases {
		got, err := Sanitize(raw)
		if err != nil {
			t.Fatalf("Sanitize(%q): unexpected error %v", raw, err)
		}
		if got != want {
			t.Fatalf("Sanitize(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestSanitize_RejectsExpressions(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"p.price<100",
		"price > 10",
		"(function(){})()",
		"name);drop table products;--",
		"a|b",
		"$where",
		"price=1",
	}
	for _, raw := range cases {
		if _, err := Sanitize(raw); !errors.Is(err, domain.ErrInvalidQuery) {
			t.Fatalf("Sanitize(%q): expected ErrInvalidQuery, got %v", raw, err)
		}
	}
}

func TestMatches_CaseInsensitiveSubstring(t *testing.T) {
	p := domain.Product{Name: "Desk Speaker", Description: "Compact POWERED desk speaker"}

	for _, term := range []string{"speaker", "desk", "powered"} {
		if !Matches(term, p) {
			t.Fatalf("expected %q to match", term)
		}
	}
	if Matches("monitor", p) {
		t.Fatalf("unexpected match for monitor")
	}
}
