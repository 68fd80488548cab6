// Package search validates untrusted query strings into literal terms.
//
// A sanitized term is only ever used for case-insensitive substring
// containment. It is never compiled, evaluated, or given pattern semantics
// of any kind.
package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/uteeni/storefront-api/internal/core/domain"
)

// termPattern is the allow-list: word characters, whitespace, hyphen,
// period, and quotation marks. Anything else fails the whole query.
var termPattern = regexp.MustCompile(`^[\w\s\-.'"]+$`)

// Sanitize trims and validates a raw query, returning the normalized
// (lower-cased) literal term. Empty or out-of-alphabet input yields
// domain.ErrInvalidQuery.
func Sanitize(rawQuery string) (string, error) {
	q := strings.TrimSpace(rawQuery)
	if q == "" {
		return "", fmt.Errorf("%w: empty", domain.ErrInvalidQuery)
	}
	if !termPattern.MatchString(q) {
		return "", fmt.Errorf("%w: only letters, digits, spaces, hyphens, periods and quotes are allowed", domain.ErrInvalidQuery)
	}
	return strings.ToLower(q), nil
}

// Matches reports whether a sanitized term occurs in the product's name or
// description, case-insensitively.
func Matches(term string, p domain.Product) bool {
	haystack := strings.ToLower(p.Name + " " + p.Description)
	return strings.Contains(haystack, term)
}
