// Package search matches station names regardless of accents and case.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowers s and strips diacritics, so "Gare de l'Est" and
// "gare de l'est" (or "GARE DE L'EST") fold to the same key.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(strings.TrimSpace(stripped))
}

// Stations returns the candidates containing query, keeping their order.
// An empty query returns every candidate.
func Stations(candidates []string, query string) []string {
	q := Fold(query)
	if q == "" {
		return append([]string(nil), candidates...)
	}

	var matches []string
	for _, c := range candidates {
		if strings.Contains(Fold(c), q) {
			matches = append(matches, c)
		}
	}
	return matches
}
