package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]+`)
	slugSeparators   = regexp.MustCompile(`[\s-]+`)
)

// GenerateSlug builds a URL slug from a title:
// "Smart India Hackathon 2025: Our Story!" -> "smart-india-hackathon-2025-our-story".
// The result is deterministic and GenerateSlug(GenerateSlug(s)) == GenerateSlug(s).
func GenerateSlug(input string) string {
	// Step 1: fold accents ("Café Déjà" -> "Cafe Deja")
	ascii := RemoveDiacritics(input)

	// Step 2: lowercase
	lower := strings.ToLower(ascii)

	// Step 3: drop everything except a-z, 0-9, whitespace and hyphens
	cleaned := slugInvalidChars.ReplaceAllString(lower, "")

	// Step 4: whitespace runs and hyphen runs become one hyphen
	hyphenated := slugSeparators.ReplaceAllString(cleaned, "-")

	// Step 5: trim leading/trailing hyphens
	return strings.Trim(hyphenated, "-")
}

// RemoveDiacritics decomposes the input (NFD), drops combining marks and maps
// the few letters that have no decomposition (đ, ø, ł, ß...).
func RemoveDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, input)
	if err != nil {
		out = input
	}
	return specialLetters.Replace(out)
}

var specialLetters = strings.NewReplacer(
	"đ", "d", "Đ", "D",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"ß", "ss",
	"æ", "ae", "Æ", "AE",
)
