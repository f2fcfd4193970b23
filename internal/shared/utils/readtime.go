package utils

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// WordsPerMinute is the reading speed used for blog read time
const WordsPerMinute = 200

// CountWords counts whitespace separated words in text content. Markup tags
// are skipped so rich-text (HTML) bodies and plain/markdown bodies count alike.
func CountWords(content string) int {
	z := html.NewTokenizer(strings.NewReader(content))
	words := 0
	skip := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF at the end of input
			return words
		case html.StartTagToken:
			if isRawTextTag(z) {
				skip++
			}
		case html.EndTagToken:
			if skip > 0 && isRawTextTag(z) {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				words += len(strings.FieldsFunc(string(z.Text()), unicode.IsSpace))
			}
		}
	}
}

func isRawTextTag(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	switch string(name) {
	case "script", "style":
		return true
	}
	return false
}

// ReadTime returns the estimated reading time in minutes, rounded up:
// ceil(words / 200). Empty content reads in 0 minutes.
func ReadTime(content string) int {
	words := CountWords(content)
	return (words + WordsPerMinute - 1) / WordsPerMinute
}
