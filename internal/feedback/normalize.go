// Package feedback turns raw evaluator text into display fields.
package feedback

import (
	"regexp"
	"strings"
)

// fillerPhrases are pleasantries the evaluator model injects despite being
// told not to. They are removed wherever they appear.
var fillerPhrases = []*regexp.Regexp{
	regexp.MustCompile(`(?i)I['’]m happy to help!?`),
	regexp.MustCompile(`(?i)Please try again, and I['’]ll be happy to provide feedback!?`),
}

// Normalize strips known filler phrases (case-insensitive, any position) and
// surrounding whitespace. Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	text := raw
	// Removing one phrase can join its neighbours into another occurrence,
	// so repeat until nothing matches.
	for {
		next := text
		for _, re := range fillerPhrases {
			next = re.ReplaceAllString(next, "")
		}
		if next == text {
			break
		}
		text = next
	}
	return strings.TrimSpace(text)
}
