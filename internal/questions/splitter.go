// Package questions turns a generated block of numbered questions into a list.
package questions

import (
	"regexp"
	"strings"

	"interview-prep/internal/domain"
)

// listMarker matches numbered-list markers such as "1. " or "\n2. ".
var listMarker = regexp.MustCompile(`\n?\d+\.\s+`)

// Split parses a numbered block of questions. The index of each question in
// the result is its stable identifier.
func Split(raw string) domain.QuestionList {
	segments := listMarker.Split(raw, -1)

	list := make(domain.QuestionList, 0, len(segments))
	for _, seg := range segments {
		if seg = strings.TrimSpace(seg); seg != "" {
			list = append(list, seg)
		}
	}
	return dropPreamble(list)
}

// dropPreamble drops the first segment when it does not end with "?". The
// generator sometimes writes an introductory sentence before question 1.
// This is a heuristic: unnumbered input consisting of a single statement is
// dropped too.
func dropPreamble(list domain.QuestionList) domain.QuestionList {
	if len(list) > 0 && !strings.HasSuffix(list[0], "?") {
		return list[1:]
	}
	return list
}
