package feedback

import (
	"regexp"
	"strconv"
	"strings"

	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"go.uber.org/zap"
)

const (
	// DefaultScoreText is used when the evaluator gave no score token.
	DefaultScoreText = "Score: N/A"

	headerFeedback  = "Constructive Feedback:"
	headerReasoning = "Reasoning:"
)

var (
	scoreToken   = regexp.MustCompile(`(?i)Score:\s*(\d+/\d+|\d+\s+out\s+of\s+\d+|N/A)`)
	scoreNumeric = regexp.MustCompile(`Score:\s*(\d+)`)
)

// section is the state of the header scan.
type section int

const (
	sectionBody      section = iota // no "Constructive Feedback:" header
	sectionFeedback                 // header found, no reasoning after it
	sectionReasoning                // both headers, reasoning after feedback
)

// Parse splits one evaluator response into score, feedback and reasoning.
// It never fails: missing markers fall back to a "Score: N/A" score and the
// whole text as feedback.
func Parse(raw string) domain.ParsedFeedback {
	text := Normalize(raw)

	scoreText, rest := scanScore(text)
	feedback, reasoning := scanSections(rest)

	return domain.ParsedFeedback{
		ScoreText:            scoreText,
		ConstructiveFeedback: feedback,
		Reasoning:            reasoning,
	}
}

// scanScore captures the first score token and removes every occurrence of
// the token pattern from the text.
func scanScore(text string) (string, string) {
	scoreText := scoreToken.FindString(text)
	if scoreText == "" {
		if text != "" {
			logger.Get().Debug("evaluator response has no score token")
		}
		scoreText = DefaultScoreText
	}
	rest := text
	for scoreToken.MatchString(rest) {
		rest = scoreToken.ReplaceAllString(rest, "")
	}
	return scoreText, strings.TrimSpace(rest)
}

// scanSections locates the first feedback and reasoning headers and returns
// the trimmed spans for each.
func scanSections(text string) (string, string) {
	feedbackAt := strings.Index(text, headerFeedback)
	reasoningAt := strings.Index(text, headerReasoning)

	state := sectionBody
	if feedbackAt != -1 {
		state = sectionFeedback
		if reasoningAt > feedbackAt {
			state = sectionReasoning
		}
	}

	switch state {
	case sectionReasoning:
		feedback := text[feedbackAt+len(headerFeedback) : reasoningAt]
		return strings.TrimSpace(feedback), strings.TrimSpace(text[reasoningAt:])
	case sectionFeedback:
		return strings.TrimSpace(text[feedbackAt+len(headerFeedback):]), ""
	default:
		if text != "" {
			logger.Get().Debug("evaluator response has no feedback header", zap.Int("length", len(text)))
		}
		return strings.TrimSpace(text), ""
	}
}

// ScoreValue returns the first integer following "Score:", e.g. 7 for
// "Score: 7/10". ok is false when there is none.
func ScoreValue(raw string) (int, bool) {
	m := scoreNumeric.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
