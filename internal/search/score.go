package search

import (
	"math"
	"strings"

	"faqdesk/internal/domain"
)

// Score weights
const (
	scoreQuestionExact  = 100
	scoreQuestionSubstr = 50
	scoreTagExact       = 40
	scoreTagSubstr      = 20
	scoreAnswerSubstr   = 10
	maxPopularityBonus  = 5
)

// Score rates how well faq answers query. It only orders records that
// already passed filtering. An empty query matches no field, so only the
// popularity bonus counts.
//
// An exact question match beats a question substring, an exact tag beats a
// tag substring, an answer substring adds a little, and helpful votes add
// up to maxPopularityBonus points.
func Score(faq domain.FAQ, query string) float64 {
	popularity := math.Min(float64(faq.Helpful)/10, maxPopularityBonus)
	q := strings.ToLower(query)
	if q == "" {
		return popularity
	}

	var score float64
	question := strings.ToLower(faq.Question)
	switch {
	case question == q:
		score += scoreQuestionExact
	case strings.Contains(question, q):
		score += scoreQuestionSubstr
	}

	score += tagScore(faq.Tags, q)

	if strings.Contains(strings.ToLower(faq.Answer), q) {
		score += scoreAnswerSubstr
	}

	return score + popularity
}

// tagScore expects q already lower-cased
func tagScore(tags []string, q string) float64 {
	var best float64
	for _, tag := range tags {
		t := strings.ToLower(tag)
		if t == q {
			return scoreTagExact
		}
		if strings.Contains(t, q) {
			best = scoreTagSubstr
		}
	}
	return best
}

// Matches reports whether the lower-cased query occurs in the question,
// the answer or any tag of faq
func Matches(faq domain.FAQ, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(faq.Question), q) ||
		strings.Contains(strings.ToLower(faq.Answer), q) {
		return true
	}
	for _, tag := range faq.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
