package assistant

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"exam-service/internal/grading"
)

// Patterns tried in priority order against the model's free-text
// suggestion. The first two capture an explicit denominator.
var (
	reFraction = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*/\s*(\d+(?:\.\d+)?)`)
	reOutOf    = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s+out\s+of\s+(\d+(?:\.\d+)?)`)
	reGrade    = regexp.MustCompile(`(?i)grade:?\s*(\d+(?:\.\d+)?)`)
	rePoints   = regexp.MustCompile(`(?i)points:?\s*(\d+(?:\.\d+)?)`)
)

// correctThreshold is the fraction of the max score at or above which an
// answer counts as correct.
const correctThreshold = 0.6

// ParseSuggestion extracts a score from the model's free-text grading
// suggestion. Numeric patterns win; when the stated denominator differs
// from the actual max score the value is rescaled linearly. Without any
// numeric match a keyword sentiment scan decides. The score is clamped
// to [0, maxScore] and rounded to two decimals.
func ParseSuggestion(suggestion string, maxScore float64) grading.Result {
	score, confidence, matched := extractNumericScore(suggestion, maxScore)
	if !matched {
		score, confidence = keywordScore(suggestion, maxScore)
	}

	score = math.Max(0, math.Min(score, maxScore))
	score = math.Round(score*100) / 100

	return grading.Result{
		IsCorrect:  score >= correctThreshold*maxScore,
		Score:      score,
		Confidence: confidence,
	}
}

func extractNumericScore(suggestion string, maxScore float64) (float64, float64, bool) {
	for _, re := range []*regexp.Regexp{reFraction, reOutOf} {
		if m := re.FindStringSubmatch(suggestion); m != nil {
			score, err1 := strconv.ParseFloat(m[1], 64)
			denom, err2 := strconv.ParseFloat(m[2], 64)
			if err1 != nil || err2 != nil {
				continue
			}
			if denom > 0 && denom != maxScore {
				score = score * maxScore / denom
			}
			return score, 0.9, true
		}
	}
	for _, re := range []*regexp.Regexp{reGrade, rePoints} {
		if m := re.FindStringSubmatch(suggestion); m != nil {
			score, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			return score, 0.9, true
		}
	}
	return 0, 0, false
}

// keywordScore falls back to sentiment keywords. Negative keywords are
// checked first: "incorrect" contains "correct".
func keywordScore(suggestion string, maxScore float64) (float64, float64) {
	text := strings.ToLower(suggestion)

	for _, kw := range []string{"incorrect", "wrong", "poor", "inadequate"} {
		if strings.Contains(text, kw) {
			return 0, 0.6
		}
	}
	for _, kw := range []string{"partial", "somewhat"} {
		if strings.Contains(text, kw) {
			return 0.5 * maxScore, 0.6
		}
	}
	for _, kw := range []string{"correct", "good", "excellent", "accurate"} {
		if strings.Contains(text, kw) {
			return 0.8 * maxScore, 0.6
		}
	}
	return 0.5 * maxScore, 0.4
}
