package assistant

import (
	"testing"
)

func TestParseSuggestionNumericPatterns(t *testing.T) {
	testCases := []struct {
		name        string
		suggestion  string
		maxScore    float64
		wantScore   float64
		wantCorrect bool
	}{
		{"fraction", "The answer deserves 8/10.", 10, 8, true},
		{"fraction rescaled", "I would give this 4/5.", 10, 8, true},
		{"out of", "Score: 7 out of 10, decent coverage.", 10, 7, true},
		{"out of rescaled", "3 out of 4 key points present.", 8, 6, true},
		{"grade prefix", "Grade: 9. Well argued.", 10, 9, true},
		{"points prefix", "Points: 2. Missing the main idea.", 10, 2, false},
		{"fraction beats grade", "5/10. Grade: 9", 10, 5, false},
		{"clamped above max", "Easily 15/10!", 10, 10, true},
		{"below threshold", "4/10, several gaps.", 10, 4, false},
		{"at threshold", "6/10.", 10, 6, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := ParseSuggestion(tc.suggestion, tc.maxScore)
			if res.Score != tc.wantScore {
				t.Errorf("Score = %v, want %v", res.Score, tc.wantScore)
			}
			if res.IsCorrect != tc.wantCorrect {
				t.Errorf("IsCorrect = %v, want %v", res.IsCorrect, tc.wantCorrect)
			}
			if res.Confidence != 0.9 {
				t.Errorf("Confidence = %v, want 0.9 for numeric matches", res.Confidence)
			}
		})
	}
}

func TestParseSuggestionKeywordFallback(t *testing.T) {
	testCases := []struct {
		name      string
		text      string
		wantScore float64
	}{
		{"positive", "This is a good and accurate answer.", 8},
		{"partial", "Only a partial treatment of the topic.", 5},
		{"negative", "The answer is wrong.", 0},
		{"incorrect not mistaken for correct", "This is incorrect.", 0},
		{"no signal", "Hmm.", 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := ParseSuggestion(tc.text, 10)
			if res.Score != tc.wantScore {
				t.Errorf("Score = %v, want %v", res.Score, tc.wantScore)
			}
		})
	}

	if res := ParseSuggestion("Hmm.", 10); res.Confidence != 0.4 {
		t.Errorf("no-signal confidence = %v, want 0.4", res.Confidence)
	}
}

func TestParseSuggestionRounding(t *testing.T) {
	res := ParseSuggestion("2/3", 10)
	if res.Score != 6.67 {
		t.Errorf("Score = %v, want 6.67 (two decimals)", res.Score)
	}
	if !res.IsCorrect {
		t.Error("6.67/10 is above the 60%% threshold")
	}
}
