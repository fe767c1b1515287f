package models

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "mc"
	QuestionTrueFalse      QuestionType = "tf"
	QuestionShortEssay     QuestionType = "ses"
	QuestionLongEssay      QuestionType = "les"
	QuestionNested         QuestionType = "nested"
)

type Choice struct {
	Content   string  `bson:"content" json:"content"`
	IsCorrect bool    `bson:"is_correct" json:"is_correct"`
	Score     float64 `bson:"score" json:"score"`
}

// Question is a tagged union over QuestionType. Only the fields belonging
// to the question's type are populated; the grading switch is exhaustive
// over Type and never touches fields of another variant.
type Question struct {
	ID    string       `bson:"id" json:"id"`
	Type  QuestionType `bson:"type" json:"type"`
	Text  string       `bson:"text" json:"text"`
	Score float64      `bson:"score" json:"score"`

	// mc
	Choices          []Choice `bson:"choices,omitempty" json:"choices,omitempty"`
	RandomizeChoices bool     `bson:"randomize_choices,omitempty" json:"randomize_choices,omitempty"`

	// tf
	IsTrue *bool `bson:"is_true,omitempty" json:"is_true,omitempty"`

	// ses / les
	ExpectedAnswers []string `bson:"expected_answers,omitempty" json:"expected_answers,omitempty"`
	MaxWords        int      `bson:"max_words,omitempty" json:"max_words,omitempty"`

	// nested
	Children []Question `bson:"children,omitempty" json:"children,omitempty"`
}

// CorrectChoiceContents returns the contents of every choice flagged correct.
func (q *Question) CorrectChoiceContents() []string {
	var correct []string
	for _, c := range q.Choices {
		if c.IsCorrect {
			correct = append(correct, c.Content)
		}
	}
	return correct
}

// IsEssay reports whether the question is graded as free text.
func (q *Question) IsEssay() bool {
	return q.Type == QuestionShortEssay || q.Type == QuestionLongEssay
}

// Clone returns a deep copy of the question, including nested children.
func (q Question) Clone() Question {
	cp := q
	cp.Choices = append([]Choice(nil), q.Choices...)
	cp.ExpectedAnswers = append([]string(nil), q.ExpectedAnswers...)
	if q.IsTrue != nil {
		v := *q.IsTrue
		cp.IsTrue = &v
	}
	if q.Children != nil {
		cp.Children = make([]Question, len(q.Children))
		for i, child := range q.Children {
			cp.Children[i] = child.Clone()
		}
	}
	return cp
}

// CloneQuestions deep-copies a question list so a schedule snapshot is
// independent of later edits to the source examination.
func CloneQuestions(questions []Question) []Question {
	cloned := make([]Question, len(questions))
	for i, q := range questions {
		cloned[i] = q.Clone()
	}
	return cloned
}

// TotalScore sums the point values of a question list.
func TotalScore(questions []Question) float64 {
	var total float64
	for _, q := range questions {
		total += q.Score
	}
	return total
}
