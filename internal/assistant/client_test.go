package assistant

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"

	"exam-service/internal/models"
)

type stubAPI struct {
	content string
	err     error
	calls   int
}

func (s *stubAPI) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.calls++
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.content}},
		},
	}, nil
}

func TestGradeEssayParsesSuggestion(t *testing.T) {
	stub := &stubAPI{content: "Solid work, 9/10."}
	c := &Client{api: stub, model: "test-model"}

	res, suggestion := c.GradeEssay(context.Background(), EssayRequest{
		QuestionText:  "Explain photosynthesis.",
		StudentAnswer: "Plants convert light into chemical energy.",
		MaxScore:      10,
		QuestionType:  models.QuestionShortEssay,
	})

	assert.True(t, res.IsCorrect)
	assert.Equal(t, 9.0, res.Score)
	assert.Equal(t, "Solid work, 9/10.", suggestion)
	assert.Equal(t, 1, stub.calls)
}

func TestGradeEssayEmptyAnswerSkipsCall(t *testing.T) {
	stub := &stubAPI{content: "10/10"}
	c := &Client{api: stub, model: "test-model"}

	res, suggestion := c.GradeEssay(context.Background(), EssayRequest{
		QuestionText:  "Explain photosynthesis.",
		StudentAnswer: "   ",
		MaxScore:      10,
	})

	assert.False(t, res.IsCorrect)
	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, 1.0, res.Confidence)
	assert.Empty(t, suggestion)
	assert.Zero(t, stub.calls, "empty answers must not hit the API")
}

func TestGradeEssayFallsBackOnError(t *testing.T) {
	stub := &stubAPI{err: errors.New("rate limited")}
	c := &Client{api: stub, model: "test-model"}

	// Word order differs and neither side contains the other, so the
	// fallback containment check fails.
	res, suggestion := c.GradeEssay(context.Background(), EssayRequest{
		QuestionText:    "What is the capital of France?",
		ExpectedAnswers: []string{"Paris is the capital of France"},
		StudentAnswer:   "the capital of france is paris",
		MaxScore:        10,
	})

	assert.False(t, res.IsCorrect)
	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, fallbackConfidence, res.Confidence)
	assert.Empty(t, suggestion)
}

func TestGradeEssayFallbackCanMatch(t *testing.T) {
	stub := &stubAPI{err: errors.New("boom")}
	c := &Client{api: stub, model: "test-model"}

	res, _ := c.GradeEssay(context.Background(), EssayRequest{
		ExpectedAnswers: []string{"Paris is the capital of France"},
		StudentAnswer:   "paris is the capital of france",
		MaxScore:        10,
	})

	assert.True(t, res.IsCorrect)
	assert.Equal(t, 10.0, res.Score)
	assert.Equal(t, fallbackConfidence, res.Confidence)
}

func TestGradeEssayBatch(t *testing.T) {
	stub := &stubAPI{content: "8/10"}
	c := &Client{api: stub, model: "test-model"}

	results := c.GradeEssayBatch(context.Background(), []EssayRequest{
		{StudentAnswer: "first", MaxScore: 10},
		{StudentAnswer: "second", MaxScore: 10},
		{StudentAnswer: "", MaxScore: 10},
	})

	assert.Len(t, results, 3)
	assert.Equal(t, 8.0, results[0].Score)
	assert.Equal(t, 8.0, results[1].Score)
	assert.Equal(t, 0.0, results[2].Score)
	assert.Equal(t, 2, stub.calls, "empty answer must not consume a call")
}
