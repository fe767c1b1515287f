// Package assistant delegates essay grading to an OpenAI-compatible
// inference API and turns its free-text suggestion into a score. The
// service is treated as unreliable: every failure degrades to the
// deterministic expected-answer fallback.
package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"exam-service/internal/grading"
	"exam-service/internal/models"
)

// fallbackConfidence is reported when the API call failed and the
// expected-answer heuristic decided instead.
const fallbackConfidence = 0.3

// batchDelay spaces out sequential calls to stay under upstream rate
// limits. Not a correctness mechanism.
const batchDelay = 100 * time.Millisecond

type completionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client wraps an OpenAI-compatible chat-completion endpoint.
type Client struct {
	api   completionAPI
	model string
}

// New builds a client against the given endpoint. An empty baseURL uses
// the default OpenAI endpoint.
func New(baseURL, apiKey, modelName string) *Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(config),
		model: modelName,
	}
}

// EssayRequest carries everything the grader needs for one essay answer.
type EssayRequest struct {
	QuestionText    string
	ExpectedAnswers []string
	StudentAnswer   string
	MaxScore        float64
	QuestionType    models.QuestionType
}

// GradeEssay asks the model to grade one essay answer. The returned
// suggestion is the raw model text, kept for audit. An empty student
// answer scores zero without calling the API, and a failed call falls
// back to expected-answer matching at low confidence; neither case
// returns an error.
func (c *Client) GradeEssay(ctx context.Context, req EssayRequest) (grading.Result, string) {
	if strings.TrimSpace(req.StudentAnswer) == "" {
		return grading.Result{IsCorrect: false, Score: 0, Confidence: 1.0}, ""
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: gradingSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req)},
		},
		Temperature: 0.2,
	})
	if err != nil || len(resp.Choices) == 0 {
		if err != nil {
			log.Printf("assistant grading call failed, using fallback: %v", err)
		}
		return c.fallback(req), ""
	}

	suggestion := resp.Choices[0].Message.Content
	return ParseSuggestion(suggestion, req.MaxScore), suggestion
}

// GradeEssayBatch grades several answers sequentially with a short pause
// between calls.
func (c *Client) GradeEssayBatch(ctx context.Context, reqs []EssayRequest) []grading.Result {
	results := make([]grading.Result, len(reqs))
	for i, req := range reqs {
		if i > 0 {
			time.Sleep(batchDelay)
		}
		results[i], _ = c.GradeEssay(ctx, req)
	}
	return results
}

func (c *Client) fallback(req EssayRequest) grading.Result {
	res := grading.Result{Confidence: fallbackConfidence}
	if grading.MatchExpectedAnswer(req.ExpectedAnswers, req.StudentAnswer) {
		res.IsCorrect = true
		res.Score = req.MaxScore
	}
	return res
}

const gradingSystemPrompt = "You are an examiner grading a student's essay answer. " +
	"Compare the answer against the model answer and state a score in the form \"score/max\" followed by a short justification."

func buildPrompt(req EssayRequest) string {
	kind := "short essay"
	if req.QuestionType == models.QuestionLongEssay {
		kind = "long essay"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Question type: %s\n", kind)
	fmt.Fprintf(&b, "Question: %s\n", req.QuestionText)
	if len(req.ExpectedAnswers) > 0 {
		fmt.Fprintf(&b, "Model answer: %s\n", strings.Join(req.ExpectedAnswers, " OR "))
	}
	fmt.Fprintf(&b, "Student answer: %s\n", req.StudentAnswer)
	fmt.Fprintf(&b, "Maximum score: %g\n", req.MaxScore)
	return b.String()
}
