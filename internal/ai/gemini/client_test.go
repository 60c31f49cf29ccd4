package gemini

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeCallerResponse struct {
	resp *genai.GenerateContentResponse
	err  error
}

type fakeCaller struct {
	queue   []fakeCallerResponse
	prompts []string
}

func (f *fakeCaller) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	for _, content := range contents {
		for _, part := range content.Parts {
			f.prompts = append(f.prompts, part.Text)
		}
	}

	if len(f.queue) == 0 {
		return nil, errors.New("unexpected call")
	}
	res := f.queue[0]
	f.queue = f.queue[1:]
	return res.resp, res.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func testGenerator(caller *fakeCaller, maxRetries int) *Generator {
	return &Generator{
		caller:     caller,
		modelName:  "gemini-pro",
		maxRetries: maxRetries,
		retryDelay: 0,
		logger:     zap.NewNop(),
	}
}

func TestGeneratorRetriesOnTemporaryError(t *testing.T) {
	t.Parallel()

	tempErr := genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"}
	caller := &fakeCaller{queue: []fakeCallerResponse{
		{err: tempErr},
		{resp: textResponse("retry ok")},
	}}

	output, err := testGenerator(caller, 2).GenerateContent(context.Background(), "hello")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output != "retry ok" {
		t.Fatalf("unexpected output: %q", output)
	}
	if len(caller.prompts) != 2 || caller.prompts[0] != "hello" {
		t.Fatalf("unexpected prompts: %+v", caller.prompts)
	}
}

func TestGeneratorStopsAfterRetriesExhausted(t *testing.T) {
	t.Parallel()

	tempErr := genai.APIError{Code: http.StatusTooManyRequests, Status: "RESOURCE_EXHAUSTED"}
	caller := &fakeCaller{queue: []fakeCallerResponse{
		{err: tempErr},
		{err: tempErr},
	}}

	_, err := testGenerator(caller, 2).GenerateContent(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error after retries exhausted")
	}
	if len(caller.prompts) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(caller.prompts))
	}
}

func TestGeneratorDoesNotRetryOnClientError(t *testing.T) {
	t.Parallel()

	badErr := genai.APIError{Code: http.StatusBadRequest, Status: "INVALID_ARGUMENT"}
	caller := &fakeCaller{queue: []fakeCallerResponse{{err: badErr}}}

	_, err := testGenerator(caller, 3).GenerateContent(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error for client error")
	}
	if len(caller.prompts) != 1 {
		t.Fatalf("expected single call, got %d", len(caller.prompts))
	}
}

func TestGeneratorRejectsEmptyPrompt(t *testing.T) {
	t.Parallel()

	caller := &fakeCaller{}
	if _, err := testGenerator(caller, 1).GenerateContent(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty prompt")
	}
	if len(caller.prompts) != 0 {
		t.Fatalf("expected no calls, got %d", len(caller.prompts))
	}
}

func TestGeneratorRejectsEmptyResponse(t *testing.T) {
	t.Parallel()

	caller := &fakeCaller{queue: []fakeCallerResponse{
		{resp: &genai.GenerateContentResponse{}},
	}}

	if _, err := testGenerator(caller, 1).GenerateContent(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestCollectTextJoinsParts(t *testing.T) {
	t.Parallel()

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "  first  "},
				{Text: ""},
				{Text: "second"},
			}},
		}},
	}

	output, err := collectText(resp)
	if err != nil {
		t.Fatalf("collect text: %v", err)
	}
	if output != "first\nsecond" {
		t.Fatalf("unexpected output: %q", output)
	}
}
