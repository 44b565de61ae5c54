package illustrate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/homewise/homewise/internal/blob"
	"github.com/homewise/homewise/internal/llm"
	"github.com/homewise/homewise/internal/question"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Delay = 0
	return cfg
}

func promptResponse(prompt string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(`{"prompt":"` + prompt + `"}`)}
}

func imageResponse() llm.MockImageResponse {
	return llm.MockImageResponse{Payloads: []llm.ImagePayload{
		{Data: []byte("png-bytes"), MediaType: "image/png"},
	}}
}

func TestGenerate_TwoStageSuccess(t *testing.T) {
	text := llm.NewMockProvider(promptResponse("a ball on an incline"))
	image := llm.NewMockImageProvider(imageResponse())
	blobs := blob.NewMemoryStore()
	g := NewGenerator(text, image, blobs, nil, testConfig())

	res := g.Generate(context.Background(), Request{
		QuestionID: "q-1",
		Text:       "A block slides down a frictionless incline.",
		Subject:    "physics",
	}, "user-7")

	if !res.Success {
		t.Fatalf("expected success, got %q", res.ErrorMessage)
	}
	if res.FileID == "" || res.ImageURL == "" {
		t.Errorf("success must carry file id and url, got %+v", res)
	}
	if !strings.HasPrefix(res.FileID, "illustrations/user-7/") {
		t.Errorf("file id must be scoped to the owning user, got %q", res.FileID)
	}
	if !strings.HasSuffix(res.FileID, ".png") {
		t.Errorf("expected a png key, got %q", res.FileID)
	}
	if blobs.Len() != 1 {
		t.Errorf("expected 1 stored object, got %d", blobs.Len())
	}
	if len(image.Prompts) != 1 || image.Prompts[0] != "a ball on an incline" {
		t.Errorf("image stage must receive the synthesized prompt, got %v", image.Prompts)
	}
}

func TestGenerate_NoImagePayloadIsFailure(t *testing.T) {
	text := llm.NewMockProvider(promptResponse("something"))
	image := llm.NewMockImageProvider() // empty queue yields zero payloads
	g := NewGenerator(text, image, blob.NewMemoryStore(), nil, testConfig())

	res := g.Generate(context.Background(), Request{QuestionID: "q-1", Text: "draw"}, "u")

	if res.Success {
		t.Fatal("expected failure")
	}
	if !strings.Contains(res.ErrorMessage, "no image payload") {
		t.Errorf("unexpected error message: %q", res.ErrorMessage)
	}
}

func TestGenerate_UploadFailureIsFailure(t *testing.T) {
	text := llm.NewMockProvider(promptResponse("something"))
	image := llm.NewMockImageProvider(imageResponse())
	blobs := blob.NewMemoryStore()
	blobs.PutErr = errors.New("bucket unreachable")
	g := NewGenerator(text, image, blobs, nil, testConfig())

	res := g.Generate(context.Background(), Request{QuestionID: "q-1", Text: "draw"}, "u")

	if res.Success {
		t.Fatal("expected failure")
	}
	if !strings.Contains(res.ErrorMessage, "upload failed") {
		t.Errorf("unexpected error message: %q", res.ErrorMessage)
	}
}

func TestGenerateBatch_FiltersAndIsolates(t *testing.T) {
	// Four candidates: item 2's image call fails, the rest succeed.
	text := llm.NewMockProvider(
		promptResponse("p1"), promptResponse("p2"), promptResponse("p3"), promptResponse("p4"),
	)
	image := llm.NewMockImageProvider(
		imageResponse(),
		llm.MockImageResponse{Err: errors.New("rate limited")},
		imageResponse(),
		imageResponse(),
	)
	g := NewGenerator(text, image, blob.NewMemoryStore(), nil, testConfig())

	reqs := []Request{
		{QuestionID: "q-1", Text: "draw a triangle"},
		{QuestionID: "q-2", Text: "draw a circle"},
		{QuestionID: "q-3", Text: "draw a graph"},
		{QuestionID: "q-4", Text: "draw a pendulum"},
	}
	out := g.GenerateBatch(context.Background(), reqs, "u")

	if len(out) != 4 {
		t.Fatalf("expected 4 attempted results, got %d", len(out))
	}
	if out["q-2"].Success {
		t.Error("item 2 must fail")
	}
	if out["q-2"].ErrorMessage == "" {
		t.Error("failed item must carry an error message")
	}
	for _, id := range []string{"q-1", "q-3", "q-4"} {
		if !out[id].Success {
			t.Errorf("%s must succeed despite q-2's failure: %q", id, out[id].ErrorMessage)
		}
	}
	// All four generations ran, in order, with no early abort.
	if len(image.Prompts) != 4 {
		t.Fatalf("expected 4 image calls, got %d", len(image.Prompts))
	}
	if image.Prompts[2] != "p3" {
		t.Errorf("item 3 must run after item 2's failure, got prompt %q", image.Prompts[2])
	}
}

func TestGenerateBatch_SkipsSubQuestionsAndGated(t *testing.T) {
	text := llm.NewMockProvider(promptResponse("p1"))
	image := llm.NewMockImageProvider(imageResponse())
	g := NewGenerator(text, image, blob.NewMemoryStore(), nil, testConfig())

	gated := question.Classification{
		VisualizationNeed: question.VisualizationNotNeeded,
		Category:          question.CategoryCalculation,
	}
	reqs := []Request{
		{QuestionID: "q-1", Text: "part b", IsSubQuestion: true},
		{QuestionID: "q-2", Text: "compute 2+2", Classification: &gated},
		{QuestionID: "q-3", Text: "draw a circle"},
	}
	out := g.GenerateBatch(context.Background(), reqs, "u")

	if len(out) != 1 {
		t.Fatalf("expected 1 attempted result, got %d", len(out))
	}
	if _, ok := out["q-3"]; !ok {
		t.Error("only the unfiltered question must be attempted")
	}
	// Absence from the map means not attempted, which is distinct from a
	// failure result.
	if _, ok := out["q-1"]; ok {
		t.Error("sub-question must not appear in the result map")
	}
}

func TestDelete_BestEffort(t *testing.T) {
	blobs := blob.NewMemoryStore()
	g := NewGenerator(llm.NewMockProvider(), llm.NewMockImageProvider(), blobs, nil, testConfig())

	if g.Delete(context.Background(), "missing-key") {
		t.Error("deleting a missing object must report false")
	}

	_, err := blobs.Put(context.Background(), "k", []byte("x"), "image/png")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !g.Delete(context.Background(), "k") {
		t.Error("deleting an existing object must report true")
	}
}
