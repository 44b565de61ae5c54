package pipeline

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/homewise/homewise/internal/batchsolve"
	"github.com/homewise/homewise/internal/blob"
	"github.com/homewise/homewise/internal/classify"
	"github.com/homewise/homewise/internal/graphdetect"
	"github.com/homewise/homewise/internal/illustrate"
	"github.com/homewise/homewise/internal/llm"
	"github.com/homewise/homewise/internal/question"
)

func testRunner(t *testing.T, withImages bool) (*Runner, *llm.MockImageProvider) {
	t.Helper()

	classifyMock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"classifications":[
			{"index":0,"complexity":"simple","estimated_steps":1,"visualization_need":"not_needed","visualization_reason":"","question_category":"calculation","can_batch_process":true},
			{"index":1,"complexity":"medium","estimated_steps":3,"visualization_need":"helpful","visualization_reason":"incline scene","question_category":"physics_setup","can_batch_process":false},
			{"index":2,"complexity":"complex","estimated_steps":6,"visualization_need":"not_needed","visualization_reason":"","question_category":"proof","can_batch_process":false}
		]}`),
	})

	solveMock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"solutions":[
			{"index":0,"detected_subject":"mathematics","detected_topic":"arithmetic","question_type":"calculation","difficulty":"easy","answer":"4","solution_steps":["Add."],"solution_steps_he":["חבר."],"confidence":9}
		]}`),
	})

	graphMock := llm.NewMockProvider()
	for i := 0; i < 3; i++ {
		graphMock.AddResponse(llm.MockResponse{
			Content: json.RawMessage(`{"graphable":false,"confidence":0.8}`),
		})
	}

	var images *illustrate.Generator
	var imageMock *llm.MockImageProvider
	if withImages {
		promptMock := llm.NewMockProvider(llm.MockResponse{
			Content: json.RawMessage(`{"prompt":"a block on an incline"}`),
		})
		imageMock = llm.NewMockImageProvider(llm.MockImageResponse{
			Payloads: []llm.ImagePayload{{Data: []byte("png"), MediaType: "image/png"}},
		})
		cfg := illustrate.DefaultConfig()
		cfg.Delay = 0
		images = illustrate.NewGenerator(promptMock, imageMock, blob.NewMemoryStore(), nil, cfg)
	}

	r := NewRunner(
		classify.NewClassifier(classifyMock, classify.DefaultConfig()),
		batchsolve.NewSolver(solveMock, nil, batchsolve.DefaultConfig()),
		graphdetect.NewClassifier(graphMock, graphdetect.DefaultConfig()),
		images,
		"user-1",
	)
	return r, imageMock
}

func pipelineQuestions() []question.ExtractedQuestion {
	return []question.ExtractedQuestion{
		{OrderIndex: 0, Text: "What is 2 + 2?"},
		{OrderIndex: 1, Text: "A block slides down a frictionless incline."},
		{OrderIndex: 2, Text: "Prove that sqrt(2) is irrational."},
	}
}

func TestRun_RoutesAndMerges(t *testing.T) {
	r, _ := testRunner(t, false)

	res, err := r.Run(context.Background(), pipelineQuestions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(res.Solved) != 1 || res.Solved[0].OrderIndex != 0 {
		t.Errorf("expected question 0 batch-solved, got %+v", res.Solved)
	}
	if res.Solved[0].Answer != "4" {
		t.Errorf("expected answer 4, got %q", res.Solved[0].Answer)
	}
	if len(res.Standard) != 1 || res.Standard[0].OrderIndex != 1 {
		t.Errorf("expected question 1 in the standard bucket, got %+v", res.Standard)
	}
	if len(res.Complex) != 1 || res.Complex[0].OrderIndex != 2 {
		t.Errorf("expected question 2 in the complex bucket, got %+v", res.Complex)
	}

	// Every question gets a graph verdict regardless of solving route.
	if len(res.Graphs) != 3 {
		t.Errorf("expected 3 graph verdicts, got %d", len(res.Graphs))
	}
	if res.TokensSaved <= 0 {
		t.Errorf("expected positive token savings, got %d", res.TokensSaved)
	}
}

func TestRun_IllustratesSelectedQuestions(t *testing.T) {
	r, imageMock := testRunner(t, true)

	res, err := r.Run(context.Background(), pipelineQuestions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Only question 1 (physics_setup, visualization helpful) passes the
	// decision engine; 0 and 2 are not_needed.
	if len(res.Illustrations) != 1 {
		t.Fatalf("expected 1 illustration, got %d", len(res.Illustrations))
	}
	ill, ok := res.Illustrations["1"]
	if !ok {
		t.Fatal("expected an illustration for question 1")
	}
	if !ill.Success || ill.ImageURL == "" {
		t.Errorf("expected a successful illustration, got %+v", ill)
	}
	if len(imageMock.Prompts) != 1 {
		t.Errorf("expected exactly 1 image call, got %d", len(imageMock.Prompts))
	}
}

func TestRun_EmptyInput(t *testing.T) {
	r, _ := testRunner(t, false)

	if _, err := r.Run(context.Background(), nil); err == nil {
		t.Fatal("expected an error for empty input")
	}
}
