package classify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/homewise/homewise/internal/llm"
	"github.com/homewise/homewise/internal/question"
)

func extractedQuestions(texts ...string) []question.ExtractedQuestion {
	qs := make([]question.ExtractedQuestion, len(texts))
	for i, text := range texts {
		qs[i] = question.ExtractedQuestion{OrderIndex: i, Text: text}
	}
	return qs
}

func classificationJSON(entries ...string) json.RawMessage {
	out := `{"classifications":[`
	for i, e := range entries {
		if i > 0 {
			out += ","
		}
		out += e
	}
	out += `]}`
	return json.RawMessage(out)
}

func TestClassify_MapsResponseByIndex(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: classificationJSON(
			`{"index":0,"complexity":"simple","estimated_steps":1,"visualization_need":"not_needed","visualization_reason":"","question_category":"calculation","can_batch_process":true}`,
			`{"index":1,"complexity":"complex","estimated_steps":6,"visualization_need":"required","visualization_reason":"projectile trajectory","question_category":"physics_setup","can_batch_process":false}`,
		),
	})
	c := NewClassifier(mock, DefaultConfig())

	out := c.Classify(context.Background(), extractedQuestions(
		"What is 2 + 2?",
		"A ball is thrown at 20 m/s at 30 degrees. Find the range.",
	))

	if len(out) != 2 {
		t.Fatalf("expected 2 classified questions, got %d", len(out))
	}
	if out[0].Classification.Complexity != question.ComplexitySimple {
		t.Errorf("expected simple, got %s", out[0].Classification.Complexity)
	}
	if !out[0].Classification.CanBatchProcess {
		t.Error("expected question 0 to be batchable")
	}
	if out[1].Classification.Category != question.CategoryPhysicsSetup {
		t.Errorf("expected physics_setup, got %s", out[1].Classification.Category)
	}
	if out[1].Classification.VisualizationReason != "projectile trajectory" {
		t.Errorf("unexpected reason: %q", out[1].Classification.VisualizationReason)
	}
}

func TestClassify_MissingIndexGetsDefault(t *testing.T) {
	// Response answers indices 0 and 2 only; index 1 must get the
	// documented default, not be dropped.
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: classificationJSON(
			`{"index":0,"complexity":"simple","estimated_steps":1,"visualization_need":"not_needed","question_category":"calculation","can_batch_process":true}`,
			`{"index":2,"complexity":"simple","estimated_steps":1,"visualization_need":"not_needed","question_category":"calculation","can_batch_process":true}`,
		),
	})
	c := NewClassifier(mock, DefaultConfig())

	out := c.Classify(context.Background(), extractedQuestions("a", "b", "c"))

	if len(out) != 3 {
		t.Fatalf("expected 3 classified questions, got %d", len(out))
	}
	want := question.DefaultClassification()
	got := out[1].Classification
	if got != want {
		t.Errorf("expected default classification for missing index, got %+v", got)
	}
}

func TestClassify_CallFailureDefaultsEverything(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	c := NewClassifier(mock, DefaultConfig())

	out := c.Classify(context.Background(), extractedQuestions("a", "b"))

	if len(out) != 2 {
		t.Fatalf("expected 2 classified questions, got %d", len(out))
	}
	want := question.DefaultClassification()
	for i, q := range out {
		if q.Classification != want {
			t.Errorf("question %d: expected default classification, got %+v", i, q.Classification)
		}
	}
}

func TestClassify_SubQuestionNeverBatchable(t *testing.T) {
	// The model claims the sub-question is batchable; the override must win.
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: classificationJSON(
			`{"index":0,"complexity":"simple","estimated_steps":1,"visualization_need":"not_needed","question_category":"calculation","can_batch_process":true}`,
		),
	})
	c := NewClassifier(mock, DefaultConfig())

	qs := []question.ExtractedQuestion{{
		OrderIndex:       0,
		Text:             "Now find the y-intercept.",
		IsSubQuestion:    true,
		ParentContext:    "Consider the line y = 3x + 4.",
		SubQuestionLabel: "b",
	}}
	out := c.Classify(context.Background(), qs)

	if out[0].Classification.CanBatchProcess {
		t.Error("sub-question must never be batchable")
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	mock := llm.NewMockProvider()
	c := NewClassifier(mock, DefaultConfig())

	out := c.Classify(context.Background(), nil)
	if len(out) != 0 {
		t.Fatalf("expected no output, got %d", len(out))
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no model call for empty input, got %d", mock.CallCount())
	}
}

func TestClassify_InvalidEnumFallsBackToDefaultField(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: classificationJSON(
			`{"index":0,"complexity":"impossible","estimated_steps":2,"visualization_need":"not_needed","question_category":"calculation","can_batch_process":false}`,
		),
	})
	c := NewClassifier(mock, DefaultConfig())

	out := c.Classify(context.Background(), extractedQuestions("a"))
	if out[0].Classification.Complexity != question.ComplexityMedium {
		t.Errorf("expected fallback complexity medium, got %s", out[0].Classification.Complexity)
	}
	if out[0].Classification.EstimatedSteps != 2 {
		t.Errorf("expected steps carried over, got %d", out[0].Classification.EstimatedSteps)
	}
}
