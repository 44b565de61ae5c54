package batchsolve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/homewise/homewise/internal/llm"
	"github.com/homewise/homewise/internal/question"
	"github.com/homewise/homewise/internal/store"
)

func batchableQuestions(n int) []question.Classified {
	qs := make([]question.Classified, n)
	for i := range qs {
		cls := question.DefaultClassification()
		cls.Complexity = question.ComplexitySimple
		cls.CanBatchProcess = true
		qs[i] = question.Classified{
			ExtractedQuestion: question.ExtractedQuestion{
				OrderIndex: i,
				Text:       fmt.Sprintf("What is %d + %d?", i, i),
			},
			Classification: cls,
		}
	}
	return qs
}

func solutionJSON(entries ...string) json.RawMessage {
	out := `{"solutions":[`
	for i, e := range entries {
		if i > 0 {
			out += ","
		}
		out += e
	}
	out += `]}`
	return json.RawMessage(out)
}

func solutionEntryJSON(index int, answer string) string {
	return fmt.Sprintf(`{"index":%d,"detected_subject":"mathematics","detected_topic":"arithmetic","question_type":"calculation","difficulty":"easy","answer":%q,"solution_steps":["Add the numbers."],"solution_steps_he":["חבר את המספרים."],"tip":"Line up the digits.","tip_he":"ישר את הספרות.","confidence":9}`, index, answer)
}

func TestSolveBatches_OutputMatchesInput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: solutionJSON(
			solutionEntryJSON(0, "0"),
			solutionEntryJSON(1, "2"),
			solutionEntryJSON(2, "4"),
		),
	})
	s := NewSolver(mock, nil, DefaultConfig())

	out, _ := s.SolveBatches(context.Background(), batchableQuestions(3))

	if len(out) != 3 {
		t.Fatalf("expected 3 solved questions, got %d", len(out))
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 model call for a 3-question batch, got %d", mock.CallCount())
	}
	for i, sol := range out {
		if sol.OrderIndex != i {
			t.Errorf("position %d: expected order index %d, got %d", i, i, sol.OrderIndex)
		}
	}
	if out[1].Answer != "2" {
		t.Errorf("expected answer 2, got %q", out[1].Answer)
	}
	if out[1].Type != question.TypeCalculation || out[1].Difficulty != question.DifficultyEasy {
		t.Errorf("unexpected type/difficulty: %s/%s", out[1].Type, out[1].Difficulty)
	}
	if out[1].AIConfidence != 9 {
		t.Errorf("expected confidence 9, got %v", out[1].AIConfidence)
	}
}

func TestSolveBatches_ChunksAtMaxBatchSize(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: solutionJSON(
			solutionEntryJSON(0, "a"), solutionEntryJSON(1, "b"), solutionEntryJSON(2, "c"),
			solutionEntryJSON(3, "d"), solutionEntryJSON(4, "e"),
		)},
		llm.MockResponse{Content: solutionJSON(
			solutionEntryJSON(5, "f"), solutionEntryJSON(6, "g"),
		)},
	)
	s := NewSolver(mock, nil, DefaultConfig())

	out, _ := s.SolveBatches(context.Background(), batchableQuestions(7))

	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 model calls for 7 questions, got %d", mock.CallCount())
	}
	if len(out) != 7 {
		t.Fatalf("expected 7 solved questions, got %d", len(out))
	}
	if out[6].Answer != "g" {
		t.Errorf("expected answer g, got %q", out[6].Answer)
	}
}

func TestSolveBatches_MissingIndexGetsPlaceholder(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: solutionJSON(
			solutionEntryJSON(0, "0"),
			solutionEntryJSON(2, "4"),
		),
	})
	s := NewSolver(mock, nil, DefaultConfig())

	out, _ := s.SolveBatches(context.Background(), batchableQuestions(3))

	if len(out) != 3 {
		t.Fatalf("expected 3 solved questions, got %d", len(out))
	}
	if out[1].Answer != placeholderMissingAnswer {
		t.Errorf("expected missing placeholder, got %q", out[1].Answer)
	}
	if out[1].AIConfidence != 0 {
		t.Errorf("placeholder confidence must be 0, got %v", out[1].AIConfidence)
	}
	if out[1].OrderIndex != 1 {
		t.Errorf("placeholder must keep its order index, got %d", out[1].OrderIndex)
	}
	if out[0].Answer != "0" || out[2].Answer != "4" {
		t.Errorf("neighbors must keep real answers, got %q and %q", out[0].Answer, out[2].Answer)
	}
}

func TestSolveBatches_FailedChunkIsIsolated(t *testing.T) {
	// 12 questions split into chunks of 5, 5 and 2. The middle chunk fails.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: solutionJSON(
			solutionEntryJSON(0, "a"), solutionEntryJSON(1, "b"), solutionEntryJSON(2, "c"),
			solutionEntryJSON(3, "d"), solutionEntryJSON(4, "e"),
		)},
		llm.MockResponse{Err: &llm.ErrInvalidResponse{Err: errors.New("truncated")}},
		llm.MockResponse{Content: solutionJSON(
			solutionEntryJSON(10, "k"), solutionEntryJSON(11, "l"),
		)},
	)
	s := NewSolver(mock, nil, DefaultConfig())

	out, _ := s.SolveBatches(context.Background(), batchableQuestions(12))

	if len(out) != 12 {
		t.Fatalf("expected 12 solved questions, got %d", len(out))
	}
	for i := 0; i < 5; i++ {
		if out[i].Answer == placeholderFailedAnswer {
			t.Errorf("question %d from healthy chunk must not be a placeholder", i)
		}
	}
	for i := 5; i < 10; i++ {
		if out[i].Answer != placeholderFailedAnswer {
			t.Errorf("question %d from failed chunk: expected retry placeholder, got %q", i, out[i].Answer)
		}
	}
	if out[10].Answer != "k" || out[11].Answer != "l" {
		t.Errorf("chunk after the failure must still solve, got %q and %q", out[10].Answer, out[11].Answer)
	}
}

func TestSolveBatches_EmptyInput(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewSolver(mock, nil, DefaultConfig())

	out, _ := s.SolveBatches(context.Background(), nil)

	if out != nil {
		t.Fatalf("expected nil output, got %d entries", len(out))
	}
	if mock.CallCount() != 0 {
		t.Fatalf("empty input must not call the model, got %d calls", mock.CallCount())
	}
}

func TestSolveBatch_EmptyInputMakesNoCall(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewSolver(mock, nil, DefaultConfig())

	out, err := s.SolveBatch(context.Background(), nil)

	if err != nil {
		t.Fatalf("empty input must not error, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil output, got %d entries", len(out))
	}
	if mock.CallCount() != 0 {
		t.Fatalf("empty input must not call the model, got %d calls", mock.CallCount())
	}
}

// captureEvents records the last solve event. The embedded interface covers
// the methods the solver never calls.
type captureEvents struct {
	store.EventRepo
	solve store.SolveEventData
}

func (c *captureEvents) AppendSolve(_ context.Context, data store.SolveEventData) error {
	c.solve = data
	return nil
}

func TestSolveBatches_ReturnsConfiguredSavings(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: solutionJSON(solutionEntryJSON(0, "a"), solutionEntryJSON(1, "b"))},
		llm.MockResponse{Content: solutionJSON(solutionEntryJSON(2, "c"), solutionEntryJSON(3, "d"))},
		llm.MockResponse{Content: solutionJSON(solutionEntryJSON(4, "e"))},
	)
	events := &captureEvents{}
	cfg := DefaultConfig()
	cfg.MaxBatchSize = 2
	s := NewSolver(mock, events, cfg)

	_, savings := s.SolveBatches(context.Background(), batchableQuestions(5))

	want := EstimateTokenSavings(5, 3)
	if savings != want {
		t.Errorf("expected savings for 3 batches of max size 2, got %+v", savings)
	}
	if events.solve.EstimatedTokensSaved != want.TokensSaved {
		t.Errorf("recorded event must carry the same estimate, got %d want %d",
			events.solve.EstimatedTokensSaved, want.TokensSaved)
	}
}

func TestSolveBatches_PlaceholderCountIgnoresAnswerText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: solutionJSON(
			solutionEntryJSON(0, placeholderFailedAnswer),
			solutionEntryJSON(2, "4"),
		),
	})
	events := &captureEvents{}
	s := NewSolver(mock, events, DefaultConfig())

	out, _ := s.SolveBatches(context.Background(), batchableQuestions(3))

	if out[0].Answer != placeholderFailedAnswer {
		t.Fatalf("legitimate answer must be preserved, got %q", out[0].Answer)
	}
	if events.solve.PlaceholderCount != 1 {
		t.Errorf("only the skipped index is a placeholder, got count %d", events.solve.PlaceholderCount)
	}
}

func TestSolveBatches_RepairsHebrewStepCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: solutionJSON(
			`{"index":0,"question_type":"calculation","difficulty":"easy","answer":"4","solution_steps":["Add 2 and 2.","Check the sum."],"solution_steps_he":["חבר 2 ו-2."],"confidence":8}`,
		),
	})
	s := NewSolver(mock, nil, DefaultConfig())

	out, _ := s.SolveBatches(context.Background(), batchableQuestions(1))

	if len(out[0].SolutionStepsHe) != len(out[0].SolutionSteps) {
		t.Fatalf("expected equal step counts, got %d en / %d he",
			len(out[0].SolutionSteps), len(out[0].SolutionStepsHe))
	}
	if out[0].SolutionStepsHe[1] != "Check the sum." {
		t.Errorf("padded step must reuse the English text, got %q", out[0].SolutionStepsHe[1])
	}
}

func TestSolveBatches_TruncatesLongTips(t *testing.T) {
	long := ""
	for i := 0; i < 40; i++ {
		long += "tip! "
	}
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: solutionJSON(
			fmt.Sprintf(`{"index":0,"question_type":"calculation","difficulty":"easy","answer":"4","solution_steps":["s"],"solution_steps_he":["s"],"tip":%q,"confidence":8}`, long),
		),
	})
	s := NewSolver(mock, nil, DefaultConfig())

	out, _ := s.SolveBatches(context.Background(), batchableQuestions(1))

	if got := len([]rune(out[0].Tip)); got != DefaultConfig().MaxTipChars {
		t.Errorf("expected tip truncated to %d runes, got %d", DefaultConfig().MaxTipChars, got)
	}
}

func TestSolveBatches_InvalidEnumFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: solutionJSON(
			`{"index":0,"question_type":"essay","difficulty":"brutal","answer":"4","solution_steps":["s"],"solution_steps_he":["s"],"confidence":25}`,
		),
	})
	s := NewSolver(mock, nil, DefaultConfig())

	out, _ := s.SolveBatches(context.Background(), batchableQuestions(1))

	if out[0].Type != question.TypeCalculation {
		t.Errorf("expected calculation fallback, got %s", out[0].Type)
	}
	if out[0].Difficulty != question.DifficultyMedium {
		t.Errorf("expected medium fallback, got %s", out[0].Difficulty)
	}
	if out[0].AIConfidence != 10 {
		t.Errorf("expected confidence clamped to 10, got %v", out[0].AIConfidence)
	}
}

func TestEstimateTokenSavings(t *testing.T) {
	s := EstimateTokenSavings(10, 2)

	perQuestion := perQuestionPromptTokens + perQuestionResponseTokens
	overhead := systemPromptTokens + schemaOverheadTokens
	wantWithout := 10 * (overhead + perQuestion)
	wantWith := 2*overhead + 10*perQuestion

	if s.WithoutBatching != wantWithout {
		t.Errorf("without: expected %d, got %d", wantWithout, s.WithoutBatching)
	}
	if s.WithBatching != wantWith {
		t.Errorf("with: expected %d, got %d", wantWith, s.WithBatching)
	}
	if s.TokensSaved != wantWithout-wantWith {
		t.Errorf("saved: expected %d, got %d", wantWithout-wantWith, s.TokensSaved)
	}
	if s.SavedPercent <= 0 || s.SavedPercent >= 100 {
		t.Errorf("expected percent in (0, 100), got %v", s.SavedPercent)
	}
}

func TestEstimateTokenSavings_ZeroInput(t *testing.T) {
	if s := EstimateTokenSavings(0, 0); s != (Savings{}) {
		t.Errorf("expected zero savings, got %+v", s)
	}
}
