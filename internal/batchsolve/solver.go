package batchsolve

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/homewise/homewise/internal/classify"
	"github.com/homewise/homewise/internal/llm"
	"github.com/homewise/homewise/internal/question"
	"github.com/homewise/homewise/internal/store"
)

// Placeholder texts for questions the batch path could not solve. The
// standard pipeline surfaces these verbatim so the caller can retry the
// question individually.
const (
	placeholderMissingAnswer = "Error: Solution not generated"
	placeholderFailedAnswer  = "Batch processing failed - please retry this question individually"
)

// Solver solves groups of batch-eligible questions with one model call per
// chunk instead of one call per question.
type Solver struct {
	provider llm.Provider
	events   store.EventRepo // may be nil
	cfg      Config
}

// NewSolver creates a batch solver. events may be nil to disable event
// recording.
func NewSolver(provider llm.Provider, events store.EventRepo, cfg Config) *Solver {
	return &Solver{provider: provider, events: events, cfg: cfg}
}

// solutionOutput is the raw model response before mapping.
type solutionOutput struct {
	Solutions []solutionEntry `json:"solutions"`
}

type solutionEntry struct {
	Index           int      `json:"index"`
	DetectedSubject string   `json:"detected_subject"`
	DetectedTopic   string   `json:"detected_topic"`
	QuestionType    string   `json:"question_type"`
	Difficulty      string   `json:"difficulty"`
	Answer          string   `json:"answer"`
	SolutionSteps   []string `json:"solution_steps"`
	SolutionStepsHe []string `json:"solution_steps_he"`
	Tip             string   `json:"tip"`
	TipHe           string   `json:"tip_he"`
	Confidence      float64  `json:"confidence"`
}

// SolveBatches chunks the batch-eligible questions, solves each chunk with
// one model call and concatenates the results. The output always has the
// same length and order as the input: a failed chunk contributes a retry
// placeholder per question instead of aborting the run. The returned
// Savings is the estimate recorded on the solve event.
func (s *Solver) SolveBatches(ctx context.Context, questions []question.Classified) ([]question.Solved, Savings) {
	if len(questions) == 0 {
		return nil, Savings{}
	}

	batches := classify.CreateBatches(questions, s.cfg.MaxBatchSize)

	var (
		solved       = make([]question.Solved, 0, len(questions))
		failed       int
		placeholders int
	)
	for _, batch := range batches {
		chunk, missing, err := s.solveChunk(ctx, batch)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: batch of %d questions failed, emitting retry placeholders: %v\n", len(batch), err)
			failed++
			placeholders += len(batch)
			chunk = make([]question.Solved, len(batch))
			for i, q := range batch {
				chunk[i] = placeholder(q, placeholderFailedAnswer)
			}
		} else {
			placeholders += missing
		}
		solved = append(solved, chunk...)
	}

	savings := EstimateTokenSavings(len(questions), len(batches))

	if s.events != nil {
		if err := s.events.AppendSolve(ctx, store.SolveEventData{
			QuestionCount:        len(questions),
			BatchCount:           len(batches),
			FailedBatches:        failed,
			PlaceholderCount:     placeholders,
			EstimatedTokensSaved: savings.TokensSaved,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record solve event: %v\n", err)
		}
	}

	fmt.Fprintf(os.Stderr, "batch-solved %d questions in %d calls (%d failed batches, %d placeholders, ~%d tokens saved)\n",
		len(questions), len(batches), failed, placeholders, savings.TokensSaved)
	return solved, savings
}

// SolveBatch solves one chunk with a single model call. An empty chunk is
// answered immediately without a call. The returned slice mirrors the
// chunk's length and order; questions the response skipped get a
// not-generated placeholder. Batching pays off from 2 questions up; a
// smaller input still works but wastes the shared overhead.
func (s *Solver) SolveBatch(ctx context.Context, batch []question.Classified) ([]question.Solved, error) {
	if len(batch) == 0 {
		return nil, nil
	}
	if len(batch) < 2 {
		fmt.Fprintf(os.Stderr, "warning: batch of %d questions, batching overhead is not amortized\n", len(batch))
	}
	solved, _, err := s.solveChunk(ctx, batch)
	return solved, err
}

// solveChunk issues the model call for one chunk. missing counts the
// questions the response skipped, which come back as placeholders.
func (s *Solver) solveChunk(ctx context.Context, batch []question.Classified) (solved []question.Solved, missing int, err error) {
	ctx = llm.WithPurpose(ctx, "batch-solving")

	req := llm.Request{
		System: batchSolveSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildBatchMessage(batch)},
		},
		Schema:      BatchSolutionSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, 0, err
	}

	var out solutionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, 0, fmt.Errorf("decode batch solution: %w", err)
	}

	byIndex := make(map[int]solutionEntry, len(out.Solutions))
	for _, entry := range out.Solutions {
		byIndex[entry.Index] = entry
	}

	solved = make([]question.Solved, len(batch))
	for i, q := range batch {
		entry, ok := byIndex[q.OrderIndex]
		if !ok {
			solved[i] = placeholder(q, placeholderMissingAnswer)
			missing++
			continue
		}
		solved[i] = s.mapEntry(q, entry)
	}
	return solved, missing, nil
}

// mapEntry converts a response entry into a Solved question, repairing the
// step-count contract and clamping out-of-range fields.
func (s *Solver) mapEntry(q question.Classified, e solutionEntry) question.Solved {
	sol := question.Solved{
		Classified:      q,
		DetectedSubject: e.DetectedSubject,
		DetectedTopic:   e.DetectedTopic,
		Type:            question.TypeCalculation,
		Difficulty:      question.DifficultyMedium,
		Answer:          e.Answer,
		SolutionSteps:   e.SolutionSteps,
		SolutionStepsHe: repairSteps(e.SolutionSteps, e.SolutionStepsHe),
		Tip:             truncateTip(e.Tip, s.cfg.MaxTipChars),
		TipHe:           truncateTip(e.TipHe, s.cfg.MaxTipChars),
		AIConfidence:    e.Confidence,
	}

	switch question.Type(e.QuestionType) {
	case question.TypeMultipleChoice, question.TypeOpenEnded, question.TypeProof,
		question.TypeCalculation, question.TypeWordProblem:
		sol.Type = question.Type(e.QuestionType)
	}

	switch question.Difficulty(e.Difficulty) {
	case question.DifficultyEasy, question.DifficultyMedium, question.DifficultyHard:
		sol.Difficulty = question.Difficulty(e.Difficulty)
	}

	if sol.AIConfidence < 0 {
		sol.AIConfidence = 0
	} else if sol.AIConfidence > 10 {
		sol.AIConfidence = 10
	}
	return sol
}

// repairSteps enforces the equal-length contract between the English and
// Hebrew step lists. A short Hebrew list is padded with the English text,
// a long one is truncated.
func repairSteps(en, he []string) []string {
	if len(he) == len(en) {
		return he
	}
	repaired := make([]string, len(en))
	for i := range en {
		if i < len(he) {
			repaired[i] = he[i]
		} else {
			repaired[i] = en[i]
		}
	}
	return repaired
}

// truncateTip limits a tip to max runes.
func truncateTip(tip string, max int) string {
	if max <= 0 {
		return tip
	}
	runes := []rune(tip)
	if len(runes) <= max {
		return tip
	}
	return string(runes[:max])
}

// placeholder builds an unsolved record for a question the batch path could
// not produce an answer for.
func placeholder(q question.Classified, answer string) question.Solved {
	return question.Solved{
		Classified:      q,
		Type:            question.TypeCalculation,
		Difficulty:      question.DifficultyMedium,
		Answer:          answer,
		SolutionSteps:   []string{"This question could not be solved in batch mode."},
		SolutionStepsHe: []string{"לא ניתן היה לפתור שאלה זו במצב אצווה."},
		AIConfidence:    0,
	}
}
