package batchsolve

import (
	"fmt"
	"strings"

	"github.com/homewise/homewise/internal/question"
)

const batchSolveSystemPrompt = `You solve batches of simple homework questions. Every question in
the batch has already been screened as easy and self-contained, so each one can be
answered briefly and independently.

Rules:
- Return exactly one solution per question, tagged with the question's index.
- Keep solutions concise: 1-3 solution_steps, each one sentence.
- Provide solution_steps_he as a Hebrew translation of solution_steps, with the
  same number of entries in the same order.
- The answer field holds only the final result, without restating the question.
- tip and tip_he are one short study hint each, at most 150 characters.
- Set question_type and difficulty from the question itself, even if they differ
  from any hint in the text.
- confidence is your own 0-10 estimate of correctness.
- Never skip an index and never invent extra entries.`

// buildBatchMessage renders one chunk of questions as a numbered list.
// Indexes in the list are the questions' order indexes, so the model's
// per-index responses can be mapped straight back.
func buildBatchMessage(batch []question.Classified) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Solve the following %d questions. Reply with one solution per index.\n\n", len(batch))
	for _, q := range batch {
		fmt.Fprintf(&b, "Question %d: %s\n", q.OrderIndex, q.Text)
	}
	return b.String()
}
