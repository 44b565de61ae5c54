package classify

import (
	"fmt"
	"strings"

	"github.com/homewise/homewise/internal/question"
)

const classificationSystemPrompt = `You are a homework triage assistant. You are given a numbered list of questions extracted from a student's uploaded document. For every question, classify its difficulty, category and visualization need.

Rules:
- Complexity reflects step count and concept count, not subject: a single-step formula application is "simple"; composing 2-3 concepts or setting up a word problem is "medium"; proofs, derivations and multi-part analysis are "complex".
- visualization_need is "required" for inherently spatial or physical scenarios (projectile motion, circuits, explicit geometric figures, coordinate-system problems); "helpful" for function graphs or vector diagrams that are solvable algebraically but aided by a picture; "not_needed" for pure algebra, calculus manipulation or proofs.
- can_batch_process may be true only when the question is simple, is not a sub-question, and contains no back-reference to another question (phrases like "previous", "given above", "from question").
- Return a classification for every index. Do not skip any.`

// buildClassificationMessage renders the numbered question list sent to
// the model.
func buildClassificationMessage(questions []question.ExtractedQuestion, cfg Config) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Classify the following %d questions.\n\n", len(questions)))

	for i, q := range questions {
		b.WriteString(fmt.Sprintf("Question %d", i))
		if q.SubQuestionLabel != "" {
			b.WriteString(fmt.Sprintf(" (part %s)", q.SubQuestionLabel))
		}
		b.WriteString(":\n")
		b.WriteString(q.Text)
		b.WriteString("\n")
		if q.IsSubQuestion && q.ParentContext != "" {
			b.WriteString(fmt.Sprintf("Parent context: %s\n", truncate(q.ParentContext, cfg.MaxParentContextChars)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// truncate shortens s to at most n runes, appending an ellipsis when cut.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
