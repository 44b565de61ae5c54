// Package pipeline composes the homework-solving stages into one run.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/homewise/homewise/internal/batchsolve"
	"github.com/homewise/homewise/internal/classify"
	"github.com/homewise/homewise/internal/graphdetect"
	"github.com/homewise/homewise/internal/illustrate"
	"github.com/homewise/homewise/internal/question"
)

// Result is the output of one pipeline run. Every annotation stream is
// addressable by the question's order index.
type Result struct {
	// Solved holds one record per batch-solved question.
	Solved []question.Solved

	// Standard and Complex are the classified questions routed away from
	// the batch path. They are returned unsolved for the caller's
	// per-question solver.
	Standard []question.Classified
	Complex  []question.Classified

	// Graphs is keyed by order index and covers every input question.
	Graphs map[int]graphdetect.Classification

	// Illustrations is keyed by question id. A question absent from the
	// map was not selected for illustration.
	Illustrations map[string]illustrate.Result

	// TokensSaved is the batch path's estimated savings.
	TokensSaved int
}

// Runner wires the pipeline stages together. The illustration generator is
// optional; a nil generator skips that stage.
type Runner struct {
	classifier *classify.Classifier
	solver     *batchsolve.Solver
	graphs     *graphdetect.Classifier
	images     *illustrate.Generator
	userID     string
}

// NewRunner creates a pipeline runner. images may be nil to skip
// illustration generation.
func NewRunner(classifier *classify.Classifier, solver *batchsolve.Solver, graphs *graphdetect.Classifier, images *illustrate.Generator, userID string) *Runner {
	return &Runner{
		classifier: classifier,
		solver:     solver,
		graphs:     graphs,
		images:     images,
		userID:     userID,
	}
}

// Run executes classification, routing, batch solving, graph detection and
// illustration over one question list. Stage failures degrade to their
// documented fallbacks, so Run only fails on an empty input.
func (r *Runner) Run(ctx context.Context, questions []question.ExtractedQuestion) (*Result, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions to process")
	}

	classified := r.classifier.Classify(ctx, questions)
	groups := classify.GroupByStrategy(classified)

	res := &Result{
		Standard:      groups.Standard,
		Complex:       groups.Complex,
		Graphs:        make(map[int]graphdetect.Classification),
		Illustrations: make(map[string]illustrate.Result),
	}

	if len(groups.Batchable) > 0 {
		solved, savings := r.solver.SolveBatches(ctx, groups.Batchable)
		res.Solved = solved
		res.TokensSaved = savings.TokensSaved
	}

	refs := make([]graphdetect.QuestionRef, len(classified))
	for i, q := range classified {
		refs[i] = graphdetect.QuestionRef{OrderIndex: q.OrderIndex, Text: q.Text}
	}
	res.Graphs = r.graphs.ClassifyBatch(ctx, refs)

	if r.images != nil {
		reqs := make([]illustrate.Request, len(classified))
		for i, q := range classified {
			cls := q.Classification
			reqs[i] = illustrate.Request{
				QuestionID:     strconv.Itoa(q.OrderIndex),
				Text:           q.Text,
				IsSubQuestion:  q.IsSubQuestion,
				Classification: &cls,
			}
		}
		res.Illustrations = r.images.GenerateBatch(ctx, reqs, r.userID)
	}

	fmt.Fprintf(os.Stderr, "pipeline run: %d questions, %d batch-solved, %d standard, %d complex, %d graphable, %d illustrated\n",
		len(questions), len(res.Solved), len(res.Standard), len(res.Complex), countGraphable(res.Graphs), len(res.Illustrations))
	return res, nil
}

func countGraphable(graphs map[int]graphdetect.Classification) int {
	n := 0
	for _, g := range graphs {
		if g.Graphable {
			n++
		}
	}
	return n
}
