package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/homewise/homewise/internal/llm"
	"github.com/homewise/homewise/internal/question"
)

// Classifier annotates extracted questions with complexity, category,
// visualization need and batch eligibility using one batched model call.
type Classifier struct {
	provider llm.Provider
	cfg      Config
}

// NewClassifier creates a question classifier.
func NewClassifier(provider llm.Provider, cfg Config) *Classifier {
	return &Classifier{provider: provider, cfg: cfg}
}

// classificationOutput is the raw model response before mapping.
type classificationOutput struct {
	Classifications []classificationEntry `json:"classifications"`
}

type classificationEntry struct {
	Index               int    `json:"index"`
	Complexity          string `json:"complexity"`
	EstimatedSteps      int    `json:"estimated_steps"`
	VisualizationNeed   string `json:"visualization_need"`
	VisualizationReason string `json:"visualization_reason"`
	QuestionCategory    string `json:"question_category"`
	CanBatchProcess     bool   `json:"can_batch_process"`
}

// Classify annotates every input question. The output has the same length
// and order as the input and this method never returns an error: a missing
// response entry yields the default classification for that question, and
// a failed call yields defaults for every question.
func (c *Classifier) Classify(ctx context.Context, questions []question.ExtractedQuestion) []question.Classified {
	if len(questions) == 0 {
		return nil
	}

	ctx = llm.WithPurpose(ctx, "classification")

	req := llm.Request{
		System: classificationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildClassificationMessage(questions, c.cfg)},
		},
		Schema:      ClassificationSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	byIndex := make(map[int]classificationEntry)

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: classification call failed, using defaults for %d questions: %v\n", len(questions), err)
	} else {
		var out classificationOutput
		if decodeErr := json.Unmarshal(resp.Content, &out); decodeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: classification response unreadable, using defaults: %v\n", decodeErr)
		} else {
			for _, entry := range out.Classifications {
				byIndex[entry.Index] = entry
			}
		}
	}

	classified := make([]question.Classified, len(questions))
	for i, q := range questions {
		cls := question.DefaultClassification()
		if entry, ok := byIndex[i]; ok {
			cls = mapEntry(entry)
		}
		// Sub-questions depend on their parent's context and can never be
		// solved independently in a shared batch call, regardless of what
		// the model returned.
		if q.IsSubQuestion {
			cls.CanBatchProcess = false
		}
		classified[i] = question.Classified{
			ExtractedQuestion: q,
			Classification:    cls,
		}
	}

	c.logSummary(classified)
	return classified
}

// mapEntry converts a raw response entry into a Classification, falling
// back to default values for out-of-range enum fields.
func mapEntry(e classificationEntry) question.Classification {
	cls := question.DefaultClassification()

	switch question.Complexity(e.Complexity) {
	case question.ComplexitySimple, question.ComplexityMedium, question.ComplexityComplex:
		cls.Complexity = question.Complexity(e.Complexity)
	}

	if e.EstimatedSteps >= 0 {
		cls.EstimatedSteps = e.EstimatedSteps
	}

	switch question.VisualizationNeed(e.VisualizationNeed) {
	case question.VisualizationRequired, question.VisualizationHelpful, question.VisualizationNotNeeded:
		cls.VisualizationNeed = question.VisualizationNeed(e.VisualizationNeed)
	}

	if cls.VisualizationNeed != question.VisualizationNotNeeded {
		cls.VisualizationReason = e.VisualizationReason
	}

	switch question.Category(e.QuestionCategory) {
	case question.CategoryCalculation, question.CategoryWordProblem, question.CategoryProof,
		question.CategoryGraph, question.CategoryPhysicsSetup, question.CategoryGeometry,
		question.CategoryDefinition:
		cls.Category = question.Category(e.QuestionCategory)
	}

	cls.CanBatchProcess = e.CanBatchProcess
	return cls
}

// logSummary emits a one-line diagnostic of the classification outcome.
func (c *Classifier) logSummary(classified []question.Classified) {
	var simple, medium, complex, batchable, visual int
	for _, q := range classified {
		switch q.Classification.Complexity {
		case question.ComplexitySimple:
			simple++
		case question.ComplexityMedium:
			medium++
		case question.ComplexityComplex:
			complex++
		}
		if q.Classification.CanBatchProcess {
			batchable++
		}
		if q.Classification.VisualizationNeed != question.VisualizationNotNeeded {
			visual++
		}
	}
	fmt.Fprintf(os.Stderr, "classified %d questions: %d simple / %d medium / %d complex, %d batchable, %d want visuals\n",
		len(classified), simple, medium, complex, batchable, visual)
}
