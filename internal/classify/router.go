package classify

import "github.com/homewise/homewise/internal/question"

// DefaultMaxBatchSize bounds how many questions share one solving call.
const DefaultMaxBatchSize = 5

// StrategyGroups holds the three disjoint processing queues. Every
// classified question lands in exactly one group.
type StrategyGroups struct {
	// Batchable questions are simple and self-contained; they are solved
	// in grouped calls to amortize per-call overhead.
	Batchable []question.Classified

	// Standard questions get one solving call each.
	Standard []question.Classified

	// Complex questions get one solving call each with a larger budget.
	Complex []question.Classified
}

// Total returns the combined size of all three groups.
func (g StrategyGroups) Total() int {
	return len(g.Batchable) + len(g.Standard) + len(g.Complex)
}

// GroupByStrategy partitions classified questions into processing queues.
// Batch eligibility wins over complexity: a question goes to Batchable iff
// CanBatchProcess, else to Complex iff its complexity is complex, else to
// Standard.
func GroupByStrategy(classified []question.Classified) StrategyGroups {
	var g StrategyGroups
	for _, q := range classified {
		switch {
		case q.Classification.CanBatchProcess:
			g.Batchable = append(g.Batchable, q)
		case q.Classification.Complexity == question.ComplexityComplex:
			g.Complex = append(g.Complex, q)
		default:
			g.Standard = append(g.Standard, q)
		}
	}
	return g
}

// CreateBatches groups consecutive questions into chunks of at most
// maxBatchSize. The final chunk may be smaller; empty input yields nil.
// A non-positive maxBatchSize falls back to DefaultMaxBatchSize.
func CreateBatches(questions []question.Classified, maxBatchSize int) [][]question.Classified {
	if maxBatchSize <= 0 {
		maxBatchSize = DefaultMaxBatchSize
	}

	var batches [][]question.Classified
	for start := 0; start < len(questions); start += maxBatchSize {
		end := min(start+maxBatchSize, len(questions))
		batches = append(batches, questions[start:end])
	}
	return batches
}
