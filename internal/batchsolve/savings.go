package batchsolve

// Rough per-call token costs used by the savings estimate. These are not
// billed numbers, only sizing constants for comparing a batched run against
// the same questions solved one call each.
const (
	systemPromptTokens        = 350
	schemaOverheadTokens      = 250
	perQuestionPromptTokens   = 120
	perQuestionResponseTokens = 280
)

// Savings compares the estimated token cost of a batched run against
// solving the same questions individually.
type Savings struct {
	WithoutBatching int
	WithBatching    int
	TokensSaved     int
	SavedPercent    float64
}

// EstimateTokenSavings estimates how many tokens batching saved. Solving
// individually pays the system prompt and schema overhead once per
// question; batching pays it once per chunk.
func EstimateTokenSavings(questionCount, batchCount int) Savings {
	if questionCount <= 0 || batchCount <= 0 {
		return Savings{}
	}

	overhead := systemPromptTokens + schemaOverheadTokens
	perQuestion := perQuestionPromptTokens + perQuestionResponseTokens

	without := questionCount * (overhead + perQuestion)
	with := batchCount*overhead + questionCount*perQuestion

	s := Savings{
		WithoutBatching: without,
		WithBatching:    with,
		TokensSaved:     without - with,
	}
	if without > 0 {
		s.SavedPercent = float64(s.TokensSaved) / float64(without) * 100
	}
	return s
}
