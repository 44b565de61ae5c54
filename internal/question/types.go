package question

// ExtractedQuestion is one question found in an uploaded document.
// Produced by the extraction step; immutable within the pipeline.
type ExtractedQuestion struct {
	// OrderIndex is the stable position in the source document. It is the
	// correlation key across every independently computed annotation
	// stream (solving, graph detection, illustration).
	OrderIndex int

	// Text is the free question text. May embed inline or block math markup.
	Text string

	// IsSubQuestion marks a question that only makes sense together with
	// ParentContext (e.g. part "b" of a multi-part exercise).
	IsSubQuestion bool

	// ParentContext is the surrounding text shown alongside a sub-question.
	ParentContext string

	// SubQuestionLabel is a short label like "a" or "b". Empty for
	// top-level questions.
	SubQuestionLabel string
}

// Complexity is the expected reasoning depth of a question.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// VisualizationNeed describes whether an illustration adds pedagogical value.
type VisualizationNeed string

const (
	VisualizationRequired  VisualizationNeed = "required"
	VisualizationHelpful   VisualizationNeed = "helpful"
	VisualizationNotNeeded VisualizationNeed = "not_needed"
)

// Category is the pedagogical category of a question.
type Category string

const (
	CategoryCalculation  Category = "calculation"
	CategoryWordProblem  Category = "word_problem"
	CategoryProof        Category = "proof"
	CategoryGraph        Category = "graph"
	CategoryPhysicsSetup Category = "physics_setup"
	CategoryGeometry     Category = "geometry"
	CategoryDefinition   Category = "definition"
)

// Classification is the per-question output of the question classifier.
type Classification struct {
	Complexity Complexity

	// EstimatedSteps is the expected solution-step count. Zero is allowed
	// for pure recall questions.
	EstimatedSteps int

	VisualizationNeed VisualizationNeed

	// VisualizationReason is present only when VisualizationNeed is not
	// "not_needed".
	VisualizationReason string

	Category Category

	// CanBatchProcess marks a question eligible for grouped solving.
	// Always false when the owning question is a sub-question, regardless
	// of what the classifier returned.
	CanBatchProcess bool
}

// DefaultClassification is substituted whenever the classifier response
// omits a question or the classification call fails outright. The values
// route the question through the standard (non-batched) solving path.
func DefaultClassification() Classification {
	return Classification{
		Complexity:        ComplexityMedium,
		EstimatedSteps:    3,
		VisualizationNeed: VisualizationNotNeeded,
		Category:          CategoryCalculation,
		CanBatchProcess:   false,
	}
}

// Classified pairs an extracted question with its classification.
type Classified struct {
	ExtractedQuestion
	Classification Classification
}

// Type describes the answer format of a solved question.
type Type string

const (
	TypeMultipleChoice Type = "multiple_choice"
	TypeOpenEnded      Type = "open_ended"
	TypeProof          Type = "proof"
	TypeCalculation    Type = "calculation"
	TypeWordProblem    Type = "word_problem"
)

// Difficulty is the solver's assessment of how hard a question is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Solved is a classified question augmented with a solved answer.
type Solved struct {
	Classified

	// DetectedSubject and DetectedTopic are inferred domain labels.
	// Either may be empty.
	DetectedSubject string
	DetectedTopic   string

	Type       Type
	Difficulty Difficulty

	// Answer is the final answer text.
	Answer string

	// SolutionSteps and SolutionStepsHe are ordered step sequences in
	// English and Hebrew. The solving contract requires equal lengths;
	// the solver repairs mismatched responses after decode.
	SolutionSteps   []string
	SolutionStepsHe []string

	// Tip and TipHe are short hints, at most 150 characters each.
	Tip   string
	TipHe string

	// AIConfidence is the solver's self-reported confidence in [0, 10].
	// Zero for placeholder records.
	AIConfidence float64
}
