package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int    // max results (0 = unlimited)
	After  int64  // sequence > After
	Before int64  // sequence < Before
	From   time.Time
	To     time.Time
}

// LLMRequestEventData captures the data for a single model request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored model request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// SolveEventData summarizes one batch-solving run.
type SolveEventData struct {
	QuestionCount        int
	BatchCount           int
	FailedBatches        int
	PlaceholderCount     int
	EstimatedTokensSaved int
}

// IllustrationEventData captures one illustration generation attempt.
type IllustrationEventData struct {
	QuestionID   string
	FileID       string
	Success      bool
	ErrorMessage string
	LatencyMs    int64
}

// LLMPurposeUsage aggregates token usage per request purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to pipeline events.
type EventRepo interface {
	// AppendLLMRequest records a model API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendSolve records a batch-solving run summary.
	AppendSolve(ctx context.Context, data SolveEventData) error

	// AppendIllustration records an illustration generation attempt.
	AppendIllustration(ctx context.Context, data IllustrationEventData) error

	// QueryLLMEvents returns model request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one event by id, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
