package graphdetect

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/homewise/homewise/internal/llm"
)

// GraphType labels the kind of function a question contains.
type GraphType string

const (
	GraphPolynomial    GraphType = "polynomial"
	GraphRational      GraphType = "rational"
	GraphTrigonometric GraphType = "trigonometric"
	GraphExponential   GraphType = "exponential"
	GraphLogarithmic   GraphType = "logarithmic"
	GraphLimit         GraphType = "limit"
	GraphDerivative    GraphType = "derivative"
	GraphIntegral      GraphType = "integral"
	GraphOther         GraphType = "other"
)

// Domain is a suggested x-range for display.
type Domain struct {
	Min float64
	Max float64
}

// Classification is one question's graph annotation.
type Classification struct {
	Graphable bool

	// Function is a validated expression in x. Empty unless Graphable.
	Function string

	Type   GraphType
	Domain *Domain

	// Confidence in [0, 1]. Zero for fallback classifications.
	Confidence float64
}

// QuestionRef identifies one question submitted for graph classification.
type QuestionRef struct {
	OrderIndex int
	Text       string
}

// notGraphable is the fallback for any failed or rejected classification.
func notGraphable() Classification {
	return Classification{Graphable: false, Confidence: 0}
}

// Classifier detects plottable functions in question text. Each question is
// classified with its own model call so one bad question cannot poison its
// neighbors.
type Classifier struct {
	provider llm.Provider
	cfg      Config
}

// NewClassifier creates a graph classifier.
func NewClassifier(provider llm.Provider, cfg Config) *Classifier {
	return &Classifier{provider: provider, cfg: cfg}
}

// graphOutput is the raw model response before mapping.
type graphOutput struct {
	Graphable  bool    `json:"graphable"`
	Function   string  `json:"function"`
	GraphType  string  `json:"graph_type"`
	DomainMin  float64 `json:"domain_min"`
	DomainMax  float64 `json:"domain_max"`
	Confidence float64 `json:"confidence"`
}

// ClassifyQuestion classifies one question. It never returns an error: any
// call failure, decode failure or invalid extracted expression yields the
// not-graphable fallback.
func (c *Classifier) ClassifyQuestion(ctx context.Context, text string) Classification {
	ctx = llm.WithPurpose(ctx, "graph-detection")

	req := llm.Request{
		System: graphSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGraphMessage(text)},
		},
		Schema:      GraphSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: graph classification call failed: %v\n", err)
		return notGraphable()
	}

	var out graphOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		fmt.Fprintf(os.Stderr, "warning: graph classification response unreadable: %v\n", err)
		return notGraphable()
	}

	if !out.Graphable || out.Function == "" {
		return notGraphable()
	}

	// Never trust an extracted expression that the evaluator cannot run.
	if !ValidateFunction(out.Function) {
		fmt.Fprintf(os.Stderr, "warning: rejecting unevaluable graph expression %q\n", out.Function)
		return notGraphable()
	}

	cls := Classification{
		Graphable:  true,
		Function:   out.Function,
		Type:       GraphOther,
		Confidence: clamp01(out.Confidence),
	}

	switch GraphType(out.GraphType) {
	case GraphPolynomial, GraphRational, GraphTrigonometric, GraphExponential,
		GraphLogarithmic, GraphLimit, GraphDerivative, GraphIntegral, GraphOther:
		cls.Type = GraphType(out.GraphType)
	}

	if out.DomainMin < out.DomainMax {
		cls.Domain = &Domain{Min: out.DomainMin, Max: out.DomainMax}
	} else {
		cls.Domain = defaultDomain(cls.Type)
	}
	return cls
}

// ClassifyBatch classifies every question and returns results keyed by
// order index. Questions run concurrently within fixed-size chunks and
// chunks run sequentially, so at most ChunkSize calls are in flight.
func (c *Classifier) ClassifyBatch(ctx context.Context, questions []QuestionRef) map[int]Classification {
	results := make(map[int]Classification, len(questions))
	if len(questions) == 0 {
		return results
	}

	size := c.cfg.ChunkSize
	if size <= 0 {
		size = DefaultConfig().ChunkSize
	}

	var mu sync.Mutex
	for start := 0; start < len(questions); start += size {
		end := start + size
		if end > len(questions) {
			end = len(questions)
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, q := range questions[start:end] {
			g.Go(func() error {
				cls := c.ClassifyQuestion(gctx, q.Text)
				mu.Lock()
				results[q.OrderIndex] = cls
				mu.Unlock()
				return nil
			})
		}
		// ClassifyQuestion never errors, so Wait only synchronizes the chunk.
		_ = g.Wait()
	}

	return results
}

// defaultDomain picks a display range by function type.
func defaultDomain(t GraphType) *Domain {
	switch t {
	case GraphTrigonometric:
		return &Domain{Min: -2 * math.Pi, Max: 2 * math.Pi}
	case GraphLogarithmic:
		return &Domain{Min: 0.1, Max: 10}
	default:
		return &Domain{Min: -5, Max: 5}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
