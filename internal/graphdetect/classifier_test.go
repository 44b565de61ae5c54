package graphdetect

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/homewise/homewise/internal/llm"
)

func TestClassifyQuestion_Graphable(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"graphable":true,"function":"x^2 - 3*x + 1","graph_type":"polynomial","domain_min":-5,"domain_max":5,"confidence":0.9}`),
	})
	c := NewClassifier(mock, DefaultConfig())

	cls := c.ClassifyQuestion(context.Background(), "Sketch the graph of f(x) = x^2 - 3x + 1.")

	if !cls.Graphable {
		t.Fatal("expected graphable")
	}
	if cls.Function != "x^2 - 3*x + 1" {
		t.Errorf("unexpected function: %q", cls.Function)
	}
	if cls.Type != GraphPolynomial {
		t.Errorf("expected polynomial, got %s", cls.Type)
	}
	if cls.Domain == nil || cls.Domain.Min != -5 || cls.Domain.Max != 5 {
		t.Errorf("unexpected domain: %+v", cls.Domain)
	}
	if cls.Confidence != 0.9 {
		t.Errorf("expected confidence 0.9, got %v", cls.Confidence)
	}
}

func TestClassifyQuestion_CallFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	c := NewClassifier(mock, DefaultConfig())

	cls := c.ClassifyQuestion(context.Background(), "Plot y = sin(x).")

	if cls.Graphable || cls.Confidence != 0 {
		t.Errorf("expected not-graphable fallback, got %+v", cls)
	}
}

func TestClassifyQuestion_RejectsUnevaluableExpression(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"graphable":true,"function":"eval(x)","graph_type":"other","confidence":0.8}`),
	})
	c := NewClassifier(mock, DefaultConfig())

	cls := c.ClassifyQuestion(context.Background(), "Plot something.")

	if cls.Graphable {
		t.Error("an expression the evaluator rejects must yield not-graphable")
	}
	if cls.Function != "" {
		t.Errorf("rejected expression must not be surfaced, got %q", cls.Function)
	}
}

func TestClassifyQuestion_DefaultDomainByType(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"graphable":true,"function":"sin(x)","graph_type":"trigonometric","confidence":0.9}`)},
		llm.MockResponse{Content: json.RawMessage(`{"graphable":true,"function":"ln(x)","graph_type":"logarithmic","confidence":0.9}`)},
		llm.MockResponse{Content: json.RawMessage(`{"graphable":true,"function":"x^3","graph_type":"polynomial","domain_min":4,"domain_max":4,"confidence":0.9}`)},
	)
	c := NewClassifier(mock, DefaultConfig())

	trig := c.ClassifyQuestion(context.Background(), "q1")
	if trig.Domain == nil || math.Abs(trig.Domain.Min+2*math.Pi) > 1e-9 {
		t.Errorf("expected trig domain near [-2pi, 2pi], got %+v", trig.Domain)
	}

	logc := c.ClassifyQuestion(context.Background(), "q2")
	if logc.Domain == nil || logc.Domain.Min != 0.1 || logc.Domain.Max != 10 {
		t.Errorf("expected log domain [0.1, 10], got %+v", logc.Domain)
	}

	// A degenerate returned range falls back to the type default.
	poly := c.ClassifyQuestion(context.Background(), "q3")
	if poly.Domain == nil || poly.Domain.Min != -5 || poly.Domain.Max != 5 {
		t.Errorf("expected polynomial domain [-5, 5], got %+v", poly.Domain)
	}
}

func TestClassifyBatch_IsolatesFailures(t *testing.T) {
	// Three questions in one chunk; the second call fails. Mock responses
	// are FIFO so concurrent callers get one each; which caller fails is
	// not deterministic, but exactly one fallback and two real results
	// must come back.
	good := llm.MockResponse{Content: json.RawMessage(`{"graphable":true,"function":"x^2","graph_type":"polynomial","domain_min":-5,"domain_max":5,"confidence":0.9}`)}
	mock := llm.NewMockProvider(
		good,
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("boom")}},
		good,
	)
	c := NewClassifier(mock, DefaultConfig())

	out := c.ClassifyBatch(context.Background(), []QuestionRef{
		{OrderIndex: 0, Text: "a"},
		{OrderIndex: 1, Text: "b"},
		{OrderIndex: 2, Text: "c"},
	})

	if len(out) != 3 {
		t.Fatalf("expected 3 results, got %d", len(out))
	}
	var graphable, fallback int
	for _, cls := range out {
		if cls.Graphable {
			graphable++
		} else {
			fallback++
		}
	}
	if graphable != 2 || fallback != 1 {
		t.Errorf("expected 2 graphable and 1 fallback, got %d and %d", graphable, fallback)
	}
}

func TestClassifyBatch_ChunkedCalls(t *testing.T) {
	mock := llm.NewMockProvider()
	for i := 0; i < 7; i++ {
		mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"graphable":false,"confidence":0.5}`)})
	}
	c := NewClassifier(mock, DefaultConfig())

	refs := make([]QuestionRef, 7)
	for i := range refs {
		refs[i] = QuestionRef{OrderIndex: i, Text: "q"}
	}

	out := c.ClassifyBatch(context.Background(), refs)

	if len(out) != 7 {
		t.Fatalf("expected 7 results, got %d", len(out))
	}
	if mock.CallCount() != 7 {
		t.Fatalf("expected one call per question, got %d", mock.CallCount())
	}
	for i := 0; i < 7; i++ {
		if _, ok := out[i]; !ok {
			t.Errorf("missing result for order index %d", i)
		}
	}
}

func TestClassifyBatch_Empty(t *testing.T) {
	mock := llm.NewMockProvider()
	c := NewClassifier(mock, DefaultConfig())

	out := c.ClassifyBatch(context.Background(), nil)

	if len(out) != 0 {
		t.Fatalf("expected empty map, got %d entries", len(out))
	}
	if mock.CallCount() != 0 {
		t.Fatalf("empty input must not call the model, got %d calls", mock.CallCount())
	}
}
