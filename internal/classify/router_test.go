package classify

import (
	"testing"

	"github.com/homewise/homewise/internal/question"
)

func classifiedWith(complexity question.Complexity, batchable bool) question.Classified {
	cls := question.DefaultClassification()
	cls.Complexity = complexity
	cls.CanBatchProcess = batchable
	return question.Classified{Classification: cls}
}

func TestGroupByStrategy_Partition(t *testing.T) {
	input := []question.Classified{
		classifiedWith(question.ComplexitySimple, true),
		classifiedWith(question.ComplexityMedium, false),
		classifiedWith(question.ComplexityComplex, false),
		classifiedWith(question.ComplexitySimple, false),
		// Batch eligibility wins even for complex classifications.
		classifiedWith(question.ComplexityComplex, true),
	}

	g := GroupByStrategy(input)

	if len(g.Batchable) != 2 {
		t.Errorf("expected 2 batchable, got %d", len(g.Batchable))
	}
	if len(g.Standard) != 2 {
		t.Errorf("expected 2 standard, got %d", len(g.Standard))
	}
	if len(g.Complex) != 1 {
		t.Errorf("expected 1 complex, got %d", len(g.Complex))
	}
	if g.Total() != len(input) {
		t.Errorf("group sizes must sum to input length: got %d, want %d", g.Total(), len(input))
	}
}

func TestGroupByStrategy_Empty(t *testing.T) {
	g := GroupByStrategy(nil)
	if g.Total() != 0 {
		t.Fatalf("expected empty groups, got %d", g.Total())
	}
}

func TestCreateBatches_ChunkSizes(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		batchSize int
		want      []int
	}{
		{"twelve by five", 12, 5, []int{5, 5, 2}},
		{"exact multiple", 10, 5, []int{5, 5}},
		{"fewer than one batch", 3, 5, []int{3}},
		{"single question", 1, 5, []int{1}},
		{"empty", 0, 5, nil},
		{"zero size falls back to default", 12, 0, []int{5, 5, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs := make([]question.Classified, tt.count)
			for i := range qs {
				qs[i].OrderIndex = i
			}

			batches := CreateBatches(qs, tt.batchSize)

			if len(batches) != len(tt.want) {
				t.Fatalf("expected %d batches, got %d", len(tt.want), len(batches))
			}
			total := 0
			for i, b := range batches {
				if len(b) != tt.want[i] {
					t.Errorf("batch %d: expected size %d, got %d", i, tt.want[i], len(b))
				}
				if len(b) == 0 {
					t.Errorf("batch %d is empty", i)
				}
				total += len(b)
			}
			if total != tt.count {
				t.Errorf("batches must cover all questions: got %d, want %d", total, tt.count)
			}
		})
	}
}

func TestCreateBatches_PreservesOrder(t *testing.T) {
	qs := make([]question.Classified, 7)
	for i := range qs {
		qs[i].OrderIndex = i
	}

	batches := CreateBatches(qs, 3)

	next := 0
	for _, b := range batches {
		for _, q := range b {
			if q.OrderIndex != next {
				t.Fatalf("expected order index %d, got %d", next, q.OrderIndex)
			}
			next++
		}
	}
}
