package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"classification", "batch-solving", "graph-detection"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 200 + i,
			LatencyMs:    int64(50 + i),
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %s: %v", purpose, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	// Newest first.
	if events[0].Purpose != "graph-detection" {
		t.Errorf("expected newest event first, got %q", events[0].Purpose)
	}
	if events[0].Sequence <= events[2].Sequence {
		t.Errorf("sequences must increase, got %d then %d", events[2].Sequence, events[0].Sequence)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 events with limit, got %d", len(limited))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock-model",
		Purpose:      "classification",
		Success:      false,
		ErrorMessage: "rate limited",
		RequestBody:  `{"messages":[]}`,
		ResponseBody: "",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil || len(events) != 1 {
		t.Fatalf("query: %v (%d events)", err, len(events))
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event, got nil")
	}
	if e.ErrorMessage != "rate limited" || e.RequestBody == "" {
		t.Errorf("unexpected event: %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for a missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "model-a", Purpose: "classification",
			InputTokens: 100, OutputTokens: 50, LatencyMs: 40, Success: true,
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "model-b", Purpose: "batch-solving",
		InputTokens: 500, OutputTokens: 800, LatencyMs: 120, Success: true,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	for _, u := range byPurpose {
		switch u.Purpose {
		case "classification":
			if u.Calls != 3 || u.InputTokens != 300 {
				t.Errorf("unexpected classification usage: %+v", u)
			}
		case "batch-solving":
			if u.Calls != 1 || u.OutputTokens != 800 {
				t.Errorf("unexpected batch-solving usage: %+v", u)
			}
		default:
			t.Errorf("unexpected purpose %q", u.Purpose)
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
}

func TestAppendSolveAndIllustrationEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSolve(ctx, SolveEventData{
		QuestionCount:        12,
		BatchCount:           3,
		FailedBatches:        1,
		PlaceholderCount:     5,
		EstimatedTokensSaved: 4800,
	})
	if err != nil {
		t.Fatalf("append solve: %v", err)
	}

	err = repo.AppendIllustration(ctx, IllustrationEventData{
		QuestionID: "7",
		FileID:     "illustrations/u/abc.png",
		Success:    true,
		LatencyMs:  900,
	})
	if err != nil {
		t.Fatalf("append illustration: %v", err)
	}
}
