package pipeline

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/homewise/homewise/internal/question"
)

func sampleResult() *Result {
	return &Result{
		Solved:      []question.Solved{{}, {}},
		Standard:    []question.Classified{{}},
		TokensSaved: 1200,
	}
}

func TestNotify_PostsSummary(t *testing.T) {
	var got callbackPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewCallbackNotifier(srv.URL)
	if err := n.Notify(context.Background(), sampleResult()); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	if got.QuestionCount != 3 || got.BatchSolvedCount != 2 || got.TokensSaved != 1200 {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestNotify_RetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewCallbackNotifier(srv.URL)
	n.backoff = time.Millisecond

	if err := n.Notify(context.Background(), sampleResult()); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 attempts, got %d", calls.Load())
	}
}

func TestNotify_GivesUpAfterAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := NewCallbackNotifier(srv.URL)
	n.backoff = time.Millisecond

	if err := n.Notify(context.Background(), sampleResult()); err == nil {
		t.Fatal("expected an error after exhausting attempts")
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 attempts, got %d", calls.Load())
	}
}
