package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// CallbackNotifier delivers a run summary to a webhook URL with bounded
// retries. Delivery is at-least-once: the receiver may see duplicates when
// a response is lost after the server processed it.
type CallbackNotifier struct {
	client   *http.Client
	url      string
	attempts int
	backoff  time.Duration
}

// NewCallbackNotifier creates a notifier for the given URL.
func NewCallbackNotifier(url string) *CallbackNotifier {
	return &CallbackNotifier{
		client:   &http.Client{Timeout: 30 * time.Second},
		url:      url,
		attempts: 3,
		backoff:  2 * time.Second,
	}
}

// callbackPayload is the JSON body posted to the webhook.
type callbackPayload struct {
	QuestionCount     int `json:"question_count"`
	BatchSolvedCount  int `json:"batch_solved_count"`
	StandardCount     int `json:"standard_count"`
	ComplexCount      int `json:"complex_count"`
	GraphableCount    int `json:"graphable_count"`
	IllustrationCount int `json:"illustration_count"`
	TokensSaved       int `json:"tokens_saved"`
}

// Notify posts the run summary. It retries on any failure with linear
// backoff and returns the last error after all attempts are spent.
func (n *CallbackNotifier) Notify(ctx context.Context, res *Result) error {
	payload := callbackPayload{
		QuestionCount:     len(res.Solved) + len(res.Standard) + len(res.Complex),
		BatchSolvedCount:  len(res.Solved),
		StandardCount:     len(res.Standard),
		ComplexCount:      len(res.Complex),
		GraphableCount:    countGraphable(res.Graphs),
		IllustrationCount: len(res.Illustrations),
		TokensSaved:       res.TokensSaved,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal callback payload: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= n.attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(n.backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		lastErr = n.post(ctx, body)
		if lastErr == nil {
			return nil
		}
		fmt.Fprintf(os.Stderr, "warning: callback attempt %d/%d failed: %v\n", attempt, n.attempts, lastErr)
	}
	return fmt.Errorf("callback delivery failed after %d attempts: %w", n.attempts, lastErr)
}

func (n *CallbackNotifier) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("callback returned status %d", resp.StatusCode)
	}
	return nil
}
