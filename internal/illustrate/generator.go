package illustrate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/homewise/homewise/internal/blob"
	"github.com/homewise/homewise/internal/llm"
	"github.com/homewise/homewise/internal/question"
	"github.com/homewise/homewise/internal/store"
)

// Request identifies one question submitted for illustration.
type Request struct {
	// QuestionID keys the result map. Usually the question's database id.
	QuestionID string

	Text    string
	Subject string

	// IsSubQuestion excludes the question from batch generation; a
	// sub-question shares its parent's illustration.
	IsSubQuestion bool

	// Classification gates generation through ShouldGenerateImage when
	// present. A nil classification includes the question unconditionally.
	Classification *question.Classification
}

// Result is the outcome of one illustration attempt.
type Result struct {
	Success bool

	// ImageURL is the public view URL. Empty on failure.
	ImageURL string

	// FileID is the blob storage key, usable with Delete. Empty on failure.
	FileID string

	// ErrorMessage describes the failure. Empty on success.
	ErrorMessage string
}

// Generator produces educational diagrams for questions in two stages:
// prompt synthesis with a text model, then image generation.
type Generator struct {
	text   llm.Provider
	image  llm.ImageProvider
	blobs  blob.Store
	events store.EventRepo // may be nil
	cfg    Config
}

// NewGenerator creates an illustration generator. events may be nil to
// disable event recording.
func NewGenerator(text llm.Provider, image llm.ImageProvider, blobs blob.Store, events store.EventRepo, cfg Config) *Generator {
	return &Generator{text: text, image: image, blobs: blobs, events: events, cfg: cfg}
}

type promptOutput struct {
	Prompt string `json:"prompt"`
}

// Generate produces one illustration and uploads it. It never returns an
// error: any stage failure yields a Result with Success false and a
// descriptive message.
func (g *Generator) Generate(ctx context.Context, req Request, userID string) Result {
	start := time.Now()
	res := g.generate(ctx, req, userID)

	if !res.Success {
		fmt.Fprintf(os.Stderr, "warning: illustration for question %s failed: %s\n", req.QuestionID, res.ErrorMessage)
	}
	if g.events != nil {
		if err := g.events.AppendIllustration(ctx, store.IllustrationEventData{
			QuestionID:   req.QuestionID,
			FileID:       res.FileID,
			Success:      res.Success,
			ErrorMessage: res.ErrorMessage,
			LatencyMs:    time.Since(start).Milliseconds(),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record illustration event: %v\n", err)
		}
	}
	return res
}

func (g *Generator) generate(ctx context.Context, req Request, userID string) Result {
	ctx = llm.WithPurpose(ctx, "illustration")

	var prefix string
	if req.Classification != nil {
		prefix = TargetedPromptPrefix(req.Classification.Category, req.Classification.VisualizationReason)
	}

	synthReq := llm.Request{
		System: promptSynthesisSystem,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSynthesisMessage(req.Text, req.Subject, prefix)},
		},
		Schema:      PromptSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.text.Generate(ctx, synthReq)
	if err != nil {
		return failure(fmt.Sprintf("prompt synthesis failed: %v", err))
	}
	var out promptOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return failure(fmt.Sprintf("prompt synthesis response unreadable: %v", err))
	}
	if out.Prompt == "" {
		return failure("prompt synthesis returned an empty prompt")
	}

	payloads, err := g.image.GenerateImage(ctx, out.Prompt)
	if err != nil {
		return failure(fmt.Sprintf("image generation failed: %v", err))
	}
	if len(payloads) == 0 {
		return failure("image generation returned no image payload")
	}
	img := payloads[0]

	key := fmt.Sprintf("%s/%s/%s%s", g.cfg.KeyPrefix, userID, uuid.NewString(), extFor(img.MediaType))
	obj, err := g.blobs.Put(ctx, key, img.Data, img.MediaType)
	if err != nil {
		return failure(fmt.Sprintf("upload failed: %v", err))
	}

	return Result{Success: true, ImageURL: obj.URL, FileID: obj.Key}
}

// GenerateBatch illustrates the selected subset of questions, keyed by
// question id. Sub-questions are skipped, classified questions are gated
// by ShouldGenerateImage and unclassified ones are included as-is. Items
// run strictly sequentially with a delay between calls, and one item's
// failure never stops the rest. A question absent from the returned map
// was not attempted.
func (g *Generator) GenerateBatch(ctx context.Context, reqs []Request, userID string) map[string]Result {
	selected := make([]Request, 0, len(reqs))
	for _, req := range reqs {
		if req.IsSubQuestion {
			continue
		}
		if req.Classification != nil && !ShouldGenerateImage(*req.Classification, req.Text) {
			continue
		}
		selected = append(selected, req)
	}

	results := make(map[string]Result, len(selected))
	for i, req := range selected {
		if i > 0 && g.cfg.Delay > 0 {
			time.Sleep(g.cfg.Delay)
		}
		results[req.QuestionID] = g.Generate(ctx, req, userID)
	}

	fmt.Fprintf(os.Stderr, "illustrated %d of %d questions\n", len(results), len(reqs))
	return results
}

// Delete removes a stored illustration. Best effort: a failed delete is
// logged and reported as false, never as an error.
func (g *Generator) Delete(ctx context.Context, fileID string) bool {
	if err := g.blobs.Delete(ctx, fileID); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to delete illustration %s: %v\n", fileID, err)
		return false
	}
	return true
}

func failure(msg string) Result {
	return Result{Success: false, ErrorMessage: msg}
}

func extFor(mediaType string) string {
	switch mediaType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
