// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/homewise/homewise/ent/illustrationevent"
	"github.com/homewise/homewise/ent/llmrequestevent"
	"github.com/homewise/homewise/ent/schema"
	"github.com/homewise/homewise/ent/solveevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	illustrationeventMixin := schema.IllustrationEvent{}.Mixin()
	illustrationeventMixinFields0 := illustrationeventMixin[0].Fields()
	_ = illustrationeventMixinFields0
	illustrationeventFields := schema.IllustrationEvent{}.Fields()
	_ = illustrationeventFields
	// illustrationeventDescTimestamp is the schema descriptor for timestamp field.
	illustrationeventDescTimestamp := illustrationeventMixinFields0[1].Descriptor()
	// illustrationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	illustrationevent.DefaultTimestamp = illustrationeventDescTimestamp.Default.(func() time.Time)
	// illustrationeventDescFileID is the schema descriptor for file_id field.
	illustrationeventDescFileID := illustrationeventFields[1].Descriptor()
	// illustrationevent.DefaultFileID holds the default value on creation for the file_id field.
	illustrationevent.DefaultFileID = illustrationeventDescFileID.Default.(string)
	// illustrationeventDescErrorMessage is the schema descriptor for error_message field.
	illustrationeventDescErrorMessage := illustrationeventFields[3].Descriptor()
	// illustrationevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	illustrationevent.DefaultErrorMessage = illustrationeventDescErrorMessage.Default.(string)
	// illustrationeventDescLatencyMs is the schema descriptor for latency_ms field.
	illustrationeventDescLatencyMs := illustrationeventFields[4].Descriptor()
	// illustrationevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	illustrationevent.DefaultLatencyMs = illustrationeventDescLatencyMs.Default.(int64)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	solveeventMixin := schema.SolveEvent{}.Mixin()
	solveeventMixinFields0 := solveeventMixin[0].Fields()
	_ = solveeventMixinFields0
	solveeventFields := schema.SolveEvent{}.Fields()
	_ = solveeventFields
	// solveeventDescTimestamp is the schema descriptor for timestamp field.
	solveeventDescTimestamp := solveeventMixinFields0[1].Descriptor()
	// solveevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	solveevent.DefaultTimestamp = solveeventDescTimestamp.Default.(func() time.Time)
	// solveeventDescFailedBatches is the schema descriptor for failed_batches field.
	solveeventDescFailedBatches := solveeventFields[2].Descriptor()
	// solveevent.DefaultFailedBatches holds the default value on creation for the failed_batches field.
	solveevent.DefaultFailedBatches = solveeventDescFailedBatches.Default.(int)
	// solveeventDescPlaceholderCount is the schema descriptor for placeholder_count field.
	solveeventDescPlaceholderCount := solveeventFields[3].Descriptor()
	// solveevent.DefaultPlaceholderCount holds the default value on creation for the placeholder_count field.
	solveevent.DefaultPlaceholderCount = solveeventDescPlaceholderCount.Default.(int)
	// solveeventDescEstimatedTokensSaved is the schema descriptor for estimated_tokens_saved field.
	solveeventDescEstimatedTokensSaved := solveeventFields[4].Descriptor()
	// solveevent.DefaultEstimatedTokensSaved holds the default value on creation for the estimated_tokens_saved field.
	solveevent.DefaultEstimatedTokensSaved = solveeventDescEstimatedTokensSaved.Default.(int)
}
