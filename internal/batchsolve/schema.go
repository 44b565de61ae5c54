package batchsolve

import "github.com/homewise/homewise/internal/llm"

// BatchSolutionSchema defines the JSON schema for one chunk's solving
// response.
var BatchSolutionSchema = &llm.Schema{
	Name:        "batch-solution",
	Description: "Solutions for a small batch of simple homework questions, one entry per index",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"solutions": map[string]any{
				"type":        "array",
				"description": "One solution per input question, identified by index",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"index": map[string]any{
							"type":        "integer",
							"description": "The question index this solution belongs to",
						},
						"detected_subject": map[string]any{
							"type":        "string",
							"description": "Inferred subject, e.g. mathematics, physics",
						},
						"detected_topic": map[string]any{
							"type":        "string",
							"description": "Inferred topic within the subject",
						},
						"question_type": map[string]any{
							"type": "string",
							"enum": []any{"multiple_choice", "open_ended", "proof", "calculation", "word_problem"},
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The final answer",
						},
						"solution_steps": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "1-3 solution steps in English",
						},
						"solution_steps_he": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "The same steps in Hebrew, same count as solution_steps",
						},
						"tip": map[string]any{
							"type":        "string",
							"description": "A short hint in English, at most 150 characters",
						},
						"tip_he": map[string]any{
							"type":        "string",
							"description": "The hint in Hebrew, at most 150 characters",
						},
						"confidence": map[string]any{
							"type":        "number",
							"minimum":     0,
							"maximum":     10,
							"description": "Self-assessed confidence from 0 to 10",
						},
					},
					"required": []any{
						"index", "question_type", "difficulty", "answer",
						"solution_steps", "solution_steps_he", "confidence",
					},
				},
			},
		},
		"required":             []any{"solutions"},
		"additionalProperties": false,
	},
}
