package classify

import "github.com/homewise/homewise/internal/llm"

// ClassificationSchema defines the JSON schema for the batched
// question-classification response.
var ClassificationSchema = &llm.Schema{
	Name:        "question-classification",
	Description: "Per-question difficulty, category and visualization classification for a homework set",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"classifications": map[string]any{
				"type":        "array",
				"description": "One entry per input question, identified by index",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"index": map[string]any{
							"type":        "integer",
							"description": "The question index this classification belongs to",
						},
						"complexity": map[string]any{
							"type":        "string",
							"enum":        []any{"simple", "medium", "complex"},
							"description": "Reasoning depth: single-step formula -> simple; 2-3 concept composition -> medium; proofs/derivations -> complex",
						},
						"estimated_steps": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"description": "Expected number of solution steps; 0 for pure recall",
						},
						"visualization_need": map[string]any{
							"type":        "string",
							"enum":        []any{"required", "helpful", "not_needed"},
							"description": "Whether a diagram adds pedagogical value",
						},
						"visualization_reason": map[string]any{
							"type":        "string",
							"description": "Short reason, empty when visualization_need is not_needed",
						},
						"question_category": map[string]any{
							"type": "string",
							"enum": []any{
								"calculation", "word_problem", "proof", "graph",
								"physics_setup", "geometry", "definition",
							},
							"description": "Pedagogical category of the question",
						},
						"can_batch_process": map[string]any{
							"type":        "boolean",
							"description": "True only for simple, self-contained questions with no back-reference to other questions",
						},
					},
					"required": []any{
						"index", "complexity", "estimated_steps",
						"visualization_need", "question_category", "can_batch_process",
					},
				},
			},
		},
		"required":             []any{"classifications"},
		"additionalProperties": false,
	},
}
