package illustrate

import "github.com/homewise/homewise/internal/llm"

// PromptSchema defines the JSON schema for the prompt-synthesis response.
var PromptSchema = &llm.Schema{
	Name:        "illustration-prompt",
	Description: "A concise image-generation prompt for an educational diagram",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{
				"type":        "string",
				"description": "The image-generation prompt, 1-3 sentences",
			},
		},
		"required":             []any{"prompt"},
		"additionalProperties": false,
	},
}
