package graphdetect

import "github.com/homewise/homewise/internal/llm"

// GraphSchema defines the JSON schema for one question's graph
// classification response.
var GraphSchema = &llm.Schema{
	Name:        "graph-classification",
	Description: "Whether a question contains a plottable single-variable function",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"graphable": map[string]any{
				"type":        "boolean",
				"description": "True if the question contains or reduces to a single-variable explicit function",
			},
			"function": map[string]any{
				"type":        "string",
				"description": "The function as a plain expression in x, e.g. x^2 - 3*x + 1 or sin(2*x). Only arithmetic operators and sin, cos, tan, sqrt, log, ln, exp, abs. Empty when graphable is false.",
			},
			"graph_type": map[string]any{
				"type": "string",
				"enum": []any{
					"polynomial", "rational", "trigonometric", "exponential",
					"logarithmic", "limit", "derivative", "integral", "other",
				},
			},
			"domain_min": map[string]any{
				"type":        "number",
				"description": "Suggested lower x bound for display",
			},
			"domain_max": map[string]any{
				"type":        "number",
				"description": "Suggested upper x bound for display",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Classification confidence from 0 to 1",
			},
		},
		"required":             []any{"graphable", "confidence"},
		"additionalProperties": false,
	},
}
