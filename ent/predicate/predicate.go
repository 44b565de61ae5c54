// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// IllustrationEvent is the predicate function for illustrationevent builders.
type IllustrationEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// SolveEvent is the predicate function for solveevent builders.
type SolveEvent func(*sql.Selector)
