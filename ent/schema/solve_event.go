package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SolveEvent records one batch-solving run: how many questions were
// grouped, how many chunks failed, and the estimated token savings.
type SolveEvent struct {
	ent.Schema
}

func (SolveEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SolveEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("question_count").
			Comment("Total questions submitted for batch solving"),
		field.Int("batch_count").
			Comment("Number of chunks the questions were split into"),
		field.Int("failed_batches").
			Default(0).
			Comment("Chunks whose solve call failed outright"),
		field.Int("placeholder_count").
			Default(0).
			Comment("Questions that received a placeholder answer"),
		field.Int("estimated_tokens_saved").
			Default(0).
			Comment("Token savings estimate versus per-question calls"),
	}
}

func (SolveEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_count"),
	}
}
