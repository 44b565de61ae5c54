package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IllustrationEvent records one illustration generation attempt.
type IllustrationEvent struct {
	ent.Schema
}

func (IllustrationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (IllustrationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			Comment("Question the illustration was generated for"),
		field.String("file_id").
			Default("").
			Comment("Blob storage id of the uploaded image, empty on failure"),
		field.Bool("success").
			Comment("Whether generation and upload both succeeded"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the two-stage generation"),
	}
}

func (IllustrationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("success"),
	}
}
