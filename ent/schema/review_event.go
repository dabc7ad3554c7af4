package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records one answered review prompt and the schedule it
// produced.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("challenge_id").
			NotEmpty(),
		field.Bool("correct"),
		field.Float("interval_days").
			Comment("Interval after this review, in days"),
		field.Int("streak").
			Comment("Consecutive-correct streak after this review"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("challenge_id"),
		index.Fields("correct"),
	}
}
