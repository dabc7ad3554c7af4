package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChallengeEvent records one completion of a challenge, including repeat
// completions of the same challenge.
type ChallengeEvent struct {
	ent.Schema
}

func (ChallengeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ChallengeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UI session in which the challenge was completed"),
		field.String("challenge_id").
			NotEmpty(),
		field.String("challenge_type").
			NotEmpty().
			Comment("prediction, explanation, identification, ordering, diagnosis, recall"),
		field.String("understanding").
			NotEmpty().
			Comment("Self-assessed level: yes, partial, no"),
	}
}

func (ChallengeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("challenge_id"),
	}
}
