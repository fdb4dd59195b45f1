package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoundEvent records one ended round.
type RoundEvent struct {
	ent.Schema
}

func (RoundEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RoundEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("round_id").NotEmpty().Unique().Immutable(),
		field.String("learner_id").NotEmpty().Immutable(),
		field.Int("level_id").Positive().Immutable(),
		field.Bool("is_boss").Default(false).Immutable(),
		field.String("outcome").NotEmpty().Immutable(),
		field.Int("score").NonNegative().Immutable(),
		field.Int("required_score").NonNegative().Immutable(),
	}
}

func (RoundEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "sequence"),
		index.Fields("outcome"),
	}
}
