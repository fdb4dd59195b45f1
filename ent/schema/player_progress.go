package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlayerProgress is the latest progress snapshot for one learner.
// Restoring a learner reads this row; round history lives in RoundEvent.
type PlayerProgress struct {
	ent.Schema
}

func (PlayerProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.JSON("unlocked_levels", []int{}).
			Comment("Sorted ids of unlocked levels"),
		field.JSON("unlocked_rewards", []int{}).
			Comment("Sorted ids of unlocked heroes"),
		field.JSON("rounds_passed", map[int]int{}).
			Comment("Passed normal rounds keyed by level id"),
		field.Time("updated_at").
			Default(time.Now),
	}
}

func (PlayerProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}
