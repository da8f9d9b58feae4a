package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduleUpdate is the append-only log of imported schedule grants. Each
// accepted update is replayed on every unlock recomputation; rows are never
// modified after import.
type ScheduleUpdate struct {
	ent.Schema
}

func (ScheduleUpdate) Fields() []ent.Field {
	return []ent.Field{
		field.String("update_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.Strings("enabled_problem_types").
			Optional().
			Comment("Flat grant (new format); empty for legacy updates"),
		field.String("date").
			Optional().
			Comment("Legacy dated entry, YYYY-MM-DD"),
		field.String("label").
			Optional(),
		field.Strings("problem_types").
			Optional().
			Comment("Legacy dated entry types"),
		field.Time("imported_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ScheduleUpdate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("imported_at"),
	}
}
